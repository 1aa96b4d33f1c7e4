// Package readability provides an alternate web-page implementation of
// flashgen.Extractor built on go-readability. Useful for pages where the
// semantic-selector strategy picks up too much or too little.
package readability

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"github.com/fwojciec/flashgen"
	"github.com/go-shiori/go-readability"
)

// blankRuns matches three or more consecutive newlines.
var blankRuns = regexp.MustCompile(`\n{3,}`)

// Ensure Extractor implements flashgen.Extractor at compile time.
var _ flashgen.Extractor = (*Extractor)(nil)

// Extractor extracts main content from web pages using readability scoring.
type Extractor struct {
	fetcher flashgen.Fetcher
}

// NewExtractor creates a new Extractor using the given fetcher.
func NewExtractor(fetcher flashgen.Fetcher) *Extractor {
	return &Extractor{fetcher: fetcher}
}

// Extract fetches the URL and returns its readability-extracted content.
func (e *Extractor) Extract(ctx context.Context, rawURL string) (*flashgen.Content, error) {
	rawHTML, err := e.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	pageURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, flashgen.Errorf(flashgen.EINVALID, "invalid URL %q: %v", rawURL, err)
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), pageURL)
	if err != nil {
		return nil, flashgen.Errorf(flashgen.EINTERNAL, "readability extraction failed for %s: %v", rawURL, err)
	}

	title := strings.TrimSpace(article.Title)
	if title == "" {
		title = "Untitled"
	}

	body := blankRuns.ReplaceAllString(strings.TrimSpace(article.TextContent), "\n\n")

	return &flashgen.Content{
		Title:     title,
		Body:      body,
		SourceURL: rawURL,
	}, nil
}
