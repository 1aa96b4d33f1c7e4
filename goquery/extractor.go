// Package goquery provides the web-page implementation of flashgen.Extractor.
// It fetches an HTML document, strips non-content chrome, and reduces the
// page to its main textual content.
package goquery

import (
	"context"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/flashgen"
	"golang.org/x/net/html"
)

// chromeSelector matches elements removed before any text extraction.
// Removal must happen first so boilerplate never pollutes downstream
// frequency scoring.
const chromeSelector = "script, style, nav, footer, header, aside, form, button, iframe, noscript"

// mainSelectors are tried in order; the first match wins.
var mainSelectors = []string{"article", "main", "[role=main]"}

// blankRuns matches three or more consecutive newlines.
var blankRuns = regexp.MustCompile(`\n{3,}`)

// Ensure Extractor implements flashgen.Extractor at compile time.
var _ flashgen.Extractor = (*Extractor)(nil)

// Extractor extracts the main textual content of web pages.
type Extractor struct {
	fetcher flashgen.Fetcher
}

// NewExtractor creates a new Extractor using the given fetcher.
func NewExtractor(fetcher flashgen.Fetcher) *Extractor {
	return &Extractor{fetcher: fetcher}
}

// Extract fetches the URL and returns its cleaned main content. The title is
// the trimmed document <title>, or "Untitled" when absent. Fetch errors pass
// through unchanged; parse failures return EINTERNAL.
func (e *Extractor) Extract(ctx context.Context, url string) (*flashgen.Content, error) {
	rawHTML, err := e.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, flashgen.Errorf(flashgen.EINTERNAL, "failed to parse HTML from %s: %v", url, err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = "Untitled"
	}

	doc.Find(chromeSelector).Remove()

	body := mainContent(doc)
	body = blankRuns.ReplaceAllString(strings.TrimSpace(body), "\n\n")

	return &flashgen.Content{
		Title:     title,
		Body:      body,
		SourceURL: url,
	}, nil
}

// mainContent selects the page's main text. It tries the semantic main
// selectors first and falls back to the body's paragraph and heading
// elements.
func mainContent(doc *goquery.Document) string {
	for _, selector := range mainSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return nodeText(sel)
		}
	}

	var parts []string
	doc.Find("body").Find("p, h1, h2, h3").Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			parts = append(parts, text)
		}
	})
	return strings.Join(parts, "\n")
}

// nodeText returns the selection's text with each text node trimmed and
// joined by newlines, skipping whitespace-only nodes.
func nodeText(sel *goquery.Selection) string {
	var parts []string
	for _, node := range sel.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(parts, "\n")
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if text := strings.TrimSpace(n.Data); text != "" {
			*parts = append(*parts, text)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
