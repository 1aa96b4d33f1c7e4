package flashgen

import "context"

// Content holds cleaned text extracted from a source URL.
type Content struct {
	// Title is the document title or video title. Falls back to "Untitled"
	// for web pages and "Video {id}" for videos when unavailable.
	Title string `json:"title"`

	// Body is normalized plain text: boilerplate removed, runs of three or
	// more blank lines collapsed.
	Body string `json:"body"`

	// SourceURL is the URL the content was extracted from.
	SourceURL string `json:"sourceUrl"`
}

// Extractor retrieves and cleans content from a URL.
// Implementations exist per source kind (web page, video transcript).
type Extractor interface {
	// Extract fetches the URL and returns its main textual content.
	// The context controls timeout and cancellation.
	Extract(ctx context.Context, url string) (*Content, error)
}
