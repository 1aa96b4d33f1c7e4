package youtube

import (
	"context"
	"strings"

	"github.com/fwojciec/flashgen"
)

// Ensure Extractor implements flashgen.Extractor at compile time.
var _ flashgen.Extractor = (*Extractor)(nil)

// Extractor extracts transcript content from video URLs.
type Extractor struct {
	transcripts flashgen.TranscriptService
	metadata    flashgen.VideoMetadataService
}

// NewExtractor creates a new Extractor using the given services.
func NewExtractor(transcripts flashgen.TranscriptService, metadata flashgen.VideoMetadataService) *Extractor {
	return &Extractor{transcripts: transcripts, metadata: metadata}
}

// Extract derives the video ID from the URL, fetches the transcript, and
// joins its segments into a single body. The title comes from the metadata
// service, falling back to a synthetic "Video {id}" title when unavailable;
// a missing transcript is fatal for the request, a missing title is not.
func (e *Extractor) Extract(ctx context.Context, url string) (*flashgen.Content, error) {
	videoID, err := flashgen.VideoID(url)
	if err != nil {
		return nil, err
	}

	segments, err := e.transcripts.Transcript(ctx, videoID)
	if err != nil {
		return nil, err
	}

	texts := make([]string, 0, len(segments))
	for _, s := range segments {
		texts = append(texts, s.Text)
	}

	title, err := e.metadata.Title(ctx, videoID)
	if err != nil || title == "" {
		title = "Video " + videoID
	}

	return &flashgen.Content{
		Title:     title,
		Body:      strings.Join(texts, " "),
		SourceURL: url,
	}, nil
}
