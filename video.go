package flashgen

import "context"

// Segment is a timed unit of spoken text from a video's caption track.
type Segment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// TranscriptService retrieves caption transcripts for videos.
type TranscriptService interface {
	// Transcript returns the ordered caption segments for a video.
	// Returns ENOTFOUND if the video has no transcript (captions disabled).
	Transcript(ctx context.Context, videoID string) ([]Segment, error)
}

// VideoMetadataService looks up lightweight video metadata.
type VideoMetadataService interface {
	// Title returns the video title. Callers should treat failure as
	// non-fatal and fall back to a synthetic title.
	Title(ctx context.Context, videoID string) (string, error)
}
