package mock

import (
	"context"

	"github.com/fwojciec/flashgen"
)

var _ flashgen.TranscriptService = (*TranscriptService)(nil)

// TranscriptService is a mock implementation of flashgen.TranscriptService.
type TranscriptService struct {
	TranscriptFn func(ctx context.Context, videoID string) ([]flashgen.Segment, error)
}

func (s *TranscriptService) Transcript(ctx context.Context, videoID string) ([]flashgen.Segment, error) {
	return s.TranscriptFn(ctx, videoID)
}

var _ flashgen.VideoMetadataService = (*VideoMetadataService)(nil)

// VideoMetadataService is a mock implementation of flashgen.VideoMetadataService.
type VideoMetadataService struct {
	TitleFn func(ctx context.Context, videoID string) (string, error)
}

func (s *VideoMetadataService) Title(ctx context.Context, videoID string) (string, error) {
	return s.TitleFn(ctx, videoID)
}
