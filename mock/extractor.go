package mock

import (
	"context"

	"github.com/fwojciec/flashgen"
)

var _ flashgen.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of flashgen.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, url string) (*flashgen.Content, error)
}

func (e *Extractor) Extract(ctx context.Context, url string) (*flashgen.Content, error) {
	return e.ExtractFn(ctx, url)
}
