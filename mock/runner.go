package mock

import (
	"context"

	"github.com/fwojciec/flashgen"
)

var _ flashgen.Runner = (*Runner)(nil)

// Runner is a mock implementation of flashgen.Runner.
type Runner struct {
	RunFn func(ctx context.Context, url string, numCards int) *flashgen.Result
}

func (r *Runner) Run(ctx context.Context, url string, numCards int) *flashgen.Result {
	return r.RunFn(ctx, url, numCards)
}
