package mock

import (
	"context"

	"github.com/fwojciec/flashgen"
)

var _ flashgen.Completer = (*Completer)(nil)

// Completer is a mock implementation of flashgen.Completer.
type Completer struct {
	CompleteFn func(ctx context.Context, prompt flashgen.Prompt) (string, error)
}

func (c *Completer) Complete(ctx context.Context, prompt flashgen.Prompt) (string, error) {
	return c.CompleteFn(ctx, prompt)
}
