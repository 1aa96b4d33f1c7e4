// Package slog provides logging decorators for flashgen interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/flashgen"
)

// Ensure Runner implements flashgen.Runner at compile time.
var _ flashgen.Runner = (*Runner)(nil)

// Runner wraps a flashgen.Runner with structured logging of each pipeline
// invocation.
type Runner struct {
	next   flashgen.Runner
	logger *slog.Logger
}

// NewRunner creates a new logging Runner.
func NewRunner(next flashgen.Runner, logger *slog.Logger) *Runner {
	return &Runner{next: next, logger: logger}
}

// Run delegates to the wrapped runner and logs the outcome.
func (r *Runner) Run(ctx context.Context, url string, numCards int) *flashgen.Result {
	begin := time.Now()
	result := r.next.Run(ctx, url, numCards)
	if result.Error != "" {
		r.logger.Error("flashcard generation failed",
			"url", url,
			"error", result.Error,
			"duration", time.Since(begin),
		)
		return result
	}
	r.logger.Info("flashcard generation",
		"url", url,
		"title", result.Title,
		"cards", len(result.Flashcards),
		"duration", time.Since(begin),
	)
	return result
}
