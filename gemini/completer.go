// Package gemini provides a Google Gemini implementation of
// flashgen.Completer.
package gemini

import (
	"context"

	"github.com/fwojciec/flashgen"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is specified.
const DefaultModel = "gemini-2.5-flash"

// Ensure Completer implements flashgen.Completer at compile time.
var _ flashgen.Completer = (*Completer)(nil)

// Completer generates flashcard text using Google Gemini.
type Completer struct {
	client *genai.Client
	model  string
}

// NewCompleter creates a new Completer. An empty model selects DefaultModel.
func NewCompleter(client *genai.Client, model string) *Completer {
	if model == "" {
		model = DefaultModel
	}
	return &Completer{client: client, model: model}
}

// Complete sends the prompt to the model and returns the raw response text.
func (c *Completer) Complete(ctx context.Context, prompt flashgen.Prompt) (string, error) {
	if prompt.User == "" {
		return "", flashgen.Errorf(flashgen.EINVALID, "prompt user message required")
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt.User}},
		}},
		BuildConfig(prompt.System),
	)
	if err != nil {
		return "", flashgen.Errorf(flashgen.EUNAVAILABLE, "model call failed: %v", err)
	}
	if result == nil {
		return "", flashgen.Errorf(flashgen.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for flashcard generation.
// Temperature is fixed low for determinism-leaning output and output tokens
// are bounded.
func BuildConfig(system string) *genai.GenerateContentConfig {
	temp := float32(0.3)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		},
		Temperature:     &temp,
		MaxOutputTokens: 1000,
	}
}
