// Package sentences provides a punkt-based implementation of
// flashgen.SentenceTokenizer for English text.
package sentences

import (
	"strings"

	"github.com/fwojciec/flashgen"
	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// Ensure Tokenizer implements flashgen.SentenceTokenizer at compile time.
var _ flashgen.SentenceTokenizer = (*Tokenizer)(nil)

// Tokenizer splits text into sentences using the trained punkt model, which
// handles abbreviations and punctuation ambiguity. The underlying model is
// loaded once and is safe for concurrent use.
type Tokenizer struct {
	tok *sentences.DefaultSentenceTokenizer
}

// NewTokenizer creates a Tokenizer backed by the embedded English punkt
// training data.
func NewTokenizer() (*Tokenizer, error) {
	tok, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, err
	}
	return &Tokenizer{tok: tok}, nil
}

// Tokenize splits text into trimmed, non-empty sentences.
func (t *Tokenizer) Tokenize(text string) []string {
	var out []string
	for _, s := range t.tok.Tokenize(text) {
		trimmed := strings.TrimSpace(s.Text)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
