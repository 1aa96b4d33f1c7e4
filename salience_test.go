package flashgen_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/flashgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// periodTokenizer is a trivial tokenizer for exercising the selector without
// the punkt model. Splits on ". " boundaries.
type periodTokenizer struct{}

func (periodTokenizer) Tokenize(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var sentences []string
	for _, s := range strings.Split(text, ". ") {
		s = strings.TrimSpace(s)
		if s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

func TestSelector_SelectKeySentences(t *testing.T) {
	t.Parallel()

	t.Run("returns empty result for empty input", func(t *testing.T) {
		t.Parallel()

		selector := flashgen.NewSelector(periodTokenizer{})

		assert.Empty(t, selector.SelectKeySentences(""))
		assert.Empty(t, selector.SelectKeySentences("   \n  "))
	})

	t.Run("returns every sentence when under the limit", func(t *testing.T) {
		t.Parallel()

		selector := flashgen.NewSelector(periodTokenizer{})
		text := "Goroutines multiplex functions onto threads. Channels synchronize goroutines together. Goroutines communicate through channels."

		got := selector.SelectKeySentences(text)

		assert.Len(t, got, 3)
	})

	t.Run("bounds the result to max sentences", func(t *testing.T) {
		t.Parallel()

		selector := flashgen.NewSelector(periodTokenizer{}, flashgen.WithMaxSentences(2))
		text := "Compilers translate source programs. Compilers optimize generated instructions. Birds sing. Compilers emit machine instructions."

		got := selector.SelectKeySentences(text)

		assert.Len(t, got, 2)
	})

	t.Run("preserves original document order", func(t *testing.T) {
		t.Parallel()

		selector := flashgen.NewSelector(periodTokenizer{}, flashgen.WithMaxSentences(2))
		// "compilers"/"instructions" dominate the frequency table, so the
		// first and fourth sentences score highest.
		text := "Compilers translate source instructions. Birds sing. Cats nap. Compilers optimize machine instructions."

		got := selector.SelectKeySentences(text)

		require.Len(t, got, 2)
		assert.Equal(t, "Compilers translate source instructions", got[0])
		assert.Equal(t, "Compilers optimize machine instructions.", got[1])
	})

	t.Run("prefers sentences dense in frequent terms", func(t *testing.T) {
		t.Parallel()

		selector := flashgen.NewSelector(periodTokenizer{}, flashgen.WithMaxSentences(1))
		text := "Elephants remember elephants fondly. The the the. Elephants gather near elephants."

		got := selector.SelectKeySentences(text)

		require.Len(t, got, 1)
		assert.Contains(t, got[0], "lephants")
	})

	t.Run("returns min of limit and sentence count", func(t *testing.T) {
		t.Parallel()

		var sb strings.Builder
		for i := 0; i < 30; i++ {
			fmt.Fprintf(&sb, "Sentence number wording item%d repeats throughout. ", i)
		}
		selector := flashgen.NewSelector(periodTokenizer{})

		got := selector.SelectKeySentences(sb.String())

		assert.Len(t, got, flashgen.DefaultMaxSentences)
	})
}
