package flashgen

import (
	"sort"
	"strings"
)

// DefaultMaxSentences bounds how many sentences the selector returns.
const DefaultMaxSentences = 20

// SentenceTokenizer splits text into sentences. Implementations must handle
// abbreviations and punctuation ambiguity, not naive period splitting.
type SentenceTokenizer interface {
	Tokenize(text string) []string
}

// Ensure Selector implements SentenceSelector at compile time.
var _ SentenceSelector = (*Selector)(nil)

// Selector ranks sentences by a length-normalized term-frequency score and
// returns the most informative subset in original document order. Selection
// is by importance, presentation is chronological.
type Selector struct {
	tokenizer    SentenceTokenizer
	maxSentences int
}

// SelectorOption configures a Selector.
type SelectorOption func(*Selector)

// WithMaxSentences sets the maximum number of sentences returned.
// Defaults to DefaultMaxSentences (20) if not specified.
func WithMaxSentences(n int) SelectorOption {
	return func(s *Selector) {
		s.maxSentences = n
	}
}

// NewSelector creates a new Selector using the given sentence tokenizer.
// The tokenizer is expected to be a process-wide read-only singleton; the
// Selector itself holds no mutable state and is safe for concurrent use.
func NewSelector(tokenizer SentenceTokenizer, opts ...SelectorOption) *Selector {
	s := &Selector{
		tokenizer:    tokenizer,
		maxSentences: DefaultMaxSentences,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SelectKeySentences splits text into sentences, scores each by the summed
// corpus frequency of its informative tokens divided by its raw token count,
// and returns the highest-scoring sentences re-sorted to original order.
// Empty input returns an empty result.
func (s *Selector) SelectKeySentences(text string) []string {
	sentences := s.tokenizer.Tokenize(text)
	if len(sentences) == 0 {
		return nil
	}

	// Frequency table over lowercased tokens, excluding stop words and
	// short tokens.
	freq := make(map[string]int)
	for _, sentence := range sentences {
		for _, word := range strings.Fields(strings.ToLower(sentence)) {
			if stopWords[word] || len(word) <= 3 {
				continue
			}
			freq[word]++
		}
	}

	scores := make([]float64, len(sentences))
	for i, sentence := range sentences {
		words := strings.Fields(strings.ToLower(sentence))
		if len(words) == 0 {
			continue
		}
		sum := 0
		for _, word := range words {
			if stopWords[word] {
				continue
			}
			sum += freq[word]
		}
		scores[i] = float64(sum) / float64(len(words))
	}

	indices := make([]int, len(sentences))
	for i := range indices {
		indices[i] = i
	}

	// Stable sort keeps earlier sentences first on score ties.
	sort.SliceStable(indices, func(a, b int) bool {
		return scores[indices[a]] > scores[indices[b]]
	})

	if len(indices) > s.maxSentences {
		indices = indices[:s.maxSentences]
	}
	sort.Ints(indices)

	selected := make([]string, 0, len(indices))
	for _, i := range indices {
		selected = append(selected, sentences[i])
	}
	return selected
}
