package mock

import "github.com/fwojciec/flashgen"

var _ flashgen.SentenceSelector = (*SentenceSelector)(nil)

// SentenceSelector is a mock implementation of flashgen.SentenceSelector.
type SentenceSelector struct {
	SelectKeySentencesFn func(text string) []string
}

func (s *SentenceSelector) SelectKeySentences(text string) []string {
	return s.SelectKeySentencesFn(text)
}
