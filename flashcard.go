package flashgen

import "context"

// Flashcard is a single question/answer study card.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Result is the outcome of one pipeline run. On failure Error is non-empty,
// Flashcards is empty, and Title is either the literal "Error" (extraction
// failures) or the real title (later-stage failures). Results are built
// fresh per request and never persisted.
type Result struct {
	Title      string      `json:"title"`
	URL        string      `json:"url"`
	Flashcards []Flashcard `json:"flashcards"`
	Error      string      `json:"error,omitempty"`
}

// Completer generates text from a prompt using a language model.
// The output is untrusted: callers must parse it defensively.
type Completer interface {
	// Complete sends the prompt to the model and returns the raw text of
	// the response.
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// Runner converts a URL into a flashcard result. It never returns an error;
// all failures are captured in the Result.
type Runner interface {
	Run(ctx context.Context, url string, numCards int) *Result
}

// SentenceSelector condenses text to its most informative sentences.
type SentenceSelector interface {
	// SelectKeySentences returns a bounded subset of the text's sentences
	// in original document order. Empty input yields an empty result.
	SelectKeySentences(text string) []string
}
