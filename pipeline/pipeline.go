// Package pipeline orchestrates the URL-to-flashcards flow: source
// classification, content extraction, sentence selection, prompt building,
// model completion, and response parsing.
package pipeline

import (
	"context"
	"strings"

	"github.com/fwojciec/flashgen"
)

// DefaultNumCards is the number of flashcards requested when the caller
// passes a non-positive count.
const DefaultNumCards = 5

// captionsHint is appended to video extraction failures so callers can
// surface an actionable message.
const captionsHint = " (make sure the video has captions enabled)"

// Ensure Pipeline implements flashgen.Runner at compile time.
var _ flashgen.Runner = (*Pipeline)(nil)

// Pipeline composes the flashcard generation stages. Stateless across
// invocations; safe for concurrent use when its collaborators are.
type Pipeline struct {
	Web       flashgen.Extractor
	Video     flashgen.Extractor
	Selector  flashgen.SentenceSelector
	Completer flashgen.Completer
}

// Run converts a URL into a flashcard result, short-circuiting on the first
// stage failure. Every failure is captured in the Result; nothing propagates
// as an error past the pipeline boundary, and no stage retries.
func (p *Pipeline) Run(ctx context.Context, url string, numCards int) *flashgen.Result {
	if numCards <= 0 {
		numCards = DefaultNumCards
	}

	kind := flashgen.ClassifySource(url)
	extractor := p.Web
	if kind == flashgen.KindVideo {
		extractor = p.Video
	}

	content, err := extractor.Extract(ctx, url)
	if err != nil {
		message := flashgen.ErrorMessage(err)
		if kind == flashgen.KindVideo && flashgen.ErrorCode(err) == flashgen.ENOTFOUND {
			message += captionsHint
		}
		return &flashgen.Result{
			Title:      "Error",
			URL:        url,
			Flashcards: []flashgen.Flashcard{},
			Error:      message,
		}
	}

	sentences := p.Selector.SelectKeySentences(content.Body)
	if len(sentences) == 0 {
		return &flashgen.Result{
			Title:      content.Title,
			URL:        url,
			Flashcards: []flashgen.Flashcard{},
			Error:      "No meaningful content found",
		}
	}

	prompt := flashgen.BuildPrompt(content.Title, strings.Join(sentences, " "), numCards)

	raw, err := p.Completer.Complete(ctx, prompt)
	if err != nil {
		// A failed model call degrades to a diagnostic card, matching the
		// parser's contract: once extraction and selection succeeded the
		// caller always gets a populated flashcards field.
		return &flashgen.Result{
			Title: content.Title,
			URL:   url,
			Flashcards: []flashgen.Flashcard{{
				Question: "Could not generate flashcards",
				Answer:   "Error communicating with the model service: " + flashgen.ErrorMessage(err),
			}},
		}
	}

	return &flashgen.Result{
		Title:      content.Title,
		URL:        url,
		Flashcards: flashgen.ParseFlashcards(raw),
	}
}
