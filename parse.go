package flashgen

import (
	"encoding/json"
	"regexp"
	"strings"
)

// arrayPattern matches a bracket-delimited array anywhere in the text. Used
// as a secondary recovery when the direct slice fails to parse.
var arrayPattern = regexp.MustCompile(`(?s)\[.*\]`)

// ParseFlashcards isolates and parses a JSON array of question/answer
// objects from raw model output. The model is an untrusted black box: its
// output may be wrapped in code fences, preceded or followed by prose, or
// malformed entirely. All failure modes degrade to a single diagnostic
// flashcard; this function never returns an error.
func ParseFlashcards(raw string) []Flashcard {
	text := stripCodeFences(raw)

	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end < start {
		return diagnosticCard("The model response contained no JSON array.")
	}

	candidate := text[start : end+1]

	var cards []Flashcard
	err := json.Unmarshal([]byte(candidate), &cards)
	if err == nil {
		return cards
	}

	// Strict parse failed; retry on a regex match over the stripped text.
	// This recovers cases where stray brackets in surrounding prose broke
	// the first/last bracket slice.
	if match := arrayPattern.FindString(text); match != "" && match != candidate {
		if json.Unmarshal([]byte(match), &cards) == nil {
			return cards
		}
	}

	return diagnosticCard("The model response could not be parsed as flashcards: " + err.Error())
}

// stripCodeFences removes triple-backtick fence markers wherever they
// appear, with or without a language tag.
func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	return strings.ReplaceAll(s, "```", "")
}

// diagnosticCard wraps a parse failure in a single flashcard so callers
// always receive a well-formed set.
func diagnosticCard(message string) []Flashcard {
	return []Flashcard{{
		Question: "Could not generate flashcards",
		Answer:   message,
	}}
}
