package flashgen

import (
	"fmt"
	"strings"
)

// MaxPromptContentChars bounds the amount of condensed content embedded in
// the user message, to control request size and cost.
const MaxPromptContentChars = 3000

// Prompt is the instruction/content pair sent to the model. Pure data; one
// instance per pipeline invocation.
type Prompt struct {
	// System is the fixed-role instruction describing the expected output.
	System string

	// User embeds the content title, condensed body, and card count.
	User string
}

const systemInstruction = `You are an educational content expert. Your task is to create effective flashcards (question-answer pairs) based on the provided text. Follow these guidelines:

1. Create concise, clear questions that test understanding, not just memorization
2. Make answers brief but complete
3. Focus on the most important concepts
4. Avoid overly complex questions
5. Make sure questions and answers are directly based on the provided content

Output ONLY a valid JSON array in the format:
[
    {"question": "Question text here", "answer": "Answer text here"},
    ...
]

Do not wrap the output in markdown code fences or any other prose.`

// BuildPrompt assembles the model prompt from a title, condensed body, and
// requested card count. Deterministic given its inputs; performs no I/O.
func BuildPrompt(title, body string, numCards int) Prompt {
	if len(body) > MaxPromptContentChars {
		body = body[:MaxPromptContentChars]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Title: %s\n\n", title)
	fmt.Fprintf(&sb, "Content:\n%s\n\n", body)
	fmt.Fprintf(&sb, "Please generate %d high-quality flashcards based on this content.", numCards)

	return Prompt{
		System: systemInstruction,
		User:   sb.String(),
	}
}
