// Package flashgen turns a web page or video URL into a small set of
// question/answer study flashcards. It fetches and cleans content (HTML
// article text or video transcript), ranks sentences by term frequency to
// condense the text, and prompts an LLM to produce structured flashcards.
//
// This package contains domain types, interfaces, and pure domain logic
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// youtube/, gemini/).
package flashgen
