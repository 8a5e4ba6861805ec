// Package excerpt trims section bodies to bounded, sentence-respecting
// excerpts for the report's subsection analysis.
package excerpt

import "strings"

const (
	// fullTextLimit: bodies at or under this length pass through whole.
	fullTextLimit = 500
	// windowSize: the window searched for a sentence end when truncating.
	windowSize = 400
	// minSentenceEnd: a sentence end must fall beyond this to be used.
	minSentenceEnd = 200
	// fallbackLimit: hard cut length when no usable sentence end exists.
	fallbackLimit = 300
)

// Refine produces a bounded excerpt of a section body. Whitespace runs are
// collapsed first; short bodies are returned whole; long bodies are cut at
// the last sentence end inside the window, falling back to a hard cut with
// an ellipsis when the sentence end sits too early. All thresholds count
// characters, not bytes, so cuts never split a multi-byte rune.
func Refine(body string) string {
	text := strings.Join(strings.Fields(body), " ")

	runes := []rune(text)
	if len(runes) <= fullTextLimit {
		return text
	}

	window := runes[:windowSize]
	end := lastSentenceEnd(window)
	if end > minSentenceEnd {
		return string(window[:end+1])
	}
	return string(runes[:fallbackLimit]) + "..."
}

func lastSentenceEnd(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		switch runes[i] {
		case '.', '!', '?':
			return i
		}
	}
	return -1
}
