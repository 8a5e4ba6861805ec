package section

import (
	"regexp"
	"unicode/utf8"

	"github.com/docsift/docsift/internal/extract"
)

// DefaultFontSize is assumed when a document has no measurable text.
const DefaultFontSize = 12.0

// Heading-marker patterns: decimal outline ("1.", "2.3)"), roman numeral
// markers, and single-letter markers, each followed by whitespace.
var headingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d+(\.\d+)*[\.\)]?\s+`),
	regexp.MustCompile(`^[IVXLCDMivxlcdm]+[\.\)]\s+`),
	regexp.MustCompile(`^[A-Za-z][\.\)]\s+`),
}

// IsHeading decides whether a line starts a new section. Four independent
// signals, any one sufficient:
//
//   - font notably larger than the document average (>1.1x)
//   - bold and not notably smaller than average (>0.9x)
//   - leading outline marker (decimal, roman, or single-letter)
//   - short bold run (<100 chars), a common heading shape without size contrast
//
// Pure function of the line and the document's average font size.
func IsHeading(line extract.Line, avgFontSize float64) bool {
	if line.FontSize > avgFontSize*1.1 {
		return true
	}
	if line.Bold && line.FontSize > avgFontSize*0.9 {
		return true
	}
	if matchesHeadingPattern(line.Text) {
		return true
	}
	return line.Bold && utf8.RuneCountInString(line.Text) < 100
}

func matchesHeadingPattern(text string) bool {
	for _, p := range headingPatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// AverageFontSize computes the document's average font size weighted by
// character count. Returns DefaultFontSize for documents with no text.
func AverageFontSize(pages []extract.Page) float64 {
	var weighted float64
	var chars int
	for _, page := range pages {
		for _, line := range page.Lines {
			n := utf8.RuneCountInString(line.Text)
			weighted += line.FontSize * float64(n)
			chars += n
		}
	}
	if chars == 0 {
		return DefaultFontSize
	}
	return weighted / float64(chars)
}
