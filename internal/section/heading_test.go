package section

import (
	"strings"
	"testing"

	"github.com/docsift/docsift/internal/extract"
)

func TestIsHeadingLargeFont(t *testing.T) {
	line := extract.Line{Text: "Overview", FontSize: 14}
	if !IsHeading(line, 12) {
		t.Error("expected 14pt line to be a heading against 12pt average")
	}

	line = extract.Line{Text: "body text that is regular sized", FontSize: 12}
	if IsHeading(line, 12) {
		t.Error("expected average-sized non-bold line not to be a heading")
	}
}

func TestIsHeadingBoldNearAverage(t *testing.T) {
	// Bold triggers as long as the font is not notably smaller than average.
	line := extract.Line{Text: strings.Repeat("x", 150), FontSize: 11.5, Bold: true}
	if !IsHeading(line, 12) {
		t.Error("expected bold near-average line to be a heading")
	}

	// Bold but notably smaller than average, and too long for the
	// short-bold signal: not a heading.
	line = extract.Line{Text: strings.Repeat("x", 150), FontSize: 9, Bold: true}
	if IsHeading(line, 12) {
		t.Error("expected small bold long line not to be a heading")
	}
}

func TestIsHeadingShortBold(t *testing.T) {
	// Short bold runs count even without size contrast.
	line := extract.Line{Text: "Packing Tips", FontSize: 9, Bold: true}
	if !IsHeading(line, 12) {
		t.Error("expected short bold line to be a heading")
	}
}

func TestIsHeadingShortBoldCountsCharacters(t *testing.T) {
	// 99 two-byte runes are 198 bytes but only 99 chars, under the cutoff.
	line := extract.Line{Text: strings.Repeat("é", 99), FontSize: 9, Bold: true}
	if !IsHeading(line, 12) {
		t.Error("expected 99-char bold line to be a heading")
	}

	line = extract.Line{Text: strings.Repeat("é", 120), FontSize: 9, Bold: true}
	if IsHeading(line, 12) {
		t.Error("expected 120-char bold line not to be a heading")
	}
}

func TestIsHeadingOutlineMarkers(t *testing.T) {
	markers := []string{
		"1. Getting There",
		"2.3 Local Cuisine",
		"1.2.3) Deep Subsection",
		"IV. Results",
		"iv) lowercase roman",
		"A) Appendix",
		"b. lettered item",
	}
	for _, text := range markers {
		line := extract.Line{Text: text, FontSize: 12}
		if !IsHeading(line, 12) {
			t.Errorf("expected %q to match an outline marker", text)
		}
	}

	plain := extract.Line{Text: "The beaches stretch for miles along the coast", FontSize: 12}
	if IsHeading(plain, 12) {
		t.Errorf("expected plain sentence not to be a heading")
	}
}

func TestIsHeadingIsPure(t *testing.T) {
	line := extract.Line{Text: "Nightlife", FontSize: 13, Bold: true}
	first := IsHeading(line, 12)
	for i := 0; i < 10; i++ {
		if IsHeading(line, 12) != first {
			t.Fatal("IsHeading returned different results for identical input")
		}
	}
}

func TestAverageFontSizeWeightedByChars(t *testing.T) {
	pages := []extract.Page{
		{Lines: []extract.Line{
			{Text: strings.Repeat("a", 90), FontSize: 10},
			{Text: strings.Repeat("b", 10), FontSize: 20},
		}},
	}
	got := AverageFontSize(pages)
	want := 11.0 // (90*10 + 10*20) / 100
	if got != want {
		t.Errorf("expected weighted average %v, got %v", want, got)
	}
}

func TestAverageFontSizeEmptyDocument(t *testing.T) {
	if got := AverageFontSize(nil); got != DefaultFontSize {
		t.Errorf("expected default %v for empty document, got %v", DefaultFontSize, got)
	}
	if got := AverageFontSize([]extract.Page{{}, {}}); got != DefaultFontSize {
		t.Errorf("expected default %v for pages with no lines, got %v", DefaultFontSize, got)
	}
}
