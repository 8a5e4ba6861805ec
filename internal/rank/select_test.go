package rank

import (
	"testing"

	"github.com/docsift/docsift/internal/section"
)

func ranked(doc string, heading string, score float64) section.Section {
	return section.Section{Document: doc, Heading: heading, Relevance: score}
}

func TestSelectDiverseCapsPerDocumentThenFills(t *testing.T) {
	// Doc A's four sections all outscore doc B's three. Pass 1 admits two
	// from each document; pass 2 fills the fifth slot with A's next best.
	sections := []section.Section{
		ranked("a.pdf", "A1", 0.9),
		ranked("a.pdf", "A2", 0.8),
		ranked("a.pdf", "A3", 0.7),
		ranked("a.pdf", "A4", 0.6),
		ranked("b.pdf", "B1", 0.5),
		ranked("b.pdf", "B2", 0.4),
		ranked("b.pdf", "B3", 0.3),
	}

	selected := SelectDiverse(sections, 5, 2)
	if len(selected) != 5 {
		t.Fatalf("expected 5 selections, got %d", len(selected))
	}

	wantOrder := []string{"A1", "A2", "B1", "B2", "A3"}
	for i, want := range wantOrder {
		if selected[i].Heading != want {
			t.Errorf("position %d: expected %q, got %q", i, want, selected[i].Heading)
		}
	}
}

func TestSelectDiverseNeverExceedsMax(t *testing.T) {
	var sections []section.Section
	for i := 0; i < 20; i++ {
		sections = append(sections, ranked("solo.pdf", "S", float64(20-i)))
	}
	if got := SelectDiverse(sections, 5, 2); len(got) != 5 {
		t.Errorf("expected 5 selections, got %d", len(got))
	}
}

func TestSelectDiverseFewerSectionsThanMax(t *testing.T) {
	sections := []section.Section{
		ranked("a.pdf", "A1", 0.9),
		ranked("b.pdf", "B1", 0.8),
	}
	selected := SelectDiverse(sections, 5, 2)
	if len(selected) != 2 {
		t.Fatalf("expected 2 selections, got %d", len(selected))
	}
}

func TestSelectDiverseSingleDocumentFillsFromPassTwo(t *testing.T) {
	// Only one document: the cap limits pass 1 to two sections, pass 2
	// exceeds the cap to fill the slots.
	sections := []section.Section{
		ranked("only.pdf", "S1", 0.9),
		ranked("only.pdf", "S2", 0.8),
		ranked("only.pdf", "S3", 0.7),
		ranked("only.pdf", "S4", 0.6),
	}

	selected := SelectDiverse(sections, 3, 2)
	if len(selected) != 3 {
		t.Fatalf("expected 3 selections, got %d", len(selected))
	}
	wantOrder := []string{"S1", "S2", "S3"}
	for i, want := range wantOrder {
		if selected[i].Heading != want {
			t.Errorf("position %d: expected %q, got %q", i, want, selected[i].Heading)
		}
	}
}

func TestSelectDiverseEmptyInput(t *testing.T) {
	if got := SelectDiverse(nil, 5, 2); len(got) != 0 {
		t.Errorf("expected no selections, got %d", len(got))
	}
}
