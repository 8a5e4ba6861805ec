package section

import (
	"strings"

	"github.com/docsift/docsift/internal/extract"
)

// Level distinguishes the synthetic leading section from detected headings.
type Level string

const (
	LevelTitle   Level = "title"
	LevelHeading Level = "heading"
)

// SeedHeading is the heading of the synthetic leading section that catches
// content appearing before the first detected heading. A line whose text
// equals this literal is never treated as a boundary, so the seed section
// cannot close against itself.
const SeedHeading = "Introduction"

// Section is a heading plus its accumulated body text up to the next
// heading, scoped to one document and one starting page. Immutable once
// emitted by Segment.
type Section struct {
	Heading   string
	Level     Level
	PageIndex int // 0-based
	Body      string
	Document  string

	// Relevance is assigned once by the scorer, then adjusted only by
	// additive boosts before the final sort.
	Relevance float64
}

// Segment groups a document's ordered page/line stream into sections. A new
// section opens at every classified heading; lines in between accumulate
// into the open section's body. Sections with blank bodies are dropped. The
// stream is seeded with a synthetic title section so no leading content is
// lost.
func Segment(pages []extract.Page, document string) []Section {
	avg := AverageFontSize(pages)

	var sections []Section
	current := Section{
		Heading:  SeedHeading,
		Level:    LevelTitle,
		Document: document,
	}
	var body strings.Builder

	closeCurrent := func() {
		current.Body = body.String()
		if strings.TrimSpace(current.Body) != "" {
			sections = append(sections, current)
		}
		body.Reset()
	}

	for pageIdx, page := range pages {
		for _, line := range page.Lines {
			text := strings.TrimSpace(line.Text)
			if text == "" {
				continue
			}
			if IsHeading(line, avg) && text != SeedHeading {
				closeCurrent()
				current = Section{
					Heading:   text,
					Level:     LevelHeading,
					PageIndex: pageIdx,
					Document:  document,
				}
				continue
			}
			body.WriteString(text)
			body.WriteString(" ")
		}
	}
	closeCurrent()

	return sections
}
