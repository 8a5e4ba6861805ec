package extract

import (
	"fmt"
	"sort"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// PDFSource extracts font-tagged lines from a PDF. Spans are grouped into
// lines by vertical position, ordered top-to-bottom and left-to-right, and
// each line carries its first span's font size and bold flag.
type PDFSource struct{}

// yTolerance groups spans whose baselines differ by less than this many
// points into the same visual line.
const yTolerance = 2.0

func (s *PDFSource) Extract(path string) ([]Page, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var pages []Page
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		p := reader.Page(i)
		if p.V.IsNull() {
			pages = append(pages, Page{})
			continue
		}
		pages = append(pages, pageLines(p.Content().Text))
	}
	return pages, nil
}

// pageLines groups raw spans into ordered lines.
func pageLines(spans []pdflib.Text) Page {
	if len(spans) == 0 {
		return Page{}
	}

	// PDF Y grows upward, so top-to-bottom means descending Y.
	sorted := make([]pdflib.Text, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool {
		if diff := sorted[i].Y - sorted[j].Y; diff > yTolerance || diff < -yTolerance {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var page Page
	var current []pdflib.Text
	flush := func() {
		if len(current) == 0 {
			return
		}
		if line, ok := buildLine(current); ok {
			page.Lines = append(page.Lines, line)
		}
		current = current[:0]
	}

	for _, sp := range sorted {
		if len(current) > 0 {
			prev := current[len(current)-1]
			if prev.Y-sp.Y > yTolerance {
				flush()
			}
		}
		current = append(current, sp)
	}
	flush()

	return page
}

// buildLine concatenates the spans of one line, inserting a space where the
// horizontal gap between spans suggests a word break.
func buildLine(spans []pdflib.Text) (Line, bool) {
	var buf strings.Builder
	var prevEnd float64
	for i, sp := range spans {
		if i > 0 && sp.X-prevEnd > 0.3*sp.FontSize {
			buf.WriteString(" ")
		}
		buf.WriteString(sp.S)
		prevEnd = sp.X + sp.W
	}
	text := strings.TrimSpace(buf.String())
	if text == "" {
		return Line{}, false
	}
	first := spans[0]
	return Line{
		Text:     text,
		FontSize: first.FontSize,
		Bold:     isBoldFont(first.Font),
		X:        first.X,
	}, true
}

func isBoldFont(fontName string) bool {
	name := strings.ToLower(fontName)
	return strings.Contains(name, "bold") || strings.Contains(name, "black") ||
		strings.Contains(name, "heavy")
}
