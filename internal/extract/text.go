package extract

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// TextSource handles plain text files. Paragraphs (blank-line separated)
// become body lines; plain text carries no heading metrics, so documents
// typically segment into a single leading section.
type TextSource struct{}

func (s *TextSource) Extract(path string) ([]Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open text: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var page Page
	var current strings.Builder

	flush := func() {
		t := strings.TrimSpace(current.String())
		if t != "" {
			page.Lines = append(page.Lines, Line{Text: t, FontSize: BodyFontSize})
		}
		current.Reset()
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			flush()
		} else {
			if current.Len() > 0 {
				current.WriteString(" ")
			}
			current.WriteString(strings.TrimSpace(line))
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read text: %w", err)
	}

	return []Page{page}, nil
}
