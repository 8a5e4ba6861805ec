package extract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fumiama/go-docx"
)

// DOCXSource extracts lines from .docx files. Paragraphs with a heading
// style become bold heading-sized lines; everything else is body. One page
// per document (word processors repaginate, so page numbers are synthetic).
type DOCXSource struct{}

func (s *DOCXSource) Extract(path string) ([]Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open docx: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat docx: %w", err)
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	var page Page
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		text := paragraphText(para)
		if text == "" {
			continue
		}
		if isHeadingStyle(para) {
			page.Lines = append(page.Lines, Line{
				Text:     text,
				FontSize: HeadingFontSize,
				Bold:     true,
			})
		} else {
			page.Lines = append(page.Lines, Line{
				Text:     text,
				FontSize: BodyFontSize,
			})
		}
	}

	return []Page{page}, nil
}

func isHeadingStyle(para *docx.Paragraph) bool {
	if para.Properties == nil || para.Properties.Style == nil {
		return false
	}
	style := strings.ToLower(para.Properties.Style.Val)
	style = strings.ReplaceAll(style, " ", "")
	switch style {
	case "title", "heading1", "heading2", "heading3", "heading4", "heading5", "heading6":
		return true
	}
	return false
}

func paragraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
