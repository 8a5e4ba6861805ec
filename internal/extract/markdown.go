package extract

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownSource extracts lines from Markdown using goldmark. Headings become
// bold heading-sized lines; every other block becomes a body line. Markdown
// has no pages, so the whole document is one page.
type MarkdownSource struct{}

func (s *MarkdownSource) Extract(path string) ([]Page, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read markdown: %w", err)
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	var page Page
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			title := strings.TrimSpace(string(node.Text(src)))
			if title != "" {
				page.Lines = append(page.Lines, Line{
					Text:     title,
					FontSize: HeadingFontSize,
					Bold:     true,
				})
			}
		default:
			t := nodeText(n, src)
			if t != "" {
				page.Lines = append(page.Lines, Line{
					Text:     t,
					FontSize: BodyFontSize,
				})
			}
		}
	}

	return []Page{page}, nil
}

// nodeText gets the text content of a goldmark AST node.
func nodeText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
			buf.WriteByte('\n')
		}
	} else {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if t, ok := c.(*ast.Text); ok {
				buf.Write(t.Value(src))
				if t.HardLineBreak() || t.SoftLineBreak() {
					buf.WriteByte('\n')
				}
			} else {
				buf.WriteString(nodeText(c, src))
				buf.WriteByte('\n')
			}
		}
	}
	return strings.TrimSpace(strings.Join(strings.Fields(buf.String()), " "))
}
