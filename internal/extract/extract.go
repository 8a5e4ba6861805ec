package extract

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Line is one visual line of a page: the concatenated span text plus the
// font metrics of the first span. Sources that have no real font metrics
// (markdown, html, plain text) synthesize them so the downstream heading
// heuristics behave uniformly across formats.
type Line struct {
	Text     string
	FontSize float64
	Bold     bool
	X        float64
}

// Page is the ordered (top-to-bottom, left-to-right) line stream of one page.
type Page struct {
	Lines []Line
}

// Synthetic font sizes used by sources without measurable text metrics.
const (
	BodyFontSize    = 12.0
	HeadingFontSize = 16.0
)

// Source extracts the per-page line stream of one document.
type Source interface {
	Extract(path string) ([]Page, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".docx":     true,
	".txt":      true,
}

// ForFile returns the appropriate source for a filename.
func ForFile(filename string) (Source, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return &PDFSource{}, nil
	case ".md", ".markdown":
		return &MarkdownSource{}, nil
	case ".html", ".htm":
		return &HTMLSource{}, nil
	case ".docx":
		return &DOCXSource{}, nil
	case ".txt":
		return &TextSource{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}
