package extract

import "testing"

func TestHTMLSourceHeadingsAndBody(t *testing.T) {
	path := writeTemp(t, "doc.html", `<html><head><title>ignored</title>
<script>var x = 1;</script></head>
<body>
<h1>Coastal Towns</h1>
<p>Small harbors and long beaches.</p>
<h2>Dining</h2>
<p>Fresh seafood everywhere.</p>
<nav>skip this</nav>
</body></html>`)

	src := &HTMLSource{}
	pages, err := src.Extract(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}

	lines := pages[0].Lines
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %+v", len(lines), lines)
	}

	if lines[0].Text != "Coastal Towns" || !lines[0].Bold {
		t.Errorf("expected bold h1 line, got %+v", lines[0])
	}
	if lines[1].Text != "Small harbors and long beaches." || lines[1].Bold {
		t.Errorf("expected body line, got %+v", lines[1])
	}
	if lines[2].Text != "Dining" || !lines[2].Bold {
		t.Errorf("expected bold h2 line, got %+v", lines[2])
	}
	if lines[3].Text != "Fresh seafood everywhere." {
		t.Errorf("expected body line, got %+v", lines[3])
	}
}

func TestTextSourceParagraphs(t *testing.T) {
	path := writeTemp(t, "notes.txt", "First paragraph\nspans two lines.\n\nSecond paragraph.\n")

	src := &TextSource{}
	pages, err := src.Extract(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := pages[0].Lines
	if len(lines) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(lines))
	}
	if lines[0].Text != "First paragraph spans two lines." {
		t.Errorf("unexpected paragraph text %q", lines[0].Text)
	}
	if lines[0].Bold || lines[0].FontSize != BodyFontSize {
		t.Errorf("expected plain body metrics, got %+v", lines[0])
	}
}

func TestForFileDispatch(t *testing.T) {
	cases := map[string]bool{
		"guide.pdf":   true,
		"notes.MD":    true,
		"page.html":   true,
		"report.docx": true,
		"plain.txt":   true,
		"data.csv":    false,
		"image.png":   false,
	}
	for filename, supported := range cases {
		_, err := ForFile(filename)
		if supported && err != nil {
			t.Errorf("expected %s to be supported: %v", filename, err)
		}
		if !supported && err == nil {
			t.Errorf("expected %s to be rejected", filename)
		}
		if got := IsSupportedExtension(filename); got != supported {
			t.Errorf("IsSupportedExtension(%s) = %v, want %v", filename, got, supported)
		}
	}
}
