package pdfbackend

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/jackzampolin/bookpress/internal/layout"
	"github.com/jackzampolin/bookpress/internal/manuscript"
	"github.com/jackzampolin/bookpress/internal/settings"
)

func TestParseStyled(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []styledSegment
	}{
		{
			name: "plain text",
			in:   "no markup here",
			want: []styledSegment{{text: "no markup here"}},
		},
		{
			name: "italic run",
			in:   "a <em>title</em> cited",
			want: []styledSegment{
				{text: "a "},
				{text: "title", italic: true},
				{text: " cited"},
			},
		},
		{
			name: "superscript marker",
			in:   "text<sup>3</sup>",
			want: []styledSegment{
				{text: "text"},
				{text: "3", sup: true},
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := parseStyled(tc.in)
			if len(got) != len(tc.want) {
				t.Fatalf("segments = %d, want %d (%+v)", len(got), len(tc.want), got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("segment[%d] = %+v, want %+v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestStripTags(t *testing.T) {
	if got := stripTags("see <em>Moby-Dick</em><sup>1</sup>"); got != "see Moby-Dick1" {
		t.Errorf("stripTags = %q", got)
	}
}

func TestCoreFont(t *testing.T) {
	cases := map[string]string{
		"Garamond":  "Times",
		"Helvetica": "Helvetica",
		"arial":     "Helvetica",
		"Courier":   "Courier",
		"Baskerville": "Times",
		"":          "Times",
	}
	for in, want := range cases {
		if got := coreFont(in); got != want {
			t.Errorf("coreFont(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatPageNumber(t *testing.T) {
	cases := []struct {
		n     int
		style settings.PageNumberStyle
		want  string
	}{
		{4, settings.PageNumArabic, "4"},
		{4, settings.PageNumRomanLower, "iv"},
		{9, settings.PageNumRomanUpper, "IX"},
		{4, settings.PageNumSuppressed, ""},
		{0, settings.PageNumArabic, ""},
	}
	for _, tc := range cases {
		if got := formatPageNumber(tc.n, tc.style); got != tc.want {
			t.Errorf("formatPageNumber(%d, %s) = %q, want %q", tc.n, tc.style, got, tc.want)
		}
	}
}

func TestRenderProducesPDF(t *testing.T) {
	m := &manuscript.Manuscript{
		Title:  "Render Test",
		Author: "A. Writer",
		Chapters: []manuscript.Chapter{
			{Number: 1, Title: "One", Content: "First paragraph.\n\n* * *\n\nSecond paragraph with <em>emphasis</em>."},
			{Number: 2, Title: "Two", Content: "More text."},
		},
	}
	doc, err := layout.Build(m, settings.Resolve(nil))
	if err != nil {
		t.Fatal(err)
	}

	out, err := New(nil).Render(context.Background(), doc)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Error("output does not start with PDF header")
	}
}

func TestRunningHeaderSkipsChapterOpeningPage(t *testing.T) {
	long := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 800)
	m := &manuscript.Manuscript{
		Title:    "Header Test",
		Author:   "A. Writer",
		Chapters: []manuscript.Chapter{{Number: 1, Title: "One", Content: long}},
	}
	doc, err := layout.Build(m, settings.Resolve(nil))
	if err != nil {
		t.Fatal(err)
	}

	w := newWriter(doc, nil, "")
	if err := w.drawAll(context.Background()); err != nil {
		t.Fatal(err)
	}

	// The chapter is the last section drawn, so curStart still points at
	// its opening page.
	start := w.curStart
	last := w.pdf.PageCount()
	if last <= start {
		t.Fatalf("chapter did not overflow: starts on page %d of %d", start, last)
	}
	if w.headerOnPage(start) {
		t.Error("running header drawn on the chapter opening page")
	}
	for page := start + 1; page <= last; page++ {
		if !w.headerOnPage(page) {
			t.Errorf("running header missing on overflow page %d", page)
		}
	}
}
