package epub

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/jackzampolin/bookpress/internal/layout"
	"github.com/jackzampolin/bookpress/internal/manuscript"
	"github.com/jackzampolin/bookpress/internal/settings"
)

func buildTestEPUB(t *testing.T) *zip.Reader {
	t.Helper()
	m := &manuscript.Manuscript{
		Title:  "EPUB Test",
		Author: "A. Writer",
		Chapters: []manuscript.Chapter{
			{Number: 1, Title: "One", Content: "Some <em>styled</em> text.\n\n* * *\n\nMore text."},
			{Number: 2, Title: "Two", Content: "Second chapter."},
		},
	}
	doc, err := layout.Build(m, settings.Resolve(nil))
	if err != nil {
		t.Fatal(err)
	}
	buf, err := NewBuilder(doc).BuildToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatal(err)
	}
	return zr
}

func readEntry(t *testing.T, zr *zip.Reader, name string) string {
	t.Helper()
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatal(err)
		}
		return string(data)
	}
	t.Fatalf("entry %s not found", name)
	return ""
}

func TestMimetypeFirstAndStored(t *testing.T) {
	zr := buildTestEPUB(t)
	if len(zr.File) == 0 {
		t.Fatal("empty archive")
	}
	first := zr.File[0]
	if first.Name != "mimetype" {
		t.Errorf("first entry = %s, want mimetype", first.Name)
	}
	if first.Method != zip.Store {
		t.Error("mimetype entry is compressed")
	}
	if got := readEntry(t, zr, "mimetype"); got != "application/epub+zip" {
		t.Errorf("mimetype content = %q", got)
	}
}

func TestPackageDocument(t *testing.T) {
	zr := buildTestEPUB(t)
	opf := readEntry(t, zr, "OEBPS/content.opf")

	if !strings.Contains(opf, "<dc:title>EPUB Test</dc:title>") {
		t.Error("title missing from package metadata")
	}
	if !strings.Contains(opf, "<dc:creator>A. Writer</dc:creator>") {
		t.Error("creator missing from package metadata")
	}
	if !strings.Contains(opf, `version="3.0"`) {
		t.Error("package version missing")
	}
	if !strings.Contains(opf, "urn:uuid:") {
		t.Error("expected uuid identifier when no ISBN is set")
	}

	// One spine itemref per section.
	m := &manuscript.Manuscript{Title: "x", Author: "y", Chapters: []manuscript.Chapter{{Number: 1, Title: "a", Content: "b"}}}
	doc, err := layout.Build(m, settings.Resolve(nil))
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(opf, "<itemref"); got < len(doc.Sections) {
		t.Errorf("spine itemrefs = %d, want at least %d", got, len(doc.Sections))
	}
}

func TestISBNBecomesIdentifier(t *testing.T) {
	m := &manuscript.Manuscript{
		Title:  "ISBN Test",
		Author: "A. Writer",
		Chapters: []manuscript.Chapter{
			{Number: 1, Title: "One", Content: "Text."},
		},
	}
	isbn := "9781234567890"
	doc, err := layout.Build(m, settings.Resolve(&settings.Overrides{ISBN: &isbn}))
	if err != nil {
		t.Fatal(err)
	}
	buf, err := NewBuilder(doc).BuildToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatal(err)
	}
	if opf := readEntry(t, zr, "OEBPS/content.opf"); !strings.Contains(opf, "urn:isbn:9781234567890") {
		t.Error("ISBN identifier missing")
	}
}

func TestNavigationSkipsCoverAndPrintTOC(t *testing.T) {
	zr := buildTestEPUB(t)
	nav := readEntry(t, zr, "OEBPS/nav.xhtml")

	if !strings.Contains(nav, ">One</a>") || !strings.Contains(nav, ">Two</a>") {
		t.Error("chapter entries missing from navigation")
	}
	if strings.Contains(nav, ">Contents</a>") {
		t.Error("print TOC section leaked into navigation")
	}
	if strings.Contains(nav, "sec000") {
		t.Error("cover section leaked into navigation")
	}
}

func TestSectionXHTMLPreservesInlineMarkup(t *testing.T) {
	zr := buildTestEPUB(t)

	var chapter string
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "OEBPS/sections/") {
			content := readEntry(t, zr, f.Name)
			if strings.Contains(content, "styled") {
				chapter = content
				break
			}
		}
	}
	if chapter == "" {
		t.Fatal("chapter section not found")
	}
	if !strings.Contains(chapter, "<em>styled</em>") {
		t.Error("inline emphasis lost in XHTML")
	}
	if !strings.Contains(chapter, `<div class="scene-break">* * *</div>`) {
		t.Error("scene break not rendered")
	}
}
