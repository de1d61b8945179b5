package htmlbackend

import (
	"context"
	"strings"
	"testing"

	"github.com/jackzampolin/bookpress/internal/layout"
	"github.com/jackzampolin/bookpress/internal/manuscript"
	"github.com/jackzampolin/bookpress/internal/settings"
)

func TestRenderPagedHTML(t *testing.T) {
	m := &manuscript.Manuscript{
		Title:  "HTML Test",
		Author: "A. Writer",
		Chapters: []manuscript.Chapter{
			{Number: 1, Title: "One", Content: "A paragraph with <em>style</em> & ampersand."},
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
	s := string(out)

	t.Run("page geometry in stylesheet", func(t *testing.T) {
		if !strings.Contains(s, "@page { size: 6in 9in;") {
			t.Error("missing @page size rule")
		}
	})

	t.Run("mirrored margins emit left and right pages", func(t *testing.T) {
		if !strings.Contains(s, "@page :left") || !strings.Contains(s, "@page :right") {
			t.Error("missing mirrored page rules")
		}
	})

	t.Run("inline markup survives, ampersand escaped", func(t *testing.T) {
		if !strings.Contains(s, "<em>style</em>") {
			t.Error("emphasis markup lost")
		}
		if !strings.Contains(s, "&amp; ampersand") {
			t.Error("ampersand not escaped")
		}
	})

	t.Run("chapter title feeds running header string", func(t *testing.T) {
		if !strings.Contains(s, "string-set: chapter-title") {
			t.Error("missing string-set rule")
		}
	})

	t.Run("chapter sections carry role and type classes", func(t *testing.T) {
		if !strings.Contains(s, `<section class="body chapter">`) {
			t.Error("chapter section class missing")
		}
	})

	t.Run("running header suppressed on chapter opening pages", func(t *testing.T) {
		if !strings.Contains(s, "section.chapter { page: chapter; }") {
			t.Error("chapter sections not assigned the chapter page group")
		}
		if !strings.Contains(s, "@page chapter:first { @top-left { content: none; } @top-center { content: none; } @top-right { content: none; } }") {
			t.Error("missing chapter opening-page header suppression rule")
		}
	})
}

func TestHeaderSlotsFixedWhenNotMirrored(t *testing.T) {
	m := &manuscript.Manuscript{
		Title:    "Fixed Headers",
		Author:   "A. Writer",
		Chapters: []manuscript.Chapter{{Number: 1, Title: "One", Content: "Text."}},
	}
	mirrored := false
	s := settings.Resolve(&settings.Overrides{
		HeaderFooter: &settings.HeaderFooterOverride{Mirrored: &mirrored},
	})
	doc, err := layout.Build(m, s)
	if err != nil {
		t.Fatal(err)
	}

	out, err := New(nil).Render(context.Background(), doc)
	if err != nil {
		t.Fatal(err)
	}
	css := string(out)

	if strings.Contains(css, "@page :left { @top-left") {
		t.Error("header slots swap on :left pages with mirroring off")
	}
	if !strings.Contains(css, "@page { @top-left { content: string(book-author); } @top-right { content: string(chapter-title); } }") {
		t.Error("missing fixed header slot rule")
	}
}

func TestFrontMatterNumberStyleInStylesheet(t *testing.T) {
	m := &manuscript.Manuscript{
		Title:    "Front Matter",
		Author:   "A. Writer",
		Chapters: []manuscript.Chapter{{Number: 1, Title: "One", Content: "Text."}},
	}
	suppressed := settings.PageNumSuppressed
	s := settings.Resolve(&settings.Overrides{
		HeaderFooter: &settings.HeaderFooterOverride{FrontMatterNumStyle: &suppressed},
	})
	doc, err := layout.Build(m, s)
	if err != nil {
		t.Fatal(err)
	}

	out, err := New(nil).Render(context.Background(), doc)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "@page frontmatter { @bottom-center { content: none; } }") {
		t.Error("suppressed front-matter numbering still emits a page counter")
	}
}
