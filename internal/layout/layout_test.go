package layout

import (
	"strings"
	"testing"

	"github.com/jackzampolin/bookpress/internal/manuscript"
	"github.com/jackzampolin/bookpress/internal/numbering"
	"github.com/jackzampolin/bookpress/internal/settings"
)

func testManuscript() *manuscript.Manuscript {
	return &manuscript.Manuscript{
		Title:  "Test",
		Author: "A. Writer",
		Chapters: []manuscript.Chapter{
			{Number: 1, Title: "Beginning", Content: "Once upon a time.\n\n* * *\n\nThe end."},
		},
	}
}

func TestIsSceneBreak(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"* * *", true},
		{"***", true},
		{"---", true},
		{"- - -", true},
		{"• • •", true},
		{"  * * *  ", true},
		{"****", true},  // short all-punctuation fallback
		{"-----", true}, // 5 chars of dashes
		{"Hello world.", false},
		{"", false},
		{"------", false}, // 6 chars exceeds the fallback length
		{"*!*", false},
		{"word", false},
	}
	for _, tc := range cases {
		if got := IsSceneBreak(tc.in); got != tc.want {
			t.Errorf("IsSceneBreak(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestBuildDefaultDocument(t *testing.T) {
	doc, err := Build(testManuscript(), settings.Resolve(nil))
	if err != nil {
		t.Fatal(err)
	}

	t.Run("exactly one cover section", func(t *testing.T) {
		if got := len(doc.SectionsByRole(RoleCover)); got != 1 {
			t.Errorf("cover sections = %d, want 1", got)
		}
	})

	t.Run("default front matter is title, copyright, and TOC", func(t *testing.T) {
		fm := doc.SectionsByRole(RoleFrontMatter)
		if len(fm) != 3 {
			t.Fatalf("front matter sections = %d, want 3", len(fm))
		}
		wantOrder := []SectionType{SectionTitlePage, SectionCopyright, SectionTOC}
		for i, sec := range fm {
			if sec.Type != wantOrder[i] {
				t.Errorf("front matter[%d] = %s, want %s", i, sec.Type, wantOrder[i])
			}
		}
	})

	t.Run("chapter has two paragraphs around one scene break", func(t *testing.T) {
		chapters := doc.Chapters()
		if len(chapters) != 1 {
			t.Fatalf("chapters = %d, want 1", len(chapters))
		}
		var paras, breaks int
		for _, blk := range chapters[0].Blocks {
			switch blk.Type {
			case BlockParagraph:
				paras++
			case BlockSceneBreak:
				breaks++
			}
		}
		if paras != 2 || breaks != 1 {
			t.Errorf("paragraphs = %d, scene breaks = %d; want 2 and 1", paras, breaks)
		}
	})

	t.Run("TOC entry pairs label, title, and page one", func(t *testing.T) {
		fm := doc.SectionsByRole(RoleFrontMatter)
		toc := fm[len(fm)-1]
		var entry *Block
		for i := range toc.Blocks {
			if toc.Blocks[i].Type == BlockTOCEntry {
				entry = &toc.Blocks[i]
				break
			}
		}
		if entry == nil {
			t.Fatal("no TOC entry found")
		}
		if entry.Label != "Chapter 1" || entry.Text != "Beginning" || entry.PageNumber != 1 {
			t.Errorf("TOC entry = %+v", *entry)
		}
	})
}

func TestRunningHeaderBinding(t *testing.T) {
	doc, err := Build(testManuscript(), settings.Resolve(nil))
	if err != nil {
		t.Fatal(err)
	}

	ch := doc.Chapters()[0]
	if ch.RunningHeader == nil {
		t.Fatal("chapter has no running header binding")
	}
	if ch.RunningHeader.BookTitle != "Test" || ch.RunningHeader.Author != "A. Writer" || ch.RunningHeader.ChapterTitle != "Beginning" {
		t.Errorf("bound strings = %+v", *ch.RunningHeader)
	}

	// Front matter sections never bind running headers.
	for _, sec := range doc.SectionsByRole(RoleFrontMatter) {
		if sec.RunningHeader != nil {
			t.Errorf("front-matter section %s binds a running header", sec.Type)
		}
	}
}

func TestPageNumberingTransitions(t *testing.T) {
	doc, err := Build(testManuscript(), settings.Resolve(nil))
	if err != nil {
		t.Fatal(err)
	}

	t.Run("cover numbering is suppressed", func(t *testing.T) {
		cover := doc.SectionsByRole(RoleCover)[0]
		if cover.Numbering.Style != settings.PageNumSuppressed {
			t.Errorf("cover numbering = %s", cover.Numbering.Style)
		}
	})

	t.Run("front matter uses lowercase roman by default", func(t *testing.T) {
		for _, sec := range doc.SectionsByRole(RoleFrontMatter) {
			if sec.Numbering.Style != settings.PageNumRomanLower {
				t.Errorf("section %s numbering = %s", sec.Type, sec.Numbering.Style)
			}
		}
	})

	t.Run("front matter restarts numbering at i", func(t *testing.T) {
		fm := doc.SectionsByRole(RoleFrontMatter)
		if !fm[0].Numbering.Restart {
			t.Error("first front-matter section does not restart page numbering")
		}
		for _, sec := range fm[1:] {
			if sec.Numbering.Restart {
				t.Errorf("front-matter section %s restarts numbering", sec.Type)
			}
		}
	})

	t.Run("first body section restarts at arabic 1", func(t *testing.T) {
		first := doc.Chapters()[0]
		if !first.Numbering.Restart {
			t.Error("first chapter does not restart page numbering")
		}
		if first.Numbering.Style != settings.PageNumArabic {
			t.Errorf("body numbering = %s", first.Numbering.Style)
		}
	})

	t.Run("later chapters do not restart", func(t *testing.T) {
		m := testManuscript()
		m.Chapters = append(m.Chapters, manuscript.Chapter{Number: 2, Title: "Middle", Content: "More."})
		doc, err := Build(m, settings.Resolve(nil))
		if err != nil {
			t.Fatal(err)
		}
		if doc.Chapters()[1].Numbering.Restart {
			t.Error("second chapter restarts page numbering")
		}
	})
}

func TestRoleOrderForwardOnly(t *testing.T) {
	m := testManuscript()
	m.Bibliography = &manuscript.Bibliography{
		References: []manuscript.Reference{
			{Type: manuscript.RefBook, Title: "Source", Year: 2001},
		},
		Config: manuscript.BibliographyConfig{Enabled: true},
	}
	about := true
	text := "A. Writer writes."
	doc, err := Build(m, settings.Resolve(&settings.Overrides{
		BackMatter: &settings.BackMatterOverride{
			IncludeAboutAuthor: &about,
			AboutAuthorText:    &text,
		},
	}))
	if err != nil {
		t.Fatal(err)
	}

	rank := -1
	for _, sec := range doc.Sections {
		r := roleRank(sec.Role)
		if r < rank {
			t.Fatalf("role order violated at section %s", sec.Type)
		}
		rank = r
	}

	back := doc.SectionsByRole(RoleBackMatter)
	if len(back) != 2 || back[0].Type != SectionBibliography || back[1].Type != SectionAboutAuthor {
		t.Errorf("back matter = %v", sectionTypes(back))
	}
}

func TestChapterHeadingAssembly(t *testing.T) {
	t.Run("number before title inlines the numeral", func(t *testing.T) {
		pos := settings.NumberBeforeTitle
		doc, err := Build(testManuscript(), settings.Resolve(&settings.Overrides{
			Chapters: &settings.ChaptersOverride{NumberPosition: &pos},
		}))
		if err != nil {
			t.Fatal(err)
		}
		heading := findBlock(doc.Chapters()[0].Blocks, BlockHeading)
		if heading == nil || heading.Text != "1. Beginning" {
			t.Errorf("heading = %+v", heading)
		}
	})

	t.Run("uppercase transform applies to display only", func(t *testing.T) {
		tc := settings.CaseUpper
		m := testManuscript()
		doc, err := Build(m, settings.Resolve(&settings.Overrides{
			Chapters: &settings.ChaptersOverride{TitleCase: &tc},
		}))
		if err != nil {
			t.Fatal(err)
		}
		heading := findBlock(doc.Chapters()[0].Blocks, BlockHeading)
		if heading == nil || heading.Text != "BEGINNING" {
			t.Errorf("heading = %+v", heading)
		}
		// Section title and source data stay as written.
		if doc.Chapters()[0].Title != "Beginning" || m.Chapters[0].Title != "Beginning" {
			t.Error("underlying title was modified")
		}
	})

	t.Run("title case keeps multi-byte leading letters", func(t *testing.T) {
		if got := toTitleCase("études in the étude form"); got != "Études in the Étude Form" {
			t.Errorf("toTitleCase = %q", got)
		}
	})

	t.Run("roman numbering keeps the chapter label", func(t *testing.T) {
		ns := numbering.StyleRoman
		doc, err := Build(testManuscript(), settings.Resolve(&settings.Overrides{
			Chapters: &settings.ChaptersOverride{NumberingStyle: &ns},
		}))
		if err != nil {
			t.Fatal(err)
		}
		sub := findBlock(doc.Chapters()[0].Blocks, BlockSubheading)
		if sub == nil || sub.Text != "Chapter I" {
			t.Errorf("subheading = %+v", sub)
		}
	})
}

func TestEmptyChapterKeepsHeading(t *testing.T) {
	m := testManuscript()
	// Content that sanitizes down to nothing: just a title echo.
	m.Chapters = append(m.Chapters, manuscript.Chapter{Number: 2, Title: "Ghost", Content: "Chapter 2: Ghost"})

	doc, err := Build(m, settings.Resolve(nil))
	if err != nil {
		t.Fatal(err)
	}
	chapters := doc.Chapters()
	if len(chapters) != 2 {
		t.Fatalf("chapters = %d, want 2 (empty chapter preserved)", len(chapters))
	}
	ghost := chapters[1]
	if findBlock(ghost.Blocks, BlockHeading) == nil {
		t.Error("empty chapter lost its heading")
	}
	if findBlock(ghost.Blocks, BlockParagraph) != nil {
		t.Error("empty chapter should have no paragraphs")
	}
}

func TestDropCapOnOpeningParagraph(t *testing.T) {
	dc := true
	doc, err := Build(testManuscript(), settings.Resolve(&settings.Overrides{
		Typography: &settings.TypographyOverride{DropCaps: &dc},
	}))
	if err != nil {
		t.Fatal(err)
	}
	var paras []Block
	for _, blk := range doc.Chapters()[0].Blocks {
		if blk.Type == BlockParagraph {
			paras = append(paras, blk)
		}
	}
	if len(paras) != 2 {
		t.Fatalf("paragraphs = %d", len(paras))
	}
	if !paras[0].DropCap {
		t.Error("opening paragraph missing drop cap")
	}
	if paras[1].DropCap {
		t.Error("later paragraph has drop cap")
	}
}

func TestBuildRejectsInvalidManuscript(t *testing.T) {
	_, err := Build(&manuscript.Manuscript{}, settings.Resolve(nil))
	if err == nil {
		t.Fatal("expected error for empty manuscript")
	}
	if !strings.Contains(err.Error(), "title") {
		t.Errorf("unexpected error: %v", err)
	}
}

func findBlock(blocks []Block, typ BlockType) *Block {
	for i := range blocks {
		if blocks[i].Type == typ {
			return &blocks[i]
		}
	}
	return nil
}

func sectionTypes(secs []Section) []SectionType {
	out := make([]SectionType, len(secs))
	for i, s := range secs {
		out[i] = s.Type
	}
	return out
}
