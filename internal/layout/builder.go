package layout

import (
	"fmt"

	"github.com/jackzampolin/bookpress/internal/estimate"
	"github.com/jackzampolin/bookpress/internal/manuscript"
	"github.com/jackzampolin/bookpress/internal/sanitize"
	"github.com/jackzampolin/bookpress/internal/settings"
)

// Build assembles the layout document for a manuscript under resolved
// settings. The only fatal failure is a structurally invalid manuscript;
// missing settings sub-objects were already defaulted during resolution,
// and chapters whose sanitized content is empty still emit their heading so
// chapter numbering stays continuous.
func Build(m *manuscript.Manuscript, s settings.Settings) (*Document, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot build layout: %w", err)
	}

	cleaned := make([]string, len(m.Chapters))
	for i, ch := range m.Chapters {
		cleaned[i] = sanitize.Sanitize(ch.Content, ch.Title, ch.Number)
	}
	pageNums := estimate.ChapterPageNumbers(cleaned, s)
	biblioPage := estimate.BibliographyStartPage(cleaned, s)

	b := &builder{
		doc: &Document{
			Title:         m.Title,
			Author:        m.Author,
			CoverImageURL: m.CoverImageURL,
			Settings:      s,
			Geometry:      s.Geometry(),
		},
		m:        m,
		s:        s,
		cleaned:  cleaned,
		pageNums: pageNums,
	}

	b.addCover()
	b.addFrontMatter(biblioPage)
	b.addChapters()
	b.addBackMatter()

	if err := b.checkRoleOrder(); err != nil {
		return nil, err
	}
	return b.doc, nil
}

// builder accumulates sections while tracking the page-role state machine.
type builder struct {
	doc      *Document
	m        *manuscript.Manuscript
	s        settings.Settings
	cleaned  []string
	pageNums []int
}

// add appends a section to the document.
func (b *builder) add(sec Section) {
	b.doc.Sections = append(b.doc.Sections, sec)
}

// checkRoleOrder verifies the forward-only role sequence: cover, front
// matter, body, back matter, with no role reappearing after a later one.
// A violation is a builder bug, not a data problem.
func (b *builder) checkRoleOrder() error {
	rank := -1
	for _, sec := range b.doc.Sections {
		r := roleRank(sec.Role)
		if r < rank {
			return fmt.Errorf("section %q has role %q out of order", sec.Type, sec.Role)
		}
		rank = r
	}
	return nil
}

// frontMatterNumbering is shared by every front-matter section; the style
// is commonly lowercase roman and may be suppressed entirely.
func (b *builder) frontMatterNumbering() Numbering {
	return Numbering{Style: b.s.HeaderFooter.FrontMatterNumStyle}
}

func (b *builder) addCover() {
	b.add(Section{
		Type:      SectionCover,
		Role:      RoleCover,
		Title:     b.m.Title,
		Numbering: Numbering{Style: settings.PageNumSuppressed},
		Blocks: []Block{
			{Type: BlockHeading, Text: b.m.Title},
			{Type: BlockSubheading, Text: b.m.Author},
		},
	})
}

// addFrontMatter emits the enabled front-matter sections in their fixed
// order: half title, title page, copyright, dedication, table of contents.
// Disabled sections contribute nothing, not a blank placeholder.
func (b *builder) addFrontMatter(biblioPage int) {
	fm := b.s.FrontMatter
	first := len(b.doc.Sections)

	if fm.IncludeHalfTitle {
		b.add(Section{
			Type:      SectionHalfTitle,
			Role:      RoleFrontMatter,
			Numbering: b.frontMatterNumbering(),
			Blocks:    []Block{{Type: BlockHeading, Text: b.m.Title}},
		})
	}
	if fm.IncludeTitlePage {
		blocks := []Block{
			{Type: BlockHeading, Text: b.m.Title},
			{Type: BlockSubheading, Text: b.m.Author},
		}
		if b.s.Publisher != "" {
			blocks = append(blocks, Block{Type: BlockParagraph, Text: b.s.Publisher})
		}
		b.add(Section{
			Type:      SectionTitlePage,
			Role:      RoleFrontMatter,
			Numbering: b.frontMatterNumbering(),
			Blocks:    blocks,
		})
	}
	if fm.IncludeCopyright {
		b.add(Section{
			Type:      SectionCopyright,
			Role:      RoleFrontMatter,
			Numbering: b.frontMatterNumbering(),
			Blocks:    b.copyrightBlocks(),
		})
	}
	if fm.IncludeDedication && fm.DedicationText != "" {
		b.add(Section{
			Type:      SectionDedication,
			Role:      RoleFrontMatter,
			Numbering: b.frontMatterNumbering(),
			Blocks:    []Block{{Type: BlockParagraph, Text: fm.DedicationText}},
		})
	}
	if fm.IncludeTOC {
		b.add(b.tocSection(biblioPage))
	}

	// Front matter begins its own page sequence, so the first front-matter
	// page displays "i" rather than counting the cover.
	if len(b.doc.Sections) > first {
		b.doc.Sections[first].Numbering.Restart = true
	}
}

// copyrightBlocks assembles the copyright page from settings metadata.
func (b *builder) copyrightBlocks() []Block {
	fm := b.s.FrontMatter
	holder := fm.CopyrightHolder
	if holder == "" {
		holder = b.m.Author
	}
	line := "Copyright"
	if fm.CopyrightYear > 0 {
		line = fmt.Sprintf("Copyright © %d %s", fm.CopyrightYear, holder)
	} else {
		line = fmt.Sprintf("Copyright © %s", holder)
	}

	blocks := []Block{
		{Type: BlockParagraph, Text: line},
		{Type: BlockParagraph, Text: "All rights reserved."},
	}
	if b.s.ISBN != "" {
		blocks = append(blocks, Block{Type: BlockParagraph, Text: "ISBN " + b.s.ISBN})
	}
	if b.s.Publisher != "" {
		blocks = append(blocks, Block{Type: BlockParagraph, Text: "Published by " + b.s.Publisher})
	}
	return blocks
}

// addChapters emits one body section per chapter. The first body section
// restarts page numbering at 1 and switches to the body numbering style;
// that transition is the front-matter/body boundary of the page-number
// state machine.
func (b *builder) addChapters() {
	for i, ch := range b.m.Chapters {
		sec := b.chapterSection(ch, b.cleaned[i])
		if i == 0 {
			sec.Numbering.Restart = true
		}
		b.add(sec)
	}
}

// addBackMatter emits the enabled back-matter sections in their fixed
// order: bibliography, about the author, also by, acknowledgments. Back
// matter continues the body's page numbering.
func (b *builder) addBackMatter() {
	bm := b.s.BackMatter
	bodyNumbering := Numbering{Style: b.s.HeaderFooter.PageNumberStyle}

	if sec := b.bibliographySection(); sec != nil {
		b.add(*sec)
	}
	if bm.IncludeAboutAuthor && bm.AboutAuthorText != "" {
		b.add(Section{
			Type:      SectionAboutAuthor,
			Role:      RoleBackMatter,
			Title:     "About the Author",
			Numbering: bodyNumbering,
			Blocks: []Block{
				{Type: BlockHeading, Text: "About the Author"},
				{Type: BlockParagraph, Text: bm.AboutAuthorText},
			},
		})
	}
	if bm.IncludeAlsoBy && len(bm.AlsoByTitles) > 0 {
		blocks := []Block{{Type: BlockHeading, Text: "Also by " + b.m.Author}}
		for _, title := range bm.AlsoByTitles {
			blocks = append(blocks, Block{Type: BlockParagraph, Text: title})
		}
		b.add(Section{
			Type:      SectionAlsoBy,
			Role:      RoleBackMatter,
			Title:     "Also by " + b.m.Author,
			Numbering: bodyNumbering,
			Blocks:    blocks,
		})
	}
	if bm.IncludeAcknowledgments && bm.AcknowledgmentsText != "" {
		b.add(Section{
			Type:      SectionAcknowledgments,
			Role:      RoleBackMatter,
			Title:     "Acknowledgments",
			Numbering: bodyNumbering,
			Blocks: []Block{
				{Type: BlockHeading, Text: "Acknowledgments"},
				{Type: BlockParagraph, Text: bm.AcknowledgmentsText},
			},
		})
	}
}
