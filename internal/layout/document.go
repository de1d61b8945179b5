// Package layout assembles a manuscript and resolved settings into a
// LayoutDocument: an ordered sequence of typed sections carrying enough
// structural markup that any renderer backend can produce pages without
// re-deriving settings decisions. The builder owns the page-role state
// machine, running-header binding, chapter heading assembly, and
// table-of-contents construction.
package layout

import (
	"github.com/jackzampolin/bookpress/internal/settings"
)

// PageRole tags a section with its position in the book's page sequence.
// Roles advance strictly forward: cover, front matter, body, back matter.
type PageRole string

const (
	RoleCover       PageRole = "cover"
	RoleFrontMatter PageRole = "front-matter"
	RoleBody        PageRole = "body"
	RoleBackMatter  PageRole = "back-matter"
)

// roleRank orders the page roles for the forward-only transition check.
func roleRank(r PageRole) int {
	switch r {
	case RoleCover:
		return 0
	case RoleFrontMatter:
		return 1
	case RoleBody:
		return 2
	case RoleBackMatter:
		return 3
	}
	return 4
}

// SectionType identifies what a section is, independent of its role.
type SectionType string

const (
	SectionCover           SectionType = "cover"
	SectionHalfTitle       SectionType = "half-title"
	SectionTitlePage       SectionType = "title-page"
	SectionCopyright       SectionType = "copyright"
	SectionDedication      SectionType = "dedication"
	SectionTOC             SectionType = "toc"
	SectionChapter         SectionType = "chapter"
	SectionBibliography    SectionType = "bibliography"
	SectionAboutAuthor     SectionType = "about-author"
	SectionAlsoBy          SectionType = "also-by"
	SectionAcknowledgments SectionType = "acknowledgments"
)

// BlockType identifies one structural content block within a section.
type BlockType string

const (
	BlockParagraph  BlockType = "paragraph"
	BlockHeading    BlockType = "heading"
	BlockSubheading BlockType = "subheading"
	BlockOrnament   BlockType = "ornament"
	BlockSceneBreak BlockType = "scene-break"
	BlockTOCEntry   BlockType = "toc-entry"
	BlockReference  BlockType = "reference"
	BlockSpacer     BlockType = "spacer"
)

// Block is one structural content unit. Text may carry <em>…</em> italic
// markers, which renderers interpret or strip. DropCap marks the opening
// paragraph of a chapter when drop caps are enabled. TOC entries use the
// Label/PageNumber pair alongside Text.
type Block struct {
	Type       BlockType `json:"type" yaml:"type"`
	Text       string    `json:"text,omitempty" yaml:"text,omitempty"`
	Label      string    `json:"label,omitempty" yaml:"label,omitempty"`
	PageNumber int       `json:"pageNumber,omitempty" yaml:"pageNumber,omitempty"`
	DropCap    bool      `json:"dropCap,omitempty" yaml:"dropCap,omitempty"`
	Indent     bool      `json:"indent,omitempty" yaml:"indent,omitempty"`
	Hanging    bool      `json:"hanging,omitempty" yaml:"hanging,omitempty"`
}

// RunningHeader holds the strings bound to a section for display in running
// headers. The contract for renderers: the bound strings appear on every
// page of the section except its first, and the suppression re-arms at each
// section that rebinds them.
type RunningHeader struct {
	BookTitle    string `json:"bookTitle" yaml:"bookTitle"`
	Author       string `json:"author" yaml:"author"`
	ChapterTitle string `json:"chapterTitle" yaml:"chapterTitle"`
}

// Numbering carries a section's page-numbering directives. Restart resets
// the page counter to 1 when the section begins; Style selects the visible
// numeral form, with PageNumSuppressed hiding numbers entirely.
type Numbering struct {
	Style   settings.PageNumberStyle `json:"style" yaml:"style"`
	Restart bool                     `json:"restart" yaml:"restart"`
}

// Section is one ordered unit of the layout document.
type Section struct {
	Type          SectionType    `json:"type" yaml:"type"`
	Role          PageRole       `json:"role" yaml:"role"`
	Title         string         `json:"title,omitempty" yaml:"title,omitempty"`
	Blocks        []Block        `json:"blocks" yaml:"blocks"`
	RunningHeader *RunningHeader `json:"runningHeader,omitempty" yaml:"runningHeader,omitempty"`
	Numbering     Numbering      `json:"numbering" yaml:"numbering"`
	StartOnOdd    bool           `json:"startOnOdd,omitempty" yaml:"startOnOdd,omitempty"`
	DropFromTop   float64        `json:"dropFromTop,omitempty" yaml:"dropFromTop,omitempty"`
}

// Document is the builder's output: the full ordered section sequence plus
// the resolved settings and derived geometry a renderer needs. It is built
// once per export and discarded after rendering.
type Document struct {
	Title         string                `json:"title" yaml:"title"`
	Author        string                `json:"author" yaml:"author"`
	CoverImageURL string                `json:"coverImageUrl,omitempty" yaml:"coverImageUrl,omitempty"`
	Sections      []Section             `json:"sections" yaml:"sections"`
	Settings      settings.Settings     `json:"settings" yaml:"settings"`
	Geometry      settings.PageGeometry `json:"geometry" yaml:"geometry"`
}

// SectionsByRole returns the document's sections with the given role, in
// order.
func (d *Document) SectionsByRole(role PageRole) []Section {
	var out []Section
	for _, s := range d.Sections {
		if s.Role == role {
			out = append(out, s)
		}
	}
	return out
}

// Chapters returns the body chapter sections in order.
func (d *Document) Chapters() []Section {
	var out []Section
	for _, s := range d.Sections {
		if s.Type == SectionChapter {
			out = append(out, s)
		}
	}
	return out
}
