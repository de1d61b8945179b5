package layout

import (
	"fmt"

	"github.com/jackzampolin/bookpress/internal/citation"
	"github.com/jackzampolin/bookpress/internal/manuscript"
)

// bibliographySection formats the bibliography, or returns nil when it is
// absent or disabled. References are ordered per the bibliography config,
// then rendered in the configured citation style; numbered styles receive
// their 1-based index, and the optional bibliography-level numbering adds
// a label for renderers that display entry numbers.
func (b *builder) bibliographySection() *Section {
	biblio := b.m.Bibliography
	if biblio == nil || !biblio.Config.Enabled || len(biblio.References) == 0 {
		return nil
	}
	cfg := biblio.Config

	style := cfg.CitationStyle
	if style == "" {
		style = manuscript.StyleAPA
	}
	sortBy := cfg.SortBy
	if sortBy == "" {
		sortBy = manuscript.SortByAuthor
	}

	refs := citation.SortReferences(biblio.References, sortBy, cfg.SortDirection)

	blocks := []Block{{Type: BlockHeading, Text: "Bibliography"}}
	for i, ref := range refs {
		entry := citation.FormatReference(ref, style, i+1)
		blocks = append(blocks, Block{
			Type:    BlockReference,
			Text:    entry,
			Label:   entryLabel(cfg.NumberingStyle, i),
			Hanging: cfg.HangingIndent,
		})
	}

	sec := Section{
		Type:      SectionBibliography,
		Role:      RoleBackMatter,
		Title:     "Bibliography",
		Numbering: Numbering{Style: b.s.HeaderFooter.PageNumberStyle},
		Blocks:    blocks,
	}
	return &sec
}

// entryLabel renders the bibliography-level entry number for the given
// 0-based index, or an empty string when numbering is off.
func entryLabel(style manuscript.NumberingStyle, i int) string {
	switch style {
	case manuscript.NumberingNumeric:
		return fmt.Sprintf("%d.", i+1)
	case manuscript.NumberingAlphabetic:
		// a., b., ... z., aa., ab., ...
		var label string
		n := i
		for {
			label = string(rune('a'+n%26)) + label
			n = n/26 - 1
			if n < 0 {
				break
			}
		}
		return label + "."
	default:
		return ""
	}
}
