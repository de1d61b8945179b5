package layout

import (
	"github.com/jackzampolin/bookpress/internal/numbering"
	"github.com/jackzampolin/bookpress/internal/settings"
)

// tocSection builds the table of contents from the estimator's output.
// Each entry pairs a chapter's label and title with its estimated starting
// page; the bibliography entry, when present, uses the estimated page after
// the final chapter. A backend with real pagination should replace these
// numbers with measured ones after layout.
func (b *builder) tocSection(biblioPage int) Section {
	cs := b.s.Chapters

	blocks := []Block{{Type: BlockHeading, Text: "Contents"}}
	for i, ch := range b.m.Chapters {
		label := ""
		if cs.NumberPosition != settings.NumberHidden {
			num := numbering.FormatChapterNumber(ch.Number, cs.NumberingStyle)
			if cs.NumberLabel != "" {
				label = cs.NumberLabel + " " + num
			} else {
				label = num
			}
		}
		blocks = append(blocks, Block{
			Type:       BlockTOCEntry,
			Label:      label,
			Text:       ch.Title,
			PageNumber: b.pageNums[i],
		})
	}

	if b.m.Bibliography != nil && b.m.Bibliography.Config.Enabled && len(b.m.Bibliography.References) > 0 {
		blocks = append(blocks, Block{
			Type:       BlockTOCEntry,
			Text:       "Bibliography",
			PageNumber: biblioPage,
		})
	}

	return Section{
		Type:      SectionTOC,
		Role:      RoleFrontMatter,
		Title:     "Contents",
		Numbering: b.frontMatterNumbering(),
		Blocks:    blocks,
	}
}
