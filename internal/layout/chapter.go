package layout

import (
	"strings"
	"unicode/utf8"

	"github.com/jackzampolin/bookpress/internal/manuscript"
	"github.com/jackzampolin/bookpress/internal/numbering"
	"github.com/jackzampolin/bookpress/internal/settings"
)

// chapterSection builds one body section for a chapter: the heading stack
// assembled per the position settings, then the content paragraphs with
// scene breaks classified. The section binds the running-header strings,
// which renderers suppress on the section's first page and display on
// every overflow page until the next chapter rebinds them.
func (b *builder) chapterSection(ch manuscript.Chapter, cleaned string) Section {
	cs := b.s.Chapters

	sec := Section{
		Type:  SectionChapter,
		Role:  RoleBody,
		Title: ch.Title,
		RunningHeader: &RunningHeader{
			BookTitle:    b.m.Title,
			Author:       b.m.Author,
			ChapterTitle: ch.Title,
		},
		Numbering:   Numbering{Style: b.s.HeaderFooter.PageNumberStyle},
		StartOnOdd:  cs.StartOnOddPage,
		DropFromTop: cs.DropFromTop,
	}

	sec.Blocks = append(sec.Blocks, b.headingBlocks(ch)...)
	sec.Blocks = append(sec.Blocks, b.contentBlocks(cleaned)...)
	return sec
}

// headingBlocks assembles the chapter heading stack in its configured
// order: ornament above the number, number line above the title, ornament
// between, the title itself, number below the title, ornament below. Each
// element appears only when its position setting selects it.
func (b *builder) headingBlocks(ch manuscript.Chapter) []Block {
	cs := b.s.Chapters
	var blocks []Block

	num := numbering.FormatChapterNumber(ch.Number, cs.NumberingStyle)
	numberLine := num
	if cs.NumberLabel != "" {
		numberLine = cs.NumberLabel + " " + num
	}
	ornament := numbering.OrnamentSymbol(cs.OrnamentStyle)

	if ornament != "" && cs.OrnamentPosition == settings.OrnamentAboveNumber {
		blocks = append(blocks, Block{Type: BlockOrnament, Text: ornament})
	}
	if cs.NumberPosition == settings.NumberAboveTitle {
		blocks = append(blocks, Block{Type: BlockSubheading, Text: numberLine})
	}
	if ornament != "" && cs.OrnamentPosition == settings.OrnamentBetween {
		blocks = append(blocks, Block{Type: BlockOrnament, Text: ornament})
	}

	title := displayTitle(ch.Title, cs.TitleCase)
	if cs.NumberPosition == settings.NumberBeforeTitle {
		title = num + ". " + title
	}
	if title != "" {
		blocks = append(blocks, Block{Type: BlockHeading, Text: title})
	}

	if cs.NumberPosition == settings.NumberBelowTitle {
		blocks = append(blocks, Block{Type: BlockSubheading, Text: numberLine})
	}
	if ornament != "" && cs.OrnamentPosition == settings.OrnamentBelowTitle {
		blocks = append(blocks, Block{Type: BlockOrnament, Text: ornament})
	}
	return blocks
}

// contentBlocks splits sanitized chapter text into paragraph and
// scene-break blocks. The first real paragraph carries the drop-cap flag
// when drop caps are enabled; paragraphs directly after a scene break (or
// the opening one) are unindented, matching book convention.
func (b *builder) contentBlocks(cleaned string) []Block {
	if cleaned == "" {
		// An empty chapter still emits its heading; it just has no body.
		return nil
	}

	sceneBreak := numbering.SceneBreakSymbol(b.s.Chapters.SceneBreakStyle, b.s.Chapters.CustomSceneBreak)

	var blocks []Block
	first := true
	afterBreak := true
	for _, para := range strings.Split(cleaned, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		if IsSceneBreak(para) {
			blocks = append(blocks, Block{Type: BlockSceneBreak, Text: sceneBreak})
			afterBreak = true
			continue
		}
		blocks = append(blocks, Block{
			Type:    BlockParagraph,
			Text:    para,
			DropCap: first && b.s.Typography.DropCaps,
			Indent:  !afterBreak,
		})
		first = false
		afterBreak = false
	}
	return blocks
}

// displayTitle applies the configured case transform to the displayed
// title. The underlying chapter data is never modified.
func displayTitle(title string, tc settings.TitleCase) string {
	switch tc {
	case settings.CaseUpper:
		return strings.ToUpper(title)
	case settings.CaseLower:
		return strings.ToLower(title)
	case settings.CaseTitle:
		return toTitleCase(title)
	default:
		return title
	}
}

// minorWords are left lowercase by the title-case transform unless they
// lead the title.
var minorWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "but": true, "or": true,
	"nor": true, "for": true, "so": true, "yet": true, "at": true, "by": true,
	"in": true, "of": true, "on": true, "to": true, "up": true, "as": true,
}

func toTitleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		if i > 0 && minorWords[w] {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = strings.ToUpper(string(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
