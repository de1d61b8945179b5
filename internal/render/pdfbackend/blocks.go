package pdfbackend

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/jackzampolin/bookpress/internal/layout"
)

// coreFont maps a configured font family to one of the PDF core fonts.
// Serif faces map to Times, sans faces to Helvetica, monospace to Courier.
func coreFont(name string) string {
	switch strings.ToLower(name) {
	case "helvetica", "arial", "verdana", "futura", "optima", "avant garde":
		return "Helvetica"
	case "courier", "courier new", "monaco":
		return "Courier"
	default:
		return "Times"
	}
}

func (w *writer) bodyLineHeight() float64 {
	t := w.s.Typography
	return t.BodyFontSize / 72 * t.LineHeight
}

func (w *writer) drawBlock(sec *layout.Section, blk layout.Block) {
	t := w.s.Typography
	line := w.bodyLineHeight()

	switch blk.Type {
	case layout.BlockHeading:
		w.pdf.SetFont(coreFont(t.HeadingFont), "B", t.BodyFontSize*2)
		w.pdf.MultiCell(0, line*1.8, w.tr(blk.Text), "", "C", false)
		w.pdf.Ln(line)
	case layout.BlockSubheading:
		w.pdf.SetFont(coreFont(t.HeadingFont), "", t.BodyFontSize*1.3)
		w.pdf.MultiCell(0, line*1.3, w.tr(blk.Text), "", "C", false)
		w.pdf.Ln(line / 2)
	case layout.BlockOrnament:
		w.pdf.SetFont(coreFont(t.HeadingFont), "", t.BodyFontSize*1.2)
		w.pdf.MultiCell(0, line, w.tr(blk.Text), "", "C", false)
		w.pdf.Ln(line / 2)
	case layout.BlockSceneBreak:
		w.pdf.Ln(line)
		if blk.Text != "" {
			w.pdf.SetFont(coreFont(t.BodyFont), "", t.BodyFontSize)
			w.pdf.MultiCell(0, line, w.tr(blk.Text), "", "C", false)
		}
		w.pdf.Ln(line)
	case layout.BlockSpacer:
		w.pdf.Ln(line)
	case layout.BlockTOCEntry:
		w.tocEntry(blk)
	case layout.BlockReference:
		w.reference(blk)
	case layout.BlockParagraph:
		w.paragraph(blk)
	}
}

// paragraph writes one body paragraph with inline italic/superscript
// styling, optional first-line indent, and an optional drop cap on chapter
// openings.
func (w *writer) paragraph(blk layout.Block) {
	t := w.s.Typography
	line := w.bodyLineHeight()
	w.pdf.SetFont(coreFont(t.BodyFont), "", t.BodyFontSize)

	text := blk.Text
	if blk.DropCap && t.DropCaps {
		text = w.drawDropCap(text)
	} else if blk.Indent && t.ParagraphIndent > 0 {
		lm, _, _, _ := w.pdf.GetMargins()
		w.pdf.SetX(lm + t.ParagraphIndent)
	}

	w.writeStyled(text, t.BodyFontSize, line)
	w.pdf.Ln(line)
}

// drawDropCap draws the opening letter at drop-cap scale and returns the
// remaining paragraph text.
func (w *writer) drawDropCap(text string) string {
	plain := []rune(stripTags(text))
	if len(plain) == 0 {
		return text
	}
	t := w.s.Typography
	lines := t.DropCapLines
	if lines < 2 {
		lines = 2
	}
	capSize := t.BodyFontSize * float64(lines)
	w.pdf.SetFont(coreFont(t.HeadingFont), "", capSize)
	w.pdf.Write(capSize/72, w.tr(string(plain[0])))
	w.pdf.SetFont(coreFont(t.BodyFont), "", t.BodyFontSize)

	// Drop the cap letter from the flowing text, preserving any markup
	// that follows it.
	idx := strings.IndexRune(text, plain[0])
	if idx < 0 {
		return text
	}
	return text[idx+len(string(plain[0])):]
}

// tocEntry draws one contents line: label and title on the left, a dot
// leader, and the right-aligned page number. A correction table from the
// measuring pass overrides the builder's estimated numbers.
func (w *writer) tocEntry(blk layout.Block) {
	t := w.s.Typography
	line := w.bodyLineHeight()
	w.pdf.SetFont(coreFont(t.BodyFont), "", t.BodyFontSize)

	page := blk.PageNumber
	if w.tocPages != nil {
		if w.tocIdx < len(w.tocPages) {
			page = w.tocPages[w.tocIdx]
		} else if w.tocBiblioPage > 0 {
			page = w.tocBiblioPage
		}
	}
	w.tocIdx++

	left := blk.Text
	if blk.Label != "" {
		left = blk.Label + "  " + blk.Text
	}
	num := strconv.Itoa(page)

	numW := w.pdf.GetStringWidth(num) + 0.1
	leftW := w.pdf.GetStringWidth(w.tr(left)) + 0.05
	avail := w.geo.ContentWidth - leftW - numW

	w.pdf.CellFormat(leftW, line, w.tr(left), "", 0, "L", false, 0, "")
	if avail > 0 {
		dotW := w.pdf.GetStringWidth(". ")
		if dotW > 0 {
			dots := strings.Repeat(". ", int(avail/dotW))
			w.pdf.CellFormat(avail, line, dots, "", 0, "R", false, 0, "")
		}
	}
	w.pdf.CellFormat(numW, line, num, "", 1, "R", false, 0, "")
}

// reference draws one bibliography entry, hanging-indented when configured.
// The wrap margin moves in while the first line starts at the true left
// edge, so continuation lines indent.
func (w *writer) reference(blk layout.Block) {
	t := w.s.Typography
	line := w.bodyLineHeight()
	w.pdf.SetFont(coreFont(t.BodyFont), "", t.BodyFontSize)

	text := blk.Text
	if blk.Label != "" {
		text = blk.Label + " " + text
	}

	lm, _, _, _ := w.pdf.GetMargins()
	if blk.Hanging {
		w.pdf.SetLeftMargin(lm + 0.3)
		w.pdf.SetX(lm)
	}
	w.writeStyled(text, t.BodyFontSize, line)
	w.pdf.Ln(line)
	if blk.Hanging {
		w.pdf.SetLeftMargin(lm)
	}
	w.pdf.Ln(line / 3)
}

// styledSegment is one run of text with a single style.
type styledSegment struct {
	text   string
	italic bool
	bold   bool
	sup    bool
}

// writeStyled writes text carrying <em>/<i>/<b>/<strong>/<sup> markup as a
// flowing line, switching fonts per segment.
func (w *writer) writeStyled(text string, size, line float64) {
	family := coreFont(w.s.Typography.BodyFont)
	for _, seg := range parseStyled(text) {
		style := ""
		if seg.italic {
			style += "I"
		}
		if seg.bold {
			style += "B"
		}
		segSize := size
		if seg.sup {
			segSize = size * 0.65
		}
		w.pdf.SetFont(family, style, segSize)
		w.pdf.Write(line, w.tr(seg.text))
	}
	w.pdf.SetFont(family, "", size)
}

// parseStyled splits marked-up text into styled segments. Unknown tags are
// ignored and their text kept.
func parseStyled(text string) []styledSegment {
	if !strings.Contains(text, "<") {
		return []styledSegment{{text: text}}
	}
	doc, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return []styledSegment{{text: text}}
	}
	var segs []styledSegment
	var walk func(n *html.Node, italic, bold, sup bool)
	walk = func(n *html.Node, italic, bold, sup bool) {
		if n.Type == html.TextNode && n.Data != "" {
			segs = append(segs, styledSegment{text: n.Data, italic: italic, bold: bold, sup: sup})
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "em", "i":
				italic = true
			case "strong", "b":
				bold = true
			case "sup":
				sup = true
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, italic, bold, sup)
		}
	}
	walk(doc, false, false, false)
	return segs
}

// stripTags returns the text content with all markup removed.
func stripTags(text string) string {
	var sb strings.Builder
	for _, seg := range parseStyled(text) {
		sb.WriteString(seg.text)
	}
	return sb.String()
}
