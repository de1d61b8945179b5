package pdfbackend

import (
	"bytes"
	"context"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/jackzampolin/bookpress/internal/layout"
	"github.com/jackzampolin/bookpress/internal/numbering"
	"github.com/jackzampolin/bookpress/internal/settings"
)

// writer drives one drawing pass over the document. Section transitions are
// handled inside the gofpdf header callback so that auto page breaks and
// explicit AddPage calls share the same numbering and margin logic.
type writer struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
	doc *layout.Document
	s   settings.Settings
	geo settings.PageGeometry

	coverImg  []byte
	coverType string

	// Section state consumed by the header/footer callbacks.
	pending    *layout.Section
	cur        *layout.Section
	curStart   int // physical page where cur began
	numberBase int // displayed number = PageNo() - numberBase
	blank      bool

	// Measured results, filled during the pass.
	chapterStartPages []int
	biblioStartPage   int

	// Corrections from a previous measuring pass; nil on the first pass.
	tocPages      []int
	tocBiblioPage int
	tocIdx        int
}

func newWriter(doc *layout.Document, coverImg []byte, coverType string) *writer {
	s := doc.Settings
	geo := doc.Geometry

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "in",
		Size:           gofpdf.SizeType{Wd: geo.Width, Ht: geo.Height},
	})
	pdf.SetMargins(s.Margins.Inside, s.Margins.Top, s.Margins.Outside)
	pdf.SetAutoPageBreak(true, s.Margins.Bottom)

	w := &writer{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
		doc: doc,
		s:   s,
		geo: geo,

		coverImg:  coverImg,
		coverType: coverType,
	}
	pdf.SetHeaderFunc(w.pageHeader)
	pdf.SetFooterFunc(w.pageFooter)
	return w
}

// drawAll renders every section in document order.
func (w *writer) drawAll(ctx context.Context) error {
	for i := range w.doc.Sections {
		if err := ctx.Err(); err != nil {
			return err
		}
		w.drawSection(&w.doc.Sections[i])
		if err := w.pdf.Error(); err != nil {
			return err
		}
	}
	return w.pdf.Error()
}

func (w *writer) drawSection(sec *layout.Section) {
	if sec.StartOnOdd && w.pdf.PageNo()%2 == 1 {
		// The next page would be even; pad with a blank verso.
		w.blank = true
		w.pdf.AddPage()
		w.blank = false
	}

	w.pending = sec
	w.pdf.AddPage()

	if sec.DropFromTop > 0 {
		w.pdf.SetY(w.s.Margins.Top + sec.DropFromTop*w.geo.ContentHeight)
	}

	if sec.Type == layout.SectionCover && w.coverImg != nil {
		w.drawCoverImage()
		w.recordStart(sec)
		return
	}

	for _, blk := range sec.Blocks {
		w.drawBlock(sec, blk)
	}
	w.recordStart(sec)
}

// recordStart notes the displayed number of the section's first page for
// the TOC correction pass.
func (w *writer) recordStart(sec *layout.Section) {
	start := w.curStart - w.numberBase
	switch sec.Type {
	case layout.SectionChapter:
		w.chapterStartPages = append(w.chapterStartPages, start)
	case layout.SectionBibliography:
		w.biblioStartPage = start
	}
}

// pageHeader runs at the top of every page, including pages created by
// automatic breaks. It applies the side margins for this page's parity,
// consumes any pending section transition, and draws the running header.
func (w *writer) pageHeader() {
	page := w.pdf.PageNo()
	sm := w.s.MarginsFor(page)
	w.pdf.SetLeftMargin(sm.Left)
	w.pdf.SetRightMargin(sm.Right)
	w.pdf.SetX(sm.Left)

	if w.pending != nil {
		w.cur = w.pending
		w.curStart = page
		w.pending = nil
		if w.cur.Numbering.Restart {
			w.numberBase = page - 1
		}
	}
	if !w.headerOnPage(page) {
		return
	}

	hf := w.s.HeaderFooter
	left, center, right := hf.HeaderLeft, hf.HeaderCenter, hf.HeaderRight
	if hf.Mirrored && settings.IsVerso(page) {
		left, right = right, left
	}
	w.drawBand(w.s.Margins.Top-w.s.Margins.HeaderSpace, left, center, right)
}

// headerOnPage reports whether the running header is drawn on a physical
// page. Headers stay off blank padding pages, sections with suppressed
// numbering, and a section's first page.
func (w *writer) headerOnPage(page int) bool {
	if w.blank || w.cur == nil {
		return false
	}
	hf := w.s.HeaderFooter
	if !hf.HeadersEnabled || w.cur.Numbering.Style == settings.PageNumSuppressed {
		return false
	}
	return page != w.curStart
}

// pageFooter runs at the bottom of every page.
func (w *writer) pageFooter() {
	if w.blank || w.cur == nil {
		return
	}
	hf := w.s.HeaderFooter
	if !hf.FootersEnabled || w.cur.Numbering.Style == settings.PageNumSuppressed {
		return
	}
	page := w.pdf.PageNo()
	if page == w.curStart && !hf.ShowFirstPageNumber {
		return
	}

	left, center, right := hf.FooterLeft, hf.FooterCenter, hf.FooterRight
	if hf.Mirrored && settings.IsVerso(page) {
		left, right = right, left
	}
	w.drawBand(w.geo.Height-w.s.Margins.Bottom+w.s.Margins.FooterSpace/2, left, center, right)
}

// drawBand draws one header or footer band at the given Y with its three
// content slots.
func (w *writer) drawBand(y float64, left, center, right settings.HeaderContent) {
	hf := w.s.HeaderFooter
	w.pdf.SetFont(coreFont(hf.Font), "I", hf.FontSize)
	third := w.geo.ContentWidth / 3
	lineH := hf.FontSize / 72 * 1.2

	w.pdf.SetY(y)
	w.pdf.CellFormat(third, lineH, w.tr(w.slotText(left)), "", 0, "L", false, 0, "")
	w.pdf.CellFormat(third, lineH, w.tr(w.slotText(center)), "", 0, "C", false, 0, "")
	w.pdf.CellFormat(third, lineH, w.tr(w.slotText(right)), "", 0, "R", false, 0, "")
}

// slotText resolves one header/footer slot to its display string for the
// current page.
func (w *writer) slotText(content settings.HeaderContent) string {
	switch content {
	case settings.ContentPageNumber:
		return formatPageNumber(w.pdf.PageNo()-w.numberBase, w.cur.Numbering.Style)
	case settings.ContentBookTitle:
		return w.doc.Title
	case settings.ContentAuthor:
		return w.doc.Author
	case settings.ContentChapterTitle:
		if w.cur.RunningHeader != nil {
			return w.cur.RunningHeader.ChapterTitle
		}
		return ""
	default:
		return ""
	}
}

// formatPageNumber renders a displayed page number in the section's style.
func formatPageNumber(n int, style settings.PageNumberStyle) string {
	if n < 1 {
		return ""
	}
	switch style {
	case settings.PageNumRomanLower:
		return strings.ToLower(numbering.ToRoman(n))
	case settings.PageNumRomanUpper:
		return numbering.ToRoman(n)
	case settings.PageNumSuppressed:
		return ""
	default:
		return strconv.Itoa(n)
	}
}

// drawCoverImage paints the fetched cover across the full page.
func (w *writer) drawCoverImage() {
	opts := gofpdf.ImageOptions{ImageType: w.coverType, ReadDpi: true}
	w.pdf.RegisterImageOptionsReader("cover", opts, bytes.NewReader(w.coverImg))
	bleed := w.s.Margins.Bleed
	w.pdf.ImageOptions("cover", -bleed, -bleed,
		w.geo.Width+2*bleed, w.geo.Height+2*bleed, false, opts, 0, "")
}
