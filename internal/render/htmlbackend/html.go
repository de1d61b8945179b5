// Package htmlbackend serializes a layout document to a single paged HTML
// file. The stylesheet uses CSS paged-media rules (@page, string-set,
// running headers) so a print processor reproduces the book geometry; in a
// plain browser the file degrades to a readable continuous document.
package htmlbackend

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/jackzampolin/bookpress/internal/layout"
	"github.com/jackzampolin/bookpress/internal/render"
	"github.com/jackzampolin/bookpress/internal/settings"
)

// Backend implements render.Backend for HTML output.
type Backend struct {
	logger *slog.Logger
}

// New creates an HTML backend.
func New(logger *slog.Logger) *Backend {
	if logger == nil {
		logger = slog.Default()
	}
	return &Backend{logger: logger.With("backend", "html")}
}

// Format returns the HTML format tag.
func (b *Backend) Format() render.Format {
	return render.FormatHTML
}

// Render serializes the document to HTML.
func (b *Backend) Render(ctx context.Context, doc *layout.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n")
	fmt.Fprintf(&sb, "<html lang=%q>\n<head>\n<meta charset=\"utf-8\">\n", doc.Settings.Language)
	fmt.Fprintf(&sb, "<title>%s</title>\n", html.EscapeString(doc.Title))
	sb.WriteString("<style>\n")
	writeStylesheet(&sb, doc.Settings, doc.Geometry)
	sb.WriteString("</style>\n</head>\n<body>\n")

	for i := range doc.Sections {
		writeSection(&sb, &doc.Sections[i])
	}

	sb.WriteString("</body>\n</html>\n")
	b.logger.Info("rendered html", "title", doc.Title, "bytes", sb.Len())
	return []byte(sb.String()), nil
}

// writeStylesheet emits the paged-media CSS derived from resolved settings.
func writeStylesheet(sb *strings.Builder, s settings.Settings, geo settings.PageGeometry) {
	t := s.Typography
	m := s.Margins

	fmt.Fprintf(sb, "@page { size: %gin %gin; margin: %gin %gin %gin %gin; }\n",
		geo.Width, geo.Height, m.Top, m.Outside, m.Bottom, m.Inside)
	if m.MirrorMargins {
		fmt.Fprintf(sb, "@page :left { margin-left: %gin; margin-right: %gin; }\n", m.Outside, m.Inside)
		fmt.Fprintf(sb, "@page :right { margin-left: %gin; margin-right: %gin; }\n", m.Inside, m.Outside)
	}

	hf := s.HeaderFooter
	if hf.HeadersEnabled {
		fmt.Fprintf(sb, "@page { @top-center { content: %s; } }\n", slotContent(hf.HeaderCenter, hf))
		if hf.Mirrored {
			fmt.Fprintf(sb, "@page :left { @top-left { content: %s; } @top-right { content: %s; } }\n",
				slotContent(hf.HeaderRight, hf), slotContent(hf.HeaderLeft, hf))
			fmt.Fprintf(sb, "@page :right { @top-left { content: %s; } @top-right { content: %s; } }\n",
				slotContent(hf.HeaderLeft, hf), slotContent(hf.HeaderRight, hf))
		} else {
			fmt.Fprintf(sb, "@page { @top-left { content: %s; } @top-right { content: %s; } }\n",
				slotContent(hf.HeaderLeft, hf), slotContent(hf.HeaderRight, hf))
		}
		// Running headers stay off a chapter's opening page.
		sb.WriteString("@page chapter:first { @top-left { content: none; } @top-center { content: none; } @top-right { content: none; } }\n")
	}
	if hf.FootersEnabled {
		fmt.Fprintf(sb, "@page { @bottom-center { content: %s; } }\n", slotContent(hf.FooterCenter, hf))
	}
	sb.WriteString("@page cover { margin: 0; @top-left { content: none; } @bottom-center { content: none; } }\n")
	fmt.Fprintf(sb, "@page frontmatter { @bottom-center { content: %s; } }\n", pageCounter(hf.FrontMatterNumStyle))

	align := "justify"
	if t.Alignment == settings.AlignLeft {
		align = "left"
	}
	fmt.Fprintf(sb, "body { font-family: %q, serif; font-size: %gpt; line-height: %g; text-align: %s; }\n",
		t.BodyFont, t.BodyFontSize, t.LineHeight, align)
	fmt.Fprintf(sb, "h1, h2 { font-family: %q, serif; text-align: center; }\n", t.HeadingFont)
	fmt.Fprintf(sb, "p.indent { text-indent: %gin; margin: 0; }\n", t.ParagraphIndent)
	sb.WriteString("p { margin: 0; }\n")
	if t.DropCaps {
		lines := t.DropCapLines
		if lines < 2 {
			lines = 2
		}
		fmt.Fprintf(sb, "p.dropcap::first-letter { float: left; font-size: %dem; line-height: 1; padding-right: 0.05in; }\n", lines)
	}

	sb.WriteString("section { page-break-before: always; }\n")
	sb.WriteString("section.cover { page: cover; }\n")
	sb.WriteString("section.front-matter { page: frontmatter; }\n")
	sb.WriteString("section.chapter { page: chapter; }\n")
	if s.Chapters.StartOnOddPage {
		sb.WriteString("section.chapter { page-break-before: right; }\n")
	}
	if s.Chapters.DropFromTop > 0 {
		fmt.Fprintf(sb, "section.chapter { padding-top: %gin; }\n",
			s.Chapters.DropFromTop*geo.ContentHeight)
	}
	sb.WriteString("section.chapter h1 { string-set: chapter-title content(); }\n")
	sb.WriteString(".ornament, .scene-break { text-align: center; }\n")
	sb.WriteString(".toc-entry { display: flex; } .toc-entry .leader { flex: 1; border-bottom: 1px dotted; margin: 0 0.1in; }\n")
	sb.WriteString("p.reference { text-indent: -0.3in; padding-left: 0.3in; }\n")
}

// pageCounter maps a numbering style to a CSS page-counter expression.
func pageCounter(style settings.PageNumberStyle) string {
	switch style {
	case settings.PageNumRomanLower:
		return "counter(page, lower-roman)"
	case settings.PageNumRomanUpper:
		return "counter(page, upper-roman)"
	case settings.PageNumSuppressed:
		return "none"
	default:
		return "counter(page)"
	}
}

// slotContent maps one header/footer slot to a CSS content value.
func slotContent(c settings.HeaderContent, hf settings.HeaderFooter) string {
	switch c {
	case settings.ContentPageNumber:
		return pageCounter(hf.PageNumberStyle)
	case settings.ContentBookTitle:
		return "string(book-title)"
	case settings.ContentAuthor:
		return "string(book-author)"
	case settings.ContentChapterTitle:
		return "string(chapter-title)"
	default:
		return "none"
	}
}

func writeSection(sb *strings.Builder, sec *layout.Section) {
	fmt.Fprintf(sb, "<section class=%q>\n", string(sec.Role)+" "+string(sec.Type))
	for _, blk := range sec.Blocks {
		writeBlock(sb, blk)
	}
	sb.WriteString("</section>\n")
}

func writeBlock(sb *strings.Builder, blk layout.Block) {
	switch blk.Type {
	case layout.BlockHeading:
		fmt.Fprintf(sb, "<h1>%s</h1>\n", inline(blk.Text))
	case layout.BlockSubheading:
		fmt.Fprintf(sb, "<h2>%s</h2>\n", inline(blk.Text))
	case layout.BlockOrnament:
		fmt.Fprintf(sb, "<div class=\"ornament\">%s</div>\n", inline(blk.Text))
	case layout.BlockSceneBreak:
		fmt.Fprintf(sb, "<div class=\"scene-break\">%s</div>\n", inline(blk.Text))
	case layout.BlockTOCEntry:
		label := inline(blk.Text)
		if blk.Label != "" {
			label = html.EscapeString(blk.Label) + "&emsp;" + label
		}
		fmt.Fprintf(sb, "<div class=\"toc-entry\"><span>%s</span><span class=\"leader\"></span><span>%d</span></div>\n",
			label, blk.PageNumber)
	case layout.BlockReference:
		entry := inline(blk.Text)
		if blk.Label != "" {
			entry = blk.Label + " " + entry
		}
		fmt.Fprintf(sb, "<p class=\"reference\">%s</p>\n", entry)
	case layout.BlockParagraph:
		class := ""
		if blk.DropCap {
			class = " class=\"dropcap\""
		} else if blk.Indent {
			class = " class=\"indent\""
		}
		fmt.Fprintf(sb, "<p%s>%s</p>\n", class, inline(blk.Text))
	case layout.BlockSpacer:
		sb.WriteString("<div class=\"spacer\"></div>\n")
	}
}

// inline escapes block text while keeping the small whitelist of inline
// markup the pipeline emits.
func inline(text string) string {
	escaped := html.EscapeString(text)
	r := strings.NewReplacer(
		"&lt;em&gt;", "<em>", "&lt;/em&gt;", "</em>",
		"&lt;i&gt;", "<i>", "&lt;/i&gt;", "</i>",
		"&lt;strong&gt;", "<strong>", "&lt;/strong&gt;", "</strong>",
		"&lt;b&gt;", "<b>", "&lt;/b&gt;", "</b>",
		"&lt;sup&gt;", "<sup>", "&lt;/sup&gt;", "</sup>",
	)
	return r.Replace(escaped)
}
