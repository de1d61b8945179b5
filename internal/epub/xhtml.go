package epub

import (
	"fmt"
	"strings"

	"github.com/jackzampolin/bookpress/internal/layout"
)

// generateSectionXHTML converts one layout section to an XHTML spine file.
func (b *Builder) generateSectionXHTML(sec *layout.Section) string {
	var sb strings.Builder

	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
  <title>`)
	sb.WriteString(escapeXML(navTitle(sec)))
	sb.WriteString(`</title>
  <link rel="stylesheet" type="text/css" href="../styles/style.css"/>
</head>
<body class="`)
	sb.WriteString(string(sec.Role))
	sb.WriteString("\">\n")

	for _, blk := range sec.Blocks {
		writeBlockXHTML(&sb, blk)
	}

	sb.WriteString("</body>\n</html>\n")
	return sb.String()
}

func writeBlockXHTML(sb *strings.Builder, blk layout.Block) {
	switch blk.Type {
	case layout.BlockHeading:
		fmt.Fprintf(sb, "<h1>%s</h1>\n", inlineXHTML(blk.Text))
	case layout.BlockSubheading:
		fmt.Fprintf(sb, "<h2>%s</h2>\n", inlineXHTML(blk.Text))
	case layout.BlockOrnament:
		fmt.Fprintf(sb, "<div class=\"ornament\">%s</div>\n", inlineXHTML(blk.Text))
	case layout.BlockSceneBreak:
		if blk.Text == "" {
			sb.WriteString("<hr/>\n")
		} else {
			fmt.Fprintf(sb, "<div class=\"scene-break\">%s</div>\n", inlineXHTML(blk.Text))
		}
	case layout.BlockTOCEntry:
		// Page numbers mean nothing in a reflowable reader; the entry
		// renders as a plain line and nav.xhtml carries real navigation.
		left := blk.Text
		if blk.Label != "" {
			left = blk.Label + "  " + blk.Text
		}
		fmt.Fprintf(sb, "<p>%s</p>\n", inlineXHTML(left))
	case layout.BlockReference:
		entry := inlineXHTML(blk.Text)
		if blk.Label != "" {
			entry = escapeXML(blk.Label) + " " + entry
		}
		fmt.Fprintf(sb, "<p class=\"reference\">%s</p>\n", entry)
	case layout.BlockParagraph:
		class := ""
		if blk.Indent {
			class = " class=\"indent\""
		}
		fmt.Fprintf(sb, "<p%s>%s</p>\n", class, inlineXHTML(blk.Text))
	case layout.BlockSpacer:
		sb.WriteString("<br/>\n")
	}
}

// inlineXHTML escapes text while preserving the inline markup whitelist
// the pipeline emits in block text.
func inlineXHTML(text string) string {
	escaped := escapeXML(text)
	r := strings.NewReplacer(
		"&lt;em&gt;", "<em>", "&lt;/em&gt;", "</em>",
		"&lt;i&gt;", "<i>", "&lt;/i&gt;", "</i>",
		"&lt;strong&gt;", "<strong>", "&lt;/strong&gt;", "</strong>",
		"&lt;b&gt;", "<b>", "&lt;/b&gt;", "</b>",
		"&lt;sup&gt;", "<sup>", "&lt;/sup&gt;", "</sup>",
	)
	return r.Replace(escaped)
}
