package epub

import (
	"fmt"
	"strings"

	"github.com/jackzampolin/bookpress/internal/layout"
)

// navTitle labels a section in the navigation documents. Sections without
// a title fall back to a readable form of their type.
func navTitle(sec *layout.Section) string {
	if sec.Title != "" {
		return sec.Title
	}
	words := strings.Fields(strings.ReplaceAll(string(sec.Type), "-", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// navigable reports whether a section belongs in the reader's table of
// contents. The cover and the embedded print TOC are skipped; readers
// supply their own navigation surface for both.
func navigable(sec *layout.Section) bool {
	return sec.Type != layout.SectionCover && sec.Type != layout.SectionTOC
}

// generateNavigation creates the nav.xhtml navigation document.
func (b *Builder) generateNavigation() string {
	var sb strings.Builder

	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml" xmlns:epub="http://www.idpf.org/2007/ops">
<head>
  <title>Table of Contents</title>
  <link rel="stylesheet" type="text/css" href="styles/style.css"/>
</head>
<body>
  <nav epub:type="toc" id="toc">
    <h1>Table of Contents</h1>
    <ol>
`)

	for i := range b.doc.Sections {
		sec := &b.doc.Sections[i]
		if !navigable(sec) {
			continue
		}
		sb.WriteString(fmt.Sprintf("      <li><a href=\"sections/%s.xhtml\">%s</a></li>\n",
			sectionID(i), escapeXML(navTitle(sec))))
	}

	sb.WriteString(`    </ol>
  </nav>
</body>
</html>
`)

	return sb.String()
}

// generateNCX creates the toc.ncx for ePub 2 compatibility.
func (b *Builder) generateNCX() string {
	var sb strings.Builder

	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<ncx xmlns="http://www.daisy.org/z3986/2005/ncx/" version="2005-1">
  <head>
    <meta name="dtb:uid" content="`)
	sb.WriteString(b.generateUUID())
	sb.WriteString(`"/>
    <meta name="dtb:depth" content="1"/>
    <meta name="dtb:totalPageCount" content="0"/>
    <meta name="dtb:maxPageNumber" content="0"/>
  </head>
  <docTitle>
    <text>`)
	sb.WriteString(escapeXML(b.doc.Title))
	sb.WriteString(`</text>
  </docTitle>
  <navMap>
`)

	order := 0
	for i := range b.doc.Sections {
		sec := &b.doc.Sections[i]
		if !navigable(sec) {
			continue
		}
		order++
		sb.WriteString(fmt.Sprintf("    <navPoint id=\"navpoint-%d\" playOrder=\"%d\">\n", order, order))
		sb.WriteString(fmt.Sprintf("      <navLabel><text>%s</text></navLabel>\n", escapeXML(navTitle(sec))))
		sb.WriteString(fmt.Sprintf("      <content src=\"sections/%s.xhtml\"/>\n", sectionID(i)))
		sb.WriteString("    </navPoint>\n")
	}

	sb.WriteString(`  </navMap>
</ncx>
`)

	return sb.String()
}
