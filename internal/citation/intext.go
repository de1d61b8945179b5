package citation

import (
	"fmt"
	"strings"

	"github.com/jackzampolin/bookpress/internal/manuscript"
)

// CitationMarker carries the in-text position data for a citation: the
// reference's 1-based index in the bibliography (for numeric styles) and an
// optional page locator.
type CitationMarker struct {
	Index int
	Page  string
}

// surname returns the in-text display name for an author: organization,
// else last name, else given names.
func surname(a manuscript.Author) string {
	if a.Organization != "" {
		return a.Organization
	}
	if a.LastName != "" {
		return a.LastName
	}
	return fullGivenName(a)
}

// inTextNames renders the author names for an author-date or MLA citation,
// applying the 1/2/3+ joining rules that mirror the reference-list rules.
func inTextNames(authors []manuscript.Author, conj string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return surname(authors[0])
	case 2:
		return surname(authors[0]) + " " + conj + " " + surname(authors[1])
	default:
		return surname(authors[0]) + " et al."
	}
}

// FormatInTextCitation renders an in-text citation for the reference.
// The structural family depends on the style: APA and Harvard produce
// author-year parentheticals, MLA uses author and page without a year,
// IEEE uses bracketed numeric markers, and Chicago, Vancouver, and AMA use
// superscript numeric markers (marked up as <sup>…</sup>).
func FormatInTextCitation(ref manuscript.Reference, marker CitationMarker, style manuscript.CitationStyle) string {
	switch style {
	case manuscript.StyleAPA:
		inner := joinNonEmpty(", ", inTextNames(ref.Authors, "&"), yearOrND(ref.Year))
		if marker.Page != "" {
			inner += ", p. " + marker.Page
		}
		return "(" + inner + ")"

	case manuscript.StyleHarvard:
		inner := joinNonEmpty(", ", inTextNames(ref.Authors, "and"), yearOrND(ref.Year))
		if marker.Page != "" {
			inner += ", p. " + marker.Page
		}
		return "(" + inner + ")"

	case manuscript.StyleMLA:
		// MLA omits the year; the page number stands alone after the names.
		inner := inTextNames(ref.Authors, "and")
		if marker.Page != "" {
			inner = strings.TrimSpace(inner + " " + marker.Page)
		}
		return "(" + inner + ")"

	case manuscript.StyleIEEE:
		return fmt.Sprintf("[%d]", marker.Index)

	case manuscript.StyleChicago, manuscript.StyleVancouver, manuscript.StyleAMA:
		return fmt.Sprintf("<sup>%d</sup>", marker.Index)

	default:
		return "(" + joinNonEmpty(", ", inTextNames(ref.Authors, "&"), yearOrND(ref.Year)) + ")"
	}
}
