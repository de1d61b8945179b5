// Package citation formats bibliography references and in-text citations
// across the seven supported citation styles. All functions are pure and
// never fail on missing optional fields; absent years render as "n.d." and
// absent names as empty strings. Formatted strings may embed <em>…</em>
// markers for italics, which renderer backends interpret or strip.
package citation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jackzampolin/bookpress/internal/manuscript"
)

// upperInitial returns the uppercased first rune of a name. Names are
// UTF-8, so slicing a byte would mangle initials like the É in "Émile".
func upperInitial(name string) string {
	r, _ := utf8.DecodeRuneInString(name)
	return strings.ToUpper(string(r))
}

// initials renders "F.M." from first and middle names.
func initials(a manuscript.Author) string {
	var sb strings.Builder
	if a.FirstName != "" {
		sb.WriteString(upperInitial(a.FirstName))
		sb.WriteString(".")
	}
	if a.MiddleName != "" {
		sb.WriteString(upperInitial(a.MiddleName))
		sb.WriteString(".")
	}
	return sb.String()
}

// spacedInitials renders "F. M." from first and middle names.
func spacedInitials(a manuscript.Author) string {
	var parts []string
	if a.FirstName != "" {
		parts = append(parts, upperInitial(a.FirstName)+".")
	}
	if a.MiddleName != "" {
		parts = append(parts, upperInitial(a.MiddleName)+".")
	}
	return strings.Join(parts, " ")
}

// fullGivenName renders "First Middle".
func fullGivenName(a manuscript.Author) string {
	var parts []string
	if a.FirstName != "" {
		parts = append(parts, a.FirstName)
	}
	if a.MiddleName != "" {
		parts = append(parts, a.MiddleName)
	}
	return strings.Join(parts, " ")
}

// FormatAuthor renders one author in the given style. Organizations bypass
// personal-name formatting entirely and render verbatim. isFirst matters
// only for MLA, which inverts the first author's name and not the rest.
func FormatAuthor(a manuscript.Author, style manuscript.CitationStyle, isFirst bool) string {
	if a.Organization != "" {
		return a.Organization
	}
	if a.LastName == "" {
		// Nothing to invert around; fall back to whatever given names exist.
		return fullGivenName(a)
	}

	var name string
	switch style {
	case manuscript.StyleAPA, manuscript.StyleHarvard, manuscript.StyleVancouver, manuscript.StyleAMA:
		if ini := initials(a); ini != "" {
			name = a.LastName + ", " + ini
		} else {
			name = a.LastName
		}
	case manuscript.StyleMLA:
		given := fullGivenName(a)
		if isFirst {
			if given != "" {
				name = a.LastName + ", " + given
			} else {
				name = a.LastName
			}
		} else {
			name = strings.TrimSpace(given + " " + a.LastName)
		}
	case manuscript.StyleChicago:
		if given := fullGivenName(a); given != "" {
			name = a.LastName + ", " + given
		} else {
			name = a.LastName
		}
	case manuscript.StyleIEEE:
		if ini := spacedInitials(a); ini != "" {
			name = ini + " " + a.LastName
		} else {
			name = a.LastName
		}
	default:
		name = a.LastName
	}

	if a.Suffix != "" {
		name += ", " + a.Suffix
	}
	return name
}

// defaultMaxAuthors returns the style's truncation threshold: listing more
// authors than this triggers the style's et-al. or ellipsis rule.
func defaultMaxAuthors(style manuscript.CitationStyle) int {
	switch style {
	case manuscript.StyleAPA:
		return 20
	case manuscript.StyleMLA, manuscript.StyleHarvard:
		return 3
	case manuscript.StyleChicago:
		return 10
	case manuscript.StyleIEEE, manuscript.StyleVancouver, manuscript.StyleAMA:
		return 6
	default:
		return 20
	}
}

// FormatAuthors renders an author list with the style's joining and
// truncation rules. maxAuthors <= 0 uses the style default.
func FormatAuthors(authors []manuscript.Author, style manuscript.CitationStyle, maxAuthors int) string {
	if len(authors) == 0 {
		return ""
	}
	if maxAuthors <= 0 {
		maxAuthors = defaultMaxAuthors(style)
	}

	names := make([]string, len(authors))
	for i, a := range authors {
		names[i] = FormatAuthor(a, style, i == 0)
	}

	switch style {
	case manuscript.StyleAPA:
		return joinAPA(names, maxAuthors)
	case manuscript.StyleMLA:
		return joinMLA(names, maxAuthors)
	case manuscript.StyleChicago:
		return joinChicago(names, maxAuthors)
	case manuscript.StyleHarvard:
		return joinHarvard(names, maxAuthors)
	case manuscript.StyleIEEE:
		return joinIEEE(names, maxAuthors)
	case manuscript.StyleVancouver, manuscript.StyleAMA:
		return joinVancouver(names, maxAuthors)
	default:
		return strings.Join(names, ", ")
	}
}

// joinAPA joins 2 authors with "&", 3+ as a comma list with "&" before the
// last; beyond the threshold it lists the first maxAuthors-1 names, an
// ellipsis, then the final author (APA's 20-author rule).
func joinAPA(names []string, maxAuthors int) string {
	switch {
	case len(names) == 1:
		return names[0]
	case len(names) == 2:
		return names[0] + " & " + names[1]
	case len(names) <= maxAuthors:
		return strings.Join(names[:len(names)-1], ", ") + ", & " + names[len(names)-1]
	default:
		kept := names[:maxAuthors-1]
		return strings.Join(kept, ", ") + ", ... " + names[len(names)-1]
	}
}

// joinMLA uses "and" for two authors and "et al." past the threshold.
func joinMLA(names []string, maxAuthors int) string {
	switch {
	case len(names) == 1:
		return names[0]
	case len(names) == 2:
		return names[0] + " and " + names[1]
	case len(names) <= maxAuthors:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	default:
		return names[0] + ", et al."
	}
}

// joinChicago lists all authors up to the threshold with "and" before the
// last; beyond it, the first seven are listed followed by "et al.".
func joinChicago(names []string, maxAuthors int) string {
	switch {
	case len(names) == 1:
		return names[0]
	case len(names) == 2:
		return names[0] + " and " + names[1]
	case len(names) <= maxAuthors:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	default:
		listed := 7
		if listed > len(names) {
			listed = len(names)
		}
		return strings.Join(names[:listed], ", ") + ", et al."
	}
}

// joinHarvard lists up to the threshold with "and"; beyond it only the
// first author is kept, followed by "et al.".
func joinHarvard(names []string, maxAuthors int) string {
	switch {
	case len(names) == 1:
		return names[0]
	case len(names) == 2:
		return names[0] + " and " + names[1]
	case len(names) <= maxAuthors:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	default:
		return names[0] + " et al."
	}
}

// joinIEEE lists up to the threshold with "and"; beyond it only the first
// author is kept, followed by "et al.".
func joinIEEE(names []string, maxAuthors int) string {
	switch {
	case len(names) == 1:
		return names[0]
	case len(names) == 2:
		return names[0] + " and " + names[1]
	case len(names) <= maxAuthors:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	default:
		return names[0] + " et al."
	}
}

// joinVancouver comma-joins up to the threshold; beyond it the first six
// are listed followed by "et al." (shared by Vancouver and AMA).
func joinVancouver(names []string, maxAuthors int) string {
	if len(names) <= maxAuthors {
		return strings.Join(names, ", ")
	}
	listed := 6
	if listed > len(names) {
		listed = len(names)
	}
	return strings.Join(names[:listed], ", ") + ", et al."
}

// yearOrND renders a year, substituting "n.d." when absent.
func yearOrND(year int) string {
	if year == 0 {
		return "n.d."
	}
	return fmt.Sprintf("%d", year)
}
