package citation

import (
	"sort"
	"strings"

	"github.com/jackzampolin/bookpress/internal/manuscript"
)

// missingYearSentinel sorts undated references after every dated one under
// ascending order.
const missingYearSentinel = 9999

// authorSortKey returns the primary ordering key for an author sort: the
// first author's surname, falling back to organization and then to the
// reference title when no personal surname exists.
func authorSortKey(ref manuscript.Reference) string {
	if len(ref.Authors) > 0 {
		a := ref.Authors[0]
		if a.LastName != "" {
			return strings.ToLower(a.LastName)
		}
		if a.Organization != "" {
			return strings.ToLower(a.Organization)
		}
	}
	return strings.ToLower(ref.Title)
}

// yearSortKey returns the year, substituting the missing-year sentinel.
func yearSortKey(ref manuscript.Reference) int {
	if ref.Year == 0 {
		return missingYearSentinel
	}
	return ref.Year
}

// SortReferences returns a new slice ordered by the requested key.
// Appearance order uses each reference's position in the input as a stable
// proxy for first-use order. direction is "asc" or "desc"; anything else is
// treated as ascending. The input slice is not modified.
func SortReferences(refs []manuscript.Reference, sortBy manuscript.SortBy, direction string) []manuscript.Reference {
	type indexed struct {
		ref manuscript.Reference
		pos int
	}
	items := make([]indexed, len(refs))
	for i, r := range refs {
		items[i] = indexed{ref: r, pos: i}
	}

	less := func(a, b indexed) bool {
		switch sortBy {
		case manuscript.SortByAuthor:
			if ka, kb := authorSortKey(a.ref), authorSortKey(b.ref); ka != kb {
				return ka < kb
			}
			return yearSortKey(a.ref) < yearSortKey(b.ref)
		case manuscript.SortByDate:
			if ka, kb := yearSortKey(a.ref), yearSortKey(b.ref); ka != kb {
				return ka < kb
			}
			return authorSortKey(a.ref) < authorSortKey(b.ref)
		case manuscript.SortByTitle:
			return strings.ToLower(a.ref.Title) < strings.ToLower(b.ref.Title)
		case manuscript.SortByType:
			if a.ref.Type != b.ref.Type {
				return a.ref.Type < b.ref.Type
			}
			return authorSortKey(a.ref) < authorSortKey(b.ref)
		default: // appearance
			return a.pos < b.pos
		}
	}

	descending := strings.EqualFold(direction, "desc")
	sort.SliceStable(items, func(i, j int) bool {
		if descending {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})

	out := make([]manuscript.Reference, len(items))
	for i, it := range items {
		out[i] = it.ref
	}
	return out
}
