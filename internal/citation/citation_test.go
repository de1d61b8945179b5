package citation

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jackzampolin/bookpress/internal/manuscript"
)

func author(first, middle, last string) manuscript.Author {
	return manuscript.Author{FirstName: first, MiddleName: middle, LastName: last}
}

func TestFormatAuthor(t *testing.T) {
	a := author("Jane", "Quinn", "Doe")

	cases := []struct {
		style   manuscript.CitationStyle
		isFirst bool
		want    string
	}{
		{manuscript.StyleAPA, true, "Doe, J.Q."},
		{manuscript.StyleHarvard, true, "Doe, J.Q."},
		{manuscript.StyleVancouver, true, "Doe, J.Q."},
		{manuscript.StyleAMA, true, "Doe, J.Q."},
		{manuscript.StyleMLA, true, "Doe, Jane Quinn"},
		{manuscript.StyleMLA, false, "Jane Quinn Doe"},
		{manuscript.StyleChicago, true, "Doe, Jane Quinn"},
		{manuscript.StyleChicago, false, "Doe, Jane Quinn"},
		{manuscript.StyleIEEE, true, "J. Q. Doe"},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s first=%v", tc.style, tc.isFirst), func(t *testing.T) {
			assert.Equal(t, tc.want, FormatAuthor(a, tc.style, tc.isFirst))
		})
	}

	t.Run("organization renders verbatim in every style", func(t *testing.T) {
		org := manuscript.Author{Organization: "World Health Organization"}
		for _, style := range []manuscript.CitationStyle{
			manuscript.StyleAPA, manuscript.StyleMLA, manuscript.StyleChicago,
			manuscript.StyleIEEE, manuscript.StyleHarvard, manuscript.StyleVancouver,
			manuscript.StyleAMA,
		} {
			assert.Equal(t, "World Health Organization", FormatAuthor(org, style, true))
		}
	})

	t.Run("suffix is appended", func(t *testing.T) {
		a := manuscript.Author{FirstName: "Sam", LastName: "King", Suffix: "Jr."}
		assert.Equal(t, "King, S., Jr.", FormatAuthor(a, manuscript.StyleAPA, true))
	})

	t.Run("multi-byte initials keep the full rune", func(t *testing.T) {
		a := manuscript.Author{FirstName: "Émile", LastName: "Zola"}
		assert.Equal(t, "Zola, É.", FormatAuthor(a, manuscript.StyleAPA, true))
		assert.Equal(t, "É. Zola", FormatAuthor(a, manuscript.StyleIEEE, true))

		b := manuscript.Author{FirstName: "José", MiddleName: "Øyvind", LastName: "García"}
		assert.Equal(t, "García, J.Ø.", FormatAuthor(b, manuscript.StyleAPA, true))
	})
}

func TestFormatAuthors(t *testing.T) {
	mk := func(n int) []manuscript.Author {
		authors := make([]manuscript.Author, n)
		for i := range authors {
			authors[i] = author("First", "", fmt.Sprintf("Last%d", i+1))
		}
		return authors
	}

	t.Run("single author has no conjunction in any style", func(t *testing.T) {
		for _, style := range []manuscript.CitationStyle{
			manuscript.StyleAPA, manuscript.StyleMLA, manuscript.StyleChicago,
			manuscript.StyleIEEE, manuscript.StyleHarvard, manuscript.StyleVancouver,
			manuscript.StyleAMA,
		} {
			got := FormatAuthors(mk(1), style, 0)
			assert.NotContains(t, got, " and ", "style %s", style)
			assert.NotContains(t, got, "&", "style %s", style)
			assert.NotContains(t, got, "et al", "style %s", style)
		}
	})

	t.Run("APA two authors joined with ampersand", func(t *testing.T) {
		got := FormatAuthors(mk(2), manuscript.StyleAPA, 0)
		assert.Contains(t, got, " & ")
		assert.NotContains(t, got, ", &")
	})

	t.Run("APA 21 authors truncate with ellipsis to 20 names", func(t *testing.T) {
		got := FormatAuthors(mk(21), manuscript.StyleAPA, 0)
		assert.Contains(t, got, "...")
		assert.Equal(t, 20, strings.Count(got, "Last"))
		assert.Contains(t, got, "Last21") // the final author survives
		assert.NotContains(t, got, "Last20,")
	})

	t.Run("MLA et al beyond three", func(t *testing.T) {
		assert.Contains(t, FormatAuthors(mk(2), manuscript.StyleMLA, 0), " and ")
		three := FormatAuthors(mk(3), manuscript.StyleMLA, 0)
		assert.NotContains(t, three, "et al")
		four := FormatAuthors(mk(4), manuscript.StyleMLA, 0)
		assert.Contains(t, four, "et al.")
		assert.Equal(t, 1, strings.Count(four, "Last"))
	})

	t.Run("Chicago lists seven before et al beyond ten", func(t *testing.T) {
		ten := FormatAuthors(mk(10), manuscript.StyleChicago, 0)
		assert.NotContains(t, ten, "et al")
		eleven := FormatAuthors(mk(11), manuscript.StyleChicago, 0)
		assert.Contains(t, eleven, "et al.")
		assert.Equal(t, 7, strings.Count(eleven, "Last"))
	})

	t.Run("Harvard keeps first author beyond three", func(t *testing.T) {
		got := FormatAuthors(mk(4), manuscript.StyleHarvard, 0)
		assert.Contains(t, got, "et al.")
		assert.Equal(t, 1, strings.Count(got, "Last"))
	})

	t.Run("IEEE and Vancouver truncate beyond six", func(t *testing.T) {
		assert.NotContains(t, FormatAuthors(mk(6), manuscript.StyleIEEE, 0), "et al")
		assert.Contains(t, FormatAuthors(mk(7), manuscript.StyleIEEE, 0), "et al.")

		seven := FormatAuthors(mk(7), manuscript.StyleVancouver, 0)
		assert.Contains(t, seven, "et al.")
		assert.Equal(t, 6, strings.Count(seven, "Last"))
	})

	t.Run("empty author list renders empty", func(t *testing.T) {
		assert.Equal(t, "", FormatAuthors(nil, manuscript.StyleAPA, 0))
	})
}

func TestFormatReference(t *testing.T) {
	book := manuscript.Reference{
		Type:  manuscript.RefBook,
		Title: "Example",
		Authors: []manuscript.Author{
			author("Fred", "", "Last1"),
			author("Gail", "", "Last2"),
		},
		Year:      2020,
		Publisher: "Publisher",
	}

	t.Run("APA book with two authors", func(t *testing.T) {
		got := FormatReference(book, manuscript.StyleAPA, 0)
		assert.Equal(t, "Last1, F. & Last2, G. (2020). <em>Example</em>. Publisher.", got)
	})

	t.Run("MLA book", func(t *testing.T) {
		got := FormatReference(book, manuscript.StyleMLA, 0)
		assert.Contains(t, got, "Last1, Fred and Gail Last2")
		assert.Contains(t, got, "<em>Example</em>")
		assert.Contains(t, got, "Publisher, 2020")
	})

	t.Run("IEEE prefixes bracketed index", func(t *testing.T) {
		got := FormatReference(book, manuscript.StyleIEEE, 3)
		assert.True(t, strings.HasPrefix(got, "[3] "), "got %q", got)
	})

	t.Run("Vancouver prefixes dotted index", func(t *testing.T) {
		got := FormatReference(book, manuscript.StyleVancouver, 2)
		assert.True(t, strings.HasPrefix(got, "2. "), "got %q", got)
	})

	t.Run("missing year renders nd", func(t *testing.T) {
		undated := book
		undated.Year = 0
		got := FormatReference(undated, manuscript.StyleAPA, 0)
		assert.Contains(t, got, "(n.d.)")
	})

	t.Run("journal article APA", func(t *testing.T) {
		ref := manuscript.Reference{
			Type:         manuscript.RefJournal,
			Title:        "On Page Layout",
			Authors:      []manuscript.Author{author("Ada", "", "Boole")},
			Year:         2019,
			JournalTitle: "Journal of Typesetting",
			Volume:       "12",
			Issue:        "3",
			Pages:        "45-67",
			DOI:          "10.1000/jot.2019.12",
		}
		got := FormatReference(ref, manuscript.StyleAPA, 0)
		assert.Contains(t, got, "Boole, A. (2019). On Page Layout.")
		assert.Contains(t, got, "<em>Journal of Typesetting</em>, <em>12</em>(3), 45-67.")
		assert.Contains(t, got, "https://doi.org/10.1000/jot.2019.12")
	})

	t.Run("website without authors leads with title", func(t *testing.T) {
		ref := manuscript.Reference{
			Type:     manuscript.RefWebsite,
			Title:    "Style Guide",
			SiteName: "Typeset Daily",
			URL:      "https://example.com/guide",
			Year:     2021,
		}
		got := FormatReference(ref, manuscript.StyleAPA, 0)
		assert.Contains(t, got, "<em>Style Guide</em>")
		assert.Contains(t, got, "https://example.com/guide")
	})

	t.Run("unknown type falls back to title and year", func(t *testing.T) {
		ref := manuscript.Reference{Type: "hologram", Title: "Strange", Year: 1999}
		assert.Equal(t, "Strange (1999)", FormatReference(ref, manuscript.StyleAPA, 0))
	})

	t.Run("every type formats without panic in every style", func(t *testing.T) {
		types := []manuscript.ReferenceType{
			manuscript.RefBook, manuscript.RefJournal, manuscript.RefWebsite,
			manuscript.RefNewspaper, manuscript.RefMagazine, manuscript.RefConference,
			manuscript.RefThesis, manuscript.RefReport, manuscript.RefPatent,
			manuscript.RefVideo, manuscript.RefPodcast, manuscript.RefInterview,
			manuscript.RefGovernment, manuscript.RefLegal, manuscript.RefSoftware,
			manuscript.RefDataset, manuscript.RefPresentation, manuscript.RefManuscript,
			manuscript.RefArchive, manuscript.RefPersonal,
		}
		styles := []manuscript.CitationStyle{
			manuscript.StyleAPA, manuscript.StyleMLA, manuscript.StyleChicago,
			manuscript.StyleIEEE, manuscript.StyleHarvard, manuscript.StyleVancouver,
			manuscript.StyleAMA,
		}
		for _, typ := range types {
			for _, style := range styles {
				ref := manuscript.Reference{Type: typ, Title: "T", Authors: nil}
				got := FormatReference(ref, style, 1)
				assert.NotEmpty(t, got, "type=%s style=%s", typ, style)
			}
		}
	})
}

func TestFormatInTextCitation(t *testing.T) {
	one := manuscript.Reference{
		Type:    manuscript.RefBook,
		Title:   "Example",
		Authors: []manuscript.Author{author("Fred", "", "Last")},
		Year:    2020,
	}
	two := one
	two.Authors = append([]manuscript.Author{}, one.Authors...)
	two.Authors = append(two.Authors, author("Gail", "", "Next"))
	many := two
	many.Authors = append(append([]manuscript.Author{}, two.Authors...), author("Hal", "", "Third"))

	t.Run("APA author-year", func(t *testing.T) {
		assert.Equal(t, "(Last, 2020)", FormatInTextCitation(one, CitationMarker{}, manuscript.StyleAPA))
		assert.Equal(t, "(Last & Next, 2020)", FormatInTextCitation(two, CitationMarker{}, manuscript.StyleAPA))
		assert.Equal(t, "(Last et al., 2020)", FormatInTextCitation(many, CitationMarker{}, manuscript.StyleAPA))
		assert.Equal(t, "(Last, 2020, p. 14)", FormatInTextCitation(one, CitationMarker{Page: "14"}, manuscript.StyleAPA))
	})

	t.Run("Harvard uses and", func(t *testing.T) {
		assert.Equal(t, "(Last and Next, 2020)", FormatInTextCitation(two, CitationMarker{}, manuscript.StyleHarvard))
	})

	t.Run("MLA omits year", func(t *testing.T) {
		assert.Equal(t, "(Last 14)", FormatInTextCitation(one, CitationMarker{Page: "14"}, manuscript.StyleMLA))
		assert.Equal(t, "(Last)", FormatInTextCitation(one, CitationMarker{}, manuscript.StyleMLA))
	})

	t.Run("IEEE bracketed numeric", func(t *testing.T) {
		assert.Equal(t, "[7]", FormatInTextCitation(one, CitationMarker{Index: 7}, manuscript.StyleIEEE))
	})

	t.Run("superscript numeric family", func(t *testing.T) {
		for _, style := range []manuscript.CitationStyle{
			manuscript.StyleChicago, manuscript.StyleVancouver, manuscript.StyleAMA,
		} {
			assert.Equal(t, "<sup>3</sup>", FormatInTextCitation(one, CitationMarker{Index: 3}, style))
		}
	})
}

func TestSortReferences(t *testing.T) {
	refs := []manuscript.Reference{
		{ID: "c", Type: manuscript.RefBook, Title: "Zebra", Authors: []manuscript.Author{author("", "", "Young")}, Year: 2001},
		{ID: "a", Type: manuscript.RefJournal, Title: "Apple", Authors: []manuscript.Author{author("", "", "Adams")}, Year: 2010},
		{ID: "b", Type: manuscript.RefBook, Title: "Mango", Authors: []manuscript.Author{{Organization: "Big Lab"}}},
	}

	t.Run("author sort falls back to organization", func(t *testing.T) {
		got := SortReferences(refs, manuscript.SortByAuthor, "asc")
		assert.Equal(t, []string{"a", "b", "c"}, ids(got))
	})

	t.Run("date sort puts undated last", func(t *testing.T) {
		got := SortReferences(refs, manuscript.SortByDate, "asc")
		assert.Equal(t, "b", got[len(got)-1].ID)
	})

	t.Run("title sort", func(t *testing.T) {
		got := SortReferences(refs, manuscript.SortByTitle, "asc")
		assert.Equal(t, []string{"a", "b", "c"}, ids(got))
	})

	t.Run("appearance keeps input order", func(t *testing.T) {
		got := SortReferences(refs, manuscript.SortByAppearance, "asc")
		assert.Equal(t, []string{"c", "a", "b"}, ids(got))
	})

	t.Run("descending reverses", func(t *testing.T) {
		got := SortReferences(refs, manuscript.SortByTitle, "desc")
		assert.Equal(t, []string{"c", "b", "a"}, ids(got))
	})

	t.Run("input is not modified", func(t *testing.T) {
		SortReferences(refs, manuscript.SortByTitle, "asc")
		assert.Equal(t, "c", refs[0].ID)
	})
}

func ids(refs []manuscript.Reference) []string {
	out := make([]string, len(refs))
	for i, r := range refs {
		out[i] = r.ID
	}
	return out
}
