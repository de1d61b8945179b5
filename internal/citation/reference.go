package citation

import (
	"fmt"
	"strings"

	"github.com/jackzampolin/bookpress/internal/manuscript"
)

// em wraps s in italic markers. Renderers interpret or strip these.
func em(s string) string {
	if s == "" {
		return ""
	}
	return "<em>" + s + "</em>"
}

// joinNonEmpty joins the non-empty parts with sep.
func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// numberedStyle reports whether the style prefixes entries with an index.
func numberedStyle(style manuscript.CitationStyle) bool {
	switch style {
	case manuscript.StyleIEEE, manuscript.StyleVancouver, manuscript.StyleAMA:
		return true
	}
	return false
}

// indexPrefix renders the entry's numeric prefix for numbered styles.
// IEEE brackets the index; Vancouver and AMA use "index." forms.
func indexPrefix(style manuscript.CitationStyle, index int) string {
	if index <= 0 {
		return ""
	}
	switch style {
	case manuscript.StyleIEEE:
		return fmt.Sprintf("[%d] ", index)
	case manuscript.StyleVancouver, manuscript.StyleAMA:
		return fmt.Sprintf("%d. ", index)
	}
	return ""
}

// doiSuffix renders a DOI as a resolvable URL.
func doiSuffix(doi string) string {
	if doi == "" {
		return ""
	}
	if strings.HasPrefix(doi, "http") {
		return doi
	}
	return "https://doi.org/" + doi
}

// FormatReference renders one bibliography entry in the given style.
// index is the 1-based position for numbered styles (IEEE/Vancouver/AMA)
// and is ignored by the author-date styles. Unknown reference types fall
// back to "{title} ({year})". The function never fails: missing optional
// fields simply drop out of the assembled string.
func FormatReference(ref manuscript.Reference, style manuscript.CitationStyle, index int) string {
	var body string
	switch ref.Type {
	case manuscript.RefBook:
		body = formatBook(ref, style)
	case manuscript.RefJournal:
		body = formatJournal(ref, style)
	case manuscript.RefWebsite:
		body = formatWebsite(ref, style)
	case manuscript.RefNewspaper:
		body = formatPeriodical(ref, style)
	case manuscript.RefMagazine:
		body = formatPeriodical(ref, style)
	case manuscript.RefConference:
		body = formatConference(ref, style)
	case manuscript.RefThesis:
		body = formatThesis(ref, style)
	case manuscript.RefReport:
		body = formatReport(ref, style)
	case manuscript.RefPatent:
		body = formatPatent(ref, style)
	case manuscript.RefVideo:
		body = formatVideo(ref, style)
	case manuscript.RefPodcast:
		body = formatPodcast(ref, style)
	case manuscript.RefInterview:
		body = formatInterview(ref, style)
	case manuscript.RefGovernment:
		body = formatGovernment(ref, style)
	case manuscript.RefLegal:
		body = formatLegal(ref, style)
	case manuscript.RefSoftware:
		body = formatSoftware(ref, style)
	case manuscript.RefDataset:
		body = formatDataset(ref, style)
	case manuscript.RefPresentation:
		body = formatPresentation(ref, style)
	case manuscript.RefManuscript:
		body = formatUnpublished(ref, style)
	case manuscript.RefArchive:
		body = formatArchive(ref, style)
	case manuscript.RefPersonal:
		body = formatPersonal(ref, style)
	default:
		body = fmt.Sprintf("%s (%s)", ref.Title, yearOrND(ref.Year))
	}
	return indexPrefix(style, index) + body
}

// authorsOrTitle renders the author list, or an empty string when there are
// no authors (styles then lead with the title).
func authorsOrTitle(ref manuscript.Reference, style manuscript.CitationStyle) string {
	return FormatAuthors(ref.Authors, style, 0)
}

// edParen renders "(2nd ed.)"-style parentheticals for APA-family styles.
func edParen(edition string) string {
	if edition == "" {
		return ""
	}
	return "(" + edition + " ed.)"
}

func formatBook(ref manuscript.Reference, style manuscript.CitationStyle) string {
	authors := authorsOrTitle(ref, style)
	year := yearOrND(ref.Year)

	switch style {
	case manuscript.StyleAPA:
		// Authors (Year). <em>Title</em> (ed.). Publisher.
		s := ""
		if authors != "" {
			s = authors + " (" + year + "). "
		} else {
			s = em(ref.Title) + " (" + year + "). "
		}
		if authors != "" {
			title := em(ref.Title)
			if ed := edParen(ref.Edition); ed != "" {
				title += " " + ed
			}
			s += title + ". "
		} else if ed := edParen(ref.Edition); ed != "" {
			s += ed + ". "
		}
		if ref.Publisher != "" {
			s += ref.Publisher + "."
		}
		if doi := doiSuffix(ref.DOI); doi != "" {
			s += " " + doi
		}
		return strings.TrimSpace(s)

	case manuscript.StyleMLA:
		// Authors. <em>Title</em>. Edition, Publisher, Year.
		parts := joinNonEmpty(", ", ref.Edition, ref.Publisher, year)
		return strings.TrimSpace(joinNonEmpty(". ", authors, em(ref.Title), parts) + ".")

	case manuscript.StyleChicago:
		// Authors. <em>Title</em>. Place: Publisher, Year.
		pub := ref.Publisher
		if ref.Place != "" && pub != "" {
			pub = ref.Place + ": " + pub
		} else if ref.Place != "" {
			pub = ref.Place
		}
		return strings.TrimSpace(joinNonEmpty(". ", authors, em(ref.Title), joinNonEmpty(", ", pub, year)) + ".")

	case manuscript.StyleIEEE:
		// Authors, <em>Title</em>, ed. Place: Publisher, Year.
		title := em(ref.Title)
		if ref.Edition != "" {
			title += ", " + ref.Edition + " ed."
		}
		pub := ref.Publisher
		if ref.Place != "" && pub != "" {
			pub = ref.Place + ": " + pub
		}
		return strings.TrimSpace(joinNonEmpty(", ", authors, title, joinNonEmpty(", ", pub, year)) + ".")

	case manuscript.StyleHarvard:
		// Authors (Year) <em>Title</em>. ed. Place: Publisher.
		s := ""
		if authors != "" {
			s = authors + " (" + year + ") "
		}
		s += em(ref.Title) + ". "
		if ref.Edition != "" {
			s += ref.Edition + " edn. "
		}
		pub := ref.Publisher
		if ref.Place != "" && pub != "" {
			pub = ref.Place + ": " + pub
		}
		if pub != "" {
			s += pub + "."
		}
		return strings.TrimSpace(s)

	case manuscript.StyleVancouver, manuscript.StyleAMA:
		// Authors. Title. ed. Place: Publisher; Year.
		title := ref.Title
		if style == manuscript.StyleAMA {
			title = em(ref.Title)
		}
		if ref.Edition != "" {
			title += ". " + ref.Edition + " ed"
		}
		pub := ref.Publisher
		if ref.Place != "" && pub != "" {
			pub = ref.Place + ": " + pub
		}
		tail := pub
		if tail != "" {
			tail += "; " + year
		} else {
			tail = year
		}
		return strings.TrimSpace(joinNonEmpty(". ", authors, title, tail) + ".")
	}
	return fallbackFormat(ref)
}

func formatJournal(ref manuscript.Reference, style manuscript.CitationStyle) string {
	authors := authorsOrTitle(ref, style)
	year := yearOrND(ref.Year)
	doi := doiSuffix(ref.DOI)

	volIssue := ref.Volume
	if ref.Issue != "" {
		volIssue += "(" + ref.Issue + ")"
	}

	switch style {
	case manuscript.StyleAPA:
		// Authors (Year). Title. <em>Journal</em>, <em>Vol</em>(Issue), pages. doi
		s := ""
		if authors != "" {
			s = authors + " (" + year + "). "
		}
		s += ref.Title + ". "
		journalPart := em(ref.JournalTitle)
		if ref.Volume != "" {
			journalPart += ", " + em(ref.Volume)
			if ref.Issue != "" {
				journalPart += "(" + ref.Issue + ")"
			}
		}
		if ref.Pages != "" {
			journalPart += ", " + ref.Pages
		}
		s += journalPart + "."
		if doi != "" {
			s += " " + doi
		}
		return strings.TrimSpace(s)

	case manuscript.StyleMLA:
		// Authors. "Title." <em>Journal</em>, vol. V, no. N, Year, pp. P.
		var tail []string
		if ref.Volume != "" {
			tail = append(tail, "vol. "+ref.Volume)
		}
		if ref.Issue != "" {
			tail = append(tail, "no. "+ref.Issue)
		}
		tail = append(tail, year)
		if ref.Pages != "" {
			tail = append(tail, "pp. "+ref.Pages)
		}
		return strings.TrimSpace(joinNonEmpty(" ", joinNonEmpty(". ", authors, "\""+ref.Title+".\""), em(ref.JournalTitle)+", "+strings.Join(tail, ", ")+"."))

	case manuscript.StyleChicago:
		// Authors. "Title." <em>Journal</em> V, no. N (Year): P.
		journal := em(ref.JournalTitle)
		if ref.Volume != "" {
			journal += " " + ref.Volume
		}
		if ref.Issue != "" {
			journal += ", no. " + ref.Issue
		}
		journal += " (" + year + ")"
		if ref.Pages != "" {
			journal += ": " + ref.Pages
		}
		return strings.TrimSpace(joinNonEmpty(". ", authors, "\""+ref.Title+".\"", journal) + ".")

	case manuscript.StyleIEEE:
		// Authors, "Title," <em>Journal</em>, vol. V, no. N, pp. P, Year.
		var tail []string
		tail = append(tail, em(ref.JournalTitle))
		if ref.Volume != "" {
			tail = append(tail, "vol. "+ref.Volume)
		}
		if ref.Issue != "" {
			tail = append(tail, "no. "+ref.Issue)
		}
		if ref.Pages != "" {
			tail = append(tail, "pp. "+ref.Pages)
		}
		tail = append(tail, year)
		s := joinNonEmpty(", ", authors, "\""+ref.Title+",\"", strings.Join(tail, ", ")) + "."
		if doi != "" {
			s += " " + doi
		}
		return strings.TrimSpace(s)

	case manuscript.StyleHarvard:
		// Authors (Year) 'Title', <em>Journal</em>, V(N), pp. P.
		s := ""
		if authors != "" {
			s = authors + " (" + year + ") "
		}
		s += "'" + ref.Title + "', " + em(ref.JournalTitle)
		if volIssue != "" {
			s += ", " + volIssue
		}
		if ref.Pages != "" {
			s += ", pp. " + ref.Pages
		}
		return strings.TrimSpace(s + ".")

	case manuscript.StyleVancouver, manuscript.StyleAMA:
		// Authors. Title. Journal. Year;V(N):P. doi
		journal := ref.JournalTitle
		if style == manuscript.StyleAMA {
			journal = em(ref.JournalTitle)
		}
		cite := year
		if volIssue != "" {
			cite += ";" + volIssue
		}
		if ref.Pages != "" {
			cite += ":" + ref.Pages
		}
		s := joinNonEmpty(". ", authors, ref.Title, journal, cite) + "."
		if doi != "" {
			s += " " + doi
		}
		return strings.TrimSpace(s)
	}
	return fallbackFormat(ref)
}

func formatWebsite(ref manuscript.Reference, style manuscript.CitationStyle) string {
	authors := authorsOrTitle(ref, style)
	year := yearOrND(ref.Year)

	switch style {
	case manuscript.StyleAPA:
		s := ""
		if authors != "" {
			s = authors + " (" + year + "). "
		}
		s += em(ref.Title) + ". "
		if ref.SiteName != "" {
			s += ref.SiteName + ". "
		}
		if ref.URL != "" {
			s += ref.URL
		}
		return strings.TrimSpace(s)

	case manuscript.StyleMLA:
		var tail []string
		if ref.SiteName != "" {
			tail = append(tail, em(ref.SiteName))
		}
		tail = append(tail, year)
		if ref.URL != "" {
			tail = append(tail, ref.URL)
		}
		s := joinNonEmpty(". ", authors, "\""+ref.Title+".\"", strings.Join(tail, ", ")) + "."
		if ref.AccessedDate != "" {
			s += " Accessed " + ref.AccessedDate + "."
		}
		return strings.TrimSpace(s)

	case manuscript.StyleChicago:
		s := joinNonEmpty(". ", authors, "\""+ref.Title+".\"", ref.SiteName, year)
		if ref.URL != "" {
			s += ". " + ref.URL
		}
		return strings.TrimSpace(s + ".")

	case manuscript.StyleIEEE:
		s := joinNonEmpty(", ", authors, "\""+ref.Title+",\"", ref.SiteName, year) + "."
		if ref.URL != "" {
			s += " [Online]. Available: " + ref.URL
		}
		return strings.TrimSpace(s)

	case manuscript.StyleHarvard:
		s := ""
		if authors != "" {
			s = authors + " (" + year + ") "
		}
		s += em(ref.Title) + "."
		if ref.URL != "" {
			s += " Available at: " + ref.URL
		}
		if ref.AccessedDate != "" {
			s += " (Accessed: " + ref.AccessedDate + ")"
		}
		return strings.TrimSpace(s + ".")

	case manuscript.StyleVancouver, manuscript.StyleAMA:
		s := joinNonEmpty(". ", authors, ref.Title, ref.SiteName, year) + "."
		if ref.URL != "" {
			s += " Available from: " + ref.URL
		}
		return strings.TrimSpace(s)
	}
	return fallbackFormat(ref)
}

// formatPeriodical handles newspaper and magazine articles, which share a
// shape: quoted article title, italicized publication name.
func formatPeriodical(ref manuscript.Reference, style manuscript.CitationStyle) string {
	authors := authorsOrTitle(ref, style)
	year := yearOrND(ref.Year)
	pubName := ref.JournalTitle
	if pubName == "" {
		pubName = ref.SiteName
	}

	switch style {
	case manuscript.StyleAPA:
		s := ""
		if authors != "" {
			s = authors + " (" + year + "). "
		}
		s += ref.Title + ". " + em(pubName) + "."
		if ref.Pages != "" {
			s = strings.TrimSuffix(s, ".") + ", " + ref.Pages + "."
		}
		if ref.URL != "" {
			s += " " + ref.URL
		}
		return strings.TrimSpace(s)

	case manuscript.StyleMLA:
		tail := joinNonEmpty(", ", em(pubName), year, ref.Pages)
		return strings.TrimSpace(joinNonEmpty(". ", authors, "\""+ref.Title+".\"", tail) + ".")

	case manuscript.StyleChicago:
		return strings.TrimSpace(joinNonEmpty(". ", authors, "\""+ref.Title+".\"", em(pubName), year) + ".")

	case manuscript.StyleIEEE:
		return strings.TrimSpace(joinNonEmpty(", ", authors, "\""+ref.Title+",\"", em(pubName), ref.Pages, year) + ".")

	case manuscript.StyleHarvard:
		s := ""
		if authors != "" {
			s = authors + " (" + year + ") "
		}
		s += "'" + ref.Title + "', " + em(pubName)
		if ref.Pages != "" {
			s += ", p. " + ref.Pages
		}
		return strings.TrimSpace(s + ".")

	case manuscript.StyleVancouver, manuscript.StyleAMA:
		cite := year
		if ref.Pages != "" {
			cite += ":" + ref.Pages
		}
		return strings.TrimSpace(joinNonEmpty(". ", authors, ref.Title, pubName, cite) + ".")
	}
	return fallbackFormat(ref)
}

func formatConference(ref manuscript.Reference, style manuscript.CitationStyle) string {
	authors := authorsOrTitle(ref, style)
	year := yearOrND(ref.Year)

	switch style {
	case manuscript.StyleAPA:
		s := ""
		if authors != "" {
			s = authors + " (" + year + "). "
		}
		s += em(ref.Title) + " [Paper presentation]. "
		s += joinNonEmpty(", ", ref.ConferenceName, ref.Place) + "."
		return strings.TrimSpace(s)

	case manuscript.StyleMLA:
		tail := joinNonEmpty(", ", ref.ConferenceName, ref.Place, year)
		return strings.TrimSpace(joinNonEmpty(". ", authors, "\""+ref.Title+".\"", tail) + ".")

	case manuscript.StyleChicago:
		tail := "Paper presented at " + joinNonEmpty(", ", ref.ConferenceName, ref.Place, year)
		return strings.TrimSpace(joinNonEmpty(". ", authors, "\""+ref.Title+".\"", tail) + ".")

	case manuscript.StyleIEEE:
		tail := joinNonEmpty(", ", "in "+em("Proc. "+ref.ConferenceName), ref.Place, year)
		if ref.Pages != "" {
			tail += ", pp. " + ref.Pages
		}
		return strings.TrimSpace(joinNonEmpty(", ", authors, "\""+ref.Title+",\"", tail) + ".")

	case manuscript.StyleHarvard:
		s := ""
		if authors != "" {
			s = authors + " (" + year + ") "
		}
		s += "'" + ref.Title + "', " + joinNonEmpty(", ", ref.ConferenceName, ref.Place)
		return strings.TrimSpace(s + ".")

	case manuscript.StyleVancouver, manuscript.StyleAMA:
		tail := "Paper presented at: " + joinNonEmpty("; ", ref.ConferenceName, joinNonEmpty(", ", year, ref.Place))
		return strings.TrimSpace(joinNonEmpty(". ", authors, ref.Title, tail) + ".")
	}
	return fallbackFormat(ref)
}

func formatThesis(ref manuscript.Reference, style manuscript.CitationStyle) string {
	authors := authorsOrTitle(ref, style)
	year := yearOrND(ref.Year)
	kind := ref.ThesisType
	if kind == "" {
		kind = "Doctoral dissertation"
	}

	switch style {
	case manuscript.StyleAPA:
		s := ""
		if authors != "" {
			s = authors + " (" + year + "). "
		}
		s += em(ref.Title) + " [" + kind + ", " + ref.Institution + "]."
		return strings.TrimSpace(s)

	case manuscript.StyleMLA:
		tail := joinNonEmpty(", ", ref.Institution, year) + ". " + kind
		return strings.TrimSpace(joinNonEmpty(". ", authors, em(ref.Title), tail) + ".")

	case manuscript.StyleChicago:
		tail := "\"" + ref.Title + ".\" " + joinNonEmpty(", ", kind, ref.Institution, year)
		return strings.TrimSpace(joinNonEmpty(". ", authors, tail) + ".")

	case manuscript.StyleIEEE:
		return strings.TrimSpace(joinNonEmpty(", ", authors, "\""+ref.Title+",\"", kind, ref.Institution, year) + ".")

	case manuscript.StyleHarvard:
		s := ""
		if authors != "" {
			s = authors + " (" + year + ") "
		}
		s += em(ref.Title) + ". " + joinNonEmpty(". ", kind, ref.Institution)
		return strings.TrimSpace(s + ".")

	case manuscript.StyleVancouver, manuscript.StyleAMA:
		tail := "[" + strings.ToLower(kind) + "]. " + joinNonEmpty("; ", ref.Institution, year)
		return strings.TrimSpace(joinNonEmpty(". ", authors, ref.Title, tail) + ".")
	}
	return fallbackFormat(ref)
}

func formatReport(ref manuscript.Reference, style manuscript.CitationStyle) string {
	authors := authorsOrTitle(ref, style)
	year := yearOrND(ref.Year)
	num := ref.ReportNumber
	inst := ref.Institution
	if inst == "" {
		inst = ref.Publisher
	}

	switch style {
	case manuscript.StyleAPA:
		s := ""
		if authors != "" {
			s = authors + " (" + year + "). "
		}
		title := em(ref.Title)
		if num != "" {
			title += " (Report No. " + num + ")"
		}
		s += title + ". "
		if inst != "" {
			s += inst + "."
		}
		return strings.TrimSpace(s)

	case manuscript.StyleMLA:
		tail := joinNonEmpty(", ", inst, year)
		return strings.TrimSpace(joinNonEmpty(". ", authors, em(ref.Title), tail) + ".")

	case manuscript.StyleChicago:
		return strings.TrimSpace(joinNonEmpty(". ", authors, em(ref.Title), joinNonEmpty(", ", inst, year)) + ".")

	case manuscript.StyleIEEE:
		var tail []string
		if inst != "" {
			tail = append(tail, inst)
		}
		if num != "" {
			tail = append(tail, "Rep. "+num)
		}
		tail = append(tail, year)
		return strings.TrimSpace(joinNonEmpty(", ", authors, "\""+ref.Title+",\"", strings.Join(tail, ", ")) + ".")

	case manuscript.StyleHarvard:
		s := ""
		if authors != "" {
			s = authors + " (" + year + ") "
		}
		s += em(ref.Title) + "."
		if inst != "" {
			s += " " + inst + "."
		}
		return strings.TrimSpace(s)

	case manuscript.StyleVancouver, manuscript.StyleAMA:
		tail := joinNonEmpty("; ", inst, year)
		if num != "" {
			tail += ". Report No.: " + num
		}
		return strings.TrimSpace(joinNonEmpty(". ", authors, ref.Title, tail) + ".")
	}
	return fallbackFormat(ref)
}

func formatPatent(ref manuscript.Reference, style manuscript.CitationStyle) string {
	authors := authorsOrTitle(ref, style)
	year := yearOrND(ref.Year)
	num := ref.PatentNumber

	switch style {
	case manuscript.StyleAPA:
		s := ""
		if authors != "" {
			s = authors + " (" + year + "). "
		}
		s += em(ref.Title) + " (Patent No. " + num + ")."
		return strings.TrimSpace(s)
	case manuscript.StyleIEEE:
		return strings.TrimSpace(joinNonEmpty(", ", authors, "\""+ref.Title+",\"", "Patent "+num, year) + ".")
	default:
		tail := joinNonEmpty(", ", "Patent "+num, year)
		return strings.TrimSpace(joinNonEmpty(". ", authors, em(ref.Title), tail) + ".")
	}
}

func formatVideo(ref manuscript.Reference, style manuscript.CitationStyle) string {
	authors := authorsOrTitle(ref, style)
	year := yearOrND(ref.Year)
	platform := ref.Platform
	if platform == "" {
		platform = ref.SiteName
	}

	switch style {
	case manuscript.StyleAPA:
		s := ""
		if authors != "" {
			s = authors + " (" + year + "). "
		}
		s += em(ref.Title) + " [Video]. "
		if platform != "" {
			s += platform + ". "
		}
		if ref.URL != "" {
			s += ref.URL
		}
		return strings.TrimSpace(s)
	case manuscript.StyleMLA:
		tail := joinNonEmpty(", ", em(platform), year, ref.URL)
		return strings.TrimSpace(joinNonEmpty(". ", authors, "\""+ref.Title+".\"", tail) + ".")
	default:
		tail := joinNonEmpty(", ", "[Video]", platform, year)
		s := joinNonEmpty(". ", authors, ref.Title, tail) + "."
		if ref.URL != "" {
			s += " " + ref.URL
		}
		return strings.TrimSpace(s)
	}
}

func formatPodcast(ref manuscript.Reference, style manuscript.CitationStyle) string {
	authors := authorsOrTitle(ref, style)
	year := yearOrND(ref.Year)

	switch style {
	case manuscript.StyleAPA:
		s := ""
		if authors != "" {
			s = authors + " (Host). (" + year + "). "
		}
		s += ref.Title + " [Audio podcast episode]. "
		if ref.SiteName != "" {
			s += "In " + em(ref.SiteName) + ". "
		}
		if ref.URL != "" {
			s += ref.URL
		}
		return strings.TrimSpace(s)
	case manuscript.StyleMLA:
		tail := joinNonEmpty(", ", em(ref.SiteName), year, ref.URL)
		return strings.TrimSpace(joinNonEmpty(". ", authors, "\""+ref.Title+".\"", tail) + ".")
	default:
		tail := joinNonEmpty(", ", "[Podcast]", ref.SiteName, year)
		s := joinNonEmpty(". ", authors, ref.Title, tail) + "."
		if ref.URL != "" {
			s += " " + ref.URL
		}
		return strings.TrimSpace(s)
	}
}

func formatInterview(ref manuscript.Reference, style manuscript.CitationStyle) string {
	authors := authorsOrTitle(ref, style)
	year := yearOrND(ref.Year)
	by := ""
	if ref.Interviewer != "" {
		by = "Interview by " + ref.Interviewer
	}

	switch style {
	case manuscript.StyleAPA:
		s := ""
		if authors != "" {
			s = authors + " (" + year + "). "
		}
		s += em(ref.Title) + " [Interview]."
		if by != "" {
			s += " " + by + "."
		}
		return strings.TrimSpace(s)
	default:
		tail := joinNonEmpty(". ", by, joinNonEmpty(", ", ref.Medium, year))
		return strings.TrimSpace(joinNonEmpty(". ", authors, "\""+ref.Title+".\"", tail) + ".")
	}
}

func formatGovernment(ref manuscript.Reference, style manuscript.CitationStyle) string {
	authors := authorsOrTitle(ref, style)
	year := yearOrND(ref.Year)
	agency := ref.Agency
	if agency == "" {
		agency = ref.Publisher
	}

	switch style {
	case manuscript.StyleAPA:
		lead := authors
		if lead == "" {
			lead = agency
		}
		s := lead + " (" + year + "). " + em(ref.Title) + "."
		if ref.ReportNumber != "" {
			s = strings.TrimSuffix(s, ".") + " (" + ref.ReportNumber + ")."
		}
		if authors != "" && agency != "" {
			s += " " + agency + "."
		}
		return strings.TrimSpace(s)
	case manuscript.StyleIEEE:
		return strings.TrimSpace(joinNonEmpty(", ", authors, em(ref.Title), agency, year) + ".")
	default:
		tail := joinNonEmpty(", ", agency, year)
		return strings.TrimSpace(joinNonEmpty(". ", authors, em(ref.Title), tail) + ".")
	}
}

func formatLegal(ref manuscript.Reference, style manuscript.CitationStyle) string {
	year := yearOrND(ref.Year)
	cite := joinNonEmpty(", ", ref.CaseNumber, ref.Court)

	// Legal citations keep one shape across styles: case name, citation,
	// court and year.
	s := em(ref.Title)
	if cite != "" {
		s += ", " + cite
	}
	s += " (" + year + ")."
	_ = style
	return s
}

func formatSoftware(ref manuscript.Reference, style manuscript.CitationStyle) string {
	authors := authorsOrTitle(ref, style)
	year := yearOrND(ref.Year)
	title := ref.Title
	if ref.Version != "" {
		title += " (Version " + ref.Version + ")"
	}

	switch style {
	case manuscript.StyleAPA:
		s := ""
		if authors != "" {
			s = authors + " (" + year + "). "
		}
		s += em(title) + " [Computer software]. "
		if ref.Repository != "" {
			s += ref.Repository + ". "
		}
		if ref.URL != "" {
			s += ref.URL
		}
		return strings.TrimSpace(s)
	default:
		tail := joinNonEmpty(", ", "[Software]", ref.Repository, year)
		s := joinNonEmpty(". ", authors, title, tail) + "."
		if ref.URL != "" {
			s += " " + ref.URL
		}
		return strings.TrimSpace(s)
	}
}

func formatDataset(ref manuscript.Reference, style manuscript.CitationStyle) string {
	authors := authorsOrTitle(ref, style)
	year := yearOrND(ref.Year)

	switch style {
	case manuscript.StyleAPA:
		s := ""
		if authors != "" {
			s = authors + " (" + year + "). "
		}
		s += em(ref.Title) + " [Data set]. "
		if ref.Repository != "" {
			s += ref.Repository + ". "
		}
		if doi := doiSuffix(ref.DOI); doi != "" {
			s += doi
		}
		return strings.TrimSpace(s)
	default:
		tail := joinNonEmpty(", ", "[Dataset]", ref.Repository, year)
		s := joinNonEmpty(". ", authors, em(ref.Title), tail) + "."
		if doi := doiSuffix(ref.DOI); doi != "" {
			s += " " + doi
		}
		return strings.TrimSpace(s)
	}
}

func formatPresentation(ref manuscript.Reference, style manuscript.CitationStyle) string {
	authors := authorsOrTitle(ref, style)
	year := yearOrND(ref.Year)
	venue := ref.ConferenceName
	if venue == "" {
		venue = ref.Place
	}

	switch style {
	case manuscript.StyleAPA:
		s := ""
		if authors != "" {
			s = authors + " (" + year + "). "
		}
		s += em(ref.Title) + " [Presentation]."
		if venue != "" {
			s += " " + venue + "."
		}
		return strings.TrimSpace(s)
	default:
		tail := joinNonEmpty(", ", venue, ref.EventDate, year)
		return strings.TrimSpace(joinNonEmpty(". ", authors, "\""+ref.Title+".\"", tail) + ".")
	}
}

// formatUnpublished handles unpublished manuscripts.
func formatUnpublished(ref manuscript.Reference, style manuscript.CitationStyle) string {
	authors := authorsOrTitle(ref, style)
	year := yearOrND(ref.Year)

	switch style {
	case manuscript.StyleAPA:
		s := ""
		if authors != "" {
			s = authors + " (" + year + "). "
		}
		s += em(ref.Title) + " [Unpublished manuscript]."
		if ref.Institution != "" {
			s += " " + ref.Institution + "."
		}
		return strings.TrimSpace(s)
	default:
		tail := joinNonEmpty(", ", "Unpublished manuscript", ref.Institution, year)
		return strings.TrimSpace(joinNonEmpty(". ", authors, em(ref.Title), tail) + ".")
	}
}

func formatArchive(ref manuscript.Reference, style manuscript.CitationStyle) string {
	authors := authorsOrTitle(ref, style)
	year := yearOrND(ref.Year)
	loc := joinNonEmpty(", ", ref.CollectionID, ref.ArchiveName, ref.Place)

	switch style {
	case manuscript.StyleAPA:
		s := ""
		if authors != "" {
			s = authors + " (" + year + "). "
		}
		s += em(ref.Title) + "."
		if loc != "" {
			s += " " + loc + "."
		}
		return strings.TrimSpace(s)
	default:
		tail := joinNonEmpty(", ", loc, year)
		return strings.TrimSpace(joinNonEmpty(". ", authors, "\""+ref.Title+".\"", tail) + ".")
	}
}

func formatPersonal(ref manuscript.Reference, style manuscript.CitationStyle) string {
	authors := authorsOrTitle(ref, style)
	year := yearOrND(ref.Year)
	kind := ref.Communication
	if kind == "" {
		kind = "personal communication"
	}

	// Personal communications keep one shape across styles.
	_ = style
	s := joinNonEmpty(". ", authors, ref.Title)
	if s != "" {
		s += " "
	}
	s += "[" + kind + "], " + year + "."
	return strings.TrimSpace(s)
}

// fallbackFormat is the generic "{title} ({year})" rendering used for
// unhandled type/style combinations.
func fallbackFormat(ref manuscript.Reference) string {
	return fmt.Sprintf("%s (%s)", ref.Title, yearOrND(ref.Year))
}
