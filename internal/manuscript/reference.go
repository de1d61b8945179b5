package manuscript

// ReferenceType identifies which citation grammar a reference uses.
type ReferenceType string

const (
	RefBook         ReferenceType = "book"
	RefJournal      ReferenceType = "journal"
	RefWebsite      ReferenceType = "website"
	RefNewspaper    ReferenceType = "newspaper"
	RefMagazine     ReferenceType = "magazine"
	RefConference   ReferenceType = "conference"
	RefThesis       ReferenceType = "thesis"
	RefReport       ReferenceType = "report"
	RefPatent       ReferenceType = "patent"
	RefVideo        ReferenceType = "video"
	RefPodcast      ReferenceType = "podcast"
	RefInterview    ReferenceType = "interview"
	RefGovernment   ReferenceType = "government"
	RefLegal        ReferenceType = "legal"
	RefSoftware     ReferenceType = "software"
	RefDataset      ReferenceType = "dataset"
	RefPresentation ReferenceType = "presentation"
	RefManuscript   ReferenceType = "manuscript"
	RefArchive      ReferenceType = "archive"
	RefPersonal     ReferenceType = "personal"
)

// Author is one creator of a reference. Organization, when set, is rendered
// verbatim in every citation style in place of personal-name formatting.
type Author struct {
	FirstName    string `json:"firstName,omitempty" yaml:"firstName,omitempty"`
	MiddleName   string `json:"middleName,omitempty" yaml:"middleName,omitempty"`
	LastName     string `json:"lastName,omitempty" yaml:"lastName,omitempty"`
	Suffix       string `json:"suffix,omitempty" yaml:"suffix,omitempty"`
	Organization string `json:"organization,omitempty" yaml:"organization,omitempty"`
}

// Reference is a bibliography entry. One struct covers all 20 variants; the
// Type tag selects which optional fields the citation grammars read. Title
// and the Authors slice (possibly empty) are required by contract; every
// other field is optional and formatters substitute empty strings or "n.d."
// when absent.
type Reference struct {
	ID      string        `json:"id,omitempty" yaml:"id,omitempty"`
	Type    ReferenceType `json:"type" yaml:"type"`
	Title   string        `json:"title" yaml:"title"`
	Authors []Author      `json:"authors" yaml:"authors"`
	Year    int           `json:"year,omitempty" yaml:"year,omitempty"`

	// Book / report / thesis
	Publisher string `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	Place     string `json:"place,omitempty" yaml:"place,omitempty"`
	Edition   string `json:"edition,omitempty" yaml:"edition,omitempty"`

	// Journal / magazine / newspaper
	JournalTitle string `json:"journalTitle,omitempty" yaml:"journalTitle,omitempty"`
	Volume       string `json:"volume,omitempty" yaml:"volume,omitempty"`
	Issue        string `json:"issue,omitempty" yaml:"issue,omitempty"`
	Pages        string `json:"pages,omitempty" yaml:"pages,omitempty"`
	DOI          string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// Web / media
	URL          string `json:"url,omitempty" yaml:"url,omitempty"`
	SiteName     string `json:"siteName,omitempty" yaml:"siteName,omitempty"`
	AccessedDate string `json:"accessedDate,omitempty" yaml:"accessedDate,omitempty"`
	Platform     string `json:"platform,omitempty" yaml:"platform,omitempty"`
	Duration     string `json:"duration,omitempty" yaml:"duration,omitempty"`

	// Conference / presentation
	ConferenceName string `json:"conferenceName,omitempty" yaml:"conferenceName,omitempty"`
	EventDate      string `json:"eventDate,omitempty" yaml:"eventDate,omitempty"`

	// Thesis / report / government
	Institution  string `json:"institution,omitempty" yaml:"institution,omitempty"`
	ThesisType   string `json:"thesisType,omitempty" yaml:"thesisType,omitempty"`
	ReportNumber string `json:"reportNumber,omitempty" yaml:"reportNumber,omitempty"`
	Agency       string `json:"agency,omitempty" yaml:"agency,omitempty"`

	// Patent / legal
	PatentNumber string `json:"patentNumber,omitempty" yaml:"patentNumber,omitempty"`
	Court        string `json:"court,omitempty" yaml:"court,omitempty"`
	CaseNumber   string `json:"caseNumber,omitempty" yaml:"caseNumber,omitempty"`

	// Software / dataset
	Version    string `json:"version,omitempty" yaml:"version,omitempty"`
	Repository string `json:"repository,omitempty" yaml:"repository,omitempty"`

	// Interview / personal / archive / manuscript
	Interviewer   string `json:"interviewer,omitempty" yaml:"interviewer,omitempty"`
	Medium        string `json:"medium,omitempty" yaml:"medium,omitempty"`
	ArchiveName   string `json:"archiveName,omitempty" yaml:"archiveName,omitempty"`
	CollectionID  string `json:"collectionId,omitempty" yaml:"collectionId,omitempty"`
	Communication string `json:"communication,omitempty" yaml:"communication,omitempty"`
}

// CitationStyle selects a bibliographic formatting grammar.
type CitationStyle string

const (
	StyleAPA       CitationStyle = "apa"
	StyleMLA       CitationStyle = "mla"
	StyleChicago   CitationStyle = "chicago"
	StyleIEEE      CitationStyle = "ieee"
	StyleHarvard   CitationStyle = "harvard"
	StyleVancouver CitationStyle = "vancouver"
	StyleAMA       CitationStyle = "ama"
)

// SortBy selects the bibliography ordering key.
type SortBy string

const (
	SortByAuthor     SortBy = "author"
	SortByDate       SortBy = "date"
	SortByTitle      SortBy = "title"
	SortByType       SortBy = "type"
	SortByAppearance SortBy = "appearance"
)

// NumberingStyle selects how bibliography entries are numbered.
type NumberingStyle string

const (
	NumberingNone       NumberingStyle = "none"
	NumberingNumeric    NumberingStyle = "numeric"
	NumberingAlphabetic NumberingStyle = "alphabetic"
)

// BibliographyConfig controls how the bibliography section is rendered.
type BibliographyConfig struct {
	Enabled        bool           `json:"enabled" yaml:"enabled"`
	CitationStyle  CitationStyle  `json:"citationStyle,omitempty" yaml:"citationStyle,omitempty"`
	SortBy         SortBy         `json:"sortBy,omitempty" yaml:"sortBy,omitempty"`
	SortDirection  string         `json:"sortDirection,omitempty" yaml:"sortDirection,omitempty"`
	NumberingStyle NumberingStyle `json:"numberingStyle,omitempty" yaml:"numberingStyle,omitempty"`
	GroupByType    bool           `json:"groupByType,omitempty" yaml:"groupByType,omitempty"`
	HangingIndent  bool           `json:"hangingIndent,omitempty" yaml:"hangingIndent,omitempty"`
	Location       []string       `json:"location,omitempty" yaml:"location,omitempty"`
}
