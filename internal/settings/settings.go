// Package settings defines the PublishingSettings model and resolves user
// overrides against book-type, style, and trim-size presets into one fully
// populated value. Resolution is pure: the same input always yields the
// same resolved settings, and every numeric field is guarded against
// non-finite or out-of-range values before it can reach layout math.
package settings

import (
	"github.com/jackzampolin/bookpress/internal/numbering"
)

// Orientation of the page.
type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// BookType selects a bundle of trim/margin/typography defaults.
type BookType string

const (
	BookTypeNovel       BookType = "novel"
	BookTypeNonFiction  BookType = "non-fiction"
	BookTypeTechnical   BookType = "technical"
	BookTypePictureBook BookType = "picture-book"
	BookTypePoetry      BookType = "poetry"
	BookTypeMemoir      BookType = "memoir"
)

// StylePreset selects a typographic flavor applied below book-type defaults.
type StylePreset string

const (
	StyleClassic   StylePreset = "classic"
	StyleModern    StylePreset = "modern"
	StyleMinimal   StylePreset = "minimal"
	StyleElegant   StylePreset = "elegant"
	StyleBold      StylePreset = "bold"
	StyleAcademic  StylePreset = "academic"
	StyleChildrens StylePreset = "childrens"
)

// TrimSize is a page size in inches.
type TrimSize struct {
	Name   string  `json:"name,omitempty" yaml:"name,omitempty"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Margins in inches. Inside/Outside replace fixed left/right so the gutter
// can follow the spine when mirroring is enabled.
type Margins struct {
	Top           float64 `json:"top" yaml:"top"`
	Bottom        float64 `json:"bottom" yaml:"bottom"`
	Inside        float64 `json:"inside" yaml:"inside"`
	Outside       float64 `json:"outside" yaml:"outside"`
	Bleed         float64 `json:"bleed" yaml:"bleed"`
	HeaderSpace   float64 `json:"headerSpace" yaml:"headerSpace"`
	FooterSpace   float64 `json:"footerSpace" yaml:"footerSpace"`
	MirrorMargins bool    `json:"mirrorMargins" yaml:"mirrorMargins"`
}

// Alignment of body text.
type Alignment string

const (
	AlignJustify Alignment = "justify"
	AlignLeft    Alignment = "left"
)

// Typography holds body-text settings.
type Typography struct {
	BodyFont        string    `json:"bodyFont" yaml:"bodyFont"`
	HeadingFont     string    `json:"headingFont" yaml:"headingFont"`
	BodyFontSize    float64   `json:"bodyFontSize" yaml:"bodyFontSize"` // points
	LineHeight      float64   `json:"lineHeight" yaml:"lineHeight"`     // multiplier
	Alignment       Alignment `json:"alignment" yaml:"alignment"`
	ParagraphIndent float64   `json:"paragraphIndent" yaml:"paragraphIndent"` // inches
	DropCaps        bool      `json:"dropCaps" yaml:"dropCaps"`
	DropCapLines    int       `json:"dropCapLines" yaml:"dropCapLines"`
	Hyphenation     bool      `json:"hyphenation" yaml:"hyphenation"`
	WidowControl    bool      `json:"widowControl" yaml:"widowControl"`
	OrphanControl   bool      `json:"orphanControl" yaml:"orphanControl"`
}

// NumberPosition places the chapter number relative to the title.
type NumberPosition string

const (
	NumberAboveTitle  NumberPosition = "above-title"
	NumberBeforeTitle NumberPosition = "before-title"
	NumberBelowTitle  NumberPosition = "below-title"
	NumberHidden      NumberPosition = "none"
)

// TitleCase transforms the displayed chapter title. The underlying data is
// never modified.
type TitleCase string

const (
	CaseAsWritten TitleCase = "as-written"
	CaseUpper     TitleCase = "uppercase"
	CaseLower     TitleCase = "lowercase"
	CaseTitle     TitleCase = "title-case"
)

// OrnamentPosition places the ornament in the chapter heading stack.
type OrnamentPosition string

const (
	OrnamentAboveNumber OrnamentPosition = "above-number"
	OrnamentBetween     OrnamentPosition = "between"
	OrnamentBelowTitle  OrnamentPosition = "below-title"
	OrnamentHidden      OrnamentPosition = "none"
)

// ChapterSettings controls chapter heading assembly and chapter-level page
// behavior.
type ChapterSettings struct {
	NumberingStyle   numbering.Style           `json:"numberingStyle" yaml:"numberingStyle"`
	NumberPosition   NumberPosition            `json:"numberPosition" yaml:"numberPosition"`
	NumberLabel      string                    `json:"numberLabel" yaml:"numberLabel"` // e.g. "Chapter"
	TitleCase        TitleCase                 `json:"titleCase" yaml:"titleCase"`
	OrnamentStyle    numbering.OrnamentStyle   `json:"ornamentStyle" yaml:"ornamentStyle"`
	OrnamentPosition OrnamentPosition          `json:"ornamentPosition" yaml:"ornamentPosition"`
	SceneBreakStyle  numbering.SceneBreakStyle `json:"sceneBreakStyle" yaml:"sceneBreakStyle"`
	CustomSceneBreak string                    `json:"customSceneBreak,omitempty" yaml:"customSceneBreak,omitempty"`
	DropFromTop      float64                   `json:"dropFromTop" yaml:"dropFromTop"` // fraction of content height
	StartOnOddPage   bool                      `json:"startOnOddPage" yaml:"startOnOddPage"`
}

// HeaderContent selects what a header or footer slot displays.
type HeaderContent string

const (
	ContentNone         HeaderContent = "none"
	ContentPageNumber   HeaderContent = "page-number"
	ContentBookTitle    HeaderContent = "book-title"
	ContentAuthor       HeaderContent = "author"
	ContentChapterTitle HeaderContent = "chapter-title"
)

// PageNumberStyle selects how page numbers are rendered.
type PageNumberStyle string

const (
	PageNumArabic     PageNumberStyle = "arabic"
	PageNumRomanLower PageNumberStyle = "roman-lower"
	PageNumRomanUpper PageNumberStyle = "roman-upper"
	PageNumSuppressed PageNumberStyle = "suppressed"
)

// HeaderFooter controls running headers and footers.
type HeaderFooter struct {
	HeadersEnabled      bool            `json:"headersEnabled" yaml:"headersEnabled"`
	FootersEnabled      bool            `json:"footersEnabled" yaml:"footersEnabled"`
	HeaderLeft          HeaderContent   `json:"headerLeft" yaml:"headerLeft"`
	HeaderCenter        HeaderContent   `json:"headerCenter" yaml:"headerCenter"`
	HeaderRight         HeaderContent   `json:"headerRight" yaml:"headerRight"`
	FooterLeft          HeaderContent   `json:"footerLeft" yaml:"footerLeft"`
	FooterCenter        HeaderContent   `json:"footerCenter" yaml:"footerCenter"`
	FooterRight         HeaderContent   `json:"footerRight" yaml:"footerRight"`
	Font                string          `json:"font" yaml:"font"`
	FontSize            float64         `json:"fontSize" yaml:"fontSize"`
	Mirrored            bool            `json:"mirrored" yaml:"mirrored"`
	PageNumberStyle     PageNumberStyle `json:"pageNumberStyle" yaml:"pageNumberStyle"`
	FrontMatterNumStyle PageNumberStyle `json:"frontMatterNumberingStyle" yaml:"frontMatterNumberingStyle"`
	ShowFirstPageNumber bool            `json:"showFirstPageNumber" yaml:"showFirstPageNumber"`
}

// FrontMatter toggles and content for pages before the body.
type FrontMatter struct {
	IncludeHalfTitle  bool   `json:"includeHalfTitle" yaml:"includeHalfTitle"`
	IncludeTitlePage  bool   `json:"includeTitlePage" yaml:"includeTitlePage"`
	IncludeCopyright  bool   `json:"includeCopyright" yaml:"includeCopyright"`
	IncludeDedication bool   `json:"includeDedication" yaml:"includeDedication"`
	IncludeTOC        bool   `json:"includeTOC" yaml:"includeTOC"`
	DedicationText    string `json:"dedicationText,omitempty" yaml:"dedicationText,omitempty"`
	CopyrightHolder   string `json:"copyrightHolder,omitempty" yaml:"copyrightHolder,omitempty"`
	CopyrightYear     int    `json:"copyrightYear,omitempty" yaml:"copyrightYear,omitempty"`
}

// BackMatter toggles and content for pages after the body.
type BackMatter struct {
	IncludeAboutAuthor     bool     `json:"includeAboutAuthor" yaml:"includeAboutAuthor"`
	IncludeAlsoBy          bool     `json:"includeAlsoBy" yaml:"includeAlsoBy"`
	IncludeAcknowledgments bool     `json:"includeAcknowledgments" yaml:"includeAcknowledgments"`
	AboutAuthorText        string   `json:"aboutAuthorText,omitempty" yaml:"aboutAuthorText,omitempty"`
	AlsoByTitles           []string `json:"alsoByTitles,omitempty" yaml:"alsoByTitles,omitempty"`
	AcknowledgmentsText    string   `json:"acknowledgmentsText,omitempty" yaml:"acknowledgmentsText,omitempty"`
}

// PDFExport holds PDF-specific export options.
type PDFExport struct {
	Quality      string `json:"quality" yaml:"quality"` // "print" or "screen"
	ColorProfile string `json:"colorProfile" yaml:"colorProfile"`
	IncludeBleed bool   `json:"includeBleed" yaml:"includeBleed"`
	CropMarks    bool   `json:"cropMarks" yaml:"cropMarks"`
	Optimize     bool   `json:"optimize" yaml:"optimize"`
}

// EPUBExport holds ePub-specific export options.
type EPUBExport struct {
	Version     string `json:"version" yaml:"version"` // "2.0" or "3.0"
	FixedLayout bool   `json:"fixedLayout" yaml:"fixedLayout"`
}

// KindleExport holds Kindle-specific export options.
type KindleExport struct {
	EnhancedTypesetting bool `json:"enhancedTypesetting" yaml:"enhancedTypesetting"`
	PageFlip            bool `json:"pageFlip" yaml:"pageFlip"`
}

// ExportSettings groups per-format options.
type ExportSettings struct {
	PDF    PDFExport    `json:"pdf" yaml:"pdf"`
	EPUB   EPUBExport   `json:"epub" yaml:"epub"`
	Kindle KindleExport `json:"kindle" yaml:"kindle"`
}

// Settings is the fully resolved publishing configuration. Every field
// holds a usable value after Resolve; nothing is optional at this level.
type Settings struct {
	TrimSize     TrimSize        `json:"trimSize" yaml:"trimSize"`
	Orientation  Orientation     `json:"orientation" yaml:"orientation"`
	Margins      Margins         `json:"margins" yaml:"margins"`
	Typography   Typography      `json:"typography" yaml:"typography"`
	Chapters     ChapterSettings `json:"chapters" yaml:"chapters"`
	HeaderFooter HeaderFooter    `json:"headerFooter" yaml:"headerFooter"`
	FrontMatter  FrontMatter     `json:"frontMatter" yaml:"frontMatter"`
	BackMatter   BackMatter      `json:"backMatter" yaml:"backMatter"`
	Export       ExportSettings  `json:"export" yaml:"export"`
	ISBN         string          `json:"isbn,omitempty" yaml:"isbn,omitempty"`
	Publisher    string          `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	Language     string          `json:"language" yaml:"language"`
	BookType     BookType        `json:"bookType" yaml:"bookType"`
	StylePreset  StylePreset     `json:"stylePreset" yaml:"stylePreset"`
}

// Default returns the global hard-coded defaults: a 6x9in trade paperback
// with classic novel typography.
func Default() Settings {
	return Settings{
		TrimSize:    TrimSize{Name: "6x9", Width: 6, Height: 9},
		Orientation: Portrait,
		Margins: Margins{
			Top:         0.75,
			Bottom:      0.75,
			Inside:      0.875,
			Outside:     0.625,
			Bleed:       0,
			HeaderSpace: 0.35,
			FooterSpace: 0.35,
		},
		Typography: Typography{
			BodyFont:        "Garamond",
			HeadingFont:     "Garamond",
			BodyFontSize:    11,
			LineHeight:      1.4,
			Alignment:       AlignJustify,
			ParagraphIndent: 0.3,
			DropCaps:        false,
			DropCapLines:    3,
			Hyphenation:     true,
			WidowControl:    true,
			OrphanControl:   true,
		},
		Chapters: ChapterSettings{
			NumberingStyle:   numbering.StyleNumeric,
			NumberPosition:   NumberAboveTitle,
			NumberLabel:      "Chapter",
			TitleCase:        CaseAsWritten,
			OrnamentStyle:    numbering.OrnamentNone,
			OrnamentPosition: OrnamentHidden,
			SceneBreakStyle:  numbering.SceneBreakAsterisks,
			DropFromTop:      0.33,
			StartOnOddPage:   true,
		},
		HeaderFooter: HeaderFooter{
			HeadersEnabled:      true,
			FootersEnabled:      true,
			HeaderLeft:          ContentAuthor,
			HeaderCenter:        ContentNone,
			HeaderRight:         ContentChapterTitle,
			FooterLeft:          ContentNone,
			FooterCenter:        ContentPageNumber,
			FooterRight:         ContentNone,
			Font:                "Garamond",
			FontSize:            9,
			Mirrored:            true,
			PageNumberStyle:     PageNumArabic,
			FrontMatterNumStyle: PageNumRomanLower,
			ShowFirstPageNumber: false,
		},
		FrontMatter: FrontMatter{
			IncludeTitlePage: true,
			IncludeCopyright: true,
			IncludeTOC:       true,
		},
		BackMatter: BackMatter{},
		Export: ExportSettings{
			PDF:    PDFExport{Quality: "print", ColorProfile: "gray", Optimize: true},
			EPUB:   EPUBExport{Version: "3.0"},
			Kindle: KindleExport{EnhancedTypesetting: true},
		},
		Language:    "en",
		BookType:    BookTypeNovel,
		StylePreset: StyleClassic,
	}
}
