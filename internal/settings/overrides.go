package settings

import (
	"github.com/jackzampolin/bookpress/internal/numbering"
)

// Overrides is the partially specified form of Settings used for user
// input and presets. Nil fields mean "not specified"; merge precedence is
// user override, then book-type preset, then style preset, then Default.
// The pointer fields make an explicit false or zero distinguishable from
// an absent value, which plain structs cannot do.
type Overrides struct {
	TrimSizeName *string             `json:"trimSize,omitempty" yaml:"trimSize,omitempty"`
	CustomTrim   *TrimSize           `json:"customTrim,omitempty" yaml:"customTrim,omitempty"`
	Orientation  *Orientation        `json:"orientation,omitempty" yaml:"orientation,omitempty"`
	Margins      *MarginsOverride    `json:"margins,omitempty" yaml:"margins,omitempty"`
	Typography   *TypographyOverride `json:"typography,omitempty" yaml:"typography,omitempty"`
	Chapters     *ChaptersOverride   `json:"chapters,omitempty" yaml:"chapters,omitempty"`
	HeaderFooter *HeaderFooterOverride `json:"headerFooter,omitempty" yaml:"headerFooter,omitempty"`
	FrontMatter  *FrontMatterOverride  `json:"frontMatter,omitempty" yaml:"frontMatter,omitempty"`
	BackMatter   *BackMatterOverride   `json:"backMatter,omitempty" yaml:"backMatter,omitempty"`
	Export       *ExportOverride       `json:"export,omitempty" yaml:"export,omitempty"`
	ISBN         *string               `json:"isbn,omitempty" yaml:"isbn,omitempty"`
	Publisher    *string               `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	Language     *string               `json:"language,omitempty" yaml:"language,omitempty"`
	BookType     *BookType             `json:"bookType,omitempty" yaml:"bookType,omitempty"`
	StylePreset  *StylePreset          `json:"stylePreset,omitempty" yaml:"stylePreset,omitempty"`
}

// MarginsOverride is the optional-field form of Margins.
type MarginsOverride struct {
	Top           *float64 `json:"top,omitempty" yaml:"top,omitempty"`
	Bottom        *float64 `json:"bottom,omitempty" yaml:"bottom,omitempty"`
	Inside        *float64 `json:"inside,omitempty" yaml:"inside,omitempty"`
	Outside       *float64 `json:"outside,omitempty" yaml:"outside,omitempty"`
	Bleed         *float64 `json:"bleed,omitempty" yaml:"bleed,omitempty"`
	HeaderSpace   *float64 `json:"headerSpace,omitempty" yaml:"headerSpace,omitempty"`
	FooterSpace   *float64 `json:"footerSpace,omitempty" yaml:"footerSpace,omitempty"`
	MirrorMargins *bool    `json:"mirrorMargins,omitempty" yaml:"mirrorMargins,omitempty"`
}

// TypographyOverride is the optional-field form of Typography.
type TypographyOverride struct {
	BodyFont        *string    `json:"bodyFont,omitempty" yaml:"bodyFont,omitempty"`
	HeadingFont     *string    `json:"headingFont,omitempty" yaml:"headingFont,omitempty"`
	BodyFontSize    *float64   `json:"bodyFontSize,omitempty" yaml:"bodyFontSize,omitempty"`
	LineHeight      *float64   `json:"lineHeight,omitempty" yaml:"lineHeight,omitempty"`
	Alignment       *Alignment `json:"alignment,omitempty" yaml:"alignment,omitempty"`
	ParagraphIndent *float64   `json:"paragraphIndent,omitempty" yaml:"paragraphIndent,omitempty"`
	DropCaps        *bool      `json:"dropCaps,omitempty" yaml:"dropCaps,omitempty"`
	DropCapLines    *int       `json:"dropCapLines,omitempty" yaml:"dropCapLines,omitempty"`
	Hyphenation     *bool      `json:"hyphenation,omitempty" yaml:"hyphenation,omitempty"`
	WidowControl    *bool      `json:"widowControl,omitempty" yaml:"widowControl,omitempty"`
	OrphanControl   *bool      `json:"orphanControl,omitempty" yaml:"orphanControl,omitempty"`
}

// ChaptersOverride is the optional-field form of ChapterSettings.
type ChaptersOverride struct {
	NumberingStyle   *numbering.Style           `json:"numberingStyle,omitempty" yaml:"numberingStyle,omitempty"`
	NumberPosition   *NumberPosition            `json:"numberPosition,omitempty" yaml:"numberPosition,omitempty"`
	NumberLabel      *string                    `json:"numberLabel,omitempty" yaml:"numberLabel,omitempty"`
	TitleCase        *TitleCase                 `json:"titleCase,omitempty" yaml:"titleCase,omitempty"`
	OrnamentStyle    *numbering.OrnamentStyle   `json:"ornamentStyle,omitempty" yaml:"ornamentStyle,omitempty"`
	OrnamentPosition *OrnamentPosition          `json:"ornamentPosition,omitempty" yaml:"ornamentPosition,omitempty"`
	SceneBreakStyle  *numbering.SceneBreakStyle `json:"sceneBreakStyle,omitempty" yaml:"sceneBreakStyle,omitempty"`
	CustomSceneBreak *string                    `json:"customSceneBreak,omitempty" yaml:"customSceneBreak,omitempty"`
	DropFromTop      *float64                   `json:"dropFromTop,omitempty" yaml:"dropFromTop,omitempty"`
	StartOnOddPage   *bool                      `json:"startOnOddPage,omitempty" yaml:"startOnOddPage,omitempty"`
}

// HeaderFooterOverride is the optional-field form of HeaderFooter.
type HeaderFooterOverride struct {
	HeadersEnabled      *bool            `json:"headersEnabled,omitempty" yaml:"headersEnabled,omitempty"`
	FootersEnabled      *bool            `json:"footersEnabled,omitempty" yaml:"footersEnabled,omitempty"`
	HeaderLeft          *HeaderContent   `json:"headerLeft,omitempty" yaml:"headerLeft,omitempty"`
	HeaderCenter        *HeaderContent   `json:"headerCenter,omitempty" yaml:"headerCenter,omitempty"`
	HeaderRight         *HeaderContent   `json:"headerRight,omitempty" yaml:"headerRight,omitempty"`
	FooterLeft          *HeaderContent   `json:"footerLeft,omitempty" yaml:"footerLeft,omitempty"`
	FooterCenter        *HeaderContent   `json:"footerCenter,omitempty" yaml:"footerCenter,omitempty"`
	FooterRight         *HeaderContent   `json:"footerRight,omitempty" yaml:"footerRight,omitempty"`
	Font                *string          `json:"font,omitempty" yaml:"font,omitempty"`
	FontSize            *float64         `json:"fontSize,omitempty" yaml:"fontSize,omitempty"`
	Mirrored            *bool            `json:"mirrored,omitempty" yaml:"mirrored,omitempty"`
	PageNumberStyle     *PageNumberStyle `json:"pageNumberStyle,omitempty" yaml:"pageNumberStyle,omitempty"`
	FrontMatterNumStyle *PageNumberStyle `json:"frontMatterNumberingStyle,omitempty" yaml:"frontMatterNumberingStyle,omitempty"`
	ShowFirstPageNumber *bool            `json:"showFirstPageNumber,omitempty" yaml:"showFirstPageNumber,omitempty"`
}

// FrontMatterOverride is the optional-field form of FrontMatter.
type FrontMatterOverride struct {
	IncludeHalfTitle  *bool   `json:"includeHalfTitle,omitempty" yaml:"includeHalfTitle,omitempty"`
	IncludeTitlePage  *bool   `json:"includeTitlePage,omitempty" yaml:"includeTitlePage,omitempty"`
	IncludeCopyright  *bool   `json:"includeCopyright,omitempty" yaml:"includeCopyright,omitempty"`
	IncludeDedication *bool   `json:"includeDedication,omitempty" yaml:"includeDedication,omitempty"`
	IncludeTOC        *bool   `json:"includeTOC,omitempty" yaml:"includeTOC,omitempty"`
	DedicationText    *string `json:"dedicationText,omitempty" yaml:"dedicationText,omitempty"`
	CopyrightHolder   *string `json:"copyrightHolder,omitempty" yaml:"copyrightHolder,omitempty"`
	CopyrightYear     *int    `json:"copyrightYear,omitempty" yaml:"copyrightYear,omitempty"`
}

// BackMatterOverride is the optional-field form of BackMatter.
type BackMatterOverride struct {
	IncludeAboutAuthor     *bool     `json:"includeAboutAuthor,omitempty" yaml:"includeAboutAuthor,omitempty"`
	IncludeAlsoBy          *bool     `json:"includeAlsoBy,omitempty" yaml:"includeAlsoBy,omitempty"`
	IncludeAcknowledgments *bool     `json:"includeAcknowledgments,omitempty" yaml:"includeAcknowledgments,omitempty"`
	AboutAuthorText        *string   `json:"aboutAuthorText,omitempty" yaml:"aboutAuthorText,omitempty"`
	AlsoByTitles           *[]string `json:"alsoByTitles,omitempty" yaml:"alsoByTitles,omitempty"`
	AcknowledgmentsText    *string   `json:"acknowledgmentsText,omitempty" yaml:"acknowledgmentsText,omitempty"`
}

// ExportOverride is the optional-field form of ExportSettings.
type ExportOverride struct {
	PDF    *PDFExportOverride    `json:"pdf,omitempty" yaml:"pdf,omitempty"`
	EPUB   *EPUBExportOverride   `json:"epub,omitempty" yaml:"epub,omitempty"`
	Kindle *KindleExportOverride `json:"kindle,omitempty" yaml:"kindle,omitempty"`
}

// PDFExportOverride is the optional-field form of PDFExport.
type PDFExportOverride struct {
	Quality      *string `json:"quality,omitempty" yaml:"quality,omitempty"`
	ColorProfile *string `json:"colorProfile,omitempty" yaml:"colorProfile,omitempty"`
	IncludeBleed *bool   `json:"includeBleed,omitempty" yaml:"includeBleed,omitempty"`
	CropMarks    *bool   `json:"cropMarks,omitempty" yaml:"cropMarks,omitempty"`
	Optimize     *bool   `json:"optimize,omitempty" yaml:"optimize,omitempty"`
}

// EPUBExportOverride is the optional-field form of EPUBExport.
type EPUBExportOverride struct {
	Version     *string `json:"version,omitempty" yaml:"version,omitempty"`
	FixedLayout *bool   `json:"fixedLayout,omitempty" yaml:"fixedLayout,omitempty"`
}

// KindleExportOverride is the optional-field form of KindleExport.
type KindleExportOverride struct {
	EnhancedTypesetting *bool `json:"enhancedTypesetting,omitempty" yaml:"enhancedTypesetting,omitempty"`
	PageFlip            *bool `json:"pageFlip,omitempty" yaml:"pageFlip,omitempty"`
}

// Pointer helpers for building preset literals.
func strPtr(s string) *string                           { return &s }
func f64Ptr(f float64) *float64                         { return &f }
func intPtr(i int) *int                                 { return &i }
func boolPtr(b bool) *bool                              { return &b }
func alignPtr(a Alignment) *Alignment                   { return &a }
func numStylePtr(s numbering.Style) *numbering.Style    { return &s }
func ornamentPtr(o numbering.OrnamentStyle) *numbering.OrnamentStyle { return &o }
