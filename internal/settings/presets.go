package settings

import (
	"github.com/jackzampolin/bookpress/internal/numbering"
)

// trimSizePresets maps named trim sizes to dimensions in inches.
// Covers the common KDP/IngramSpark sizes.
var trimSizePresets = map[string]TrimSize{
	"5x8":       {Name: "5x8", Width: 5, Height: 8},
	"5.25x8":    {Name: "5.25x8", Width: 5.25, Height: 8},
	"5.5x8.5":   {Name: "5.5x8.5", Width: 5.5, Height: 8.5},
	"6x9":       {Name: "6x9", Width: 6, Height: 9},
	"6.14x9.21": {Name: "6.14x9.21", Width: 6.14, Height: 9.21},
	"7x10":      {Name: "7x10", Width: 7, Height: 10},
	"7.5x9.25":  {Name: "7.5x9.25", Width: 7.5, Height: 9.25},
	"8x10":      {Name: "8x10", Width: 8, Height: 10},
	"8.5x8.5":   {Name: "8.5x8.5", Width: 8.5, Height: 8.5},
	"8.5x11":    {Name: "8.5x11", Width: 8.5, Height: 11},
	"a4":        {Name: "a4", Width: 8.27, Height: 11.69},
	"a5":        {Name: "a5", Width: 5.83, Height: 8.27},
}

// defaultTrimSize is the fallback when a named size cannot be resolved.
// An unresolved lookup must never propagate into page-geometry math.
var defaultTrimSize = TrimSize{Name: "6x9", Width: 6, Height: 9}

// LookupTrimSize resolves a named trim size, falling back to 6x9.
func LookupTrimSize(name string) TrimSize {
	if ts, ok := trimSizePresets[name]; ok {
		return ts
	}
	return defaultTrimSize
}

// TrimSizeNames returns the known preset names.
func TrimSizeNames() []string {
	names := make([]string, 0, len(trimSizePresets))
	for name := range trimSizePresets {
		names = append(names, name)
	}
	return names
}

// bookTypePresets pre-populate trim size, margins, and typography for a
// category of book. They sit between user overrides and style presets in
// the merge order.
var bookTypePresets = map[BookType]Overrides{
	BookTypeNovel: {
		TrimSizeName: strPtr("5.5x8.5"),
		Typography: &TypographyOverride{
			BodyFontSize: f64Ptr(11),
			LineHeight:   f64Ptr(1.4),
			Alignment:    alignPtr(AlignJustify),
		},
	},
	BookTypeNonFiction: {
		TrimSizeName: strPtr("6x9"),
		Typography: &TypographyOverride{
			BodyFontSize: f64Ptr(11.5),
			LineHeight:   f64Ptr(1.5),
		},
	},
	BookTypeTechnical: {
		TrimSizeName: strPtr("7.5x9.25"),
		Margins: &MarginsOverride{
			Inside:  f64Ptr(1.0),
			Outside: f64Ptr(0.75),
		},
		Typography: &TypographyOverride{
			BodyFont:     strPtr("Helvetica"),
			BodyFontSize: f64Ptr(10.5),
			LineHeight:   f64Ptr(1.5),
			Alignment:    alignPtr(AlignLeft),
			Hyphenation:  boolPtr(false),
		},
		Chapters: &ChaptersOverride{
			StartOnOddPage: boolPtr(true),
		},
	},
	BookTypePictureBook: {
		TrimSizeName: strPtr("8.5x8.5"),
		Margins: &MarginsOverride{
			Top:     f64Ptr(0.5),
			Bottom:  f64Ptr(0.5),
			Inside:  f64Ptr(0.625),
			Outside: f64Ptr(0.5),
			Bleed:   f64Ptr(0.125),
		},
		Typography: &TypographyOverride{
			BodyFontSize: f64Ptr(16),
			LineHeight:   f64Ptr(1.6),
			Alignment:    alignPtr(AlignLeft),
		},
	},
	BookTypePoetry: {
		TrimSizeName: strPtr("5.5x8.5"),
		Typography: &TypographyOverride{
			Alignment:       alignPtr(AlignLeft),
			ParagraphIndent: f64Ptr(0),
			Hyphenation:     boolPtr(false),
		},
	},
	BookTypeMemoir: {
		TrimSizeName: strPtr("5.25x8"),
		Typography: &TypographyOverride{
			BodyFontSize: f64Ptr(11),
			LineHeight:   f64Ptr(1.45),
		},
	},
}

// stylePresets apply a typographic flavor below book-type defaults.
var stylePresets = map[StylePreset]Overrides{
	StyleClassic: {
		Typography: &TypographyOverride{
			BodyFont:    strPtr("Garamond"),
			HeadingFont: strPtr("Garamond"),
		},
		Chapters: &ChaptersOverride{
			NumberingStyle: numStylePtr(numbering.StyleNumeric),
		},
	},
	StyleModern: {
		Typography: &TypographyOverride{
			BodyFont:    strPtr("Palatino"),
			HeadingFont: strPtr("Helvetica"),
			LineHeight:  f64Ptr(1.5),
		},
		Chapters: &ChaptersOverride{
			NumberPosition: numberPosPtr(NumberBeforeTitle),
		},
	},
	StyleMinimal: {
		Typography: &TypographyOverride{
			BodyFont:        strPtr("Helvetica"),
			HeadingFont:     strPtr("Helvetica"),
			ParagraphIndent: f64Ptr(0),
			DropCaps:        boolPtr(false),
		},
		Chapters: &ChaptersOverride{
			NumberLabel:   strPtr(""),
			OrnamentStyle: ornamentPtr(numbering.OrnamentNone),
		},
	},
	StyleElegant: {
		Typography: &TypographyOverride{
			BodyFont:    strPtr("Baskerville"),
			HeadingFont: strPtr("Baskerville"),
			DropCaps:    boolPtr(true),
		},
		Chapters: &ChaptersOverride{
			NumberingStyle: numStylePtr(numbering.StyleRoman),
			OrnamentStyle:  ornamentPtr(numbering.OrnamentFleuron),
		},
	},
	StyleBold: {
		Typography: &TypographyOverride{
			HeadingFont:  strPtr("Helvetica"),
			BodyFontSize: f64Ptr(12),
		},
		Chapters: &ChaptersOverride{
			TitleCase: titleCasePtr(CaseUpper),
		},
	},
	StyleAcademic: {
		Typography: &TypographyOverride{
			BodyFont:     strPtr("Times"),
			HeadingFont:  strPtr("Times"),
			BodyFontSize: f64Ptr(11),
			LineHeight:   f64Ptr(1.6),
		},
		Chapters: &ChaptersOverride{
			NumberPosition: numberPosPtr(NumberBeforeTitle),
		},
	},
	StyleChildrens: {
		Typography: &TypographyOverride{
			BodyFont:     strPtr("Comic Sans"),
			BodyFontSize: f64Ptr(14),
			LineHeight:   f64Ptr(1.7),
			Alignment:    alignPtr(AlignLeft),
		},
		Chapters: &ChaptersOverride{
			NumberingStyle: numStylePtr(numbering.StyleWord),
		},
	},
}

func numberPosPtr(p NumberPosition) *NumberPosition { return &p }
func titleCasePtr(c TitleCase) *TitleCase           { return &c }
