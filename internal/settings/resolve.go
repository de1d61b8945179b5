package settings

import (
	"math"
)

// SafeNumber guards a numeric settings value: non-finite or NaN input is
// replaced with def, and out-of-range input is clamped to [min, max].
// Layout math must never see a NaN or Infinity.
func SafeNumber(value, def, min, max float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		value = def
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Resolve merges user overrides with presets into fully populated settings.
// Merge precedence, highest first: explicit user override, book-type preset,
// style preset, global defaults. Every numeric field passes through a
// bounds-and-finiteness guard afterwards. Resolve is pure; the overrides
// value is not modified.
func Resolve(user *Overrides) Settings {
	s := Default()

	// The style and book-type presets are chosen by the user's own
	// bookType/stylePreset fields when present, else the defaults'.
	styleName := s.StylePreset
	bookType := s.BookType
	if user != nil {
		if user.StylePreset != nil {
			styleName = *user.StylePreset
		}
		if user.BookType != nil {
			bookType = *user.BookType
		}
	}

	if preset, ok := stylePresets[styleName]; ok {
		apply(&s, &preset)
	}
	if preset, ok := bookTypePresets[bookType]; ok {
		apply(&s, &preset)
	}
	if user != nil {
		apply(&s, user)
	}

	s.StylePreset = styleName
	s.BookType = bookType
	s.sanitizeNumbers()
	return s
}

// apply copies every specified override field onto s. Later calls win, so
// callers apply lowest-precedence overrides first.
func apply(s *Settings, o *Overrides) {
	if o == nil {
		return
	}
	if o.TrimSizeName != nil {
		s.TrimSize = LookupTrimSize(*o.TrimSizeName)
	}
	if o.CustomTrim != nil {
		s.TrimSize = TrimSize{
			Name:   "custom",
			Width:  o.CustomTrim.Width,
			Height: o.CustomTrim.Height,
		}
	}
	if o.Orientation != nil {
		s.Orientation = *o.Orientation
	}
	applyMargins(&s.Margins, o.Margins)
	applyTypography(&s.Typography, o.Typography)
	applyChapters(&s.Chapters, o.Chapters)
	applyHeaderFooter(&s.HeaderFooter, o.HeaderFooter)
	applyFrontMatter(&s.FrontMatter, o.FrontMatter)
	applyBackMatter(&s.BackMatter, o.BackMatter)
	applyExport(&s.Export, o.Export)
	if o.ISBN != nil {
		s.ISBN = *o.ISBN
	}
	if o.Publisher != nil {
		s.Publisher = *o.Publisher
	}
	if o.Language != nil {
		s.Language = *o.Language
	}
}

func applyMargins(m *Margins, o *MarginsOverride) {
	if o == nil {
		return
	}
	if o.Top != nil {
		m.Top = *o.Top
	}
	if o.Bottom != nil {
		m.Bottom = *o.Bottom
	}
	if o.Inside != nil {
		m.Inside = *o.Inside
	}
	if o.Outside != nil {
		m.Outside = *o.Outside
	}
	if o.Bleed != nil {
		m.Bleed = *o.Bleed
	}
	if o.HeaderSpace != nil {
		m.HeaderSpace = *o.HeaderSpace
	}
	if o.FooterSpace != nil {
		m.FooterSpace = *o.FooterSpace
	}
	if o.MirrorMargins != nil {
		m.MirrorMargins = *o.MirrorMargins
	}
}

func applyTypography(t *Typography, o *TypographyOverride) {
	if o == nil {
		return
	}
	if o.BodyFont != nil {
		t.BodyFont = *o.BodyFont
	}
	if o.HeadingFont != nil {
		t.HeadingFont = *o.HeadingFont
	}
	if o.BodyFontSize != nil {
		t.BodyFontSize = *o.BodyFontSize
	}
	if o.LineHeight != nil {
		t.LineHeight = *o.LineHeight
	}
	if o.Alignment != nil {
		t.Alignment = *o.Alignment
	}
	if o.ParagraphIndent != nil {
		t.ParagraphIndent = *o.ParagraphIndent
	}
	if o.DropCaps != nil {
		t.DropCaps = *o.DropCaps
	}
	if o.DropCapLines != nil {
		t.DropCapLines = *o.DropCapLines
	}
	if o.Hyphenation != nil {
		t.Hyphenation = *o.Hyphenation
	}
	if o.WidowControl != nil {
		t.WidowControl = *o.WidowControl
	}
	if o.OrphanControl != nil {
		t.OrphanControl = *o.OrphanControl
	}
}

func applyChapters(c *ChapterSettings, o *ChaptersOverride) {
	if o == nil {
		return
	}
	if o.NumberingStyle != nil {
		c.NumberingStyle = *o.NumberingStyle
	}
	if o.NumberPosition != nil {
		c.NumberPosition = *o.NumberPosition
	}
	if o.NumberLabel != nil {
		c.NumberLabel = *o.NumberLabel
	}
	if o.TitleCase != nil {
		c.TitleCase = *o.TitleCase
	}
	if o.OrnamentStyle != nil {
		c.OrnamentStyle = *o.OrnamentStyle
	}
	if o.OrnamentPosition != nil {
		c.OrnamentPosition = *o.OrnamentPosition
	}
	if o.SceneBreakStyle != nil {
		c.SceneBreakStyle = *o.SceneBreakStyle
	}
	if o.CustomSceneBreak != nil {
		c.CustomSceneBreak = *o.CustomSceneBreak
	}
	if o.DropFromTop != nil {
		c.DropFromTop = *o.DropFromTop
	}
	if o.StartOnOddPage != nil {
		c.StartOnOddPage = *o.StartOnOddPage
	}
}

func applyHeaderFooter(h *HeaderFooter, o *HeaderFooterOverride) {
	if o == nil {
		return
	}
	if o.HeadersEnabled != nil {
		h.HeadersEnabled = *o.HeadersEnabled
	}
	if o.FootersEnabled != nil {
		h.FootersEnabled = *o.FootersEnabled
	}
	if o.HeaderLeft != nil {
		h.HeaderLeft = *o.HeaderLeft
	}
	if o.HeaderCenter != nil {
		h.HeaderCenter = *o.HeaderCenter
	}
	if o.HeaderRight != nil {
		h.HeaderRight = *o.HeaderRight
	}
	if o.FooterLeft != nil {
		h.FooterLeft = *o.FooterLeft
	}
	if o.FooterCenter != nil {
		h.FooterCenter = *o.FooterCenter
	}
	if o.FooterRight != nil {
		h.FooterRight = *o.FooterRight
	}
	if o.Font != nil {
		h.Font = *o.Font
	}
	if o.FontSize != nil {
		h.FontSize = *o.FontSize
	}
	if o.Mirrored != nil {
		h.Mirrored = *o.Mirrored
	}
	if o.PageNumberStyle != nil {
		h.PageNumberStyle = *o.PageNumberStyle
	}
	if o.FrontMatterNumStyle != nil {
		h.FrontMatterNumStyle = *o.FrontMatterNumStyle
	}
	if o.ShowFirstPageNumber != nil {
		h.ShowFirstPageNumber = *o.ShowFirstPageNumber
	}
}

func applyFrontMatter(f *FrontMatter, o *FrontMatterOverride) {
	if o == nil {
		return
	}
	if o.IncludeHalfTitle != nil {
		f.IncludeHalfTitle = *o.IncludeHalfTitle
	}
	if o.IncludeTitlePage != nil {
		f.IncludeTitlePage = *o.IncludeTitlePage
	}
	if o.IncludeCopyright != nil {
		f.IncludeCopyright = *o.IncludeCopyright
	}
	if o.IncludeDedication != nil {
		f.IncludeDedication = *o.IncludeDedication
	}
	if o.IncludeTOC != nil {
		f.IncludeTOC = *o.IncludeTOC
	}
	if o.DedicationText != nil {
		f.DedicationText = *o.DedicationText
	}
	if o.CopyrightHolder != nil {
		f.CopyrightHolder = *o.CopyrightHolder
	}
	if o.CopyrightYear != nil {
		f.CopyrightYear = *o.CopyrightYear
	}
}

func applyBackMatter(b *BackMatter, o *BackMatterOverride) {
	if o == nil {
		return
	}
	if o.IncludeAboutAuthor != nil {
		b.IncludeAboutAuthor = *o.IncludeAboutAuthor
	}
	if o.IncludeAlsoBy != nil {
		b.IncludeAlsoBy = *o.IncludeAlsoBy
	}
	if o.IncludeAcknowledgments != nil {
		b.IncludeAcknowledgments = *o.IncludeAcknowledgments
	}
	if o.AboutAuthorText != nil {
		b.AboutAuthorText = *o.AboutAuthorText
	}
	if o.AlsoByTitles != nil {
		b.AlsoByTitles = append([]string(nil), (*o.AlsoByTitles)...)
	}
	if o.AcknowledgmentsText != nil {
		b.AcknowledgmentsText = *o.AcknowledgmentsText
	}
}

func applyExport(e *ExportSettings, o *ExportOverride) {
	if o == nil {
		return
	}
	if o.PDF != nil {
		if o.PDF.Quality != nil {
			e.PDF.Quality = *o.PDF.Quality
		}
		if o.PDF.ColorProfile != nil {
			e.PDF.ColorProfile = *o.PDF.ColorProfile
		}
		if o.PDF.IncludeBleed != nil {
			e.PDF.IncludeBleed = *o.PDF.IncludeBleed
		}
		if o.PDF.CropMarks != nil {
			e.PDF.CropMarks = *o.PDF.CropMarks
		}
		if o.PDF.Optimize != nil {
			e.PDF.Optimize = *o.PDF.Optimize
		}
	}
	if o.EPUB != nil {
		if o.EPUB.Version != nil {
			e.EPUB.Version = *o.EPUB.Version
		}
		if o.EPUB.FixedLayout != nil {
			e.EPUB.FixedLayout = *o.EPUB.FixedLayout
		}
	}
	if o.Kindle != nil {
		if o.Kindle.EnhancedTypesetting != nil {
			e.Kindle.EnhancedTypesetting = *o.Kindle.EnhancedTypesetting
		}
		if o.Kindle.PageFlip != nil {
			e.Kindle.PageFlip = *o.Kindle.PageFlip
		}
	}
}

// sanitizeNumbers runs every numeric field through SafeNumber so invalid
// user input (NaN, Infinity, absurd values) is replaced or clamped rather
// than rejected.
func (s *Settings) sanitizeNumbers() {
	def := Default()

	s.TrimSize.Width = SafeNumber(s.TrimSize.Width, def.TrimSize.Width, 3, 20)
	s.TrimSize.Height = SafeNumber(s.TrimSize.Height, def.TrimSize.Height, 3, 20)

	m, dm := &s.Margins, def.Margins
	m.Top = SafeNumber(m.Top, dm.Top, 0.25, 3)
	m.Bottom = SafeNumber(m.Bottom, dm.Bottom, 0.25, 3)
	m.Inside = SafeNumber(m.Inside, dm.Inside, 0.25, 3)
	m.Outside = SafeNumber(m.Outside, dm.Outside, 0.25, 3)
	m.Bleed = SafeNumber(m.Bleed, dm.Bleed, 0, 0.5)
	m.HeaderSpace = SafeNumber(m.HeaderSpace, dm.HeaderSpace, 0, 1.5)
	m.FooterSpace = SafeNumber(m.FooterSpace, dm.FooterSpace, 0, 1.5)

	t, dt := &s.Typography, def.Typography
	t.BodyFontSize = SafeNumber(t.BodyFontSize, dt.BodyFontSize, 6, 36)
	t.LineHeight = SafeNumber(t.LineHeight, dt.LineHeight, 1.0, 3.0)
	t.ParagraphIndent = SafeNumber(t.ParagraphIndent, dt.ParagraphIndent, 0, 1.5)
	t.DropCapLines = int(SafeNumber(float64(t.DropCapLines), float64(dt.DropCapLines), 2, 6))

	s.Chapters.DropFromTop = SafeNumber(s.Chapters.DropFromTop, def.Chapters.DropFromTop, 0, 0.75)
	s.HeaderFooter.FontSize = SafeNumber(s.HeaderFooter.FontSize, def.HeaderFooter.FontSize, 6, 18)
}
