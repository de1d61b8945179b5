package settings

import (
	"math"
	"testing"
)

func TestSafeNumber(t *testing.T) {
	t.Run("replaces NaN with default", func(t *testing.T) {
		if got := SafeNumber(math.NaN(), 11, 6, 36); got != 11 {
			t.Errorf("got %v, want 11", got)
		}
	})
	t.Run("replaces infinity with default", func(t *testing.T) {
		if got := SafeNumber(math.Inf(1), 11, 6, 36); got != 11 {
			t.Errorf("got %v, want 11", got)
		}
		if got := SafeNumber(math.Inf(-1), 11, 6, 36); got != 11 {
			t.Errorf("got %v, want 11", got)
		}
	})
	t.Run("clamps out of range values", func(t *testing.T) {
		if got := SafeNumber(100, 11, 6, 36); got != 36 {
			t.Errorf("got %v, want 36", got)
		}
		if got := SafeNumber(1, 11, 6, 36); got != 6 {
			t.Errorf("got %v, want 6", got)
		}
	})
	t.Run("passes valid values through", func(t *testing.T) {
		if got := SafeNumber(12.5, 11, 6, 36); got != 12.5 {
			t.Errorf("got %v, want 12.5", got)
		}
	})
}

func TestResolveDefaults(t *testing.T) {
	s := Resolve(nil)

	if s.TrimSize.Width <= 0 || s.TrimSize.Height <= 0 {
		t.Fatalf("unresolved trim size: %+v", s.TrimSize)
	}
	if s.Typography.BodyFontSize == 0 {
		t.Error("body font size not populated")
	}
	if !s.FrontMatter.IncludeTitlePage || !s.FrontMatter.IncludeCopyright || !s.FrontMatter.IncludeTOC {
		t.Error("default front matter should include title, copyright, and TOC")
	}
}

func TestResolvePrecedence(t *testing.T) {
	t.Run("user override beats book type preset", func(t *testing.T) {
		bt := BookTypeTechnical
		size := 13.0
		s := Resolve(&Overrides{
			BookType:   &bt,
			Typography: &TypographyOverride{BodyFontSize: &size},
		})
		if s.Typography.BodyFontSize != 13 {
			t.Errorf("body font size = %v, want user override 13", s.Typography.BodyFontSize)
		}
		// Fields the user did not touch come from the book-type preset.
		if s.TrimSize.Name != "7.5x9.25" {
			t.Errorf("trim size = %q, want technical preset 7.5x9.25", s.TrimSize.Name)
		}
	})

	t.Run("book type preset beats style preset", func(t *testing.T) {
		bt := BookTypeTechnical
		sp := StyleClassic // classic sets Garamond; technical sets Helvetica
		s := Resolve(&Overrides{BookType: &bt, StylePreset: &sp})
		if s.Typography.BodyFont != "Helvetica" {
			t.Errorf("body font = %q, want book-type Helvetica over style Garamond", s.Typography.BodyFont)
		}
	})

	t.Run("explicit false override survives", func(t *testing.T) {
		f := false
		s := Resolve(&Overrides{
			HeaderFooter: &HeaderFooterOverride{HeadersEnabled: &f},
		})
		if s.HeaderFooter.HeadersEnabled {
			t.Error("explicit headersEnabled=false was lost")
		}
	})
}

func TestResolveNumericSafety(t *testing.T) {
	t.Run("NaN body font size falls back", func(t *testing.T) {
		nan := math.NaN()
		s := Resolve(&Overrides{Typography: &TypographyOverride{BodyFontSize: &nan}})
		if math.IsNaN(s.Typography.BodyFontSize) || math.IsInf(s.Typography.BodyFontSize, 0) {
			t.Fatalf("NaN propagated: %v", s.Typography.BodyFontSize)
		}
		geo := s.Geometry()
		if math.IsNaN(geo.ContentWidth) || math.IsNaN(geo.ContentHeight) {
			t.Error("NaN reached page geometry")
		}
	})

	t.Run("absurd margin is clamped", func(t *testing.T) {
		huge := 999.0
		s := Resolve(&Overrides{Margins: &MarginsOverride{Top: &huge}})
		if s.Margins.Top > 3 {
			t.Errorf("margin not clamped: %v", s.Margins.Top)
		}
	})
}

func TestLookupTrimSize(t *testing.T) {
	if ts := LookupTrimSize("6x9"); ts.Width != 6 || ts.Height != 9 {
		t.Errorf("6x9 lookup: %+v", ts)
	}
	if ts := LookupTrimSize("not-a-size"); ts.Width != 6 || ts.Height != 9 {
		t.Errorf("unknown size should fall back to 6x9: %+v", ts)
	}
}

func TestGeometry(t *testing.T) {
	t.Run("landscape swaps dimensions", func(t *testing.T) {
		o := Landscape
		s := Resolve(&Overrides{Orientation: &o})
		geo := s.Geometry()
		if geo.Width <= geo.Height {
			t.Errorf("landscape geometry not swapped: %+v", geo)
		}
	})

	t.Run("content area excludes margins", func(t *testing.T) {
		s := Resolve(nil)
		geo := s.Geometry()
		wantW := geo.Width - s.Margins.Inside - s.Margins.Outside
		if geo.ContentWidth != wantW {
			t.Errorf("content width = %v, want %v", geo.ContentWidth, wantW)
		}
	})
}

func TestMarginsMirroring(t *testing.T) {
	inside, outside, mirror := 1.0, 0.5, true
	s := Resolve(&Overrides{Margins: &MarginsOverride{
		Inside:        &inside,
		Outside:       &outside,
		MirrorMargins: &mirror,
	}})

	t.Run("verso near-spine margin is on the right", func(t *testing.T) {
		m := s.MarginsFor(2)
		if m.Right != 1.0 || m.Left != 0.5 {
			t.Errorf("verso margins = %+v", m)
		}
	})

	t.Run("recto near-spine margin is on the left", func(t *testing.T) {
		m := s.MarginsFor(3)
		if m.Left != 1.0 || m.Right != 0.5 {
			t.Errorf("recto margins = %+v", m)
		}
	})

	t.Run("without mirroring every page matches", func(t *testing.T) {
		off := false
		s2 := Resolve(&Overrides{Margins: &MarginsOverride{
			Inside:        &inside,
			Outside:       &outside,
			MirrorMargins: &off,
		}})
		if s2.MarginsFor(2) != s2.MarginsFor(3) {
			t.Error("non-mirrored pages should have identical margins")
		}
	})
}
