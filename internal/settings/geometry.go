package settings

// PageGeometry is the derived physical layout of a page, in inches. Width
// and Height already account for orientation; renderers consume these
// values instead of re-deriving them from trim size.
type PageGeometry struct {
	Width         float64 `json:"width" yaml:"width"`
	Height        float64 `json:"height" yaml:"height"`
	ContentWidth  float64 `json:"contentWidth" yaml:"contentWidth"`
	ContentHeight float64 `json:"contentHeight" yaml:"contentHeight"`
}

// SideMargins are the physical left/right margins of one page after the
// inside/outside margins have been assigned according to page parity.
type SideMargins struct {
	Left  float64
	Right float64
}

// Geometry computes the page geometry from resolved settings. Landscape
// orientation swaps width and height. The content area excludes all four
// margins; header and footer space live inside the top and bottom margins'
// bands, not the content area.
func (s Settings) Geometry() PageGeometry {
	w, h := s.TrimSize.Width, s.TrimSize.Height
	if s.Orientation == Landscape {
		w, h = h, w
	}

	cw := w - s.Margins.Inside - s.Margins.Outside
	ch := h - s.Margins.Top - s.Margins.Bottom
	// Degenerate margins (larger than the page) still must not produce a
	// non-positive content area.
	if cw < 1 {
		cw = 1
	}
	if ch < 1 {
		ch = 1
	}
	return PageGeometry{Width: w, Height: h, ContentWidth: cw, ContentHeight: ch}
}

// MarginsFor returns the left/right margins for the given 1-based page
// number. With mirroring enabled, the inside margin sits on the right edge
// of verso (even) pages and on the left edge of recto (odd) pages, so the
// gutter always faces the spine. Without mirroring, every page uses inside
// on the left.
func (s Settings) MarginsFor(pageNum int) SideMargins {
	if s.Margins.MirrorMargins && pageNum%2 == 0 {
		// Verso: spine is on the right.
		return SideMargins{Left: s.Margins.Outside, Right: s.Margins.Inside}
	}
	return SideMargins{Left: s.Margins.Inside, Right: s.Margins.Outside}
}

// IsVerso reports whether the 1-based page number is a left-hand page.
func IsVerso(pageNum int) bool {
	return pageNum%2 == 0
}
