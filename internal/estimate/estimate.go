// Package estimate predicts per-chapter page counts from typography
// metrics before any real pagination exists. The output pre-populates
// table-of-contents entries; it is an explicit heuristic, and a backend
// that performs real pagination should replace these numbers with measured
// ones after layout.
package estimate

import (
	"github.com/jackzampolin/bookpress/internal/settings"
)

// headerAllowance is the fraction of one page consumed by a chapter's
// heading block (drop from top, number, title, ornament).
const headerAllowance = 0.25

// CharsPerPage derives the approximate character capacity of one content
// page from resolved typography and page geometry: average characters per
// line times lines per page.
func CharsPerPage(s settings.Settings) int {
	geo := s.Geometry()
	t := s.Typography

	// An average glyph is roughly half the point size wide; 72 points to
	// the inch.
	charWidth := t.BodyFontSize * 0.5 / 72.0
	charsPerLine := geo.ContentWidth / charWidth

	lineHeight := t.BodyFontSize * t.LineHeight / 72.0
	linesPerPage := geo.ContentHeight / lineHeight

	cpp := int(charsPerLine * linesPerPage)
	if cpp < 100 {
		cpp = 100
	}
	return cpp
}

// ChapterPages estimates how many pages a chapter's sanitized content
// fills, including the heading allowance. Always at least 1.
func ChapterPages(content string, charsPerPage int) int {
	if charsPerPage <= 0 {
		charsPerPage = 100
	}
	chars := float64(len(content))
	pages := chars/float64(charsPerPage) + headerAllowance
	n := int(pages)
	if float64(n) < pages {
		n++
	}
	if n < 1 {
		n = 1
	}
	return n
}

// ChapterPageNumbers estimates the starting page of each chapter, in body
// page numbering. The result has one entry per content string, is
// monotonically non-decreasing, and starts at 1: each chapter begins one
// page after the previous chapter's estimated extent.
func ChapterPageNumbers(contents []string, s settings.Settings) []int {
	cpp := CharsPerPage(s)
	numbers := make([]int, len(contents))
	page := 1
	for i, content := range contents {
		numbers[i] = page
		page += ChapterPages(content, cpp)
	}
	return numbers
}

// BibliographyStartPage estimates the first body page after the final
// chapter, where back matter begins.
func BibliographyStartPage(contents []string, s settings.Settings) int {
	cpp := CharsPerPage(s)
	page := 1
	for _, content := range contents {
		page += ChapterPages(content, cpp)
	}
	return page
}
