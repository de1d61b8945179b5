// Package manuscript defines the immutable input to the publishing pipeline:
// the book's metadata, ordered chapters, and optional bibliography.
// This package has no dependencies on other bookpress packages to avoid
// import cycles.
package manuscript

import (
	"errors"
	"fmt"
)

// ErrNoTitle indicates the manuscript has no title.
var ErrNoTitle = errors.New("manuscript has no title")

// ErrNoAuthor indicates the manuscript has no author.
var ErrNoAuthor = errors.New("manuscript has no author")

// ErrNoChapters indicates the manuscript has no chapters.
var ErrNoChapters = errors.New("manuscript has no chapters")

// Manuscript is the fully materialized book input. The pipeline never
// mutates it; chapters are expected to be fetched and ordered by the caller.
type Manuscript struct {
	Title         string       `json:"title" yaml:"title"`
	Author        string       `json:"author" yaml:"author"`
	Description   string       `json:"description,omitempty" yaml:"description,omitempty"`
	Genre         string       `json:"genre,omitempty" yaml:"genre,omitempty"`
	CoverImageURL string       `json:"coverImageUrl,omitempty" yaml:"coverImageUrl,omitempty"`
	Chapters      []Chapter    `json:"chapters" yaml:"chapters"`
	Bibliography  *Bibliography `json:"bibliography,omitempty" yaml:"bibliography,omitempty"`
}

// Chapter is one unit of body content. Number is positive and unique but not
// necessarily contiguous. Content is raw text with blank-line-delimited
// paragraphs; scene breaks are inline sentinel paragraphs, not markup.
type Chapter struct {
	Number  int    `json:"number" yaml:"number"`
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
}

// Bibliography holds resolved references plus their display configuration.
type Bibliography struct {
	References []Reference        `json:"references" yaml:"references"`
	Config     BibliographyConfig `json:"config" yaml:"config"`
}

// Validate checks the hard preconditions for building a layout document.
// Everything else in the pipeline degrades gracefully; these three are the
// only fatal inputs.
func (m *Manuscript) Validate() error {
	if m == nil {
		return errors.New("manuscript is nil")
	}
	if m.Title == "" {
		return ErrNoTitle
	}
	if m.Author == "" {
		return ErrNoAuthor
	}
	if len(m.Chapters) == 0 {
		return ErrNoChapters
	}
	for i, ch := range m.Chapters {
		if ch.Number <= 0 {
			return fmt.Errorf("chapter %d has non-positive number %d", i, ch.Number)
		}
	}
	return nil
}
