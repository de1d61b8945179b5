// Package pdfbackend renders a layout document to print-ready PDF. The
// backend runs two drawing passes: the first measures where each section
// actually lands once text flows through real pages, the second re-draws
// with the table of contents pointing at the measured page numbers.
package pdfbackend

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/jackzampolin/bookpress/internal/layout"
	"github.com/jackzampolin/bookpress/internal/render"
)

// defaultCoverTimeout bounds remote cover image downloads.
const defaultCoverTimeout = 30 * time.Second

// Backend implements render.Backend for PDF output.
type Backend struct {
	logger *slog.Logger

	// CoverTimeout bounds the cover image fetch. Zero means the default.
	CoverTimeout time.Duration
}

// New creates a PDF backend.
func New(logger *slog.Logger) *Backend {
	if logger == nil {
		logger = slog.Default()
	}
	return &Backend{logger: logger.With("backend", "pdf")}
}

// Format returns the PDF format tag.
func (b *Backend) Format() render.Format {
	return render.FormatPDF
}

// Render draws the document twice and returns the final PDF bytes. A cover
// image that cannot be fetched degrades to a text-only cover rather than
// failing the export.
func (b *Backend) Render(ctx context.Context, doc *layout.Document) ([]byte, error) {
	var coverImg []byte
	var coverType string
	if doc.CoverImageURL != "" {
		timeout := b.CoverTimeout
		if timeout <= 0 {
			timeout = defaultCoverTimeout
		}
		fetchCtx, cancel := context.WithTimeout(ctx, timeout)
		data, contentType, err := render.FetchCoverImage(fetchCtx, doc.CoverImageURL)
		cancel()
		if err != nil {
			b.logger.Warn("cover image fetch failed, using text cover",
				"url", doc.CoverImageURL, "error", err)
		} else if t := render.ImageTypeFromContentType(contentType); t == "" {
			b.logger.Warn("unsupported cover image type, using text cover",
				"contentType", contentType)
		} else {
			coverImg, coverType = data, t
		}
	}

	// First pass measures real section start pages.
	measure := newWriter(doc, coverImg, coverType)
	if err := measure.drawAll(ctx); err != nil {
		return nil, fmt.Errorf("pdf measure pass: %w", err)
	}

	// Second pass draws with the TOC corrected to measured numbers.
	final := newWriter(doc, coverImg, coverType)
	final.tocPages = measure.chapterStartPages
	final.tocBiblioPage = measure.biblioStartPage
	if err := final.drawAll(ctx); err != nil {
		return nil, fmt.Errorf("pdf final pass: %w", err)
	}

	var buf bytes.Buffer
	if err := final.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}

	out, err := b.postProcess(buf.Bytes(), doc)
	if err != nil {
		return nil, err
	}
	b.logger.Info("rendered pdf", "title", doc.Title, "bytes", len(out))
	return out, nil
}

// postProcess validates the produced PDF and optionally optimizes it when
// the export settings ask for it.
func (b *Backend) postProcess(data []byte, doc *layout.Document) ([]byte, error) {
	if err := api.Validate(bytes.NewReader(data), nil); err != nil {
		return nil, fmt.Errorf("pdf validation: %w", err)
	}

	pages, err := api.PageCount(bytes.NewReader(data), nil)
	if err != nil {
		return nil, fmt.Errorf("pdf page count: %w", err)
	}
	b.logger.Debug("pdf validated", "pages", pages)

	if !doc.Settings.Export.PDF.Optimize {
		return data, nil
	}
	var buf bytes.Buffer
	if err := api.Optimize(bytes.NewReader(data), &buf, nil); err != nil {
		return nil, fmt.Errorf("pdf optimize: %w", err)
	}
	return buf.Bytes(), nil
}
