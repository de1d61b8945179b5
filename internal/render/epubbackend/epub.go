// Package epubbackend adapts the epub builder to the renderer backend
// contract.
package epubbackend

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackzampolin/bookpress/internal/epub"
	"github.com/jackzampolin/bookpress/internal/layout"
	"github.com/jackzampolin/bookpress/internal/render"
)

// Backend implements render.Backend for ePub output.
type Backend struct {
	logger *slog.Logger
}

// New creates an ePub backend.
func New(logger *slog.Logger) *Backend {
	if logger == nil {
		logger = slog.Default()
	}
	return &Backend{logger: logger.With("backend", "epub")}
}

// Format returns the ePub format tag.
func (b *Backend) Format() render.Format {
	return render.FormatEPUB
}

// Render builds the epub container for the document.
func (b *Backend) Render(ctx context.Context, doc *layout.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	buf, err := epub.NewBuilder(doc).BuildToBuffer()
	if err != nil {
		return nil, fmt.Errorf("epub build: %w", err)
	}
	b.logger.Info("rendered epub", "title", doc.Title, "bytes", buf.Len())
	return buf.Bytes(), nil
}
