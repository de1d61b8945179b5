package export

import (
	"log/slog"
	"time"

	"github.com/jackzampolin/bookpress/internal/render"
	"github.com/jackzampolin/bookpress/internal/render/epubbackend"
	"github.com/jackzampolin/bookpress/internal/render/htmlbackend"
	"github.com/jackzampolin/bookpress/internal/render/pdfbackend"
	"github.com/jackzampolin/bookpress/internal/render/textbackend"
)

// DefaultRegistry returns a registry with every built-in renderer backend
// registered. Both the server and the offline CLI export path use this.
// coverTimeout bounds remote cover downloads; zero keeps the backend default.
func DefaultRegistry(logger *slog.Logger, coverTimeout time.Duration) *render.Registry {
	r := render.NewRegistry()
	pdf := pdfbackend.New(logger)
	pdf.CoverTimeout = coverTimeout
	r.Register(pdf)
	r.Register(epubbackend.New(logger))
	r.Register(htmlbackend.New(logger))
	r.Register(textbackend.New(render.FormatText, logger))
	r.Register(textbackend.New(render.FormatMarkdown, logger))
	return r
}
