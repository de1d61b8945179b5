// Package render defines the renderer backend contract and the registry
// export uses to pick a backend by output format. Backends execute a
// layout.Document against a concrete drawing or serialization API; the
// core builder never depends on which backend runs.
package render

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jackzampolin/bookpress/internal/layout"
)

// Format identifies an output format.
type Format string

const (
	FormatPDF      Format = "pdf"
	FormatHTML     Format = "html"
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatEPUB     Format = "epub"
)

// Extension returns the file extension for the format, without the dot.
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return "md"
	case FormatText:
		return "txt"
	default:
		return string(f)
	}
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatEPUB:
		return "application/epub+zip"
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Backend renders a layout document into final bytes. Implementations own
// all real pagination, header/footer drawing, and resource loading; any
// blocking work (fonts, remote images) must respect ctx.
type Backend interface {
	// Format returns the output format this backend produces.
	Format() Format
	// Render produces the final artifact bytes for the document.
	Render(ctx context.Context, doc *layout.Document) ([]byte, error)
}

// Registry maps formats to backends.
type Registry struct {
	mu       sync.RWMutex
	backends map[Format]Backend
}

// NewRegistry creates an empty backend registry.
func NewRegistry() *Registry {
	return &Registry{backends: make(map[Format]Backend)}
}

// Register adds a backend, replacing any previous backend for its format.
func (r *Registry) Register(b Backend) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backends[b.Format()] = b
}

// Get returns the backend for a format.
func (r *Registry) Get(format Format) (Backend, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.backends[format]
	if !ok {
		return nil, fmt.Errorf("no renderer backend registered for format %q", format)
	}
	return b, nil
}

// Formats returns the registered formats in sorted order.
func (r *Registry) Formats() []Format {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Format, 0, len(r.backends))
	for f := range r.backends {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
