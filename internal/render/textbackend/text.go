// Package textbackend serializes a layout document to plain text or
// Markdown. Neither format paginates, so page-level settings (margins,
// running headers, page numbers) are ignored; the section and block
// structure is preserved.
package textbackend

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackzampolin/bookpress/internal/layout"
	"github.com/jackzampolin/bookpress/internal/render"
)

// Backend implements render.Backend for plain text and Markdown output.
type Backend struct {
	format render.Format
	logger *slog.Logger
}

// New creates a text serialization backend. Only FormatText and
// FormatMarkdown are valid.
func New(format render.Format, logger *slog.Logger) *Backend {
	if logger == nil {
		logger = slog.Default()
	}
	return &Backend{format: format, logger: logger.With("backend", string(format))}
}

// Format returns the configured output format.
func (b *Backend) Format() render.Format {
	return b.format
}

// Render serializes the document.
func (b *Backend) Render(ctx context.Context, doc *layout.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var sb strings.Builder
	markdown := b.format == render.FormatMarkdown
	for i := range doc.Sections {
		b.writeSection(&sb, &doc.Sections[i], markdown)
	}
	b.logger.Info("rendered document", "title", doc.Title, "bytes", sb.Len())
	return []byte(sb.String()), nil
}

func (b *Backend) writeSection(sb *strings.Builder, sec *layout.Section, markdown bool) {
	if sb.Len() > 0 {
		sb.WriteString("\n")
		if markdown {
			sb.WriteString("---\n\n")
		}
	}
	for _, blk := range sec.Blocks {
		writeBlock(sb, blk, markdown)
	}
}

func writeBlock(sb *strings.Builder, blk layout.Block, markdown bool) {
	switch blk.Type {
	case layout.BlockHeading:
		if markdown {
			fmt.Fprintf(sb, "# %s\n\n", inline(blk.Text, markdown))
		} else {
			text := inline(blk.Text, markdown)
			sb.WriteString(text + "\n" + strings.Repeat("=", max(1, len(text))) + "\n\n")
		}
	case layout.BlockSubheading:
		if markdown {
			fmt.Fprintf(sb, "## %s\n\n", inline(blk.Text, markdown))
		} else {
			sb.WriteString(inline(blk.Text, markdown) + "\n\n")
		}
	case layout.BlockOrnament, layout.BlockSceneBreak:
		if blk.Text != "" {
			sb.WriteString(blk.Text + "\n\n")
		} else {
			sb.WriteString("\n")
		}
	case layout.BlockTOCEntry:
		left := blk.Text
		if blk.Label != "" {
			left = blk.Label + "  " + blk.Text
		}
		if markdown {
			fmt.Fprintf(sb, "- %s (p. %d)\n", left, blk.PageNumber)
		} else {
			fmt.Fprintf(sb, "%s %s %d\n", left, strings.Repeat(".", 8), blk.PageNumber)
		}
	case layout.BlockReference:
		entry := inline(blk.Text, markdown)
		if blk.Label != "" {
			entry = blk.Label + " " + entry
		}
		sb.WriteString(entry + "\n\n")
	case layout.BlockParagraph:
		sb.WriteString(inline(blk.Text, markdown) + "\n\n")
	case layout.BlockSpacer:
		sb.WriteString("\n")
	}
}

// inline converts the block-level markup carried in Text. Markdown keeps
// emphasis as asterisks and superscripts as carets; plain text strips all
// markup.
func inline(text string, markdown bool) string {
	r := strings.NewReplacer(
		"<em>", "*", "</em>", "*",
		"<i>", "*", "</i>", "*",
		"<strong>", "**", "</strong>", "**",
		"<b>", "**", "</b>", "**",
		"<sup>", "^", "</sup>", "",
	)
	if !markdown {
		r = strings.NewReplacer(
			"<em>", "", "</em>", "",
			"<i>", "", "</i>", "",
			"<strong>", "", "</strong>", "",
			"<b>", "", "</b>", "",
			"<sup>", "", "</sup>", "",
		)
	}
	return r.Replace(text)
}
