// Package epub generates ePub files from a layout document. The zip
// structure follows the ePub 3.0 container rules: an uncompressed mimetype
// entry first, then the container descriptor, package document, navigation
// files, stylesheet, and one XHTML file per section.
package epub

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/jackzampolin/bookpress/internal/layout"
)

// Builder creates ePub files from a layout document.
type Builder struct {
	doc *layout.Document
}

// NewBuilder creates an epub builder for the document.
func NewBuilder(doc *layout.Document) *Builder {
	return &Builder{doc: doc}
}

// WriteTo writes the epub to a writer.
func (b *Builder) WriteTo(w io.Writer) error {
	zw := zip.NewWriter(w)
	defer zw.Close()

	// The mimetype entry must be first and uncompressed.
	if err := b.writeMimetype(zw); err != nil {
		return err
	}
	if err := b.writeContainer(zw); err != nil {
		return err
	}
	if err := b.writePackage(zw); err != nil {
		return err
	}
	if err := b.writeNavigation(zw); err != nil {
		return err
	}
	if err := b.writeNCX(zw); err != nil {
		return err
	}
	if err := b.writeStylesheet(zw); err != nil {
		return err
	}

	for i := range b.doc.Sections {
		if err := b.writeSection(zw, i); err != nil {
			return fmt.Errorf("failed to write section %s: %w", sectionID(i), err)
		}
	}
	return nil
}

// BuildToBuffer generates the epub and returns it as a byte buffer.
func (b *Builder) BuildToBuffer() (*bytes.Buffer, error) {
	buf := new(bytes.Buffer)
	if err := b.WriteTo(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// sectionID names a section's XHTML file by its position in the spine.
func sectionID(i int) string {
	return fmt.Sprintf("sec%03d", i)
}

func (b *Builder) writeMimetype(zw *zip.Writer) error {
	header := &zip.FileHeader{
		Name:   "mimetype",
		Method: zip.Store,
	}
	w, err := zw.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("failed to create mimetype: %w", err)
	}
	_, err = w.Write([]byte("application/epub+zip"))
	return err
}

func (b *Builder) writeContainer(zw *zip.Writer) error {
	content := `<?xml version="1.0" encoding="UTF-8"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>`

	w, err := zw.Create("META-INF/container.xml")
	if err != nil {
		return fmt.Errorf("failed to create container.xml: %w", err)
	}
	_, err = w.Write([]byte(content))
	return err
}

func (b *Builder) writePackage(zw *zip.Writer) error {
	w, err := zw.Create("OEBPS/content.opf")
	if err != nil {
		return fmt.Errorf("failed to create content.opf: %w", err)
	}
	_, err = w.Write([]byte(b.generatePackage()))
	return err
}

func (b *Builder) writeNavigation(zw *zip.Writer) error {
	w, err := zw.Create("OEBPS/nav.xhtml")
	if err != nil {
		return fmt.Errorf("failed to create nav.xhtml: %w", err)
	}
	_, err = w.Write([]byte(b.generateNavigation()))
	return err
}

// writeNCX emits toc.ncx for ePub 2 reader compatibility.
func (b *Builder) writeNCX(zw *zip.Writer) error {
	w, err := zw.Create("OEBPS/toc.ncx")
	if err != nil {
		return fmt.Errorf("failed to create toc.ncx: %w", err)
	}
	_, err = w.Write([]byte(b.generateNCX()))
	return err
}

func (b *Builder) writeStylesheet(zw *zip.Writer) error {
	w, err := zw.Create("OEBPS/styles/style.css")
	if err != nil {
		return fmt.Errorf("failed to create style.css: %w", err)
	}
	_, err = w.Write([]byte(b.generateStylesheet()))
	return err
}

func (b *Builder) writeSection(zw *zip.Writer, i int) error {
	filename := fmt.Sprintf("OEBPS/sections/%s.xhtml", sectionID(i))
	w, err := zw.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	_, err = w.Write([]byte(b.generateSectionXHTML(&b.doc.Sections[i])))
	return err
}

// generateUUID returns the publication identifier, preferring the ISBN.
func (b *Builder) generateUUID() string {
	if b.doc.Settings.ISBN != "" {
		return "urn:isbn:" + b.doc.Settings.ISBN
	}
	return "urn:uuid:" + uuid.New().String()
}

// generateStylesheet derives the reader stylesheet from the resolved
// typography. Reflowable readers control pagination, so only fonts,
// spacing, and block classes carry over from the print settings.
func (b *Builder) generateStylesheet() string {
	t := b.doc.Settings.Typography
	align := "justify"
	if t.Alignment == "left" {
		align = "left"
	}
	return fmt.Sprintf(`body {
  font-family: %q, Georgia, "Times New Roman", serif;
  font-size: 1em;
  line-height: %g;
  margin: 1em;
  text-align: %s;
}

h1, h2 {
  font-family: %q, Georgia, serif;
  text-align: center;
  margin-top: 1.5em;
  margin-bottom: 0.5em;
}

p {
  margin: 0.5em 0;
}

p.indent {
  text-indent: 1.5em;
  margin: 0;
}

.ornament, .scene-break {
  text-align: center;
  margin: 1em 0;
}

p.reference {
  text-indent: -1.5em;
  padding-left: 1.5em;
}

.front-matter, .back-matter {
  font-size: 0.95em;
}
`, t.BodyFont, t.LineHeight, align, t.HeadingFont)
}
