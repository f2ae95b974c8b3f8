// Package pdf implements the paginated document assembly engine: it turns an
// ordered section list into pages, decides where page breaks occur, and
// serializes the result into a PDF.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"

	"github.com/quillpdf/quill/api"
)

const fontFamily = "Helvetica"

// layout constants, mm unless noted
const (
	titleFontSize   = 13.0 // pt
	bodyFontSize    = 11.0 // pt
	footerFontSize  = 9.0  // pt
	titleHeight     = 8.0
	lineHeight      = 5.5
	sectionGap      = 6.0
	descLineHeight  = 5.0
	errorLineHeight = 6.0
	// minimum room required to start a table: title plus a header row and
	// one data row; the delegate paginates the rest itself
	tableMinStart = 30.0
)

// Builder wraps gofpdf and exposes the low-level document sink primitives:
// place text and images at the cursor, start physical pages, revisit pages,
// serialize to bytes.
type Builder struct {
	doc    *gofpdf.Fpdf
	opts   api.Options
	pageW  float64
	pageH  float64
	images map[string]bool
}

// NewBuilder creates an empty document for one Generate call. Automatic page
// breaking is disabled: the engine owns the break policy.
func NewBuilder(opts api.Options) *Builder {
	orientation := "P"
	if opts.Orientation == api.Landscape {
		orientation = "L"
	}

	doc := gofpdf.New(orientation, "mm", string(opts.PageSize), "")
	doc.SetMargins(opts.Margins.Left, opts.Margins.Top, opts.Margins.Right)
	doc.SetAutoPageBreak(false, opts.Margins.Bottom)

	w, h := doc.GetPageSize()
	return &Builder{
		doc:    doc,
		opts:   opts,
		pageW:  w,
		pageH:  h,
		images: make(map[string]bool),
	}
}

// Doc exposes the underlying document for the table layout delegate.
func (b *Builder) Doc() *gofpdf.Fpdf { return b.doc }

// SetMetadata writes the document-level PDF metadata.
func (b *Builder) SetMetadata(meta api.ReportMetadata) {
	b.doc.SetTitle(meta.Title, true)
	b.doc.SetAuthor(meta.Author, true)
	b.doc.SetSubject(meta.Subtype, true)
	b.doc.SetCreator("quill", true)
}

// AddPage starts a new physical page.
func (b *Builder) AddPage() { b.doc.AddPage() }

// PageNo returns the current physical page index (1-based).
func (b *Builder) PageNo() int { return b.doc.PageNo() }

// PageCount returns the number of physical pages composed so far.
func (b *Builder) PageCount() int { return b.doc.PageCount() }

func (b *Builder) LeftMargin() float64 { return b.opts.Margins.Left }
func (b *Builder) TopMargin() float64  { return b.opts.Margins.Top }

// ContentWidth is the printable width between the side margins.
func (b *Builder) ContentWidth() float64 {
	return b.pageW - b.opts.Margins.Left - b.opts.Margins.Right
}

// BottomLimit is the Y below which no section content is painted.
func (b *Builder) BottomLimit() float64 {
	return b.pageH - b.opts.Margins.Bottom
}

// PlaceImage registers image bytes under a stable name on first use and
// paints them at the given box. Re-placing the same name reuses the already
// registered image.
func (b *Builder) PlaceImage(name string, data []byte, format api.ImageFormat, x, y, w, h float64) {
	imgOpts := gofpdf.ImageOptions{ImageType: string(format)}
	if !b.images[name] {
		b.doc.RegisterImageOptionsReader(name, imgOpts, bytes.NewReader(data))
		b.images[name] = true
	}
	b.doc.ImageOptions(name, x, y, w, h, false, imgOpts, 0, "")
}

// Output serializes the document. Any accumulated document-level error is
// fatal: no partial output is returned.
func (b *Builder) Output() ([]byte, error) {
	var buf bytes.Buffer
	if err := b.doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize document: %w", err)
	}
	return buf.Bytes(), nil
}
