package pdf

import (
	"github.com/jung-kurt/gofpdf/v2"

	"github.com/quillpdf/quill/api"
)

// TableLayouter is the external grid-layout capability tables are delegated
// to. It paints headers and rows starting at startY, paginating internally
// (it may start new physical pages), and returns the Y where it finished.
type TableLayouter interface {
	Layout(doc *gofpdf.Fpdf, headers []string, rows [][]string, startY, left, width, top, bottom float64) float64
}

// renderTable checks only that there is room to start the table; the
// delegate owns all pagination after that. The cursor is set directly to the
// delegate-reported final position, which may be on a later page.
func (e *Engine) renderTable(b *Builder, cur Cursor, s api.TableSection) Cursor {
	cur = b.EnsureSpace(cur, tableMinStart)
	cur = paintTitle(b, cur, s.Title)

	finalY := e.layouter.Layout(b.Doc(), s.Headers, s.Rows, cur.Y,
		b.LeftMargin(), b.ContentWidth(), b.TopMargin(), b.BottomLimit())

	return Cursor{Page: b.PageNo(), Y: finalY + sectionGap}
}
