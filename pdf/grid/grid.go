// Package grid lays out table headers and rows onto a PDF document. It owns
// its own pagination: when a row does not fit it starts a new physical page,
// repeats the header, and continues. Callers pass the Y to start at and read
// back the Y where layout finished, which may be on a later page.
package grid

import (
	"github.com/jung-kurt/gofpdf/v2"
)

const (
	headerFontSize = 10.0 // pt
	cellFontSize   = 10.0 // pt
	cellPadding    = 1.5  // mm, horizontal inset per cell
)

// Layouter paints tables row by row with repeated headers across pages.
type Layouter struct {
	// RowHeight is the height of every row in mm.
	RowHeight float64
	// AlternateRowFill shades every second data row.
	AlternateRowFill bool
}

// New returns a Layouter with the default row height and alternating fills.
func New() *Layouter {
	return &Layouter{RowHeight: 8, AlternateRowFill: true}
}

// Layout paints headers and rows starting at startY and returns the final Y.
// left and width bound the table horizontally; top and bottom are the
// vertical limits used when the layouter starts continuation pages.
func (l *Layouter) Layout(doc *gofpdf.Fpdf, headers []string, rows [][]string, startY, left, width, top, bottom float64) float64 {
	cols := len(headers)
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols == 0 {
		return startY
	}

	colWidth := width / float64(cols)
	y := startY

	if y+l.RowHeight > bottom {
		doc.AddPage()
		y = top
	}
	y = l.paintHeader(doc, headers, cols, y, left, colWidth)

	for i, row := range rows {
		if y+l.RowHeight > bottom {
			doc.AddPage()
			y = top
			y = l.paintHeader(doc, headers, cols, y, left, colWidth)
		}

		fill := l.AlternateRowFill && i%2 == 1
		doc.SetFont("Helvetica", "", cellFontSize)
		doc.SetTextColor(31, 41, 55)
		doc.SetFillColor(243, 244, 246)
		doc.SetDrawColor(209, 213, 219)
		doc.SetXY(left, y)
		for c := 0; c < cols; c++ {
			val := ""
			if c < len(row) {
				val = row[c]
			}
			doc.CellFormat(colWidth, l.RowHeight, truncate(doc, val, colWidth-2*cellPadding), "1", 0, "L", fill, 0, "")
		}
		y += l.RowHeight
	}

	return y
}

// paintHeader draws the header row if any headers exist and returns the new Y.
func (l *Layouter) paintHeader(doc *gofpdf.Fpdf, headers []string, cols int, y, left, colWidth float64) float64 {
	if len(headers) == 0 {
		return y
	}
	doc.SetFont("Helvetica", "B", headerFontSize)
	doc.SetTextColor(17, 24, 39)
	doc.SetFillColor(229, 231, 235)
	doc.SetDrawColor(209, 213, 219)
	doc.SetXY(left, y)
	for c := 0; c < cols; c++ {
		val := ""
		if c < len(headers) {
			val = headers[c]
		}
		doc.CellFormat(colWidth, l.RowHeight, truncate(doc, val, colWidth-2*cellPadding), "1", 0, "L", true, 0, "")
	}
	return y + l.RowHeight
}

// truncate shortens s with an ellipsis so it fits the given width in the
// document's current font.
func truncate(doc *gofpdf.Fpdf, s string, width float64) string {
	if doc.GetStringWidth(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		if doc.GetStringWidth(string(runes)+"...") <= width {
			return string(runes) + "..."
		}
	}
	return ""
}
