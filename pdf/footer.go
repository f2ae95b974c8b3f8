package pdf

import "fmt"

// stampPageNumbers is the finalizer pass: it runs only after the whole
// document is composed, because the total page count is unknowable before
// then. It revisits every physical page 1..N, cover and TOC included, and
// writes "Page i of N" in the bottom margin.
func (b *Builder) stampPageNumbers() {
	total := b.doc.PageCount()
	for i := 1; i <= total; i++ {
		b.doc.SetPage(i)
		b.doc.SetFont(fontFamily, "I", footerFontSize)
		b.doc.SetTextColor(128, 128, 128)
		b.doc.SetXY(b.LeftMargin(), b.BottomLimit()+2)
		b.doc.CellFormat(b.ContentWidth(), 5, fmt.Sprintf("Page %d of %d", i, total), "", 0, "C", false, 0, "")
	}
	if total > 0 {
		b.doc.SetPage(total)
	}
}
