package pdf

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/quillpdf/quill/api"
)

// cover layout constants, mm
const (
	logoWidth      = 40.0
	logoHeight     = 25.0
	coverRuleInset = 30.0
)

// renderCover paints the cover page. Optional metadata fields that are blank
// are skipped rather than rejected.
func (e *Engine) renderCover(b *Builder, meta api.ReportMetadata) {
	b.AddPage()
	doc := b.Doc()
	center := b.LeftMargin() + b.ContentWidth()/2

	if meta.Logo != nil {
		b.PlaceImage("cover-logo", meta.Logo.Data, meta.Logo.Format, center-logoWidth/2, b.TopMargin()+15, logoWidth, logoHeight)
	}

	y := b.BottomLimit() * 0.35
	doc.SetFont(fontFamily, "B", 24)
	doc.SetTextColor(17, 24, 39)
	doc.SetXY(b.LeftMargin(), y)
	doc.CellFormat(b.ContentWidth(), 12, meta.Title, "", 0, "C", false, 0, "")
	y += 14

	if meta.Subtype != "" {
		doc.SetFont(fontFamily, "", 14)
		doc.SetTextColor(107, 114, 128)
		doc.SetXY(b.LeftMargin(), y)
		doc.CellFormat(b.ContentWidth(), 8, meta.Subtype, "", 0, "C", false, 0, "")
		y += 10
	}

	doc.SetDrawColor(209, 213, 219)
	doc.SetLineWidth(0.4)
	doc.Line(b.LeftMargin()+coverRuleInset, y+4, b.LeftMargin()+b.ContentWidth()-coverRuleInset, y+4)

	y = b.BottomLimit() * 0.62
	doc.SetFont(fontFamily, "", 11)
	doc.SetTextColor(55, 65, 81)
	for _, line := range coverLines(meta) {
		doc.SetXY(b.LeftMargin(), y)
		doc.CellFormat(b.ContentWidth(), 6, line, "", 0, "C", false, 0, "")
		y += 7
	}
}

// coverLines returns the non-blank byline entries in display order.
func coverLines(meta api.ReportMetadata) []string {
	lines := []string{}
	if meta.Author != "" {
		lines = append(lines, "Prepared by "+meta.Author)
	}
	if meta.Company != "" {
		lines = append(lines, meta.Company)
	}
	if meta.Date != "" {
		lines = append(lines, meta.Date)
	}
	return lines
}

// renderTOC paints the table of contents. Page numbers are approximate by
// contract: a running counter assumes each section starts one page after the
// previous, beginning at the first content page, without measuring actual
// footprints. Content-heavy sections drift from the estimate.
func (e *Engine) renderTOC(b *Builder, sections []api.Section) {
	b.AddPage()
	doc := b.Doc()

	doc.SetFont(fontFamily, "B", 16)
	doc.SetTextColor(17, 24, 39)
	doc.SetXY(b.LeftMargin(), b.TopMargin())
	doc.CellFormat(b.ContentWidth(), 10, "Table of Contents", "", 0, "L", false, 0, "")

	firstContentPage := b.PageNo() + 1
	titles := lo.Map(sections, func(s api.Section, _ int) string {
		return s.SectionTitle()
	})

	y := b.TopMargin() + 14
	doc.SetFont(fontFamily, "", 11)
	doc.SetTextColor(55, 65, 81)
	for i, title := range titles {
		if y+lineHeight > b.BottomLimit() {
			b.AddPage()
			y = b.TopMargin()
		}
		pageLabel := fmt.Sprintf("%d", firstContentPage+i)

		doc.SetXY(b.LeftMargin(), y)
		doc.CellFormat(b.ContentWidth()-14, lineHeight+1, title, "", 0, "L", false, 0, "")
		doc.SetXY(b.LeftMargin()+b.ContentWidth()-14, y)
		doc.CellFormat(14, lineHeight+1, pageLabel, "", 0, "R", false, 0, "")

		y += lineHeight + 1.5
	}
}
