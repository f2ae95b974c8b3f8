package pdf

import (
	"fmt"

	"github.com/flanksource/commons/logger"

	"github.com/quillpdf/quill/api"
	"github.com/quillpdf/quill/chart"
)

// inline marker painted in place of a chart that failed to rasterize
const chartErrorText = "Error rendering chart"

// renderSection dispatches one section to its renderer and returns the
// advanced cursor. The Section union is closed, so the default case only
// guards against pointer values sneaking in.
func (e *Engine) renderSection(b *Builder, cur Cursor, section api.Section, cache *chart.ImageCache) (Cursor, error) {
	switch s := section.(type) {
	case api.TextSection:
		return e.renderText(b, cur, s), nil
	case api.ChartSection:
		return e.renderChart(b, cur, s, cache), nil
	case api.TableSection:
		return e.renderTable(b, cur, s), nil
	default:
		return cur, fmt.Errorf("unsupported section type %T", section)
	}
}

// paintTitle writes a section heading at the cursor.
func paintTitle(b *Builder, cur Cursor, title string) Cursor {
	doc := b.Doc()
	doc.SetFont(fontFamily, "B", titleFontSize)
	doc.SetTextColor(17, 24, 39)
	doc.SetXY(b.LeftMargin(), cur.Y)
	doc.CellFormat(b.ContentWidth(), titleHeight, title, "", 0, "L", false, 0, "")
	cur.Y += titleHeight
	return cur
}

// renderText wraps the content to the page width, pre-checks the total
// footprint against the page-break policy, then paints title and lines.
func (e *Engine) renderText(b *Builder, cur Cursor, s api.TextSection) Cursor {
	doc := b.Doc()
	doc.SetFont(fontFamily, "", bodyFontSize)
	lines := doc.SplitText(s.Content, b.ContentWidth())

	footprint := titleHeight + float64(len(lines))*lineHeight
	cur = b.EnsureSpace(cur, footprint)
	cur = paintTitle(b, cur, s.Title)

	doc.SetFont(fontFamily, "", bodyFontSize)
	doc.SetTextColor(55, 65, 81)
	for _, line := range lines {
		// sections taller than a page continue line by line
		if cur.Y+lineHeight > b.BottomLimit() {
			b.AddPage()
			cur = Cursor{Page: cur.Page + 1, Y: b.TopMargin()}
		}
		doc.SetXY(b.LeftMargin(), cur.Y)
		doc.CellFormat(b.ContentWidth(), lineHeight, line, "", 0, "L", false, 0, "")
		cur.Y += lineHeight
	}

	cur.Y += sectionGap
	return cur
}

// renderChart resolves the chart's box from its size class, looks the image
// up in the pre-render cache, and falls back to an on-demand render on a
// cache miss. A failed render never aborts the document: an inline error
// marker is painted and the loop continues with the next section.
func (e *Engine) renderChart(b *Builder, cur Cursor, s api.ChartSection, cache *chart.ImageCache) Cursor {
	w, h := s.Size.Dimensions(b.ContentWidth())

	// a box taller than the usable page height shrinks, preserving aspect,
	// so the image never paints past the bottom margin
	maxH := b.BottomLimit() - b.TopMargin() - titleHeight
	if s.Description != "" {
		maxH -= descLineHeight
	}
	if h > maxH {
		w = w * maxH / h
		h = maxH
	}

	footprint := titleHeight + h
	if s.Description != "" {
		footprint += descLineHeight
	}
	cur = b.EnsureSpace(cur, footprint)
	cur = paintTitle(b, cur, s.Title)

	doc := b.Doc()
	if s.Description != "" {
		doc.SetFont(fontFamily, "I", bodyFontSize-1)
		doc.SetTextColor(107, 114, 128)
		doc.SetXY(b.LeftMargin(), cur.Y)
		doc.CellFormat(b.ContentWidth(), descLineHeight, s.Description, "", 0, "L", false, 0, "")
		cur.Y += descLineHeight
	}

	key := chart.Key(s.Title, s.Config)
	img, ok := cache.Image(key)
	renderErr := cache.Err(key)
	if !ok && renderErr == nil {
		// cache miss: the batch was skipped or never saw this section
		widthPx, heightPx := chart.PixelSize(s.Size, b.ContentWidth(), e.opts.Quality)
		img, renderErr = e.renderer.Render(s.Config, s.Theme, widthPx, heightPx)
		ok = renderErr == nil
	}

	if !ok {
		logger.Errorf("rendering chart %q: %v", s.Title, renderErr)
		doc.SetFont(fontFamily, "I", bodyFontSize)
		doc.SetTextColor(220, 38, 38)
		doc.SetXY(b.LeftMargin(), cur.Y)
		doc.CellFormat(b.ContentWidth(), errorLineHeight, chartErrorText, "", 0, "L", false, 0, "")
		cur.Y += errorLineHeight + sectionGap
		return cur
	}

	x := b.LeftMargin() + (b.ContentWidth()-w)/2
	b.PlaceImage("chart-"+key, img, api.ImagePNG, x, cur.Y, w, h)
	cur.Y += h + sectionGap
	return cur
}
