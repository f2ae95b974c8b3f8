package grid

import (
	"fmt"
	"testing"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDoc() *gofpdf.Fpdf {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(20, 20, 20)
	doc.SetAutoPageBreak(false, 20)
	doc.AddPage()
	return doc
}

func TestLayoutSinglePage(t *testing.T) {
	doc := testDoc()
	l := New()

	rows := [][]string{{"a", "1"}, {"b", "2"}, {"c", "3"}}
	finalY := l.Layout(doc, []string{"Item", "Value"}, rows, 40, 20, 170, 20, 277)

	// header plus three rows
	assert.InDelta(t, 40+4*l.RowHeight, finalY, 0.001)
	assert.Equal(t, 1, doc.PageCount())
}

func TestLayoutPaginatesAndRepeatsHeader(t *testing.T) {
	doc := testDoc()
	l := New()

	rows := make([][]string, 50)
	for i := range rows {
		rows[i] = []string{fmt.Sprintf("Row %d", i+1), "value"}
	}

	start := 40.0
	finalY := l.Layout(doc, []string{"Item", "Value"}, rows, start, 20, 170, 20, 277)

	require.Equal(t, 2, doc.PageCount(), "50 rows at 8mm do not fit one page from y=40")

	// page 1: header at 40, rows while y+8 <= 277
	perPage1 := int((277 - (start + l.RowHeight)) / l.RowHeight)
	rest := 50 - perPage1
	want := 20 + l.RowHeight + float64(rest)*l.RowHeight
	assert.InDelta(t, want, finalY, 0.001, "final Y continues on the second page, not at its top")
}

func TestLayoutStartTooLowMovesToNextPage(t *testing.T) {
	doc := testDoc()
	l := New()

	finalY := l.Layout(doc, []string{"H"}, [][]string{{"v"}}, 275, 20, 170, 20, 277)

	assert.Equal(t, 2, doc.PageCount())
	assert.InDelta(t, 20+2*l.RowHeight, finalY, 0.001)
}

func TestLayoutEmptyTable(t *testing.T) {
	doc := testDoc()
	l := New()

	finalY := l.Layout(doc, nil, nil, 40, 20, 170, 20, 277)
	assert.Equal(t, 40.0, finalY)
	assert.Equal(t, 1, doc.PageCount())
}

func TestLayoutRaggedRows(t *testing.T) {
	doc := testDoc()
	l := New()

	// a row wider than the header set still lays out against the max width
	rows := [][]string{{"a"}, {"b", "2", "extra"}}
	finalY := l.Layout(doc, []string{"Item", "Value"}, rows, 40, 20, 170, 20, 277)
	assert.InDelta(t, 40+3*l.RowHeight, finalY, 0.001)
}

func TestTruncate(t *testing.T) {
	doc := testDoc()
	doc.SetFont("Helvetica", "", 10)

	long := "an extremely long cell value that cannot possibly fit"
	got := truncate(doc, long, 20)
	assert.True(t, len(got) < len(long))
	assert.Contains(t, got, "...")
	assert.LessOrEqual(t, doc.GetStringWidth(got), 20.0)

	assert.Equal(t, "ok", truncate(doc, "ok", 20))
}
