package pdftest

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// composeDoc builds a document with the given number of pages, each carrying
// a distinct marker line.
func composeDoc(t *testing.T, pages int) []byte {
	t.Helper()

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetFont("Helvetica", "", 12)
	for i := 1; i <= pages; i++ {
		doc.AddPage()
		doc.SetXY(20, 20)
		doc.CellFormat(170, 6, fmt.Sprintf("marker page %d", i), "", 0, "L", false, 0, "")
	}

	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))
	return buf.Bytes()
}

func TestPageCountMatchesComposedPages(t *testing.T) {
	for _, n := range []int{1, 3, 12} {
		data := composeDoc(t, n)
		AssertValid(t, data)
		assert.Equal(t, n, PageCount(t, data), "%d-page document", n)
	}
}

func TestPageTextAndPageOf(t *testing.T) {
	data := composeDoc(t, 3)

	assert.Contains(t, PageText(t, data, 2), "marker page 2")

	page, err := PageOf(t, data, "marker page 3")
	require.NoError(t, err)
	assert.Equal(t, 3, page)

	_, err = PageOf(t, data, "absent needle")
	assert.Error(t, err)
}

func TestAssertTextOrder(t *testing.T) {
	data := composeDoc(t, 3)
	AssertTextOrder(t, data, []string{"marker page 1", "marker page 2", "marker page 3"})
}
