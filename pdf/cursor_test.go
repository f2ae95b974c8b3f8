package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quillpdf/quill/api"
)

func testBuilder(t *testing.T) *Builder {
	t.Helper()
	b := NewBuilder(api.DefaultOptions())
	b.AddPage()
	return b
}

func TestEnsureSpaceFits(t *testing.T) {
	b := testBuilder(t)
	cur := b.StartCursor()

	next := b.EnsureSpace(cur, 50)
	assert.Equal(t, cur, next, "a fitting footprint leaves the cursor alone")
	assert.Equal(t, 1, b.PageCount())
}

func TestEnsureSpaceExactFitStaysOnPage(t *testing.T) {
	b := testBuilder(t)
	cur := b.StartCursor()

	remaining := b.BottomLimit() - cur.Y
	next := b.EnsureSpace(cur, remaining)
	assert.Equal(t, cur, next, "an exact fit must not force a break")
	assert.Equal(t, 1, b.PageCount())
}

func TestEnsureSpaceBreaks(t *testing.T) {
	b := testBuilder(t)
	cur := Cursor{Page: 1, Y: b.TopMargin() + 100}

	remaining := b.BottomLimit() - cur.Y
	next := b.EnsureSpace(cur, remaining+0.1)
	assert.Equal(t, cur.Page+1, next.Page)
	assert.Equal(t, b.TopMargin(), next.Y)
	assert.Equal(t, 2, b.PageCount(), "a physical page is started before painting")
}

func TestEnsureSpacePageTallFootprintAtTopStays(t *testing.T) {
	b := testBuilder(t)
	cur := b.StartCursor()

	// a hair taller than the whole page: the cap keeps the cursor where a
	// break would gain no space
	usable := b.BottomLimit() - b.TopMargin()
	next := b.EnsureSpace(cur, usable+0.1)
	assert.Equal(t, cur, next)
	assert.Equal(t, 1, b.PageCount())
}

func TestEnsureSpaceCapsOversizedFootprints(t *testing.T) {
	b := testBuilder(t)
	cur := b.StartCursor()

	// taller than any page: at the top of a page this must not break
	next := b.EnsureSpace(cur, 10_000)
	assert.Equal(t, cur, next)
	assert.Equal(t, 1, b.PageCount())

	// mid-page it breaks once, to the top of the next page
	mid := Cursor{Page: 1, Y: b.TopMargin() + 100}
	next = b.EnsureSpace(mid, 10_000)
	assert.Equal(t, 2, next.Page)
	assert.Equal(t, b.TopMargin(), next.Y)
}

func TestBuilderGeometry(t *testing.T) {
	b := NewBuilder(api.DefaultOptions())
	assert.InDelta(t, 170, b.ContentWidth(), 0.01, "A4 portrait with 20mm margins")
	assert.InDelta(t, 277, b.BottomLimit(), 0.01)

	landscape := api.DefaultOptions()
	landscape.Orientation = api.Landscape
	lb := NewBuilder(landscape)
	assert.Greater(t, lb.ContentWidth(), b.ContentWidth())
}
