package pdf

// Cursor is the engine's layout position: the current physical page and the
// vertical paint offset on it. It is an explicit value threaded through every
// renderer call; renderers return the advanced cursor rather than mutating
// shared state.
type Cursor struct {
	Page int
	Y    float64
}

// StartCursor returns the cursor for the page just added: top margin of the
// current physical page.
func (b *Builder) StartCursor() Cursor {
	return Cursor{Page: b.doc.PageNo(), Y: b.TopMargin()}
}

// EnsureSpace applies the page-break policy: if the estimated footprint does
// not fit in the space remaining on the current page, a new physical page is
// started and the cursor moves to its top margin. The comparison is strict,
// so a section that fits exactly does not force a break. Footprints taller
// than a whole page are capped to one page, so a cursor already at the top
// margin stays put; text renderers then continue line by line across pages
// and chart boxes are shrunk to fit before their footprint is estimated.
func (b *Builder) EnsureSpace(cur Cursor, footprint float64) Cursor {
	if usable := b.BottomLimit() - b.TopMargin(); footprint > usable {
		footprint = usable
	}
	if cur.Y+footprint > b.BottomLimit() {
		b.doc.AddPage()
		return Cursor{Page: cur.Page + 1, Y: b.TopMargin()}
	}
	return cur
}
