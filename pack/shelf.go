package pack

// shelfCursor is the free-space bookkeeping for the Shelf driver: a
// left-to-right, top-to-bottom sweep cursor plus the height of the
// current shelf. It intentionally carries no rectangle collection — Shelf
// never re-sorts or revisits free space, unlike Guillotine/MaxRects'
// rectStore.
type shelfCursor struct {
	x, y        float64
	shelfHeight float64
}

// packShelf places sorted (by effective height descending) items with the
// Shelf driver: pack left to right until an item doesn't fit the current
// shelf's width, then start a new shelf below the tallest item placed so
// far in the current shelf.
func packShelf(items []preparedInput, cfg PageConfig, area FreeRect) []Placement {
	placements := make([]Placement, 0, len(items))

	page := 0
	cur := shelfCursor{x: area.X, y: area.Y}
	right := area.Right()
	bottom := area.Bottom()

	for _, it := range items {
		rw := it.effW + cfg.Spacing
		rh := it.effH + cfg.Spacing

		if rw > area.Width || rh > area.Height {
			// Cannot fit on any page: strictly larger than printable area.
			continue
		}

		if cur.x+rw > right {
			cur.y += cur.shelfHeight
			cur.x = area.X
			cur.shelfHeight = 0
		}

		if cur.y+rh > bottom {
			if cfg.MultiPage {
				page++
				cur = shelfCursor{x: area.X, y: area.Y}
				right = area.Right()
				bottom = area.Bottom()
			} else {
				continue
			}
		}

		placements = append(placements, Placement{
			ID:              it.input.ID,
			Payload:         it.input.Payload,
			Size:            it.input.Size,
			Rotation:        it.input.Rotation,
			X:               cur.x,
			Y:               cur.y,
			EffectiveWidth:  it.effW,
			EffectiveHeight: it.effH,
			PageIndex:       page,
		})

		cur.x += rw
		if rh > cur.shelfHeight {
			cur.shelfHeight = rh
		}
	}

	return placements
}
