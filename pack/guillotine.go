package pack

// packGuillotine places sorted items with the Guillotine driver: a
// first-fit scan of the free list in area-descending order, splitting the
// host rectangle along the used region's short axis on every placement.
func packGuillotine(items []preparedInput, cfg PageConfig, area FreeRect) []Placement {
	placements := make([]Placement, 0, len(items))

	var store rectStore
	store.reset(area)
	store.sortAreaDescending()
	page := 0

	for _, it := range items {
		rw := it.effW + cfg.Spacing
		rh := it.effH + cfg.Spacing

		idx := firstFit(store.rects, rw, rh)
		if idx < 0 {
			if !cfg.MultiPage || rw > area.Width || rh > area.Height {
				continue
			}
			page++
			store.reset(area)
			store.sortAreaDescending()
			idx = firstFit(store.rects, rw, rh)
			if idx < 0 {
				continue
			}
		}

		host := store.rects[idx]
		used := FreeRect{X: host.X, Y: host.Y, Width: rw, Height: rh}
		store.guillotineSplit(idx, used)

		placements = append(placements, Placement{
			ID:              it.input.ID,
			Payload:         it.input.Payload,
			Size:            it.input.Size,
			Rotation:        it.input.Rotation,
			X:               host.X,
			Y:               host.Y,
			EffectiveWidth:  it.effW,
			EffectiveHeight: it.effH,
			PageIndex:       page,
		})
	}

	return placements
}

// firstFit returns the index of the first free rectangle (in the store's
// current, area-descending order) that fits a rw x rh footprint, or -1 if
// none do. Because the store is kept area-descending, this is
// equivalently "the largest-area free rectangle that fits", not pure
// insertion order.
func firstFit(rects []FreeRect, rw, rh float64) int {
	for i, r := range rects {
		if rw <= r.Width && rh <= r.Height {
			return i
		}
	}
	return -1
}
