package pack

// packMaxRects places sorted items with the MaxRects driver: every free
// rectangle on the current page is scored by best-short-side-fit (ties
// broken by long-side-fit, then by lowest store index), and the winning
// rectangle is split/pruned per the "split host only" variant in
// freerect.go.
func packMaxRects(items []preparedInput, cfg PageConfig, area FreeRect) []Placement {
	placements := make([]Placement, 0, len(items))

	var store rectStore
	store.reset(area)
	page := 0

	for _, it := range items {
		rw := it.effW + cfg.Spacing
		rh := it.effH + cfg.Spacing

		idx := bestShortSideFit(store.rects, rw, rh)
		if idx < 0 {
			if !cfg.MultiPage || rw > area.Width || rh > area.Height {
				continue
			}
			page++
			store.reset(area)
			idx = bestShortSideFit(store.rects, rw, rh)
			if idx < 0 {
				continue
			}
		}

		host := store.rects[idx]
		used := FreeRect{X: host.X, Y: host.Y, Width: rw, Height: rh}
		store.maxRectsSplit(idx, used)

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

// bestShortSideFit scans every free rectangle that fits rw x rh and
// returns the index minimizing short_side_fit = min(leftover width,
// leftover height), breaking ties by long_side_fit, and further ties by
// lowest index. Returns -1 if nothing fits.
func bestShortSideFit(rects []FreeRect, rw, rh float64) int {
	best := -1
	var bestShort, bestLong float64

	for i, r := range rects {
		if rw > r.Width || rh > r.Height {
			continue
		}
		short := min(r.Width-rw, r.Height-rh)
		long := max(r.Width-rw, r.Height-rh)

		if best < 0 || short < bestShort || (short == bestShort && long < bestLong) {
			best = i
			bestShort = short
			bestLong = long
		}
	}
	return best
}
