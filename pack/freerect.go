package pack

import "slices"

// rectStore is the free-rectangle collection shared by the Guillotine and
// MaxRects drivers. It is a materially different internal type from the
// cursor pair the Shelf driver uses (see shelf.go) — the two algorithms
// don't actually share a notion of "free space".
//
// The store is reused across pages rather than reallocated: reset
// truncates the backing slice instead of discarding it.
type rectStore struct {
	rects []FreeRect
}

// reset replaces the store's contents with a single free rectangle
// covering the given printable area.
func (s *rectStore) reset(area FreeRect) {
	s.rects = s.rects[:0]
	s.rects = append(s.rects, area)
}

// sortAreaDescending orders the free list from largest to smallest area,
// stably. This is the ordering the reference behavior requires so that a
// linear best-fit scan is deterministic when several rectangles tie.
func (s *rectStore) sortAreaDescending() {
	slices.SortStableFunc(s.rects, func(a, b FreeRect) int {
		ab, bb := a.area(), b.area()
		switch {
		case ab > bb:
			return -1
		case ab < bb:
			return 1
		default:
			return 0
		}
	})
}

// guillotineSplit removes the host rectangle at hostIndex and inserts up
// to two children produced by cutting it along the used rectangle's
// right/bottom edges (short-axis split: the bottom strip spans the host's
// full width, the right strip spans only the used rectangle's height).
func (s *rectStore) guillotineSplit(hostIndex int, used FreeRect) {
	host := s.rects[hostIndex]
	s.rects = slices.Delete(s.rects, hostIndex, hostIndex+1)

	if host.Width > used.Width {
		s.rects = append(s.rects, FreeRect{
			X: host.X + used.Width, Y: host.Y,
			Width: host.Width - used.Width, Height: used.Height,
		})
	}
	if host.Height > used.Height {
		s.rects = append(s.rects, FreeRect{
			X: host.X, Y: host.Y + used.Height,
			Width: host.Width, Height: host.Height - used.Height,
		})
	}
	s.sortAreaDescending()
}

// maxRectsSplit removes the host rectangle at hostIndex, inserts up to two
// full-extent children (right strip at the host's full height, bottom
// strip at the host's full width), then prunes every free rectangle that
// is contained in another (see pruneContained). This is the "split host only, then
// prune" variant, not full MaxRects subdivision against every overlapped
// free rectangle.
func (s *rectStore) maxRectsSplit(hostIndex int, used FreeRect) {
	host := s.rects[hostIndex]
	s.rects = slices.Delete(s.rects, hostIndex, hostIndex+1)

	var candidates []FreeRect
	if host.Width > used.Width {
		candidates = append(candidates, FreeRect{
			X: host.X + used.Width, Y: host.Y,
			Width: host.Width - used.Width, Height: host.Height,
		})
	}
	if host.Height > used.Height {
		candidates = append(candidates, FreeRect{
			X: host.X, Y: host.Y + used.Height,
			Width: host.Width, Height: host.Height - used.Height,
		})
	}

	for _, c := range candidates {
		if !s.containedInAny(c) {
			s.rects = append(s.rects, c)
		}
	}
	s.pruneContained()
	s.sortAreaDescending()
}

// containedInAny reports whether r is contained (non-strictly) in any
// rectangle currently in the store.
func (s *rectStore) containedInAny(r FreeRect) bool {
	for _, other := range s.rects {
		if other.containsRect(r) {
			return true
		}
	}
	return false
}

// pruneContained removes every free rectangle that is contained in a
// distinct other free rectangle in the store. Exact duplicates count as
// distinct instances, but only the later one is pruned — the first
// occurrence always survives — so a store with a single duplicated
// rectangle never empties itself out.
func (s *rectStore) pruneContained() {
	keep := make([]FreeRect, 0, len(s.rects))
	for i, r := range s.rects {
		contained := false
		for j, other := range s.rects {
			if i == j {
				continue
			}
			if other == r {
				if j < i {
					contained = true
					break
				}
				continue
			}
			if other.containsRect(r) {
				contained = true
				break
			}
		}
		if !contained {
			keep = append(keep, r)
		}
	}
	s.rects = keep
}
