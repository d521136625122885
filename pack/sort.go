package pack

import (
	"cmp"
	"slices"
)

// preparedInput is a PhotoInput with its rotation-aware bounding
// dimensions precomputed, plus its original index so that a stable sort
// has something deterministic to fall back on if the sort itself is
// re-applied (slices.SortStableFunc already guarantees this, but carrying
// the index keeps intent explicit for readers).
type preparedInput struct {
	input         PhotoInput
	effW, effH    float64
	originalIndex int
}

// prepare validates and precomputes effective dimensions for every input,
// failing fast with ErrInvalidGeometry on the first offender.
func prepare(inputs []PhotoInput) ([]preparedInput, error) {
	prepared := make([]preparedInput, len(inputs))
	for i, in := range inputs {
		if in.Size.Width <= 0 || in.Size.Height <= 0 {
			return nil, ErrInvalidGeometry
		}
		if !validRotation(in.Rotation) {
			return nil, ErrInvalidGeometry
		}
		w, h := effectiveDims(in.Size, in.Rotation)
		prepared[i] = preparedInput{input: in, effW: w, effH: h, originalIndex: i}
	}
	return prepared, nil
}

// sortByAreaThenPriority orders by Priority descending, then effective
// area descending, stable on remaining ties. Used by Guillotine and
// MaxRects.
func sortByAreaThenPriority(items []preparedInput) {
	slices.SortStableFunc(items, func(a, b preparedInput) int {
		if c := cmp.Compare(b.input.Priority, a.input.Priority); c != 0 {
			return c
		}
		return cmp.Compare(b.effW*b.effH, a.effW*a.effH)
	})
}

// sortByHeightThenPriority orders by Priority descending, then effective
// height descending, stable on remaining ties. Used by Shelf.
func sortByHeightThenPriority(items []preparedInput) {
	slices.SortStableFunc(items, func(a, b preparedInput) int {
		if c := cmp.Compare(b.input.Priority, a.input.Priority); c != 0 {
			return c
		}
		return cmp.Compare(b.effH, a.effH)
	})
}
