package pack

// Pack lays inputs out onto one or more pages according to config and the
// chosen algorithm. Inputs are consumed in the order given; Pack is
// responsible for its own stable sort.
//
// Pack is a pure function: equal inputs (including input order) always
// produce byte-for-byte equal outputs. Items that cannot be placed are
// silently omitted from the result — compare len(inputs) to len(result)
// to detect partial packing. The only errors Pack returns are hard
// geometry/configuration failures (ErrInvalidGeometry,
// ErrUnknownAlgorithm); placement failure for an individual item is never
// an error.
func Pack(inputs []PhotoInput, config PageConfig, algorithm Algorithm) ([]Placement, error) {
	area, err := printableArea(config)
	if err != nil {
		return nil, err
	}

	items, err := prepare(inputs)
	if err != nil {
		return nil, err
	}

	switch algorithm {
	case Guillotine:
		sortByAreaThenPriority(items)
		return packGuillotine(items, config, area), nil
	case Shelf:
		sortByHeightThenPriority(items)
		return packShelf(items, config, area), nil
	case MaxRects:
		sortByAreaThenPriority(items)
		return packMaxRects(items, config, area), nil
	default:
		return nil, ErrUnknownAlgorithm
	}
}
