package pack

// printableArea returns the rectangle left over once margins are
// subtracted from the page. It fails with ErrInvalidGeometry if the
// resulting width or height is non-positive, or if any margin or the
// spacing is negative.
func printableArea(cfg PageConfig) (FreeRect, error) {
	if cfg.MarginTop < 0 || cfg.MarginRight < 0 || cfg.MarginBottom < 0 || cfg.MarginLeft < 0 || cfg.Spacing < 0 {
		return FreeRect{}, ErrInvalidGeometry
	}
	w := cfg.PageWidth - cfg.MarginLeft - cfg.MarginRight
	h := cfg.PageHeight - cfg.MarginTop - cfg.MarginBottom
	if w <= 0 || h <= 0 {
		return FreeRect{}, ErrInvalidGeometry
	}
	return FreeRect{X: cfg.MarginLeft, Y: cfg.MarginTop, Width: w, Height: h}, nil
}

// effectiveDims returns the rotation-aware bounding dimensions of size:
// (height, width) for a 90 or 270 degree rotation, (width, height)
// otherwise.
func effectiveDims(size PhotoSize, rotation int) (w, h float64) {
	if rotation == 90 || rotation == 270 {
		return size.Height, size.Width
	}
	return size.Width, size.Height
}

// validRotation reports whether rotation is one of the four cardinal
// rotations the core understands.
func validRotation(rotation int) bool {
	switch rotation {
	case 0, 90, 180, 270:
		return true
	default:
		return false
	}
}
