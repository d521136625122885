package pack

import "errors"

// ErrInvalidGeometry is returned when page margins leave no printable area,
// a photo has a non-positive dimension, a rotation outside {0, 90, 180,
// 270} is used, or spacing/margins are negative. No placements are
// returned alongside this error.
var ErrInvalidGeometry = errors.New("pack: invalid geometry")

// ErrUnknownAlgorithm is returned when the Algorithm value is outside the
// enumerated set. No placements are returned alongside this error.
var ErrUnknownAlgorithm = errors.New("pack: unknown algorithm")
