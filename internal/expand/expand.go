// Package expand turns one authored photosource.Photo into the N
// independent pack.PhotoInput copies its Quantity calls for.
package expand

import (
	"github.com/google/uuid"

	"photolayout/internal/photosource"
	"photolayout/pack"
)

// Expand replicates each photo Quantity times (a Quantity below 1 is
// treated as 1), producing one pack.PhotoInput per copy. Each copy gets
// a freshly generated uuid.New ID; Size, Rotation, and Priority are
// copied unchanged from the source photo. The core never sees
// quantities — it only ever receives this already-flat sequence.
func Expand(photos []photosource.Photo) []pack.PhotoInput {
	inputs := make([]pack.PhotoInput, 0, len(photos))

	for _, p := range photos {
		n := p.Quantity
		if n < 1 {
			n = 1
		}
		for i := 0; i < n; i++ {
			inputs = append(inputs, pack.PhotoInput{
				ID:       uuid.New(),
				Size:     p.Size,
				Rotation: p.Rotation,
				Priority: p.Priority,
				Payload:  p.Path,
			})
		}
	}

	return inputs
}
