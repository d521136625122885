package expand

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"photolayout/internal/photosource"
	"photolayout/pack"
)

func TestExpand_MonotoneExpansionWithDistinctIDs(t *testing.T) {
	photos := []photosource.Photo{
		{Path: "a.png", Size: pack.PhotoSize{Width: 4, Height: 6}, Rotation: 90, Priority: 2, Quantity: 3},
		{Path: "b.png", Size: pack.PhotoSize{Width: 5, Height: 7}, Quantity: 0},
	}

	inputs := Expand(photos)
	assert.Len(t, inputs, 4) // 3 + (0 treated as 1)

	seen := make(map[any]bool)
	for _, in := range inputs {
		assert.False(t, seen[in.ID], "ID must be unique per copy")
		seen[in.ID] = true
	}

	for _, in := range inputs[:3] {
		assert.Equal(t, pack.PhotoSize{Width: 4, Height: 6}, in.Size)
		assert.Equal(t, 90, in.Rotation)
		assert.Equal(t, 2, in.Priority)
		assert.Equal(t, "a.png", in.Payload)
	}
}

func TestExpand_EmptyInput(t *testing.T) {
	inputs := Expand(nil)
	assert.Empty(t, inputs)
}
