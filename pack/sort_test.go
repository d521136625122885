package pack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortByAreaThenPriority(t *testing.T) {
	items, err := prepare([]PhotoInput{
		{ID: "low-big", Size: PhotoSize{Width: 10, Height: 10}, Priority: 0},
		{ID: "high-small", Size: PhotoSize{Width: 1, Height: 1}, Priority: 5},
		{ID: "low-small", Size: PhotoSize{Width: 1, Height: 1}, Priority: 0},
	})
	require.NoError(t, err)

	sortByAreaThenPriority(items)

	ids := make([]any, len(items))
	for i, it := range items {
		ids[i] = it.input.ID
	}
	assert.Equal(t, []any{"high-small", "low-big", "low-small"}, ids)
}

func TestSortByHeightThenPriority(t *testing.T) {
	items, err := prepare([]PhotoInput{
		{ID: "short", Size: PhotoSize{Width: 1, Height: 2}},
		{ID: "tall-priority", Size: PhotoSize{Width: 1, Height: 1}, Priority: 9},
		{ID: "tall", Size: PhotoSize{Width: 1, Height: 5}},
	})
	require.NoError(t, err)

	sortByHeightThenPriority(items)

	ids := make([]any, len(items))
	for i, it := range items {
		ids[i] = it.input.ID
	}
	assert.Equal(t, []any{"tall-priority", "tall", "short"}, ids)
}

func TestPrepare_RejectsNonPositiveSize(t *testing.T) {
	_, err := prepare([]PhotoInput{{ID: 1, Size: PhotoSize{Width: 0, Height: 1}}})
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestPrepare_RejectsBadRotation(t *testing.T) {
	_, err := prepare([]PhotoInput{{ID: 1, Size: PhotoSize{Width: 1, Height: 1}, Rotation: 1}})
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}
