package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photolayout/pack"
)

func TestRenderPages_OneImagePerPage(t *testing.T) {
	cfg := pack.PageConfig{PageWidth: 10, PageHeight: 10}
	placements := []pack.Placement{
		{ID: "a", X: 0, Y: 0, EffectiveWidth: 4, EffectiveHeight: 4, PageIndex: 0},
		{ID: "b", X: 5, Y: 5, EffectiveWidth: 4, EffectiveHeight: 4, PageIndex: 0},
		{ID: "c", X: 0, Y: 0, EffectiveWidth: 4, EffectiveHeight: 4, PageIndex: 1},
	}

	pages, err := RenderPages(placements, cfg)
	require.NoError(t, err)
	require.Len(t, pages, 2)

	for _, img := range pages {
		assert.Equal(t, 10, img.Bounds().Dx())
		assert.Equal(t, 10, img.Bounds().Dy())
	}
}

func TestRenderPages_EmptyPlacements(t *testing.T) {
	pages, err := RenderPages(nil, pack.PageConfig{PageWidth: 4, PageHeight: 6})
	require.NoError(t, err)
	assert.Empty(t, pages)
}

func TestColorFor_DeterministicPerID(t *testing.T) {
	assert.Equal(t, colorFor("stable-id"), colorFor("stable-id"))
	assert.NotEqual(t, colorFor("id-one"), colorFor("id-two"))
}
