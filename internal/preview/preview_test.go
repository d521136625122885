package preview

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photolayout/pack"
)

func TestDrawPage_DrawsBoxAndLabel(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(40, 20)

	placements := []pack.Placement{
		{ID: "a", X: 0, Y: 0, EffectiveWidth: 4, EffectiveHeight: 4, PageIndex: 0},
	}

	drawPage(screen, placements, 0, 1, 2.0)
	screen.Show()

	mainc, _, _, _ := screen.GetContent(0, 1)
	assert.NotEqual(t, ' ', mainc)
}

func TestDrawBox_DrawsCorners(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(20, 20)

	drawBox(screen, 2, 2, 8, 6)
	screen.Show()

	mainc, _, _, _ := screen.GetContent(2, 2)
	assert.Equal(t, tcell.RuneULCorner, mainc)
}
