// Package preview paints a packed layout directly in the terminal, for
// operators who want to sanity-check a layout without opening a file.
// It is a lightweight operator aid, not a full editor — no undo/redo,
// no persisted UI state.
package preview

import (
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"

	"photolayout/pack"
)

// Run opens a tcell screen, scales the full page size of cfg to fit the
// terminal, and shows one page at a time: a box-drawn rectangle per
// placement with its index centered inside, then blocks until any key is
// pressed before moving to the next page.
func Run(placements []pack.Placement, cfg pack.PageConfig) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal screen: %w", err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset))
	screen.Clear()

	byPage := make(map[int][]pack.Placement)
	var pageIndices []int
	for _, p := range placements {
		if _, ok := byPage[p.PageIndex]; !ok {
			pageIndices = append(pageIndices, p.PageIndex)
		}
		byPage[p.PageIndex] = append(byPage[p.PageIndex], p)
	}
	sort.Ints(pageIndices)

	cols, rows := screen.Size()
	scaleX := float64(cols) / cfg.PageWidth
	scaleY := float64(rows-2) / cfg.PageHeight // reserve a status line
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}

	for _, idx := range pageIndices {
		drawPage(screen, byPage[idx], idx, len(pageIndices), scale)
		screen.Show()

		for {
			ev := screen.PollEvent()
			if _, ok := ev.(*tcell.EventKey); ok {
				break
			}
		}
	}

	return nil
}

func drawPage(screen tcell.Screen, group []pack.Placement, pageIndex, totalPages int, scale float64) {
	screen.Clear()

	status := fmt.Sprintf("page %d/%d — %d placements — press any key", pageIndex+1, totalPages, len(group))
	drawText(screen, 0, 0, status)

	for i, p := range group {
		x0 := int(p.X * scale)
		y0 := int(p.Y*scale) + 1
		x1 := int((p.X + p.EffectiveWidth) * scale)
		y1 := int((p.Y+p.EffectiveHeight)*scale) + 1
		drawBox(screen, x0, y0, x1, y1)

		label := fmt.Sprintf("%d", i)
		cx := x0 + (x1-x0)/2 - len(label)/2
		cy := y0 + (y1-y0)/2
		drawText(screen, cx, cy, label)
	}
}

func drawBox(screen tcell.Screen, x0, y0, x1, y1 int) {
	style := tcell.StyleDefault
	for x := x0; x <= x1; x++ {
		screen.SetContent(x, y0, tcell.RuneHLine, nil, style)
		screen.SetContent(x, y1, tcell.RuneHLine, nil, style)
	}
	for y := y0; y <= y1; y++ {
		screen.SetContent(x0, y, tcell.RuneVLine, nil, style)
		screen.SetContent(x1, y, tcell.RuneVLine, nil, style)
	}
	screen.SetContent(x0, y0, tcell.RuneULCorner, nil, style)
	screen.SetContent(x1, y0, tcell.RuneURCorner, nil, style)
	screen.SetContent(x0, y1, tcell.RuneLLCorner, nil, style)
	screen.SetContent(x1, y1, tcell.RuneLRCorner, nil, style)
}

func drawText(screen tcell.Screen, x, y int, text string) {
	style := tcell.StyleDefault
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
