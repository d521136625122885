// Package raster renders a packed layout to flat color-coded PNGs, one
// per page. It draws each placement as a filled, outlined rectangle
// rather than compositing real photo pixels, which is out of scope here.
package raster

import (
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"image/draw"
	"runtime"
	"sync"

	"github.com/disintegration/imaging"

	"photolayout/pack"
)

// RenderPages groups placements by PageIndex and allocates one
// image.NRGBA per page, sized to cfg.PageWidth x cfg.PageHeight (rounded
// to the nearest whole pixel — callers working in inches should scale cfg
// before calling, or treat the returned images as 1-unit-per-pixel
// proofs). Each placement is painted as a filled rectangle, colored
// deterministically from its ID, with a 1-pixel black outline.
func RenderPages(placements []pack.Placement, cfg pack.PageConfig) (map[int]*image.NRGBA, error) {
	byPage := make(map[int][]pack.Placement)
	for _, p := range placements {
		byPage[p.PageIndex] = append(byPage[p.PageIndex], p)
	}

	pageW := int(cfg.PageWidth + 0.5)
	pageH := int(cfg.PageHeight + 0.5)

	pages := make(map[int]*image.NRGBA, len(byPage))
	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, runtime.NumCPU())

	for idx, group := range byPage {
		wg.Add(1)
		sem <- struct{}{}
		go func(pageIndex int, group []pack.Placement) {
			defer wg.Done()
			defer func() { <-sem }()

			img := imaging.New(pageW, pageH, color.NRGBA{255, 255, 255, 255})
			for _, p := range group {
				drawPlacement(img, p)
			}

			mu.Lock()
			pages[pageIndex] = img
			mu.Unlock()
		}(idx, group)
	}

	wg.Wait()
	return pages, nil
}

func drawPlacement(img *image.NRGBA, p pack.Placement) {
	x0, y0 := int(p.X), int(p.Y)
	x1, y1 := int(p.X+p.EffectiveWidth), int(p.Y+p.EffectiveHeight)
	rect := image.Rect(x0, y0, x1, y1)

	fill := &image.Uniform{C: colorFor(p.ID)}
	draw.Draw(img, rect, fill, image.Point{}, draw.Src)

	outline := color.NRGBA{0, 0, 0, 255}
	for x := x0; x < x1; x++ {
		img.Set(x, y0, outline)
		img.Set(x, y1-1, outline)
	}
	for y := y0; y < y1; y++ {
		img.Set(x0, y, outline)
		img.Set(x1-1, y, outline)
	}
}

// colorFor derives a stable, visually distinct fill color from a
// placement ID so repeated renders of the same layout look identical.
func colorFor(id any) color.NRGBA {
	h := fnv.New32a()
	fmt.Fprint(h, id)
	sum := h.Sum32()
	return color.NRGBA{
		R: uint8(sum),
		G: uint8(sum >> 8),
		B: uint8(sum >> 16),
		A: 255,
	}
}
