package asset

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/colornames"
)

// PlaceholderSet generates stand-in sheets: one tinted block per frame on
// a background of the transparency key, each block a little taller than
// the last so frame changes are visible.
type PlaceholderSet struct {
	Background color.Color
	Fallback   color.Color
}

// NewPlaceholderSet creates a generator whose background is key
func NewPlaceholderSet(key color.Color) *PlaceholderSet {
	return &PlaceholderSet{
		Background: key,
		Fallback:   colornames.Magenta,
	}
}

// Tint resolves a colornames name, falling back to the set's fallback color
func (p *PlaceholderSet) Tint(name string) color.Color {
	if c, ok := colornames.Map[name]; ok {
		return c
	}
	return p.Fallback
}

// Sheet draws a strip of req.Frames frames
func (p *PlaceholderSet) Sheet(req Request) *image.NRGBA {
	w, h, n := req.FrameWidth, req.FrameHeight, req.Frames
	if n < 1 {
		n = 1
	}
	img := image.NewNRGBA(image.Rect(0, 0, w*n, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(p.Background), image.Point{}, draw.Src)

	tint := image.NewUniform(p.Tint(req.Tint))
	for i := 0; i < n; i++ {
		inset := 2
		top := h/4 - i
		if top < inset {
			top = inset
		}
		r := image.Rect(i*w+inset, top, (i+1)*w-inset, h-inset)
		draw.Draw(img, r, tint, image.Point{}, draw.Src)
	}
	return img
}
