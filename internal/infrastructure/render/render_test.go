package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorKey(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 1))
	src.SetNRGBA(0, 0, color.NRGBA{A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{R: 200, G: 10, B: 10, A: 255})
	src.SetNRGBA(2, 0, color.NRGBA{R: 1, A: 255})
	src.SetNRGBA(3, 0, color.NRGBA{A: 255})

	out := ColorKey(src, color.Black)

	assert.Equal(t, color.NRGBA{}, out.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 200, G: 10, B: 10, A: 255}, out.NRGBAAt(1, 0))
	assert.Equal(t, color.NRGBA{R: 1, A: 255}, out.NRGBAAt(2, 0), "near-black is kept")
	assert.Equal(t, color.NRGBA{}, out.NRGBAAt(3, 0))
}

func TestColorKey_SubImageRebased(t *testing.T) {
	sheet := image.NewNRGBA(image.Rect(0, 0, 8, 2))
	sheet.SetNRGBA(5, 1, color.NRGBA{G: 255, A: 255})
	frame := sheet.SubImage(image.Rect(4, 0, 8, 2))

	out := ColorKey(frame, color.NRGBA{R: 255, G: 0, B: 255, A: 255})

	assert.Equal(t, image.Rect(0, 0, 4, 2), out.Bounds())
	assert.Equal(t, color.NRGBA{G: 255, A: 255}, out.NRGBAAt(1, 1))
}

func TestDrawOptions(t *testing.T) {
	tests := []struct {
		name         string
		flip         bool
		srcX         float64
		wantX, wantY float64
	}{
		{"left edge unflipped", false, 0, 100, 50},
		{"right edge unflipped", false, 78, 178, 50},
		{"left edge flipped lands on the right", true, 0, 178, 50},
		{"right edge flipped lands on the left", true, 78, 100, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := DrawOptions(78, 100, 50, tt.flip)
			x, y := op.GeoM.Apply(tt.srcX, 0)
			assert.InDelta(t, tt.wantX, x, 1e-9)
			assert.InDelta(t, tt.wantY, y, 1e-9)
		})
	}
}

func TestCache_ReusesFrames(t *testing.T) {
	c := NewCache(color.Black)
	frame := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	other := image.NewNRGBA(image.Rect(0, 0, 4, 4))

	first := c.Image(frame)
	second := c.Image(frame)

	assert.Same(t, first, second)
	assert.NotSame(t, first, c.Image(other))
}
