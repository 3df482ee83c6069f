// Package render draws entity frames onto ebiten images.
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/kingsandpigs/internal/domain/entity"
)

// ColorKey returns a copy of src in which every pixel whose RGB equals
// key is fully transparent.
func ColorKey(src image.Image, key color.Color) *image.NRGBA {
	k := color.NRGBAModel.Convert(key).(color.NRGBA)
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			if c.R == k.R && c.G == k.G && c.B == k.B {
				c = color.NRGBA{}
			}
			dst.SetNRGBA(x-b.Min.X, y-b.Min.Y, c)
		}
	}
	return dst
}

// DrawOptions positions a frame of width w at (x, y), mirrored
// horizontally about its own center when flip is set.
func DrawOptions(w, x, y int, flip bool) *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	if flip {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(w), 0)
	}
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterNearest
	return op
}

// Cache converts frames to color keyed GPU images once and reuses them.
type Cache struct {
	key    color.Color
	images map[image.Image]*ebiten.Image
}

// NewCache creates a cache that makes key transparent
func NewCache(key color.Color) *Cache {
	return &Cache{
		key:    key,
		images: make(map[image.Image]*ebiten.Image),
	}
}

// Image returns the color keyed ebiten image for frame
func (c *Cache) Image(frame image.Image) *ebiten.Image {
	if img, ok := c.images[frame]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(ColorKey(frame, c.key))
	c.images[frame] = img
	return img
}

// Sink returns an entity.Sink drawing onto dst
func (c *Cache) Sink(dst *ebiten.Image) entity.Sink {
	return &screenSink{cache: c, dst: dst}
}

type screenSink struct {
	cache *Cache
	dst   *ebiten.Image
}

func (s *screenSink) DrawFrame(frame image.Image, x, y int, flip bool) {
	img := s.cache.Image(frame)
	s.dst.DrawImage(img, DrawOptions(frame.Bounds().Dx(), x, y, flip))
}
