// Package anim provides sprite sheet frame sequencing.
//
// An Animation owns the frames cut from one sheet and advances through them
// on a fixed tick cadence. A Manager maps state names to Animations and
// tracks which one is active.
package anim

import "image"

// DefaultCadence is the number of ticks between frame advances.
// At 60 TPS this plays 12 frames per second.
const DefaultCadence = 5

// Sheet is a source image that frames can be cut from.
// *ebiten.Image, *image.NRGBA and *image.RGBA all satisfy it.
type Sheet interface {
	Bounds() image.Rectangle
	SubImage(r image.Rectangle) image.Image
}

// Size is a frame size in pixels
type Size struct {
	W, H int
}

// Option configures an Animation
type Option func(*Animation)

// WithLoop sets whether the animation wraps after the last frame.
func WithLoop(loop bool) Option {
	return func(a *Animation) { a.loop = loop }
}

// WithCadence sets the number of ticks between frame advances.
// Values below 1 are ignored.
func WithCadence(ticks int) Option {
	return func(a *Animation) {
		if ticks >= 1 {
			a.cadence = ticks
		}
	}
}

// Animation is a sequence of equally sized frames played on a tick cadence
type Animation struct {
	size    Size
	frames  []image.Image
	loop    bool
	cadence int

	index    int
	tick     int
	finished bool
}

// New slices count frames of the given size from sheet, left to right.
// A zero size.H uses the full sheet height.
func New(sheet Sheet, size Size, count int, opts ...Option) (*Animation, error) {
	bounds := sheet.Bounds()
	if size.H <= 0 {
		size.H = bounds.Dy()
	}
	if count < 1 || size.W < 1 || bounds.Dx() < size.W*count || bounds.Dy() < size.H {
		return nil, &InvalidSheetError{
			SheetWidth:  bounds.Dx(),
			SheetHeight: bounds.Dy(),
			Frame:       size,
			Count:       count,
		}
	}

	a := &Animation{
		size:    size,
		frames:  make([]image.Image, count),
		loop:    true,
		cadence: DefaultCadence,
	}
	for _, opt := range opts {
		opt(a)
	}

	for i := range a.frames {
		x := bounds.Min.X + i*size.W
		r := image.Rect(x, bounds.Min.Y, x+size.W, bounds.Min.Y+size.H)
		a.frames[i] = sheet.SubImage(r)
	}

	return a, nil
}

// Advance moves playback forward by one tick.
func (a *Animation) Advance() {
	a.tick++
	if a.tick < a.cadence {
		return
	}
	a.tick = 0

	last := len(a.frames) - 1
	if a.loop {
		a.index++
		if a.index > last {
			a.index = 0
		}
		return
	}

	if a.index < last {
		a.index++
	}
	if a.index == last {
		a.finished = true
	}
}

// Frame returns the frame at the current index
func (a *Animation) Frame() image.Image {
	return a.frames[a.index]
}

// Reset rewinds to the first frame and clears completion.
func (a *Animation) Reset() {
	a.index = 0
	a.tick = 0
	a.finished = false
}

// Index returns the current frame index
func (a *Animation) Index() int { return a.index }

// FrameCount returns the number of frames
func (a *Animation) FrameCount() int { return len(a.frames) }

// Finished reports whether a one-shot animation has reached its last frame.
// Always false for looping animations.
func (a *Animation) Finished() bool { return a.finished }

// Loop reports whether the animation wraps
func (a *Animation) Loop() bool { return a.loop }

// Cadence returns ticks per frame advance
func (a *Animation) Cadence() int { return a.cadence }

// Size returns the frame size
func (a *Animation) Size() Size { return a.size }
