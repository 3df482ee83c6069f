package entity

import "github.com/younwookim/kingsandpigs/internal/domain/anim"

// Box sprite dimensions
const (
	BoxFrameWidth  = 22
	BoxFrameHeight = 16
)

// Box is a breakable crate.
// The "hit" state is loaded and validated but no logic enters it yet.
type Box struct {
	Rect Rect

	anims *anim.Manager
}

// NewBox creates a box with its top-left at x, y.
// animations must contain idle and hit.
func NewBox(x, y int, animations map[string]*anim.Animation) (*Box, error) {
	m, err := newManager(StateIdle, animations, StateHit)
	if err != nil {
		return nil, err
	}

	return &Box{
		Rect:  Rect{X: x, Y: y, W: BoxFrameWidth, H: BoxFrameHeight},
		anims: m,
	}, nil
}

// Update advances the animation and requests idle
func (b *Box) Update() Outcome {
	b.anims.Update()
	request(b.anims, StateIdle)
	return OutcomeNone
}

// Render draws the current frame
func (b *Box) Render(dst Sink) {
	dst.DrawFrame(b.anims.Current().Frame(), b.Rect.X, b.Rect.Y, false)
}

// Animations exposes the animation manager for inspection
func (b *Box) Animations() *anim.Manager {
	return b.anims
}
