package entity

import (
	"image"

	"github.com/younwookim/kingsandpigs/internal/domain/anim"
)

// Animation state names shared by the entities
const (
	StateIdle   = "idle"
	StateRun    = "run"
	StateJump   = "jump"
	StateFall   = "fall"
	StateAttack = "attack"
	StateDead   = "dead"
	StateOpen   = "open"
	StateClose  = "close"
	StateHit    = "hit"
)

// Outcome is what an entity asks of its owning scene after a tick
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeSceneChange
	OutcomeGameOver
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "None"
	case OutcomeSceneChange:
		return "SceneChange"
	case OutcomeGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Sink draws a frame at a screen offset, mirrored horizontally when flip is set.
type Sink interface {
	DrawFrame(frame image.Image, x, y int, flip bool)
}

// Updatable is stepped once per tick by the owning scene
type Updatable interface {
	Update() Outcome
}

// Renderable draws itself into a Sink
type Renderable interface {
	Render(dst Sink)
}

// Rect is an axis aligned rectangle in pixels (top-left + size)
type Rect struct {
	X, Y int
	W, H int
}

// Right returns the x coordinate one past the right edge
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y coordinate one past the bottom edge
func (r Rect) Bottom() int { return r.Y + r.H }

// Intersects reports whether the two rectangles overlap
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// newManager builds an animation manager and checks that every state the
// entity can request exists.
func newManager(initial string, animations map[string]*anim.Animation, required ...string) (*anim.Manager, error) {
	m, err := anim.NewManager(initial, animations)
	if err != nil {
		return nil, err
	}
	if err := m.Require(required...); err != nil {
		return nil, err
	}
	return m, nil
}

// request asks m for state. States are validated at construction, so a
// failure here is a programming error.
func request(m *anim.Manager, state string) {
	if err := m.SetState(state); err != nil {
		panic(err)
	}
}
