package entity

import "github.com/younwookim/kingsandpigs/internal/domain/anim"

// Door sprite dimensions
const (
	DoorFrameWidth  = 46
	DoorFrameHeight = 56
)

// DoorMode selects whether a door is where the player arrives or leaves
type DoorMode int

const (
	DoorEnter DoorMode = iota
	DoorExit
)

// String returns the string representation of the mode
func (m DoorMode) String() string {
	switch m {
	case DoorEnter:
		return "enter"
	case DoorExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Door is an interactive door
type Door struct {
	Rect Rect
	Mode DoorMode

	// fired is set once the opening has been reported, until the door leaves "open"
	fired bool

	anims *anim.Manager
}

// NewDoor creates a door with its top-left at x, y.
// animations must contain idle, open and close. Enter doors start closing.
func NewDoor(mode DoorMode, x, y int, animations map[string]*anim.Animation) (*Door, error) {
	initial := StateIdle
	if mode == DoorEnter {
		initial = StateClose
	}
	m, err := newManager(initial, animations, StateIdle, StateOpen, StateClose)
	if err != nil {
		return nil, err
	}

	return &Door{
		Rect:  Rect{X: x, Y: y, W: DoorFrameWidth * 2, H: DoorFrameHeight * 2},
		Mode:  mode,
		anims: m,
	}, nil
}

// Open starts the opening animation
func (d *Door) Open() {
	request(d.anims, StateOpen)
}

// Close starts the closing animation
func (d *Door) Close() {
	request(d.anims, StateClose)
}

// Update runs one tick of door logic.
// An exit door reports OutcomeSceneChange once when it finishes opening.
func (d *Door) Update() Outcome {
	d.anims.Update()

	if d.anims.State() != StateOpen {
		d.fired = false
		return OutcomeNone
	}
	if d.Mode == DoorExit && d.anims.Done() && !d.fired {
		d.fired = true
		return OutcomeSceneChange
	}
	return OutcomeNone
}

// Render draws the current frame
func (d *Door) Render(dst Sink) {
	dst.DrawFrame(d.anims.Current().Frame(), d.Rect.X, d.Rect.Y, false)
}

// Animations exposes the animation manager for inspection
func (d *Door) Animations() *anim.Manager {
	return d.anims
}
