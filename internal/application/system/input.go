package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState holds one tick of player input
type InputState struct {
	Left    bool
	Right   bool
	Jump    bool
	Attack  bool
	Enter   bool
	Pause   bool
	Restart bool
}

// InputSource produces the input for the current tick
type InputSource interface {
	Poll() InputState
}

// InputFunc adapts a function to InputSource
type InputFunc func() InputState

// Poll calls f
func (f InputFunc) Poll() InputState {
	return f()
}

// Key bindings
var (
	leftKeys    = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	rightKeys   = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
	jumpKeys    = []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp, ebiten.KeySpace}
	attackKeys  = []ebiten.Key{ebiten.KeyJ, ebiten.KeyX}
	enterKeys   = []ebiten.Key{ebiten.KeyE, ebiten.KeyArrowDown}
	pauseKeys   = []ebiten.Key{ebiten.KeyEscape}
	restartKeys = []ebiten.Key{ebiten.KeyZ, ebiten.KeyR}
)

// KeyboardInput reads the keyboard through ebiten.
// Movement is level triggered, everything else fires on the press.
type KeyboardInput struct{}

// NewKeyboardInput creates a keyboard input source
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{}
}

// Poll reads the current keyboard state
func (k *KeyboardInput) Poll() InputState {
	return InputState{
		Left:    anyPressed(leftKeys),
		Right:   anyPressed(rightKeys),
		Jump:    anyJustPressed(jumpKeys),
		Attack:  anyJustPressed(attackKeys),
		Enter:   anyJustPressed(enterKeys),
		Pause:   anyJustPressed(pauseKeys),
		Restart: anyJustPressed(restartKeys),
	}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
