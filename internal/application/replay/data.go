package replay

import "github.com/younwookim/kingsandpigs/internal/application/system"

// Version is written into every recording
const Version = "1.0"

// FrameInput records input state for a single tick
type FrameInput struct {
	F  int  `json:"f"`            // Tick number
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	J  bool `json:"j,omitempty"`  // Jump
	A  bool `json:"a,omitempty"`  // Attack
	E  bool `json:"e,omitempty"`  // Enter
	P  bool `json:"p,omitempty"`  // Pause
	RS bool `json:"rs,omitempty"` // Restart
}

// ReplayData contains all data needed to replay a game session.
// The game is deterministic, so the starting level and the input
// sequence are enough.
type ReplayData struct {
	Version   string       `json:"version"`
	Level     string       `json:"level"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// Frame converts one tick of input to its recorded form
func Frame(tick int, in system.InputState) FrameInput {
	return FrameInput{
		F:  tick,
		L:  in.Left,
		R:  in.Right,
		J:  in.Jump,
		A:  in.Attack,
		E:  in.Enter,
		P:  in.Pause,
		RS: in.Restart,
	}
}

// Input converts the recorded frame back to input
func (f FrameInput) Input() system.InputState {
	return system.InputState{
		Left:    f.L,
		Right:   f.R,
		Jump:    f.J,
		Attack:  f.A,
		Enter:   f.E,
		Pause:   f.P,
		Restart: f.RS,
	}
}
