package system

import "github.com/younwookim/kingsandpigs/internal/domain/entity"

// Intent represents an action the player wants to perform this tick
type Intent interface {
	isIntent()
}

// MoveIntent sets horizontal movement: -1 left, 0 none, 1 right
type MoveIntent struct {
	Direction float64
}

func (MoveIntent) isIntent() {}

// JumpIntent launches a grounded player
type JumpIntent struct{}

func (JumpIntent) isIntent() {}

// AttackIntent starts an attack if the cooldown allows
type AttackIntent struct{}

func (AttackIntent) isIntent() {}

// EnterIntent asks to go through the door the player stands at
type EnterIntent struct{}

func (EnterIntent) isIntent() {}

// Intents converts one tick of input into intents for p.
// Opposite directions cancel out and jumping requires solid ground.
func Intents(in InputState, p *entity.Player) []Intent {
	var dir float64
	if in.Left {
		dir--
	}
	if in.Right {
		dir++
	}
	intents := []Intent{MoveIntent{Direction: dir}}

	if in.Jump && !p.InAir {
		intents = append(intents, JumpIntent{})
	}
	if in.Attack {
		intents = append(intents, AttackIntent{})
	}
	if in.Enter {
		intents = append(intents, EnterIntent{})
	}
	return intents
}

// IntentResult reports what applying intents did
type IntentResult struct {
	Jumped   bool
	Attacked bool
	Enter    bool
}

// ApplyIntents applies intents to p. Entering is left to the caller,
// which knows where the doors are.
func ApplyIntents(p *entity.Player, intents []Intent) IntentResult {
	var res IntentResult
	for _, intent := range intents {
		switch i := intent.(type) {
		case MoveIntent:
			p.SetDirection(i.Direction)
		case JumpIntent:
			if !p.InAir {
				p.Jump()
				res.Jumped = true
			}
		case AttackIntent:
			res.Attacked = p.Attack() || res.Attacked
		case EnterIntent:
			res.Enter = true
		}
	}
	return res
}
