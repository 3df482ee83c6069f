package entity

import "github.com/younwookim/kingsandpigs/internal/domain/anim"

// Player sprite and collision dimensions
const (
	PlayerFrameWidth  = 78
	PlayerFrameHeight = 58
)

// Player render offsets relative to Rect
const (
	playerOffsetX        = -40
	playerOffsetXFlipped = -70
	playerOffsetY        = -40
)

// PlayerStats holds the player's tuning values
type PlayerStats struct {
	Health         int
	Speed          int     // pixels per tick at full input
	JumpForce      float64 // initial vertical velocity, negative is up
	AttackCooldown int     // ticks
}

// DefaultPlayerStats returns the stock tuning
func DefaultPlayerStats() PlayerStats {
	return PlayerStats{
		Health:         100,
		Speed:          5,
		JumpForce:      -18,
		AttackCooldown: 15,
	}
}

// Vec2 is a 2D vector
type Vec2 struct {
	X, Y float64
}

// Player represents the player character
type Player struct {
	Rect    Rect
	Hurtbox Rect

	Health     int
	Direction  Vec2
	InAir      bool
	FlipSprite bool

	stats          PlayerStats
	attackCooldown int
	onCooldown     bool
	canDealDamage  bool

	anims *anim.Manager
}

// NewPlayer creates a player with its top-left at x, y.
// animations must contain idle, run, jump, fall and attack.
func NewPlayer(x, y int, stats PlayerStats, animations map[string]*anim.Animation) (*Player, error) {
	m, err := newManager(StateIdle, animations, StateRun, StateJump, StateFall, StateAttack)
	if err != nil {
		return nil, err
	}

	p := &Player{
		Rect:           Rect{X: x, Y: y, W: PlayerFrameWidth - 25, H: PlayerFrameHeight - 10},
		Hurtbox:        Rect{X: x, Y: y, W: PlayerFrameWidth - 15, H: PlayerFrameHeight - 10},
		Health:         stats.Health,
		InAir:          true,
		stats:          stats,
		attackCooldown: stats.AttackCooldown,
		anims:          m,
	}
	p.updateHurtbox()
	return p, nil
}

// SetDirection sets horizontal input (-1 left, 0 none, 1 right) and facing.
func (p *Player) SetDirection(x float64) {
	p.Direction.X = x
	switch {
	case x < 0:
		p.FlipSprite = true
	case x > 0:
		p.FlipSprite = false
	}
}

// Update runs one tick of player logic
func (p *Player) Update() Outcome {
	p.move()
	p.handleCooldown()
	p.locomotion()
	p.anims.Update()
	p.updateHurtbox()

	if p.IsDead() {
		return OutcomeGameOver
	}
	return OutcomeNone
}

// Render draws the current frame
func (p *Player) Render(dst Sink) {
	x := p.Rect.X + playerOffsetX
	if p.FlipSprite {
		x = p.Rect.X + playerOffsetXFlipped
	}
	dst.DrawFrame(p.anims.Current().Frame(), x, p.Rect.Y+playerOffsetY, p.FlipSprite)
}

// Jump launches the player upward
func (p *Player) Jump() {
	request(p.anims, StateJump)
	p.Direction.Y = p.stats.JumpForce
	p.InAir = true
}

// Attack starts an attack unless on cooldown. Returns true if the attack was
// accepted; an attack animation still playing is not restarted.
func (p *Player) Attack() bool {
	if p.onCooldown {
		return false
	}
	request(p.anims, StateAttack)
	p.onCooldown = true
	return true
}

// Gravity accelerates the player downward and applies vertical velocity
func (p *Player) Gravity(g float64) {
	p.Direction.Y += g
	p.Rect.Y += int(p.Direction.Y)
}

// Land places the player on a floor at floorY
func (p *Player) Land(floorY int) {
	p.Rect.Y = floorY - p.Rect.H
	p.Direction.Y = 0
	p.InAir = false
}

// Bounds returns the collision rectangle
func (p *Player) Bounds() Rect {
	return p.Rect
}

// TakeDamage reduces health
func (p *Player) TakeDamage(amount int) {
	p.Health -= amount
}

// IsDead returns true once health is exhausted
func (p *Player) IsDead() bool {
	return p.Health <= 0
}

// CanDealDamage reports whether the hurtbox is active
func (p *Player) CanDealDamage() bool {
	return p.canDealDamage
}

// OnCooldown reports whether Attack is currently refused
func (p *Player) OnCooldown() bool {
	return p.onCooldown
}

// Animations exposes the animation manager for inspection
func (p *Player) Animations() *anim.Manager {
	return p.anims
}

func (p *Player) move() {
	p.Rect.X += int(p.Direction.X * float64(p.stats.Speed))
}

func (p *Player) handleCooldown() {
	if !p.onCooldown {
		return
	}
	p.attackCooldown--
	if p.attackCooldown <= 0 {
		p.attackCooldown = p.stats.AttackCooldown
		p.onCooldown = false
	}
}

// locomotion picks the movement state unless an attack is still playing.
func (p *Player) locomotion() {
	if p.anims.State() == StateAttack && !p.anims.Done() {
		return
	}

	switch {
	case p.InAir && p.Direction.Y < 0:
		request(p.anims, StateJump)
	case p.InAir:
		request(p.anims, StateFall)
	case p.Direction.X != 0:
		request(p.anims, StateRun)
	default:
		request(p.anims, StateIdle)
	}
}

func (p *Player) updateHurtbox() {
	p.canDealDamage = p.anims.State() == StateAttack

	if p.FlipSprite {
		p.Hurtbox.X = p.Rect.X - p.Rect.W
	} else {
		p.Hurtbox.X = p.Rect.X + p.Rect.W
	}
	p.Hurtbox.Y = p.Rect.Y
}
