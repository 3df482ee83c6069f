package entity

import "github.com/younwookim/kingsandpigs/internal/domain/anim"

// Enemy sprite dimensions
const (
	EnemyFrameWidth  = 34
	EnemyFrameHeight = 28
)

// EnemyStats holds an enemy type's tuning values
type EnemyStats struct {
	Health        int
	DamagePerHit  int // health lost per TakeDamage
	ContactDamage int // damage dealt to the player per landed attack
}

// DefaultEnemyStats returns the stock pig tuning
func DefaultEnemyStats() EnemyStats {
	return EnemyStats{
		Health:        10,
		DamagePerHit:  10,
		ContactDamage: 10,
	}
}

// Enemy represents a pig
type Enemy struct {
	Rect       Rect
	Health     int
	Direction  Vec2
	InAir      bool
	FlipSprite bool

	stats          EnemyStats
	deathRequested bool
	dead           bool

	anims *anim.Manager
}

// NewEnemy creates an enemy with its top-left at x, y.
// animations must contain idle, run, jump, fall, attack and dead.
func NewEnemy(x, y int, stats EnemyStats, animations map[string]*anim.Animation) (*Enemy, error) {
	m, err := newManager(StateIdle, animations, StateRun, StateJump, StateFall, StateAttack, StateDead)
	if err != nil {
		return nil, err
	}

	return &Enemy{
		Rect:   Rect{X: x, Y: y, W: EnemyFrameWidth, H: EnemyFrameHeight},
		Health: stats.Health,
		InAir:  true,
		stats:  stats,
		anims:  m,
	}, nil
}

// TakeDamage applies one hit. Health is not clamped.
func (e *Enemy) TakeDamage() {
	e.Health -= e.stats.DamagePerHit
}

// Update runs one tick of enemy logic
func (e *Enemy) Update() Outcome {
	e.anims.Update()

	if e.Health <= 0 && !e.deathRequested && e.anims.State() != StateDead {
		request(e.anims, StateDead)
		e.deathRequested = true
	}

	if e.anims.State() == StateDead && e.anims.Done() {
		e.dead = true
	}
	return OutcomeNone
}

// Render draws the current frame
func (e *Enemy) Render(dst Sink) {
	dst.DrawFrame(e.anims.Current().Frame(), e.Rect.X-e.Rect.W, e.Rect.Y-e.Rect.H, e.FlipSprite)
}

// Attack starts the one-shot attack animation. Returns true if it started.
func (e *Enemy) Attack() bool {
	if !e.Alive() || e.anims.State() == StateAttack {
		return false
	}
	request(e.anims, StateAttack)
	return true
}

// AttackLanded reports whether the attack animation has completed
func (e *Enemy) AttackLanded() bool {
	return e.anims.State() == StateAttack && e.anims.Done()
}

// Idle returns a living enemy to its idle state
func (e *Enemy) Idle() {
	if !e.Alive() {
		return
	}
	request(e.anims, StateIdle)
}

// Gravity accelerates the enemy downward and applies vertical velocity
func (e *Enemy) Gravity(g float64) {
	e.Direction.Y += g
	e.Rect.Y += int(e.Direction.Y)
}

// Land places the enemy on a floor at floorY
func (e *Enemy) Land(floorY int) {
	e.Rect.Y = floorY - e.Rect.H
	e.Direction.Y = 0
	e.InAir = false
}

// Bounds returns the collision rectangle
func (e *Enemy) Bounds() Rect {
	return e.Rect
}

// Alive returns true while health remains
func (e *Enemy) Alive() bool {
	return e.Health > 0
}

// IsDead returns true once the death animation has finished.
// The owning scene removes the enemy when this is set.
func (e *Enemy) IsDead() bool {
	return e.dead
}

// ContactDamage returns the damage dealt per landed attack
func (e *Enemy) ContactDamage() int {
	return e.stats.ContactDamage
}

// Animations exposes the animation manager for inspection
func (e *Enemy) Animations() *anim.Manager {
	return e.anims
}
