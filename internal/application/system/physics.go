package system

import (
	"github.com/younwookim/kingsandpigs/internal/domain/entity"
	"github.com/younwookim/kingsandpigs/internal/infrastructure/config"
)

// Body is anything gravity and the floor act on
type Body interface {
	Gravity(g float64)
	Land(floorY int)
	Bounds() entity.Rect
}

// PhysicsSystem applies gravity, lands bodies on the floor and keeps the
// player on screen. There is no other collision.
type PhysicsSystem struct {
	gravity float64
	floorY  int
	screenW int
}

// NewPhysicsSystem creates a physics system for a screen screenW wide
func NewPhysicsSystem(cfg config.PhysicsConfig, screenW int) *PhysicsSystem {
	return &PhysicsSystem{
		gravity: cfg.Gravity,
		floorY:  cfg.FloorY,
		screenW: screenW,
	}
}

// FloorY returns the floor height
func (s *PhysicsSystem) FloorY() int {
	return s.floorY
}

// Step applies one tick of gravity to b and lands it if it reached the floor
func (s *PhysicsSystem) Step(b Body) {
	b.Gravity(s.gravity)
	if b.Bounds().Bottom() >= s.floorY {
		b.Land(s.floorY)
	}
}

// Update steps the player and every enemy, then clamps the player
func (s *PhysicsSystem) Update(player *entity.Player, enemies []*entity.Enemy) {
	s.Step(player)
	for _, e := range enemies {
		s.Step(e)
	}
	s.clamp(player)
}

func (s *PhysicsSystem) clamp(p *entity.Player) {
	if p.Rect.X < 0 {
		p.Rect.X = 0
	}
	if maxX := s.screenW - p.Rect.W; p.Rect.X > maxX {
		p.Rect.X = maxX
	}
}
