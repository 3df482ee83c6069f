package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/kingsandpigs/internal/domain/entity"
	"github.com/younwookim/kingsandpigs/internal/infrastructure/config"
)

func newTestPhysics() *PhysicsSystem {
	return NewPhysicsSystem(config.PhysicsConfig{Gravity: 0.9, FloorY: testFloorY}, 640)
}

func TestPhysics_FallsOntoFloor(t *testing.T) {
	s := newTestPhysics()
	p := newTestPlayer(t, 100)
	p.Rect.Y = 200
	p.InAir = true

	for i := 0; i < 120 && p.InAir; i++ {
		s.Update(p, nil)
	}

	assert.False(t, p.InAir)
	assert.Equal(t, testFloorY, p.Rect.Bottom())
	assert.Zero(t, p.Direction.Y)
}

func TestPhysics_GroundedStaysPut(t *testing.T) {
	s := newTestPhysics()
	p := newTestPlayer(t, 100)

	for i := 0; i < 10; i++ {
		s.Update(p, nil)
	}

	assert.False(t, p.InAir)
	assert.Equal(t, testFloorY, p.Rect.Bottom())
}

func TestPhysics_JumpLeavesGroundAndReturns(t *testing.T) {
	s := newTestPhysics()
	p := newTestPlayer(t, 100)
	p.Jump()

	s.Update(p, nil)
	assert.True(t, p.InAir)
	assert.Less(t, p.Rect.Bottom(), testFloorY)

	for i := 0; i < 120 && p.InAir; i++ {
		s.Update(p, nil)
	}
	assert.False(t, p.InAir)
	assert.Equal(t, testFloorY, p.Rect.Bottom())
}

func TestPhysics_EnemiesLand(t *testing.T) {
	s := newTestPhysics()
	p := newTestPlayer(t, 100)
	e := newTestEnemy(t, 300, entity.DefaultEnemyStats())
	e.Rect.Y = 300
	e.InAir = true

	for i := 0; i < 60; i++ {
		s.Update(p, []*entity.Enemy{e})
	}

	assert.False(t, e.InAir)
	assert.Equal(t, testFloorY, e.Rect.Bottom())
}

func TestPhysics_ClampsPlayerToScreen(t *testing.T) {
	tests := []struct {
		name  string
		x     int
		wantX int
	}{
		{"left edge", -30, 0},
		{"right edge", 700, 640 - 53},
		{"inside", 200, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestPhysics()
			p := newTestPlayer(t, tt.x)

			s.Update(p, nil)

			assert.Equal(t, tt.wantX, p.Rect.X)
		})
	}
}
