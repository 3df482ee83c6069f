package config

import (
	"errors"
	"fmt"
	"image/color"
)

// GameSettings is the root config for game.yaml
type GameSettings struct {
	Display DisplayConfig          `yaml:"display"`
	Physics PhysicsConfig          `yaml:"physics"`
	Player  PlayerConfig           `yaml:"player"`
	Enemies map[string]EnemyConfig `yaml:"enemies"`
}

type DisplayConfig struct {
	ScreenWidth  int      `yaml:"screenWidth"`
	ScreenHeight int      `yaml:"screenHeight"`
	Scale        int      `yaml:"scale"`
	Framerate    int      `yaml:"framerate"` // logical ticks per second
	ColorKey     [3]uint8 `yaml:"colorKey"`  // RGB drawn as transparent
	Title        string   `yaml:"title"`
}

// Key returns the transparency color key
func (d DisplayConfig) Key() color.Color {
	return color.NRGBA{R: d.ColorKey[0], G: d.ColorKey[1], B: d.ColorKey[2], A: 255}
}

type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"` // added to vertical velocity per tick
	FloorY  int     `yaml:"floorY"`
}

type PlayerConfig struct {
	Health         int     `yaml:"health"`
	Speed          int     `yaml:"speed"`
	JumpForce      float64 `yaml:"jumpForce"`
	AttackCooldown int     `yaml:"attackCooldown"` // ticks
}

type EnemyConfig struct {
	Health        int `yaml:"health"`
	DamagePerHit  int `yaml:"damagePerHit"`
	ContactDamage int `yaml:"contactDamage"`
}

// DefaultGameSettings returns the stock settings used when game.yaml omits a field
func DefaultGameSettings() *GameSettings {
	return &GameSettings{
		Display: DisplayConfig{
			ScreenWidth:  640,
			ScreenHeight: 480,
			Scale:        2,
			Framerate:    60,
			Title:        "Kings and Pigs",
		},
		Physics: PhysicsConfig{
			Gravity: 0.9,
			FloorY:  400,
		},
		Player: PlayerConfig{
			Health:         100,
			Speed:          5,
			JumpForce:      -18,
			AttackCooldown: 15,
		},
		Enemies: map[string]EnemyConfig{
			"pig": {Health: 10, DamagePerHit: 10, ContactDamage: 10},
		},
	}
}

// Validate checks the settings for values the game cannot run with
func (g *GameSettings) Validate() error {
	var errs []error
	if g.Display.ScreenWidth <= 0 || g.Display.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("display: screen size must be positive, got %dx%d",
			g.Display.ScreenWidth, g.Display.ScreenHeight))
	}
	if g.Display.Framerate <= 0 {
		errs = append(errs, fmt.Errorf("display: framerate must be positive, got %d", g.Display.Framerate))
	}
	if g.Display.Scale <= 0 {
		errs = append(errs, fmt.Errorf("display: scale must be positive, got %d", g.Display.Scale))
	}
	if g.Player.Health <= 0 {
		errs = append(errs, fmt.Errorf("player: health must be positive, got %d", g.Player.Health))
	}
	if g.Player.AttackCooldown < 1 {
		errs = append(errs, fmt.Errorf("player: attackCooldown must be at least 1, got %d", g.Player.AttackCooldown))
	}
	for name, e := range g.Enemies {
		if e.Health <= 0 {
			errs = append(errs, fmt.Errorf("enemy %s: health must be positive, got %d", name, e.Health))
		}
	}
	return errors.Join(errs...)
}
