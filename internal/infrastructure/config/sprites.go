package config

import (
	"errors"
	"fmt"
)

// SpritesConfig is the root config for sprites.yaml
type SpritesConfig struct {
	Cadence  int                     `yaml:"cadence"` // default ticks per frame
	Entities map[string]EntitySprite `yaml:"entities"`
}

// EntitySprite describes every animation of one entity kind
type EntitySprite struct {
	FrameWidth  int                        `yaml:"frameWidth"`
	FrameHeight int                        `yaml:"frameHeight"`
	Color       string                     `yaml:"color"` // placeholder tint, a colornames name
	Animations  map[string]AnimationConfig `yaml:"animations"`
}

// AnimationConfig describes one sheet
type AnimationConfig struct {
	Sheet   string `yaml:"sheet"`
	Frames  int    `yaml:"frames"`
	Loop    *bool  `yaml:"loop"`    // nil means true
	Cadence int    `yaml:"cadence"` // 0 uses SpritesConfig.Cadence
}

// Looping returns whether the animation wraps
func (a AnimationConfig) Looping() bool {
	return a.Loop == nil || *a.Loop
}

// Entity returns the sprite config for kind
func (s *SpritesConfig) Entity(kind string) (EntitySprite, error) {
	e, ok := s.Entities[kind]
	if !ok {
		return EntitySprite{}, fmt.Errorf("no sprite config for %q", kind)
	}
	return e, nil
}

// Validate checks frame sizes and counts
func (s *SpritesConfig) Validate() error {
	var errs []error
	if len(s.Entities) == 0 {
		errs = append(errs, errors.New("no entities defined"))
	}
	for kind, e := range s.Entities {
		if e.FrameWidth <= 0 || e.FrameHeight <= 0 {
			errs = append(errs, fmt.Errorf("%s: frame size must be positive, got %dx%d", kind, e.FrameWidth, e.FrameHeight))
		}
		for name, a := range e.Animations {
			if a.Frames < 1 {
				errs = append(errs, fmt.Errorf("%s/%s: frames must be at least 1", kind, name))
			}
			if a.Sheet == "" {
				errs = append(errs, fmt.Errorf("%s/%s: sheet is required", kind, name))
			}
		}
	}
	return errors.Join(errs...)
}
