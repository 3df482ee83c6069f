package config

import (
	"errors"
	"fmt"
)

// LevelsConfig is the root config for levels.yaml
type LevelsConfig struct {
	Levels []LevelConfig `yaml:"levels"`
}

// LevelConfig is one single-screen level
type LevelConfig struct {
	ID        string             `yaml:"id"`
	Name      string             `yaml:"name"`
	EnterDoor PositionConfig     `yaml:"enterDoor"`
	ExitDoor  PositionConfig     `yaml:"exitDoor"`
	Boxes     []PositionConfig   `yaml:"boxes"`
	Enemies   []EnemySpawnConfig `yaml:"enemies"`
}

type PositionConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type EnemySpawnConfig struct {
	Type        string `yaml:"type"`
	X           int    `yaml:"x"`
	Y           int    `yaml:"y"`
	FacingRight bool   `yaml:"facingRight"`
}

// Level returns the level at index i
func (l *LevelsConfig) Level(i int) (LevelConfig, error) {
	if i < 0 || i >= len(l.Levels) {
		return LevelConfig{}, fmt.Errorf("level %d out of range (have %d)", i, len(l.Levels))
	}
	return l.Levels[i], nil
}

// IndexOf returns the index of the level with id, or -1
func (l *LevelsConfig) IndexOf(id string) int {
	for i, lv := range l.Levels {
		if lv.ID == id {
			return i
		}
	}
	return -1
}

// Validate checks that at least one level exists and ids are unique
func (l *LevelsConfig) Validate() error {
	if len(l.Levels) == 0 {
		return errors.New("no levels defined")
	}
	seen := make(map[string]bool, len(l.Levels))
	var errs []error
	for i, lv := range l.Levels {
		if lv.ID == "" {
			errs = append(errs, fmt.Errorf("level %d: id is required", i))
			continue
		}
		if seen[lv.ID] {
			errs = append(errs, fmt.Errorf("level %d: duplicate id %q", i, lv.ID))
		}
		seen[lv.ID] = true
	}
	return errors.Join(errs...)
}
