package config

import (
	"fmt"
	"io/fs"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// File names inside the config directory
const (
	GameFile    = "game.yaml"
	SpritesFile = "sprites.yaml"
	LevelsFile  = "levels.yaml"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Game    *GameSettings
	Sprites *SpritesConfig
	Levels  *LevelsConfig
}

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the path the loader was created with
func (l *Loader) BasePath() string {
	return l.basePath
}

func (l *Loader) load(name string, out any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// LoadGame loads game.yaml
func (l *Loader) LoadGame() (*GameSettings, error) {
	cfg := DefaultGameSettings()
	if err := l.load(GameFile, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", GameFile, err)
	}
	return cfg, nil
}

// LoadSprites loads sprites.yaml
func (l *Loader) LoadSprites() (*SpritesConfig, error) {
	var cfg SpritesConfig
	if err := l.load(SpritesFile, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", SpritesFile, err)
	}
	return &cfg, nil
}

// LoadLevels loads levels.yaml
func (l *Loader) LoadLevels() (*LevelsConfig, error) {
	var cfg LevelsConfig
	if err := l.load(LevelsFile, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", LevelsFile, err)
	}
	return &cfg, nil
}

// LoadAll loads all configurations
func (l *Loader) LoadAll() (*GameConfig, error) {
	game, err := l.LoadGame()
	if err != nil {
		return nil, err
	}

	sprites, err := l.LoadSprites()
	if err != nil {
		return nil, err
	}

	levels, err := l.LoadLevels()
	if err != nil {
		return nil, err
	}

	log.Printf("[Config] loaded %s (sprites=%d, levels=%d)", l.basePath, len(sprites.Entities), len(levels.Levels))

	return &GameConfig{
		Game:    game,
		Sprites: sprites,
		Levels:  levels,
	}, nil
}
