package system

import (
	"fmt"
	"image"
	"sort"

	"github.com/younwookim/kingsandpigs/internal/domain/anim"
	"github.com/younwookim/kingsandpigs/internal/domain/entity"
	"github.com/younwookim/kingsandpigs/internal/infrastructure/asset"
	"github.com/younwookim/kingsandpigs/internal/infrastructure/config"
)

// Sprite kinds in sprites.yaml that are not enemy types
const (
	KindPlayer = "player"
	KindDoor   = "door"
	KindBox    = "box"
)

// SheetSource provides decoded sprite sheets
type SheetSource interface {
	Sheet(req asset.Request) (*image.NRGBA, error)
}

// BuildAnimations cuts a fresh animation set for one entity of kind.
// Every entity needs its own set since animations carry playback state.
func BuildAnimations(sheets SheetSource, sprites *config.SpritesConfig, kind string) (map[string]*anim.Animation, error) {
	sprite, err := sprites.Entity(kind)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(sprite.Animations))
	for name := range sprite.Animations {
		names = append(names, name)
	}
	sort.Strings(names)

	size := anim.Size{W: sprite.FrameWidth, H: sprite.FrameHeight}
	out := make(map[string]*anim.Animation, len(names))
	for _, name := range names {
		a := sprite.Animations[name]
		sheet, err := sheets.Sheet(asset.Request{
			Path:        a.Sheet,
			FrameWidth:  sprite.FrameWidth,
			FrameHeight: sprite.FrameHeight,
			Frames:      a.Frames,
			Tint:        sprite.Color,
		})
		if err != nil {
			return nil, fmt.Errorf("%s/%s: %w", kind, name, err)
		}

		cadence := a.Cadence
		if cadence == 0 {
			cadence = sprites.Cadence
		}
		animation, err := anim.New(sheet, size, a.Frames, anim.WithLoop(a.Looping()), anim.WithCadence(cadence))
		if err != nil {
			return nil, fmt.Errorf("%s/%s: %w", kind, name, err)
		}
		out[name] = animation
	}
	return out, nil
}

// Level is one built level, ready to play
type Level struct {
	Index  int
	Config config.LevelConfig

	EnterDoor *entity.Door
	ExitDoor  *entity.Door
	Boxes     []*entity.Box
	Enemies   []*entity.Enemy
	Player    *entity.Player
}

// BuildLevel builds level index from cfg. The player starts standing in
// front of the enter door.
func BuildLevel(sheets SheetSource, cfg *config.GameConfig, index int) (*Level, error) {
	lc, err := cfg.Levels.Level(index)
	if err != nil {
		return nil, err
	}
	b := &builder{sheets: sheets, sprites: cfg.Sprites}

	lv := &Level{Index: index, Config: lc}

	if lv.EnterDoor, err = b.door(entity.DoorEnter, lc.EnterDoor); err != nil {
		return nil, fmt.Errorf("level %s: enter door: %w", lc.ID, err)
	}
	if lv.ExitDoor, err = b.door(entity.DoorExit, lc.ExitDoor); err != nil {
		return nil, fmt.Errorf("level %s: exit door: %w", lc.ID, err)
	}

	for i, pos := range lc.Boxes {
		anims, err := b.anims(KindBox)
		if err != nil {
			return nil, fmt.Errorf("level %s: box %d: %w", lc.ID, i, err)
		}
		box, err := entity.NewBox(pos.X, pos.Y, anims)
		if err != nil {
			return nil, fmt.Errorf("level %s: box %d: %w", lc.ID, i, err)
		}
		lv.Boxes = append(lv.Boxes, box)
	}

	for i, spawn := range lc.Enemies {
		enemy, err := b.enemy(cfg.Game, spawn)
		if err != nil {
			return nil, fmt.Errorf("level %s: enemy %d: %w", lc.ID, i, err)
		}
		lv.Enemies = append(lv.Enemies, enemy)
	}

	if lv.Player, err = b.player(cfg.Game, lv.EnterDoor.Rect); err != nil {
		return nil, fmt.Errorf("level %s: player: %w", lc.ID, err)
	}
	return lv, nil
}

// PlayerStats converts the configured player tuning
func PlayerStats(pc config.PlayerConfig) entity.PlayerStats {
	return entity.PlayerStats{
		Health:         pc.Health,
		Speed:          pc.Speed,
		JumpForce:      pc.JumpForce,
		AttackCooldown: pc.AttackCooldown,
	}
}

// EnemyStats converts the configured tuning for one enemy type
func EnemyStats(ec config.EnemyConfig) entity.EnemyStats {
	return entity.EnemyStats{
		Health:        ec.Health,
		DamagePerHit:  ec.DamagePerHit,
		ContactDamage: ec.ContactDamage,
	}
}

type builder struct {
	sheets  SheetSource
	sprites *config.SpritesConfig
}

func (b *builder) anims(kind string) (map[string]*anim.Animation, error) {
	return BuildAnimations(b.sheets, b.sprites, kind)
}

func (b *builder) door(mode entity.DoorMode, pos config.PositionConfig) (*entity.Door, error) {
	anims, err := b.anims(KindDoor)
	if err != nil {
		return nil, err
	}
	return entity.NewDoor(mode, pos.X, pos.Y, anims)
}

func (b *builder) enemy(game *config.GameSettings, spawn config.EnemySpawnConfig) (*entity.Enemy, error) {
	ec, ok := game.Enemies[spawn.Type]
	if !ok {
		return nil, fmt.Errorf("unknown enemy type %q", spawn.Type)
	}
	anims, err := b.anims(spawn.Type)
	if err != nil {
		return nil, err
	}
	e, err := entity.NewEnemy(spawn.X, spawn.Y, EnemyStats(ec), anims)
	if err != nil {
		return nil, err
	}
	e.FlipSprite = spawn.FacingRight
	return e, nil
}

func (b *builder) player(game *config.GameSettings, door entity.Rect) (*entity.Player, error) {
	anims, err := b.anims(KindPlayer)
	if err != nil {
		return nil, err
	}
	p, err := entity.NewPlayer(0, 0, PlayerStats(game.Player), anims)
	if err != nil {
		return nil, err
	}
	p.Rect.X = door.X + (door.W-p.Rect.W)/2
	p.Rect.Y = door.Bottom() - p.Rect.H
	return p, nil
}
