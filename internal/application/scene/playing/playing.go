// Package playing provides the main gameplay scene.
package playing

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/kingsandpigs/internal/application/scene"
	"github.com/younwookim/kingsandpigs/internal/application/state"
	"github.com/younwookim/kingsandpigs/internal/application/system"
	"github.com/younwookim/kingsandpigs/internal/domain/entity"
	"github.com/younwookim/kingsandpigs/internal/infrastructure/config"
	"github.com/younwookim/kingsandpigs/internal/infrastructure/render"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{63, 56, 81, 255}
	colorFloor    = color.RGBA{33, 30, 45, 255}
	colorHealthBG = color.RGBA{60, 60, 60, 255}
	colorHealthFG = color.RGBA{200, 70, 70, 255}
	colorOverlay  = color.RGBA{0, 0, 0, 150}
)

// Deps are the collaborators a Playing scene needs. They are carried
// from level to level.
type Deps struct {
	Config *config.GameConfig
	Sheets system.SheetSource
	Input  system.InputSource

	// Reloads delivers hot reloaded configs. May be nil.
	Reloads <-chan *config.GameConfig

	// Recorder, when set, records every tick's input and is saved to
	// RecordPath whenever a level scene exits.
	Recorder   *Recorder
	RecordPath string
}

// Playing is the gameplay scene for one level
type Playing struct {
	deps    Deps
	level   *system.Level
	state   state.GameState
	physics *system.PhysicsSystem
	combat  *system.CombatSystem
	frames  *render.Cache
	screenW int
	screenH int
	ticks   int
}

// New creates the scene for level index
func New(deps Deps, index int) (*Playing, error) {
	level, err := system.BuildLevel(deps.Sheets, deps.Config, index)
	if err != nil {
		return nil, fmt.Errorf("failed to build level %d: %w", index, err)
	}

	display := deps.Config.Game.Display
	return &Playing{
		deps:    deps,
		level:   level,
		state:   state.StatePlaying,
		physics: system.NewPhysicsSystem(deps.Config.Game.Physics, display.ScreenWidth),
		combat:  system.NewCombatSystem(),
		frames:  render.NewCache(display.Key()),
		screenW: display.ScreenWidth,
		screenH: display.ScreenHeight,
	}, nil
}

// Level returns the level being played
func (p *Playing) Level() *system.Level {
	return p.level
}

// State returns the scene's game state
func (p *Playing) State() state.GameState {
	return p.state
}

// Ticks returns the number of ticks the world has advanced
func (p *Playing) Ticks() int {
	return p.ticks
}

// String names the scene in transition logs
func (p *Playing) String() string {
	return fmt.Sprintf("Playing(%s)", p.level.Config.ID)
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update() (scene.Scene, error) {
	p.drainReloads()

	in := p.deps.Input.Poll()
	if p.deps.Recorder != nil {
		p.deps.Recorder.RecordFrame(in)
	}

	if p.state.Running() {
		if in.Pause {
			p.setState(state.StatePaused)
			return nil, nil
		}
		return p.step(in)
	}

	switch p.state {
	case state.StatePaused:
		if in.Pause {
			p.setState(state.StatePlaying)
		}
	case state.StateGameOver:
		if in.Restart {
			return p.load(p.level.Index)
		}
	case state.StateCleared:
		if in.Restart {
			return p.load(0)
		}
	}

	return nil, nil // nil = stay on this scene
}

// step advances the world by one tick
func (p *Playing) step(in system.InputState) (scene.Scene, error) {
	p.ticks++
	lv := p.level

	res := system.ApplyIntents(lv.Player, system.Intents(in, lv.Player))
	if res.Enter && lv.Player.Rect.Intersects(lv.ExitDoor.Rect) && lv.ExitDoor.Animations().State() != entity.StateOpen {
		log.Printf("[Playing] %s: exit door opening", lv.Config.ID)
		lv.ExitDoor.Open()
	}

	p.physics.Update(lv.Player, lv.Enemies)

	sceneChange := false
	for _, d := range []*entity.Door{lv.EnterDoor, lv.ExitDoor} {
		if d.Update() == entity.OutcomeSceneChange {
			sceneChange = true
		}
	}
	for _, b := range lv.Boxes {
		b.Update()
	}
	for _, e := range lv.Enemies {
		e.Update()
	}
	playerOutcome := lv.Player.Update()

	hit := p.combat.Update(lv.Player, lv.Enemies)
	if hit.Hits > 0 || hit.PlayerDamage > 0 {
		log.Printf("[Playing] %s: %d enemies hit, player took %d (health %d)",
			lv.Config.ID, hit.Hits, hit.PlayerDamage, lv.Player.Health)
	}

	if sceneChange {
		return p.advance()
	}
	// contact damage resolved above can kill the player after Player.Update ran
	if playerOutcome == entity.OutcomeGameOver || lv.Player.IsDead() {
		p.setState(state.StateGameOver)
		return nil, nil
	}

	p.removeDeadEnemies()
	return nil, nil
}

// advance moves to the next level, or clears the game after the last one
func (p *Playing) advance() (scene.Scene, error) {
	next := p.level.Index + 1
	if next >= len(p.deps.Config.Levels.Levels) {
		p.setState(state.StateCleared)
		return nil, nil
	}
	return p.load(next)
}

func (p *Playing) load(index int) (scene.Scene, error) {
	next, err := New(p.deps, index)
	if err != nil {
		return nil, err
	}
	return next, nil
}

func (p *Playing) removeDeadEnemies() {
	alive := p.level.Enemies[:0]
	for _, e := range p.level.Enemies {
		if e.IsDead() {
			p.combat.Forget(e)
			continue
		}
		alive = append(alive, e)
	}
	clear(p.level.Enemies[len(alive):])
	p.level.Enemies = alive
}

// drainReloads takes the newest hot reloaded config without blocking.
// It applies from the next level build on. A config that cannot build
// every level, or that drops the current one, is rejected and the
// previous config stays.
func (p *Playing) drainReloads() {
	for p.deps.Reloads != nil {
		select {
		case cfg, ok := <-p.deps.Reloads:
			if !ok {
				p.deps.Reloads = nil
				return
			}
			if err := p.checkConfig(cfg); err != nil {
				log.Printf("[Playing] reloaded config rejected: %v", err)
				continue
			}
			p.deps.Config = cfg
			log.Printf("[Playing] config reloaded, applies from the next level")
		default:
			return
		}
	}
}

// checkConfig builds every level of cfg once so that a later advance,
// restart or replay cannot fail on it
func (p *Playing) checkConfig(cfg *config.GameConfig) error {
	if cfg == nil {
		return errors.New("empty config")
	}
	count := len(cfg.Levels.Levels)
	if p.level.Index >= count {
		return fmt.Errorf("current level %d missing, config has %d levels", p.level.Index, count)
	}
	for i := range count {
		if _, err := system.BuildLevel(p.deps.Sheets, cfg, i); err != nil {
			return fmt.Errorf("level %d: %w", i, err)
		}
	}
	return nil
}

func (p *Playing) setState(s state.GameState) {
	log.Printf("[Playing] %s: %s -> %s (tick %d)", p.level.Config.ID, p.state, s, p.ticks)
	p.state = s
}

// Draw renders the game (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	floorY := float32(p.physics.FloorY())
	vector.DrawFilledRect(screen, 0, floorY, float32(p.screenW), float32(p.screenH)-floorY, colorFloor, false)

	sink := p.frames.Sink(screen)
	lv := p.level
	lv.EnterDoor.Render(sink)
	lv.ExitDoor.Render(sink)
	for _, b := range lv.Boxes {
		b.Render(sink)
	}
	for _, e := range lv.Enemies {
		e.Render(sink)
	}
	lv.Player.Render(sink)

	p.drawUI(screen)

	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, "PAUSED\nESC to resume")
	case state.StateGameOver:
		p.drawOverlay(screen, "GAME OVER\nZ or R to retry")
	case state.StateCleared:
		p.drawOverlay(screen, "ALL LEVELS CLEARED\nZ or R to play again")
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	const barX, barY, barW, barH = 10, 10, 100, 8

	maxHealth := p.deps.Config.Game.Player.Health
	ratio := float32(0)
	if maxHealth > 0 && p.level.Player.Health > 0 {
		ratio = float32(p.level.Player.Health) / float32(maxHealth)
	}
	if ratio > 1 {
		ratio = 1
	}
	vector.DrawFilledRect(screen, barX, barY, barW, barH, colorHealthBG, false)
	vector.DrawFilledRect(screen, barX, barY, barW*ratio, barH, colorHealthFG, false)

	info := fmt.Sprintf("%s  enemies: %d", p.level.Config.Name, len(p.level.Enemies))
	ebitenutil.DebugPrintAt(screen, info, barX, barY+barH+4)
}

func (p *Playing) drawOverlay(screen *ebiten.Image, text string) {
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), colorOverlay, false)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-20)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	log.Printf("[Playing] entering %s (%d enemies)", p.level.Config.ID, len(p.level.Enemies))
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

func (p *Playing) saveRecording() {
	r := p.deps.Recorder
	if r == nil || p.deps.RecordPath == "" || r.FrameCount() == 0 {
		return
	}
	if err := r.Save(p.deps.RecordPath); err != nil {
		log.Printf("[Playing] failed to save recording: %v", err)
		return
	}
	log.Printf("[Playing] recording saved: %s (%d frames)", p.deps.RecordPath, r.FrameCount())
}
