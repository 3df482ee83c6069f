package playing

import (
	"image/color"
	"maps"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/kingsandpigs/internal/application/replay"
	"github.com/younwookim/kingsandpigs/internal/application/state"
	"github.com/younwookim/kingsandpigs/internal/application/system"
	"github.com/younwookim/kingsandpigs/internal/domain/entity"
	"github.com/younwookim/kingsandpigs/internal/infrastructure/asset"
	"github.com/younwookim/kingsandpigs/internal/infrastructure/config"
)

// doorTicks is how long a 5 frame one-shot door animation takes
const doorTicks = 20

// script is an input source fed by the test
type script struct {
	inputs []system.InputState
}

func (s *script) Poll() system.InputState {
	if len(s.inputs) == 0 {
		return system.InputState{}
	}
	in := s.inputs[0]
	s.inputs = s.inputs[1:]
	return in
}

func (s *script) push(in ...system.InputState) {
	s.inputs = append(s.inputs, in...)
}

func loadConfig(t *testing.T) *config.GameConfig {
	t.Helper()
	cfg, err := config.NewLoader("../../../../cmd/game/configs").LoadAll()
	require.NoError(t, err)
	return cfg
}

func newTestDeps(t *testing.T) (Deps, *script) {
	t.Helper()
	input := &script{}
	return Deps{
		Config: loadConfig(t),
		Sheets: asset.NewFSLoader(nil).WithPlaceholders(asset.NewPlaceholderSet(color.Black)),
		Input:  input,
	}, input
}

func newTestScene(t *testing.T, deps Deps, index int) *Playing {
	t.Helper()
	p, err := New(deps, index)
	require.NoError(t, err)
	return p
}

// tickUntilScene ticks until the scene asks for a transition
func tickUntilScene(t *testing.T, p *Playing, limit int) *Playing {
	t.Helper()
	for i := 0; i < limit; i++ {
		next, err := p.Update()
		require.NoError(t, err)
		if next != nil {
			np, ok := next.(*Playing)
			require.True(t, ok)
			return np
		}
	}
	return nil
}

func standAtExit(p *Playing) {
	lv := p.Level()
	lv.Player.Rect.X = lv.ExitDoor.Rect.X + 20
}

func TestNew(t *testing.T) {
	deps, _ := newTestDeps(t)

	p := newTestScene(t, deps, 0)

	assert.Equal(t, state.StatePlaying, p.State())
	assert.Equal(t, "hall", p.Level().Config.ID)
	assert.Equal(t, "Playing(hall)", p.String())
	assert.Len(t, p.Level().Enemies, 1)
}

func TestNew_BadLevel(t *testing.T) {
	deps, _ := newTestDeps(t)

	_, err := New(deps, 9)

	assert.Error(t, err)
}

func TestPlaying_MovesPlayer(t *testing.T) {
	deps, input := newTestDeps(t)
	p := newTestScene(t, deps, 0)
	startX := p.Level().Player.Rect.X

	for i := 0; i < 10; i++ {
		input.push(system.InputState{Right: true})
		_, err := p.Update()
		require.NoError(t, err)
	}

	assert.Equal(t, startX+10*entity.DefaultPlayerStats().Speed, p.Level().Player.Rect.X)
	assert.Equal(t, entity.StateRun, p.Level().Player.Animations().State())
	assert.Equal(t, 10, p.Ticks())
}

func TestPlaying_JumpLeavesFloor(t *testing.T) {
	deps, input := newTestDeps(t)
	p := newTestScene(t, deps, 0)
	_, _ = p.Update()

	input.push(system.InputState{Jump: true})
	_, err := p.Update()
	require.NoError(t, err)

	assert.True(t, p.Level().Player.InAir)
	assert.Less(t, p.Level().Player.Rect.Bottom(), deps.Config.Game.Physics.FloorY)
}

func TestPlaying_ExitDoorLoadsNextLevel(t *testing.T) {
	deps, input := newTestDeps(t)
	p := newTestScene(t, deps, 0)
	standAtExit(p)

	input.push(system.InputState{Enter: true})
	next := tickUntilScene(t, p, doorTicks+10)

	require.NotNil(t, next)
	assert.Equal(t, 1, next.Level().Index)
	assert.Equal(t, "cellar", next.Level().Config.ID)
	assert.Equal(t, doorTicks, p.Ticks(), "the scene changes on the tick the door finishes opening")
}

func TestPlaying_EnterAwayFromDoorDoesNothing(t *testing.T) {
	deps, input := newTestDeps(t)
	p := newTestScene(t, deps, 0)

	input.push(system.InputState{Enter: true})
	next := tickUntilScene(t, p, doorTicks+10)

	assert.Nil(t, next)
	assert.Equal(t, entity.StateIdle, p.Level().ExitDoor.Animations().State())
}

func TestPlaying_LastLevelClears(t *testing.T) {
	deps, input := newTestDeps(t)
	last := len(deps.Config.Levels.Levels) - 1
	p := newTestScene(t, deps, last)
	standAtExit(p)

	input.push(system.InputState{Enter: true})
	next := tickUntilScene(t, p, doorTicks+10)

	assert.Nil(t, next)
	assert.Equal(t, state.StateCleared, p.State())

	input.push(system.InputState{Restart: true})
	next = tickUntilScene(t, p, 1)
	require.NotNil(t, next)
	assert.Equal(t, 0, next.Level().Index)
}

func TestPlaying_GameOverAndRestart(t *testing.T) {
	deps, input := newTestDeps(t)
	p := newTestScene(t, deps, 0)
	p.Level().Player.TakeDamage(100)

	_, err := p.Update()
	require.NoError(t, err)
	assert.Equal(t, state.StateGameOver, p.State())

	ticks := p.Ticks()
	assert.Nil(t, tickUntilScene(t, p, 5), "waits for restart")
	assert.Equal(t, ticks, p.Ticks(), "the world is frozen")

	input.push(system.InputState{Restart: true})
	next := tickUntilScene(t, p, 1)
	require.NotNil(t, next)
	assert.Equal(t, 0, next.Level().Index)
	assert.Equal(t, 100, next.Level().Player.Health)
	assert.Equal(t, state.StatePlaying, next.State())
}

func TestPlaying_Pause(t *testing.T) {
	deps, input := newTestDeps(t)
	p := newTestScene(t, deps, 0)
	enemy := p.Level().Enemies[0]

	input.push(system.InputState{Pause: true})
	_, err := p.Update()
	require.NoError(t, err)
	assert.Equal(t, state.StatePaused, p.State())

	before := enemy.Animations().Current().Index()
	input.push(system.InputState{Right: true}, system.InputState{Right: true})
	for i := 0; i < 10; i++ {
		_, err := p.Update()
		require.NoError(t, err)
	}
	assert.Zero(t, p.Ticks())
	assert.Equal(t, before, enemy.Animations().Current().Index())

	input.push(system.InputState{Pause: true}, system.InputState{})
	_, _ = p.Update()
	_, _ = p.Update()
	assert.Equal(t, state.StatePlaying, p.State())
	assert.Equal(t, 1, p.Ticks())
}

func TestPlaying_RemovesDeadEnemies(t *testing.T) {
	deps, _ := newTestDeps(t)
	p := newTestScene(t, deps, 0)
	require.Len(t, p.Level().Enemies, 1)
	p.Level().Enemies[0].TakeDamage()

	for i := 0; i < doorTicks+5; i++ {
		_, err := p.Update()
		require.NoError(t, err)
	}

	assert.Empty(t, p.Level().Enemies)
}

func TestPlaying_PlayerKillsEnemy(t *testing.T) {
	deps, input := newTestDeps(t)
	p := newTestScene(t, deps, 0)
	lv := p.Level()
	enemy := lv.Enemies[0]
	// hurtbox reaches one body width past the right edge
	lv.Player.Rect.X = enemy.Rect.X - lv.Player.Rect.W - 10

	input.push(system.InputState{Attack: true})
	_, err := p.Update()
	require.NoError(t, err)

	assert.False(t, enemy.Alive())
	assert.Equal(t, 0, enemy.Health)
}

func TestPlaying_HotReloadAppliesToNextLevel(t *testing.T) {
	deps, input := newTestDeps(t)
	game := *deps.Config.Game
	game.Player.Health = 250
	reloaded := &config.GameConfig{Game: &game, Sprites: deps.Config.Sprites, Levels: deps.Config.Levels}

	reloads := make(chan *config.GameConfig, 1)
	reloads <- reloaded
	deps.Reloads = reloads
	p := newTestScene(t, deps, 0)

	_, err := p.Update()
	require.NoError(t, err)
	assert.Equal(t, 100, p.Level().Player.Health, "the current level keeps its config")

	standAtExit(p)
	input.push(system.InputState{Enter: true})
	next := tickUntilScene(t, p, doorTicks+10)

	require.NotNil(t, next)
	assert.Equal(t, 250, next.Level().Player.Health)
}

func TestPlaying_ClosedReloadChannel(t *testing.T) {
	deps, _ := newTestDeps(t)
	reloads := make(chan *config.GameConfig)
	close(reloads)
	deps.Reloads = reloads
	p := newTestScene(t, deps, 0)

	_, err := p.Update()

	assert.NoError(t, err)
}

func TestPlaying_RecordsAndSavesOnExit(t *testing.T) {
	deps, input := newTestDeps(t)
	deps.Recorder = NewRecorder("hall")
	deps.RecordPath = filepath.Join(t.TempDir(), "run.json")
	p := newTestScene(t, deps, 0)

	input.push(system.InputState{Right: true}, system.InputState{Pause: true}, system.InputState{Pause: true})
	for i := 0; i < 5; i++ {
		_, err := p.Update()
		require.NoError(t, err)
	}
	p.OnExit()

	data, err := replay.LoadReplay(deps.RecordPath)
	require.NoError(t, err)
	require.Len(t, data.Frames, 5, "paused ticks are recorded too")
	assert.True(t, data.Frames[0].R)
	assert.True(t, data.Frames[1].P)
}

func TestPlaying_ContactKillEndsGameSameTick(t *testing.T) {
	deps, _ := newTestDeps(t)
	p := newTestScene(t, deps, 0)
	lv := p.Level()
	lv.Player.Health = 10
	lv.Player.Rect.X = lv.Enemies[0].Rect.X - 20

	for i := 0; i < 100 && !lv.Player.IsDead(); i++ {
		_, err := p.Update()
		require.NoError(t, err)
	}

	require.True(t, lv.Player.IsDead(), "the pig attacks while touching")
	assert.Equal(t, state.StateGameOver, p.State())
}

func TestPlaying_HotReloadRejectsBrokenConfig(t *testing.T) {
	deps, input := newTestDeps(t)
	original := deps.Config

	sprites := *original.Sprites
	sprites.Entities = maps.Clone(original.Sprites.Entities)
	box := sprites.Entities["box"]
	box.Animations = map[string]config.AnimationConfig{"idle": box.Animations["idle"]}
	sprites.Entities["box"] = box
	broken := &config.GameConfig{Game: original.Game, Sprites: &sprites, Levels: original.Levels}

	levels := *original.Levels
	levels.Levels = levels.Levels[:0:0]
	empty := &config.GameConfig{Game: original.Game, Sprites: original.Sprites, Levels: &levels}

	reloads := make(chan *config.GameConfig, 2)
	reloads <- broken
	reloads <- empty
	deps.Reloads = reloads
	p := newTestScene(t, deps, 0)

	_, err := p.Update()
	require.NoError(t, err)
	assert.Same(t, original, p.deps.Config)

	standAtExit(p)
	input.push(system.InputState{Enter: true})
	next := tickUntilScene(t, p, doorTicks+10)

	require.NotNil(t, next)
	assert.Equal(t, "cellar", next.Level().Config.ID)
}

func TestPlaying_ReplayIsDeterministic(t *testing.T) {
	var inputs []system.InputState
	for i := 0; i < 45; i++ {
		inputs = append(inputs, system.InputState{Right: true})
	}
	inputs = append(inputs, system.InputState{Attack: true})
	inputs = append(inputs, make([]system.InputState, 30)...)

	deps, input := newTestDeps(t)
	rec := NewRecorder("hall")
	deps.Recorder = rec
	live := newTestScene(t, deps, 0)
	input.push(inputs...)
	for range inputs {
		_, err := live.Update()
		require.NoError(t, err)
	}
	require.Empty(t, live.Level().Enemies, "the recorded run kills the pig")

	replayDeps, _ := newTestDeps(t)
	replayer := replay.NewReplayer(rec.Data())
	replayDeps.Input = replayer
	replayed := newTestScene(t, replayDeps, 0)
	for range inputs {
		_, err := replayed.Update()
		require.NoError(t, err)
	}

	assert.True(t, replayer.Done())
	assert.Equal(t, live.Ticks(), replayed.Ticks())
	assert.Equal(t, live.Level().Player.Rect, replayed.Level().Player.Rect)
	assert.Equal(t, live.Level().Player.Health, replayed.Level().Player.Health)
	assert.Len(t, replayed.Level().Enemies, len(live.Level().Enemies))
}
