package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/kingsandpigs/internal/application/game"
	"github.com/younwookim/kingsandpigs/internal/application/replay"
	"github.com/younwookim/kingsandpigs/internal/application/scene/playing"
	"github.com/younwookim/kingsandpigs/internal/application/system"
	"github.com/younwookim/kingsandpigs/internal/infrastructure/asset"
	"github.com/younwookim/kingsandpigs/internal/infrastructure/config"
	"github.com/younwookim/kingsandpigs/internal/infrastructure/watch"
)

type options struct {
	configDir string
	assetDir  string
	record    string
	replay    string
	watch     bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configDir, "config", "", "Load configs from a directory instead of the embedded ones")
	flag.StringVar(&opts.assetDir, "assets", "assets", "Sprite sheet directory; missing sheets are drawn as placeholders")
	flag.StringVar(&opts.record, "record", "", "Record input to file (e.g., -record replay.json)")
	flag.StringVar(&opts.replay, "replay", "", "Play back a recorded input file")
	flag.BoolVar(&opts.watch, "watch", false, "Reload configs when they change on disk (requires -config)")
	flag.Parse()

	if err := run(opts); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(opts options) error {
	loader, err := configLoader(opts.configDir)
	if err != nil {
		return err
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	display := cfg.Game.Display
	deps := playing.Deps{
		Config: cfg,
		Sheets: asset.NewLoader(opts.assetDir).WithPlaceholders(asset.NewPlaceholderSet(display.Key())),
		Input:  system.NewKeyboardInput(),
	}

	start := 0
	if opts.replay != "" {
		data, err := replay.LoadReplay(opts.replay)
		if err != nil {
			return fmt.Errorf("failed to load replay: %w", err)
		}
		replayer := replay.NewReplayer(*data)
		start = startLevel(cfg.Levels, replayer.Level())
		deps.Input = newReplayInput(replayer, deps.Input)
		log.Printf("[Main] replaying %s (%d ticks from %s)", opts.replay, len(data.Frames), data.Level)
	}

	if opts.record != "" {
		deps.Recorder = playing.NewRecorder(cfg.Levels.Levels[start].ID)
		deps.RecordPath = opts.record
		log.Printf("[Main] recording to %s", opts.record)
	}

	if opts.watch {
		if opts.configDir == "" {
			return errors.New("-watch requires -config")
		}
		w, err := watch.NewWatcher(opts.configDir)
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", opts.configDir, err)
		}
		defer func() { _ = w.Close() }()

		reloads := make(chan *config.GameConfig, 1)
		go w.Forward(loader, reloads)
		deps.Reloads = reloads
		log.Printf("[Main] watching %s", opts.configDir)
	}

	first, err := playing.New(deps, start)
	if err != nil {
		return err
	}
	g := game.New(first, display.ScreenWidth, display.ScreenHeight)
	defer g.Close()

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)

	return ebiten.RunGame(g)
}

// configLoader reads from dir, or from the embedded configs when dir is empty
func configLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}
