package main

import (
	"log"

	"github.com/younwookim/kingsandpigs/internal/application/replay"
	"github.com/younwookim/kingsandpigs/internal/application/system"
	"github.com/younwookim/kingsandpigs/internal/infrastructure/config"
)

// replayInput plays back a recording, then hands control to fallback
type replayInput struct {
	replayer *replay.Replayer
	fallback system.InputSource
	handed   bool
}

func newReplayInput(r *replay.Replayer, fallback system.InputSource) *replayInput {
	return &replayInput{replayer: r, fallback: fallback}
}

// Poll implements system.InputSource
func (r *replayInput) Poll() system.InputState {
	if !r.replayer.Done() {
		return r.replayer.Poll()
	}
	if !r.handed {
		r.handed = true
		log.Printf("[Main] replay finished after %d ticks, keyboard resumes", r.replayer.TotalFrames())
	}
	return r.fallback.Poll()
}

// startLevel finds the level a recording starts on, falling back to the first
func startLevel(levels *config.LevelsConfig, id string) int {
	if i := levels.IndexOf(id); i >= 0 {
		return i
	}
	log.Printf("[Main] replay level %q not found, starting from the first level", id)
	return 0
}
