package main

import (
	"time"

	"github.com/milk9111/gravitywell/input"
	"github.com/milk9111/gravitywell/mode"
	"go.uber.org/zap"
)

// headlessInput presses start in the main menu and confirm on the game-over
// screen; ships get no input.
func headlessInput(m mode.Mode) input.Frame {
	switch m {
	case mode.ModeMainMenu:
		return input.Frame{Start: true}
	case mode.ModeGameOver:
		return input.Frame{Confirm: true}
	}
	return input.Frame{}
}

// runHeadless ticks the simulation at the nominal frame time with no window.
// maxTicks of 0 runs until a quit.
func runHeadless(h *host, frame time.Duration, maxTicks int, log *zap.Logger) {
	log.Info("starting headless simulation",
		zap.Duration("frame", frame),
		zap.Int("max_ticks", maxTicks),
	)
	tick := 0
	for !h.done() {
		if maxTicks > 0 && tick >= maxTicks {
			log.Info("max ticks reached", zap.Int("tick", tick))
			break
		}
		h.step(headlessInput(h.controller.Mode()), frame)
		tick++
	}
	// run the active scene's cleanup
	if !h.done() {
		h.controller.Dispatch(mode.QuitPressed{})
	}
}
