package scene

import (
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravitywell/ecs/component"
	"github.com/milk9111/gravitywell/ecs/entity"
	"github.com/milk9111/gravitywell/input"
	"github.com/milk9111/gravitywell/mode"
	"go.uber.org/zap"
)

const loadingText = "Loading, Please Wait..."

// Loading shows a message until the assets are ready.
type Loading struct {
	env Env
}

func (s *Loading) Enter(mode.State) {
	entity.NewLabel(s.env.World, component.SceneLoading, cp.Vector{}, loadingText)
}

func (s *Loading) Update(input.Frame, time.Duration) mode.Event {
	if s.env.Assets == nil || s.env.Assets.Loaded() {
		return mode.AssetsLoaded{}
	}
	return nil
}

func (s *Loading) Exit() {
	s.env.World.DestroyTagged(component.SceneLoading)
}

// MainMenu waits for the start action.
type MainMenu struct {
	env Env
}

func (s *MainMenu) Enter(mode.State) {
	entity.NewBackdrop(s.env.World, component.SceneMainMenu, entity.MenuMain)
}

func (s *MainMenu) Update(frame input.Frame, _ time.Duration) mode.Event {
	if frame.Start {
		return mode.StartPressed{}
	}
	return nil
}

func (s *MainMenu) Exit() {
	s.env.World.DestroyTagged(component.SceneMainMenu)
}

// GameOver shows the summary until confirmed.
type GameOver struct {
	env     Env
	summary string
}

func (s *GameOver) Enter(st mode.State) {
	s.summary = ""
	if over, ok := st.(mode.GameOver); ok {
		s.summary = over.Summary
	}
	entity.NewBackdrop(s.env.World, component.SceneGameOver, entity.MenuGameOver)
	entity.NewLabel(s.env.World, component.SceneGameOver, cp.Vector{}, s.summary)
	s.env.Log.Info("game over", zap.String("summary", s.summary))
}

func (s *GameOver) Update(frame input.Frame, _ time.Duration) mode.Event {
	if frame.Confirm {
		return mode.ConfirmPressed{}
	}
	return nil
}

func (s *GameOver) Exit() {
	s.env.World.DestroyTagged(component.SceneGameOver)
}

// Summary is the message shown by the current game-over screen.
func (s *GameOver) Summary() string {
	return s.summary
}
