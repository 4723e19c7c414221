package scene

import (
	"time"

	"github.com/milk9111/gravitywell/ecs"
	"github.com/milk9111/gravitywell/ecs/system"
	"github.com/milk9111/gravitywell/mode"
	"github.com/milk9111/gravitywell/prefabs"
	"go.uber.org/zap"
)

// AssetStatus reports whether every texture and font the game draws with is
// ready.
type AssetStatus interface {
	Loaded() bool
}

// Observer is told about playing sessions. Telemetry implements it.
type Observer interface {
	SessionStarted()
	Tick(elapsed time.Duration)
	Event(evt ecs.Event)
	SessionEnded(summary string, scores system.Scores)
}

// Env is what every scene shares.
type Env struct {
	World    *ecs.World
	Catalog  *prefabs.Catalog
	Random   *system.Random
	Tuning   system.Tuning
	Summary  system.Summarizer
	Assets   AssetStatus
	Observer Observer
	Log      *zap.Logger
}

// Scenes bundles the four scenes of the game.
type Scenes struct {
	Loading  *Loading
	MainMenu *MainMenu
	Playing  *Playing
	GameOver *GameOver
}

func New(env Env) *Scenes {
	if env.Log == nil {
		env.Log = zap.NewNop()
	}
	return &Scenes{
		Loading:  &Loading{env: env},
		MainMenu: &MainMenu{env: env},
		Playing:  &Playing{env: env, schedule: system.NewPlayingScheduler()},
		GameOver: &GameOver{env: env},
	}
}

// ByMode maps the scenes for mode.NewController.
func (s *Scenes) ByMode() map[mode.Mode]mode.Scene {
	return map[mode.Mode]mode.Scene{
		mode.ModeLoading:  s.Loading,
		mode.ModeMainMenu: s.MainMenu,
		mode.ModePlaying:  s.Playing,
		mode.ModeGameOver: s.GameOver,
	}
}
