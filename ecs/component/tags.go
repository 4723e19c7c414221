package component

// Attractor marks the gravity well. MaxVelocity is not used by the pull.
type Attractor struct {
	MaxVelocity float64
}

// Player marks a controllable ship; ID selects bindings and score slot.
type Player struct {
	ID int
}

type EmitTrail struct{}

type Salvage struct{}

// SceneID names the mode that owns an entity.
type SceneID int

const (
	SceneLoading SceneID = iota
	SceneMainMenu
	ScenePlaying
	SceneGameOver
)

func (s SceneID) String() string {
	switch s {
	case SceneLoading:
		return "loading"
	case SceneMainMenu:
		return "main_menu"
	case ScenePlaying:
		return "playing"
	case SceneGameOver:
		return "game_over"
	}
	return "unknown"
}

// SceneTag ties an entity to the scene that destroys it on exit.
type SceneTag struct {
	Scene SceneID
}
