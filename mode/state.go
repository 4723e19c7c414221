package mode

import (
	"errors"
	"fmt"
)

// Mode names a top-level state of the game flow.
type Mode int

const (
	ModeLoading Mode = iota
	ModeMainMenu
	ModePlaying
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModeLoading:
		return "loading"
	case ModeMainMenu:
		return "main_menu"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game_over"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// State is one of Loading, MainMenu, Playing or GameOver.
type State interface {
	Mode() Mode
	isState()
}

type Loading struct{}

type MainMenu struct{}

type Playing struct{}

// GameOver carries the message composed when the session ended.
type GameOver struct {
	Summary string
}

func (Loading) Mode() Mode  { return ModeLoading }
func (MainMenu) Mode() Mode { return ModeMainMenu }
func (Playing) Mode() Mode  { return ModePlaying }
func (GameOver) Mode() Mode { return ModeGameOver }

func (Loading) isState()  {}
func (MainMenu) isState() {}
func (Playing) isState()  {}
func (GameOver) isState() {}

// Loaded is the only way out of Loading.
func (Loading) Loaded() MainMenu { return MainMenu{} }

func (MainMenu) Start() Playing { return Playing{} }

func (Playing) End(summary string) GameOver { return GameOver{Summary: summary} }

func (GameOver) Confirm() MainMenu { return MainMenu{} }

// Event is a trigger fed to Transition.
type Event interface {
	fmt.Stringer
	isEvent()
}

type AssetsLoaded struct{}

type StartPressed struct{}

type GameEnded struct {
	Summary string
}

type ConfirmPressed struct{}

type QuitPressed struct{}

func (AssetsLoaded) String() string   { return "assets_loaded" }
func (StartPressed) String() string   { return "start_pressed" }
func (GameEnded) String() string      { return "game_ended" }
func (ConfirmPressed) String() string { return "confirm_pressed" }
func (QuitPressed) String() string    { return "quit_pressed" }

func (AssetsLoaded) isEvent()   {}
func (StartPressed) isEvent()   {}
func (GameEnded) isEvent()      {}
func (ConfirmPressed) isEvent() {}
func (QuitPressed) isEvent()    {}

// Effect is a side effect the host must carry out after a transition.
type Effect int

const (
	EffectNone Effect = iota
	EffectQuit
)

var ErrInvalidTransition = errors.New("mode: invalid transition")

// Transition is the complete transition table. It never has side effects.
func Transition(s State, e Event) (State, Effect, error) {
	if _, ok := e.(QuitPressed); ok {
		return s, EffectQuit, nil
	}
	switch st := s.(type) {
	case Loading:
		if _, ok := e.(AssetsLoaded); ok {
			return st.Loaded(), EffectNone, nil
		}
	case MainMenu:
		if _, ok := e.(StartPressed); ok {
			return st.Start(), EffectNone, nil
		}
	case Playing:
		if ended, ok := e.(GameEnded); ok {
			return st.End(ended.Summary), EffectNone, nil
		}
	case GameOver:
		if _, ok := e.(ConfirmPressed); ok {
			return st.Confirm(), EffectNone, nil
		}
	}
	return s, EffectNone, fmt.Errorf("%w: %v on %v", ErrInvalidTransition, e, modeOf(s))
}

func modeOf(s State) string {
	if s == nil {
		return "<nil>"
	}
	return s.Mode().String()
}
