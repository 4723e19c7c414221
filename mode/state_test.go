package mode

import (
	"errors"
	"testing"
)

func TestTransitionTable(t *testing.T) {
	cases := []struct {
		name       string
		from       State
		event      Event
		want       State
		wantEffect Effect
		wantErr    bool
	}{
		{"loading_loaded", Loading{}, AssetsLoaded{}, MainMenu{}, EffectNone, false},
		{"menu_start", MainMenu{}, StartPressed{}, Playing{}, EffectNone, false},
		{"playing_end", Playing{}, GameEnded{Summary: "s"}, GameOver{Summary: "s"}, EffectNone, false},
		{"game_over_confirm", GameOver{Summary: "s"}, ConfirmPressed{}, MainMenu{}, EffectNone, false},

		{"quit_loading", Loading{}, QuitPressed{}, Loading{}, EffectQuit, false},
		{"quit_menu", MainMenu{}, QuitPressed{}, MainMenu{}, EffectQuit, false},
		{"quit_playing", Playing{}, QuitPressed{}, Playing{}, EffectQuit, false},
		{"quit_game_over", GameOver{Summary: "x"}, QuitPressed{}, GameOver{Summary: "x"}, EffectQuit, false},

		{"loading_start", Loading{}, StartPressed{}, Loading{}, EffectNone, true},
		{"menu_loaded", MainMenu{}, AssetsLoaded{}, MainMenu{}, EffectNone, true},
		{"menu_confirm", MainMenu{}, ConfirmPressed{}, MainMenu{}, EffectNone, true},
		{"playing_start", Playing{}, StartPressed{}, Playing{}, EffectNone, true},
		{"playing_confirm", Playing{}, ConfirmPressed{}, Playing{}, EffectNone, true},
		{"game_over_start", GameOver{}, StartPressed{}, GameOver{}, EffectNone, true},
		{"game_over_ended", GameOver{}, GameEnded{}, GameOver{}, EffectNone, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, effect, err := Transition(c.from, c.event)
			if c.wantErr {
				if !errors.Is(err, ErrInvalidTransition) {
					t.Fatalf("expected ErrInvalidTransition, got %v", err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if got != c.want {
				t.Fatalf("expected %#v, got %#v", c.want, got)
			}
			if effect != c.wantEffect {
				t.Fatalf("expected effect %v, got %v", c.wantEffect, effect)
			}
		})
	}
}

func TestTypedTransitions(t *testing.T) {
	over := Loading{}.Loaded().Start().End("done")
	if over.Summary != "done" {
		t.Fatalf("summary lost: %+v", over)
	}
	if over.Confirm().Mode() != ModeMainMenu {
		t.Fatalf("confirm should return to the main menu")
	}
}

func TestModeString(t *testing.T) {
	if ModePlaying.String() != "playing" || Mode(42).String() != "mode(42)" {
		t.Fatalf("unexpected mode names")
	}
}
