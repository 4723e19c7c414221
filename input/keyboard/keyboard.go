// Package keyboard maps ebiten key state onto input frames. It is kept apart
// from package input so the simulation builds without a window system.
package keyboard

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/gravitywell/input"
)

// ShipKeys binds one player's controls.
type ShipKeys struct {
	RotateLeft  ebiten.Key
	RotateRight ebiten.Key
	Thrust      ebiten.Key
}

type Bindings struct {
	Players [2]ShipKeys
	Start   ebiten.Key
	Confirm ebiten.Key
	Quit    ebiten.Key
}

// DefaultBindings: arrows for the first ship, W/A/D for the second, P to
// start, Return to confirm and Q to quit.
func DefaultBindings() Bindings {
	return Bindings{
		Players: [2]ShipKeys{
			{RotateLeft: ebiten.KeyArrowLeft, RotateRight: ebiten.KeyArrowRight, Thrust: ebiten.KeyArrowUp},
			{RotateLeft: ebiten.KeyA, RotateRight: ebiten.KeyD, Thrust: ebiten.KeyW},
		},
		Start:   ebiten.KeyP,
		Confirm: ebiten.KeyEnter,
		Quit:    ebiten.KeyQ,
	}
}

// Read samples the keyboard. It must be called from the game's Update.
func Read(b Bindings) input.Frame {
	var f input.Frame
	for i, keys := range b.Players {
		f.Players[i] = input.Ship{
			RotateLeft:  ebiten.IsKeyPressed(keys.RotateLeft),
			RotateRight: ebiten.IsKeyPressed(keys.RotateRight),
			Thrust:      ebiten.IsKeyPressed(keys.Thrust),
		}
	}
	f.Start = inpututil.IsKeyJustPressed(b.Start)
	f.Confirm = inpututil.IsKeyJustPressed(b.Confirm)
	f.Quit = inpututil.IsKeyJustPressed(b.Quit)
	return f
}
