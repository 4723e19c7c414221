package system

import "github.com/milk9111/gravitywell/common"

// PlayerControlSystem turns and thrusts ships from the input frame.
// Rotation is per tick; thrust adds along the ship's nose and the resulting
// speed is capped.
type PlayerControlSystem struct{}

func NewPlayerControlSystem() *PlayerControlSystem {
	return &PlayerControlSystem{}
}

func (s *PlayerControlSystem) Update(ctx *Context) {
	if ctx == nil || ctx.World == nil {
		return
	}
	w := ctx.World
	turn := common.Radians(ctx.Tuning.RotateDegrees)
	for _, e := range w.Query(w.Players, w.Transforms, w.Velocities).Entities() {
		ship := ctx.Input.Player(w.Players.Must(e).ID)
		if ship.RotateLeft {
			w.Transforms.Mut(e).Rotation += turn
		}
		if ship.RotateRight {
			w.Transforms.Mut(e).Rotation -= turn
		}
		if ship.Thrust {
			v := w.Velocities.Must(e)
			up := w.Transforms.Must(e).Up()
			v.Vector = v.Vector.Add(up.Mult(ctx.Tuning.Thrust)).Clamp(ctx.Tuning.MaxSpeed)
		}
	}
}
