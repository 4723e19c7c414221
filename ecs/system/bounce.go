package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravitywell/ecs"
)

// BounceSystem pushes overlapping ships apart with equal and opposite
// impulses and marks the hit with a burst at the first ship.
type BounceSystem struct{}

func NewBounceSystem() *BounceSystem {
	return &BounceSystem{}
}

func (s *BounceSystem) Update(ctx *Context) {
	if ctx == nil || ctx.World == nil {
		return
	}
	w := ctx.World
	fx := ctx.Catalog.Effects.Bounce
	ships := w.Query(w.Players, w.Transforms, w.Boxes, w.Velocities).Entities()
	for i := 0; i < len(ships); i++ {
		for j := i + 1; j < len(ships); j++ {
			a, b := ships[i], ships[j]
			ta, tb := w.Transforms.Must(a), w.Transforms.Must(b)
			if !Intersects(ta.Position, *w.Boxes.Must(a), tb.Position, *w.Boxes.Must(b)) {
				continue
			}
			push := separation(ta.Position, tb.Position).Mult(fx.Impulse)
			va, vb := w.Velocities.Must(a), w.Velocities.Must(b)
			va.Vector = va.Vector.Add(push)
			vb.Vector = vb.Vector.Sub(push)
			SpawnBurst(ctx, *ta, colorPair(fx.Burst.Colors), fx.Burst.LifetimeMS)
			ctx.push(ecs.EventBounce, a, b)
		}
	}
}

// separation is the unit vector from b to a. Coincident ships are split
// along x.
func separation(a, b cp.Vector) cp.Vector {
	d := a.Sub(b)
	if d.LengthSq() == 0 {
		return cp.Vector{X: 1}
	}
	return d.Normalize()
}
