package system

import (
	"github.com/milk9111/gravitywell/ecs"
	"github.com/milk9111/gravitywell/ecs/component"
)

// TrailSystem drops a particle behind every emitter each time the particle
// timer fires.
type TrailSystem struct{}

func NewTrailSystem() *TrailSystem {
	return &TrailSystem{}
}

func (s *TrailSystem) Update(ctx *Context) {
	if ctx == nil || ctx.World == nil || ctx.Session == nil {
		return
	}
	timer := ctx.Session.Particle
	timer.Tick(ctx.ElapsedMS())
	if !timer.JustFinished() {
		return
	}

	w := ctx.World
	for _, e := range w.Query(w.Trails, w.Transforms).Entities() {
		at := *w.Transforms.Must(e)
		SpawnTrailParticle(ctx, at, s.colors(ctx, e))
	}
}

func (s *TrailSystem) colors(ctx *Context, e ecs.Entity) component.ParticleColorLerp {
	if p, ok := ctx.World.Players.Get(e); ok {
		if ship, ok := ctx.Catalog.Ship(p.ID); ok {
			return colorPair(ship.Trail)
		}
	}
	return colorPair(ctx.Catalog.Effects.Trail.Default)
}
