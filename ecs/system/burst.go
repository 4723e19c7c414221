package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravitywell/common"
	"github.com/milk9111/gravitywell/ecs"
	"github.com/milk9111/gravitywell/ecs/component"
	"github.com/milk9111/gravitywell/ecs/entity"
	"github.com/milk9111/gravitywell/prefabs"
)

// SpawnBurst spawns a ring of particles at at, evenly spaced in angle and
// each moving outward at unit speed. With the default burst count of 360 the
// step is one degree.
func SpawnBurst(ctx *Context, at component.Transform, colors component.ParticleColorLerp, lifetimeMS float64) []ecs.Entity {
	spec := ctx.Catalog.Effects.Particle
	n := spec.BurstCount
	out := make([]ecs.Entity, 0, n)
	for i := 0; i < n; i++ {
		deg := float64(i) * 360 / float64(n)
		vel := cp.ForAngle(common.Radians(deg))
		out = append(out, entity.NewParticle(ctx.World, spec, at, vel, colors, lifetimeMS))
	}
	return out
}

// SpawnTrailParticle drops one stationary particle at at.
func SpawnTrailParticle(ctx *Context, at component.Transform, colors component.ParticleColorLerp) ecs.Entity {
	fx := ctx.Catalog.Effects
	return entity.NewParticle(ctx.World, fx.Particle, at, cp.Vector{}, colors, fx.Trail.LifetimeMS)
}

func colorPair(spec prefabs.ColorPairSpec) component.ParticleColorLerp {
	return component.ParticleColorLerp{Start: spec.Start.Color, End: spec.End.Color}
}
