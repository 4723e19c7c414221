package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravitywell/ecs"
	"github.com/milk9111/gravitywell/ecs/component"
	"github.com/milk9111/gravitywell/prefabs"
)

// NewParticle spawns one fading particle. Particles carry no bounding box, so
// nothing collides with them.
func NewParticle(w *ecs.World, spec prefabs.ParticleSpec, at component.Transform, vel cp.Vector, colors component.ParticleColorLerp, lifetimeMS float64) ecs.Entity {
	sprite := spriteFrom(spec.Sprite)
	sprite.Color = colors.Start
	return w.Create(
		ecs.With(w.Transforms, component.Transform{Position: at.Position, Z: at.Z}),
		ecs.With(w.Velocities, component.Velocity{Vector: vel}),
		ecs.With(w.Lifetimes, component.ParticleLifetime{Max: lifetimeMS}),
		ecs.With(w.ColorLerps, colors),
		ecs.With(w.Sprites, sprite),
		tag(w, component.ScenePlaying),
	)
}
