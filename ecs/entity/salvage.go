package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravitywell/ecs"
	"github.com/milk9111/gravitywell/ecs/component"
	"github.com/milk9111/gravitywell/prefabs"
)

// NewSalvage spawns a drifting collectible. Salvage also leaves a trail.
func NewSalvage(w *ecs.World, spec prefabs.SalvageSpec, pos, vel cp.Vector) ecs.Entity {
	return w.Create(
		ecs.With(w.Transforms, component.Transform{Position: pos, Z: spec.Z}),
		ecs.With(w.Velocities, component.Velocity{Vector: vel}),
		ecs.With(w.Boxes, boxFrom(spec.Box)),
		ecs.With(w.Trails, component.EmitTrail{}),
		ecs.With(w.Salvage, component.Salvage{}),
		ecs.With(w.Sprites, spriteFrom(spec.Sprite)),
		tag(w, component.ScenePlaying),
	)
}
