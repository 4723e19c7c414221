package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravitywell/ecs"
	"github.com/milk9111/gravitywell/ecs/component"
	"github.com/milk9111/gravitywell/prefabs"
)

// NewShip spawns a player ship from its spec.
func NewShip(w *ecs.World, spec prefabs.ShipSpec) ecs.Entity {
	return w.Create(
		ecs.With(w.Transforms, transformFrom(spec.Transform)),
		ecs.With(w.Velocities, component.Velocity{Vector: cp.Vector{X: spec.Velocity.X, Y: spec.Velocity.Y}}),
		ecs.With(w.Boxes, boxFrom(spec.Box)),
		ecs.With(w.Players, component.Player{ID: spec.ID}),
		ecs.With(w.Trails, component.EmitTrail{}),
		ecs.With(w.Sprites, spriteFrom(spec.Sprite)),
		tag(w, component.ScenePlaying),
	)
}

// NewShips spawns every ship in the catalog in id order.
func NewShips(w *ecs.World, ships prefabs.ShipsSpec) []ecs.Entity {
	out := make([]ecs.Entity, 0, len(ships.Ships))
	for _, spec := range ships.Ships {
		out = append(out, NewShip(w, spec))
	}
	return out
}

// NewGravityWell spawns the attractor. It has no velocity, so the pull never
// applies to itself.
func NewGravityWell(w *ecs.World, spec prefabs.GravityWellSpec) ecs.Entity {
	return w.Create(
		ecs.With(w.Transforms, transformFrom(spec.Transform)),
		ecs.With(w.Boxes, boxFrom(spec.Box)),
		ecs.With(w.Attractors, component.Attractor{MaxVelocity: spec.MaxVelocity}),
		ecs.With(w.Sprites, spriteFrom(spec.Sprite)),
		tag(w, component.ScenePlaying),
	)
}

func transformFrom(spec prefabs.TransformSpec) component.Transform {
	return component.Transform{
		Position: cp.Vector{X: spec.X, Y: spec.Y},
		Z:        spec.Z,
		Rotation: spec.Rotation,
	}
}

func boxFrom(spec prefabs.BoxSpec) component.BoundingBox {
	return component.BoundingBox{Width: spec.Width, Height: spec.Height}
}

func spriteFrom(spec prefabs.SpriteSpec) component.Sprite {
	return component.Sprite{Atlas: component.AtlasSprites, Index: spec.Index, Color: spec.Tint()}
}

func tag(w *ecs.World, scene component.SceneID) ecs.Option {
	return ecs.With(w.Scenes, component.SceneTag{Scene: scene})
}
