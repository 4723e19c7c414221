package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravitywell/ecs"
	"github.com/milk9111/gravitywell/ecs/component"
)

// Menu atlas slices.
const (
	MenuMain     = 0
	MenuGameOver = 1
)

// NewBackdrop spawns a full-screen menu image owned by scene.
func NewBackdrop(w *ecs.World, scene component.SceneID, slice int) ecs.Entity {
	return w.Create(
		ecs.With(w.Transforms, component.Transform{}),
		ecs.With(w.Sprites, component.Sprite{Atlas: component.AtlasMenus, Index: slice, Color: component.White}),
		tag(w, scene),
	)
}

// NewLabel spawns centered text owned by scene.
func NewLabel(w *ecs.World, scene component.SceneID, pos cp.Vector, text string) ecs.Entity {
	return w.Create(
		ecs.With(w.Transforms, component.Transform{Position: pos, Z: 2}),
		ecs.With(w.Labels, component.Label{Text: text, Scale: 2, Color: component.White}),
		tag(w, scene),
	)
}
