package system

import "github.com/milk9111/gravitywell/ecs"

// BlackHoleSystem destroys the first non-attractor overlapping each
// attractor. Ships, salvage and anything else with a box can be absorbed.
type BlackHoleSystem struct{}

func NewBlackHoleSystem() *BlackHoleSystem {
	return &BlackHoleSystem{}
}

func (s *BlackHoleSystem) Update(ctx *Context) {
	if ctx == nil || ctx.World == nil {
		return
	}
	w := ctx.World
	others := collect(w, w.Query(w.Transforms, w.Boxes).Without(w.Attractors))
	for _, hole := range w.Query(w.Attractors, w.Transforms, w.Boxes).Entities() {
		victim, ok := FindOneCollision(w.Transforms.Must(hole).Position, *w.Boxes.Must(hole), others)
		if !ok {
			continue
		}
		absorbedPlayer := w.Players.Has(victim)
		w.Destroy(victim)
		others = without(others, victim)
		ctx.push(ecs.EventAbsorbed, victim, absorbedPlayer)
	}
}
