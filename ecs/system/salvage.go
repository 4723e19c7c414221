package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravitywell/ecs"
	"github.com/milk9111/gravitywell/ecs/component"
	"github.com/milk9111/gravitywell/ecs/entity"
)

// SalvageSpawnSystem drops one salvage at a random point of the spawn area
// each time the salvage timer fires.
type SalvageSpawnSystem struct{}

func NewSalvageSpawnSystem() *SalvageSpawnSystem {
	return &SalvageSpawnSystem{}
}

func (s *SalvageSpawnSystem) Update(ctx *Context) {
	if ctx == nil || ctx.World == nil || ctx.Session == nil {
		return
	}
	timer := ctx.Session.Salvage
	timer.Tick(ctx.ElapsedMS())
	if !timer.JustFinished() {
		return
	}

	spec := ctx.Catalog.Salvage
	width, height := int(spec.SpawnArea.Width), int(spec.SpawnArea.Height)
	pos := cp.Vector{
		X: float64(ctx.Random.Range(0, width)) - spec.SpawnArea.Width/2,
		Y: float64(ctx.Random.Range(0, height)) - spec.SpawnArea.Height/2,
	}
	half := spec.SpeedRange / 2
	vel := cp.Vector{
		X: float64(ctx.Random.Range(0, spec.SpeedRange)-half) / spec.SpeedDivisor,
		Y: float64(ctx.Random.Range(0, spec.SpeedRange)-half) / spec.SpeedDivisor,
	}

	e := entity.NewSalvage(ctx.World, spec, pos, vel)
	SpawnBurst(ctx, component.Transform{Position: pos, Z: spec.Z}, colorPair(spec.Burst.Colors), spec.Burst.LifetimeMS)
	ctx.push(ecs.EventSalvageSpawned, e, pos)
}

// CollectSystem lets each ship pick up the first salvage it overlaps. A
// salvage taken by one ship is gone for the rest of the tick.
type CollectSystem struct{}

func NewCollectSystem() *CollectSystem {
	return &CollectSystem{}
}

func (s *CollectSystem) Update(ctx *Context) {
	if ctx == nil || ctx.World == nil || ctx.Session == nil {
		return
	}
	w := ctx.World
	fx := ctx.Catalog.Effects.Collect
	salvage := collect(w, w.Query(w.Salvage, w.Transforms, w.Boxes))
	if len(salvage) == 0 {
		return
	}
	for _, p := range w.Query(w.Players, w.Transforms, w.Boxes).Entities() {
		t := w.Transforms.Must(p)
		found, ok := FindOneCollision(t.Position, *w.Boxes.Must(p), salvage)
		if !ok {
			continue
		}
		id := w.Players.Must(p).ID
		w.Destroy(found)
		salvage = without(salvage, found)
		ctx.Session.Scores.Add(id)
		SpawnBurst(ctx, *t, colorPair(fx.Colors), fx.LifetimeMS)
		ctx.push(ecs.EventSalvageCollected, found, id)
	}
}
