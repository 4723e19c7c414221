package system

import (
	"math"
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravitywell/ecs"
	"github.com/milk9111/gravitywell/ecs/component"
	"github.com/milk9111/gravitywell/prefabs"
)

const eps = 1e-9

func newTestContext(t *testing.T, elapsed time.Duration) *Context {
	t.Helper()
	catalog, err := prefabs.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	return &Context{
		World:   ecs.NewWorld(),
		Elapsed: elapsed,
		Session: NewSession(catalog),
		Random:  NewRandom(1),
		Catalog: catalog,
		Tuning:  DefaultTuning(),
	}
}

func spawnShip(ctx *Context, id int, pos cp.Vector) ecs.Entity {
	w := ctx.World
	return w.Create(
		ecs.With(w.Transforms, component.Transform{Position: pos}),
		ecs.With(w.Velocities, component.Velocity{}),
		ecs.With(w.Boxes, component.BoundingBox{Width: 24, Height: 24}),
		ecs.With(w.Players, component.Player{ID: id}),
		ecs.With(w.Trails, component.EmitTrail{}),
	)
}

func spawnWell(ctx *Context, pos cp.Vector) ecs.Entity {
	w := ctx.World
	return w.Create(
		ecs.With(w.Transforms, component.Transform{Position: pos}),
		ecs.With(w.Boxes, component.BoundingBox{Width: 24, Height: 24}),
		ecs.With(w.Attractors, component.Attractor{MaxVelocity: 3}),
	)
}

func spawnSalvage(ctx *Context, pos cp.Vector) ecs.Entity {
	w := ctx.World
	return w.Create(
		ecs.With(w.Transforms, component.Transform{Position: pos, Z: 1}),
		ecs.With(w.Velocities, component.Velocity{}),
		ecs.With(w.Boxes, component.BoundingBox{Width: 24, Height: 24}),
		ecs.With(w.Salvage, component.Salvage{}),
		ecs.With(w.Trails, component.EmitTrail{}),
	)
}

func near(a, b float64) bool {
	return math.Abs(a-b) <= eps*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func nearVec(a, b cp.Vector) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

func nearColor(a, b component.Color) bool {
	const tol = 1e-6
	return math.Abs(float64(a.R-b.R)) < tol &&
		math.Abs(float64(a.G-b.G)) < tol &&
		math.Abs(float64(a.B-b.B)) < tol &&
		math.Abs(float64(a.A-b.A)) < tol
}

// particles returns live particles whose color pair matches.
func particles(w *ecs.World, colors component.ParticleColorLerp) []ecs.Entity {
	var out []ecs.Entity
	for _, e := range w.Query(w.Lifetimes, w.ColorLerps).Entities() {
		if *w.ColorLerps.Must(e) == colors {
			out = append(out, e)
		}
	}
	return out
}
