package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravitywell/ecs"
	"github.com/milk9111/gravitywell/ecs/component"
)

// Intersects tests two boxes anchored at their positions. Touching edges do
// not count as overlap.
func Intersects(a cp.Vector, ab component.BoundingBox, b cp.Vector, bb component.BoundingBox) bool {
	return a.X+ab.Width > b.X &&
		a.X < b.X+bb.Width &&
		a.Y+ab.Height > b.Y &&
		a.Y < b.Y+bb.Height
}

// Candidate is one collidable entity captured for a scan.
type Candidate struct {
	Entity   ecs.Entity
	Position cp.Vector
	Box      component.BoundingBox
}

// FindOneCollision returns the first candidate overlapping box at pos, in
// slice order.
func FindOneCollision(pos cp.Vector, box component.BoundingBox, candidates []Candidate) (ecs.Entity, bool) {
	for _, c := range candidates {
		if Intersects(pos, box, c.Position, c.Box) {
			return c.Entity, true
		}
	}
	return 0, false
}

// collect snapshots the entities of q, which must include Transforms and
// Boxes, in ascending index order.
func collect(w *ecs.World, q *ecs.Query) []Candidate {
	ents := q.Entities()
	out := make([]Candidate, 0, len(ents))
	for _, e := range ents {
		out = append(out, Candidate{
			Entity:   e,
			Position: w.Transforms.Must(e).Position,
			Box:      *w.Boxes.Must(e),
		})
	}
	return out
}

func without(candidates []Candidate, e ecs.Entity) []Candidate {
	for i, c := range candidates {
		if c.Entity == e {
			return append(candidates[:i:i], candidates[i+1:]...)
		}
	}
	return candidates
}
