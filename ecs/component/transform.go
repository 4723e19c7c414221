package component

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Transform places an entity in the arena. Z is render depth only.
type Transform struct {
	Position cp.Vector
	Z        float64
	Rotation float64
}

// Up is the unit vector the ship's nose points along.
func (t Transform) Up() cp.Vector {
	return cp.ForAngle(t.Rotation + math.Pi/2)
}

// Velocity is measured in distance per nominal 33ms frame.
type Velocity struct {
	cp.Vector
	Z float64
}

// BoundingBox is anchored at the owner's position, not centered, and never
// rotates.
type BoundingBox struct {
	Width  float64
	Height float64
}
