package system

// VelocitySystem moves every entity by its velocity scaled to the tick
// length.
type VelocitySystem struct{}

func NewVelocitySystem() *VelocitySystem {
	return &VelocitySystem{}
}

func (s *VelocitySystem) Update(ctx *Context) {
	if ctx == nil || ctx.World == nil {
		return
	}
	w := ctx.World
	frac := ctx.FrameFraction()
	for _, e := range w.Query(w.Transforms, w.Velocities).Entities() {
		v := w.Velocities.Must(e)
		t := w.Transforms.Mut(e)
		t.Position = t.Position.Add(v.Vector.Mult(frac))
		t.Z += v.Z * frac
	}
}

// AttractionSystem pulls every moving entity toward each attractor: the unit
// direction divided by the squared distance, scaled by the strength.
type AttractionSystem struct{}

func NewAttractionSystem() *AttractionSystem {
	return &AttractionSystem{}
}

func (s *AttractionSystem) Update(ctx *Context) {
	if ctx == nil || ctx.World == nil {
		return
	}
	w := ctx.World
	frac := ctx.FrameFraction()
	targets := w.Query(w.Transforms, w.Velocities).Entities()
	for _, a := range w.Query(w.Attractors, w.Transforms).Entities() {
		center := w.Transforms.Must(a).Position
		for _, e := range targets {
			if e == a {
				continue
			}
			pos := w.Transforms.Must(e).Position
			distSq := center.DistanceSq(pos)
			if distSq == 0 {
				continue
			}
			pull := center.Sub(pos).Normalize().Mult(1 / distSq).Mult(ctx.Tuning.AttractionStrength * frac)
			v := w.Velocities.Must(e)
			v.Vector = v.Vector.Add(pull)
		}
	}
}
