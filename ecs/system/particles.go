package system

// ParticleAgingSystem adds the tick length to every particle lifetime and
// destroys particles that outlived it.
type ParticleAgingSystem struct{}

func NewParticleAgingSystem() *ParticleAgingSystem {
	return &ParticleAgingSystem{}
}

func (s *ParticleAgingSystem) Update(ctx *Context) {
	if ctx == nil || ctx.World == nil {
		return
	}
	w := ctx.World
	ms := ctx.ElapsedMS()
	for _, e := range w.Query(w.Lifetimes).Entities() {
		life := w.Lifetimes.Must(e)
		life.Elapsed += ms
		if life.Elapsed > life.Max {
			w.Destroy(e)
		}
	}
}

// ParticleColorSystem writes the interpolated lifetime color into the
// particle's sprite.
type ParticleColorSystem struct{}

func NewParticleColorSystem() *ParticleColorSystem {
	return &ParticleColorSystem{}
}

func (s *ParticleColorSystem) Update(ctx *Context) {
	if ctx == nil || ctx.World == nil {
		return
	}
	w := ctx.World
	for _, e := range w.Query(w.Lifetimes, w.ColorLerps, w.Sprites).Entities() {
		t := float32(w.Lifetimes.Must(e).Fraction())
		lerp := w.ColorLerps.Must(e)
		w.Sprites.Must(e).Color = lerp.Start.Lerp(lerp.End, t)
	}
}
