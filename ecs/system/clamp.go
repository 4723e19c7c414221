package system

import "github.com/jakecoffman/cp"

// ClampSystem keeps every transform touched this tick inside the arena,
// which is centered on the origin.
type ClampSystem struct{}

func NewClampSystem() *ClampSystem {
	return &ClampSystem{}
}

func (s *ClampSystem) Update(ctx *Context) {
	if ctx == nil || ctx.World == nil {
		return
	}
	w := ctx.World
	halfW := ctx.Tuning.ArenaWidth / 2
	halfH := ctx.Tuning.ArenaHeight / 2
	for _, e := range w.Transforms.Changed() {
		t := w.Transforms.Must(e)
		t.Position.X = cp.Clamp(t.Position.X, -halfW, halfW)
		t.Position.Y = cp.Clamp(t.Position.Y, -halfH, halfH)
	}
}
