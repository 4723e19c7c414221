package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gravitywell/assets"
	"github.com/milk9111/gravitywell/ecs/render"
	"github.com/milk9111/gravitywell/input/keyboard"
)

// Game adapts the host to ebiten's loop.
type Game struct {
	host     *host
	library  *assets.Library
	renderer *render.Renderer
	menus    *menuUI
	bindings keyboard.Bindings
	tps      int
	width    int
	height   int
	last     time.Time
}

func NewGame(h *host, library *assets.Library, width, height, tps int) *Game {
	return &Game{
		host:     h,
		library:  library,
		renderer: render.NewRenderer(library, float64(width), float64(height)),
		menus:    newMenuUI(),
		bindings: keyboard.DefaultBindings(),
		tps:      tps,
		width:    width,
		height:   height,
	}
}

func (g *Game) Update() error {
	if ui := g.menus.active(g.host.controller.Mode()); ui != nil {
		ui.Update()
	}
	frame := keyboard.Read(g.bindings).Merge(g.menus.take())
	g.host.step(frame, g.elapsed())

	// textures are built after the first tick so the loading screen shows
	if !g.library.Loaded() {
		g.library.Load()
	}
	if g.host.done() {
		return ebiten.Termination
	}
	return nil
}

// elapsed is the wall clock since the previous update. The first update
// uses one nominal tick.
func (g *Game) elapsed() time.Duration {
	now := time.Now()
	d := time.Second / time.Duration(g.tps)
	if !g.last.IsZero() {
		d = now.Sub(g.last)
	}
	g.last = now
	return d
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.host.world, screen)
	if ui := g.menus.active(g.host.controller.Mode()); ui != nil {
		ui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
