// Command atlas previews the generated sprite atlas with the tints the
// prefabs assign to each slice.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/gravitywell/assets"
	"github.com/milk9111/gravitywell/ecs/component"
	"github.com/milk9111/gravitywell/prefabs"
)

const previewSize = 512

type tile struct {
	name  string
	index int
	tint  component.Color
}

type preview struct {
	library *assets.Library
	tiles   []tile
	scale   float64
	spin    float64
}

func (p *preview) Update() error {
	if !p.library.Loaded() {
		p.library.Load()
	}
	p.spin += 0.02
	return nil
}

func (p *preview) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x10, 0x10, 0x18, 0xff})
	cell := float64(assets.SpriteSize) * p.scale
	gap := cell / 2
	width := float64(len(p.tiles))*(cell+gap) - gap
	x := (previewSize - width) / 2

	for _, t := range p.tiles {
		img := p.library.Image(component.AtlasSprites, t.index)
		if img == nil {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(assets.SpriteSize)/2, -float64(assets.SpriteSize)/2)
		op.GeoM.Rotate(p.spin)
		op.GeoM.Scale(p.scale, p.scale)
		op.GeoM.Translate(x+cell/2, previewSize/2)
		op.ColorScale.ScaleWithColor(t.tint.NRGBA())
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(img, op)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d %s", t.index, t.name), int(x), previewSize/2+int(cell))
		x += cell + gap
	}
}

func (p *preview) Layout(outsideWidth, outsideHeight int) (int, int) {
	return previewSize, previewSize
}

func tiles(c *prefabs.Catalog) []tile {
	var out []tile
	for _, s := range c.Ships.Ships {
		out = append(out, tile{name: s.Name, index: s.Sprite.Index, tint: s.Sprite.Tint()})
	}
	out = append(out,
		tile{name: "particle", index: c.Effects.Particle.Sprite.Index, tint: c.Effects.Particle.Sprite.Tint()},
		tile{name: c.Well.Name, index: c.Well.Sprite.Index, tint: c.Well.Sprite.Tint()},
		tile{name: c.Salvage.Name, index: c.Salvage.Sprite.Index, tint: c.Salvage.Sprite.Tint()},
	)
	return out
}

func main() {
	scale := flag.Float64("scale", 3, "sprite scale")
	flag.Parse()

	catalog, err := prefabs.LoadCatalog()
	if err != nil {
		log.Fatal(err)
	}
	p := &preview{library: assets.NewLibrary(), tiles: tiles(catalog), scale: *scale}
	ebiten.SetWindowSize(previewSize, previewSize)
	ebiten.SetWindowTitle("Gravity Well Atlas")
	if err := ebiten.RunGame(p); err != nil {
		log.Fatal(err)
	}
}
