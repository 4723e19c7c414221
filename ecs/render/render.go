package render

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravitywell/ecs"
	"github.com/milk9111/gravitywell/ecs/component"
)

// Images resolves sprite slices and the label font.
type Images interface {
	Image(atlas component.Atlas, idx int) *ebiten.Image
	Face() text.Face
}

// Renderer draws the world with the origin at the screen center and y
// pointing up.
type Renderer struct {
	images        Images
	width, height float64
}

func NewRenderer(images Images, width, height float64) *Renderer {
	return &Renderer{images: images, width: width, height: height}
}

// ToScreen maps a world position to screen pixels.
func (r *Renderer) ToScreen(p cp.Vector) (float64, float64) {
	return p.X + r.width/2, r.height/2 - p.Y
}

// DrawOrder lists every drawable entity back to front: ascending Z, ties
// broken by entity index.
func DrawOrder(w *ecs.World) []ecs.Entity {
	out := w.Query(w.Transforms, w.Sprites).Entities()
	out = append(out, w.Query(w.Transforms, w.Labels).Without(w.Sprites).Entities()...)
	sort.SliceStable(out, func(i, j int) bool {
		zi, zj := w.Transforms.Must(out[i]).Z, w.Transforms.Must(out[j]).Z
		if zi != zj {
			return zi < zj
		}
		return out[i].Index() < out[j].Index()
	})
	return out
}

func (r *Renderer) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	for _, e := range DrawOrder(w) {
		t := w.Transforms.Must(e)
		if s, ok := w.Sprites.Get(e); ok {
			r.drawSprite(screen, t, s)
		}
		if l, ok := w.Labels.Get(e); ok {
			r.drawLabel(screen, t, l)
		}
	}
}

func (r *Renderer) drawSprite(screen *ebiten.Image, t *component.Transform, s *component.Sprite) {
	img := r.images.Image(s.Atlas, s.Index)
	if img == nil {
		return
	}
	b := img.Bounds()
	x, y := r.ToScreen(t.Position)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	// screen y points down, so world rotation flips sign
	op.GeoM.Rotate(-t.Rotation)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(s.Color.NRGBA())
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func (r *Renderer) drawLabel(screen *ebiten.Image, t *component.Transform, l *component.Label) {
	if l.Text == "" {
		return
	}
	scale := l.Scale
	if scale <= 0 {
		scale = 1
	}
	x, y := r.ToScreen(t.Position)

	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.LineSpacing = 16
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(l.Color.NRGBA())
	text.Draw(screen, l.Text, r.images.Face(), op)
}
