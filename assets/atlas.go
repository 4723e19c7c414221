package assets

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/gravitywell/ecs/component"
	"golang.org/x/image/font/basicfont"
)

// Sprite atlas slices, 24x24 each, laid out left to right.
const (
	SliceShip0 = iota
	SliceShip1
	SliceParticle
	SliceBlackHole
	SliceSalvage

	spriteSlices = SliceSalvage + 1
)

// Menu atlas slices, one screen each.
const (
	SliceMainMenu = iota
	SliceGameOver

	menuSlices = SliceGameOver + 1
)

const (
	SpriteSize   = 24
	ScreenWidth  = 1024
	ScreenHeight = 768
)

// SliceRect is the bounds of slice idx in a horizontal strip of w x h cells.
func SliceRect(idx, w, h int) image.Rectangle {
	return image.Rect(idx*w, 0, (idx+1)*w, h)
}

// Library owns every texture the game draws. Textures are drawn in code in
// white so sprite tints apply unchanged.
type Library struct {
	sprites []*ebiten.Image
	menus   []*ebiten.Image
	face    text.Face
	loaded  bool
}

func NewLibrary() *Library {
	return &Library{face: text.NewGoXFace(basicfont.Face7x13)}
}

// Load builds both atlases. It must run on the ebiten goroutine and is a
// no-op after the first call.
func (l *Library) Load() {
	if l.loaded {
		return
	}
	sheet := ebiten.NewImage(SpriteSize*spriteSlices, SpriteSize)
	l.sprites = make([]*ebiten.Image, spriteSlices)
	for i := range l.sprites {
		cell := sheet.SubImage(SliceRect(i, SpriteSize, SpriteSize)).(*ebiten.Image)
		drawSprite(cell, i)
		l.sprites[i] = cell
	}

	menus := ebiten.NewImage(ScreenWidth*menuSlices, ScreenHeight)
	l.menus = make([]*ebiten.Image, menuSlices)
	for i := range l.menus {
		cell := menus.SubImage(SliceRect(i, ScreenWidth, ScreenHeight)).(*ebiten.Image)
		l.drawMenu(cell, i)
		l.menus[i] = cell
	}
	l.loaded = true
}

func (l *Library) Loaded() bool {
	return l.loaded
}

// Image returns the slice for a sprite, or nil if it does not exist.
func (l *Library) Image(atlas component.Atlas, idx int) *ebiten.Image {
	var set []*ebiten.Image
	switch atlas {
	case component.AtlasSprites:
		set = l.sprites
	case component.AtlasMenus:
		set = l.menus
	}
	if idx < 0 || idx >= len(set) {
		return nil
	}
	return set[idx]
}

// Face is the font used for labels and menus.
func (l *Library) Face() text.Face {
	return l.face
}

func drawSprite(dst *ebiten.Image, slice int) {
	b := dst.Bounds()
	x0, y0 := float32(b.Min.X), float32(b.Min.Y)
	s := float32(SpriteSize)
	mid := s / 2

	switch slice {
	case SliceShip0, SliceShip1:
		// nose points up the local y axis, which is the top of the cell
		nose := [2]float32{x0 + mid, y0 + 2}
		left := [2]float32{x0 + 3, y0 + s - 3}
		right := [2]float32{x0 + s - 3, y0 + s - 3}
		var p vector.Path
		p.MoveTo(nose[0], nose[1])
		p.LineTo(right[0], right[1])
		p.LineTo(x0+mid, y0+s-8)
		p.LineTo(left[0], left[1])
		p.Close()
		fillPath(dst, &p)
		if slice == SliceShip1 {
			vector.DrawFilledRect(dst, x0+mid-2, y0+s-8, 4, 4, color.Black, false)
		}
	case SliceParticle:
		vector.DrawFilledCircle(dst, x0+mid, y0+mid, 2, color.White, true)
	case SliceBlackHole:
		vector.DrawFilledCircle(dst, x0+mid, y0+mid, mid-5, color.White, true)
		vector.StrokeCircle(dst, x0+mid, y0+mid, mid-1.5, 1.5, color.White, true)
	case SliceSalvage:
		var p vector.Path
		p.MoveTo(x0+mid, y0+3)
		p.LineTo(x0+s-3, y0+mid)
		p.LineTo(x0+mid, y0+s-3)
		p.LineTo(x0+3, y0+mid)
		p.Close()
		fillPath(dst, &p)
	}
}

func fillPath(dst *ebiten.Image, p *vector.Path) {
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = 1, 1, 1, 1
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, whitePixel(), op)
}

var white *ebiten.Image

func whitePixel() *ebiten.Image {
	if white == nil {
		white = ebiten.NewImage(3, 3)
		white.Fill(color.White)
	}
	return white
}

func (l *Library) drawMenu(dst *ebiten.Image, slice int) {
	b := dst.Bounds()
	dst.Fill(color.NRGBA{R: 0x08, G: 0x08, B: 0x14, A: 0xff})

	var title, hint string
	accent := color.NRGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff}
	switch slice {
	case SliceMainMenu:
		title = "GRAVITY WELL"
		hint = "Press P to start, Q to quit"
		vector.StrokeCircle(dst, float32(b.Min.X+ScreenWidth/2), float32(ScreenHeight/2), 120, 2, accent, true)
		vector.DrawFilledCircle(dst, float32(b.Min.X+ScreenWidth/2), float32(ScreenHeight/2), 40, color.Black, true)
	case SliceGameOver:
		title = "GAME OVER"
		hint = "Press Enter to return to the menu"
		accent = color.NRGBA{R: 0xff, G: 0x14, B: 0x94, A: 0xff}
	}

	l.drawCentered(dst, title, float64(b.Min.X+ScreenWidth/2), 140, 5, accent)
	l.drawCentered(dst, hint, float64(b.Min.X+ScreenWidth/2), ScreenHeight-120, 2, color.White)
}

func (l *Library) drawCentered(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, l.face, op)
}
