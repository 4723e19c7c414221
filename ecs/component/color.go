package component

import (
	"image/color"

	"github.com/milk9111/gravitywell/common"
)

// Color is a linear RGBA color with channels in [0, 1].
type Color struct {
	R, G, B, A float32
}

var (
	White  = Color{1, 1, 1, 1}
	Black  = Color{0, 0, 0, 1}
	Yellow = Color{1, 1, 0, 1}
	Purple = Color{0.5, 0, 0.5, 1}
	Cyan   = Color{0, 1, 1, 1}
	Blue   = Color{0, 0, 1, 1}
	Pink   = Color{1, 0.08, 0.58, 1}
	Green  = Color{0, 1, 0, 1}
)

// Lerp interpolates every channel between c and to.
func (c Color) Lerp(to Color, t float32) Color {
	return Color{
		R: common.Lerp(c.R, to.R, t),
		G: common.Lerp(c.G, to.G, t),
		B: common.Lerp(c.B, to.B, t),
		A: common.Lerp(c.A, to.A, t),
	}
}

// NRGBA converts to a non-premultiplied 8-bit color for rendering.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: channel(c.A)}
}

func channel(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
