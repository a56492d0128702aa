package scrawl

import "math"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Components are captured into commands as-is; clamping and quantization
// happen at replay time via [Color.RGBA8].
type Color struct {
	R, G, B, A float64
}

// RGBA builds a Color from four components.
func RGBA(r, g, b, a float64) Color {
	return Color{r, g, b, a}
}

// RGB builds an opaque Color from three components.
func RGB(r, g, b float64) Color {
	return Color{r, g, b, 1}
}

// ColorBlack and ColorWhite are the default clear and draw colors.
var (
	ColorBlack = Color{0, 0, 0, 1}
	ColorWhite = Color{1, 1, 1, 1}
)

// RGBA8 quantizes the color to 8-bit channels. Each component is clamped
// to [0, 1] first, then scaled by 255 and rounded half up, so a channel
// of 0.5 becomes 128.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return quantize8(c.R), quantize8(c.G), quantize8(c.B), quantize8(c.A)
}

func quantize8(v float64) uint8 {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return uint8(math.Floor(v*255 + 0.5))
}

// Vec2 is a 2D vector used for positions and sizes. Coordinates are in
// logical canvas units.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward. Zero or negative dimensions are
// valid degenerate rectangles; backends decide whether to render or skip them.
type Rect struct {
	X, Y, Width, Height float64
}

// TextureID is an opaque texture token. The recorder never dereferences it;
// a replaying backend maps it to an actual texture resource.
type TextureID int32
