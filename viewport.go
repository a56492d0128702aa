package scrawl

import "math"

// Viewport is the device-space placement of the logical canvas: an
// integer-scaled, centered rectangle inside the physical output. Margins
// outside the viewport (letterbox or pillarbox) are the backend's to fill,
// conventionally with opaque black, independent of the canvas clear color.
type Viewport struct {
	// X, Y is the top-left corner of the scaled canvas in device units.
	X, Y float64
	// Width, Height are the scaled canvas dimensions in device units.
	Width, Height float64
	// Scale is the whole-number logical-to-device factor, never below 1.
	Scale int
}

// FitViewport computes the integer-scale letterbox fit of a logical canvas
// of lw×lh into a physical output of outW×outH:
//
//	scale = max(1, floor(min(outW/lw, outH/lh)))
//
// The scale never drops below 1 even when the output is smaller than the
// canvas; pixel-art integrity wins over exact fit. The scaled canvas is
// centered, so the returned X or Y is negative in that undersized case.
func FitViewport(outW, outH, lw, lh float64) Viewport {
	scale := int(math.Floor(math.Min(outW/lw, outH/lh)))
	if scale < 1 {
		scale = 1
	}
	w := lw * float64(scale)
	h := lh * float64(scale)
	return Viewport{
		X:      (outW - w) / 2,
		Y:      (outH - h) / 2,
		Width:  w,
		Height: h,
		Scale:  scale,
	}
}

// Apply transforms a point from logical to device coordinates:
// viewport origin plus logical coordinate times scale. Backends may instead
// install an equivalent native viewport+scale transform once per frame and
// replay commands in logical units directly.
func (v Viewport) Apply(x, y float64) (dx, dy float64) {
	s := float64(v.Scale)
	return v.X + x*s, v.Y + y*s
}

// ApplyRect transforms a logical rectangle given by origin and size into
// device coordinates.
func (v Viewport) ApplyRect(x, y, w, h float64) (dx, dy, dw, dh float64) {
	s := float64(v.Scale)
	return v.X + x*s, v.Y + y*s, w * s, h * s
}
