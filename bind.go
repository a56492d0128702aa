package scrawl

// bound is the package-level active context. Binding is a convenience layer
// over the explicit *Context API; it is plain package state with no locking,
// so Bind and the package-level drawing calls must stay on one goroutine.
var bound *Context

// Bind sets the package-level active context. Passing nil unbinds. The
// package-level drawing functions operate on the bound context and are
// silent no-ops while nothing is bound.
func Bind(ctx *Context) {
	bound = ctx
}

// Current returns the bound context, or nil if none is bound.
func Current() *Context {
	return bound
}

// SetLogicalSize updates the bound context's logical canvas size.
func SetLogicalSize(w, h float64) {
	if bound == nil {
		return
	}
	bound.SetLogicalSize(w, h)
}

// SetClearColor sets the bound context's clear color.
func SetClearColor(col Color) {
	if bound == nil {
		return
	}
	bound.SetClearColor(col)
}

// SetDrawColor sets the bound context's draw color.
func SetDrawColor(col Color) {
	if bound == nil {
		return
	}
	bound.SetDrawColor(col)
}

// BeginFrame starts a new frame on the bound context.
func BeginFrame() {
	if bound == nil {
		return
	}
	bound.BeginFrame()
}

// EndFrame marks the end of recording on the bound context.
func EndFrame() {
	if bound == nil {
		return
	}
	bound.EndFrame()
}

// RectFill records a filled rectangle on the bound context.
func RectFill(x, y, w, h float64) {
	if bound == nil {
		return
	}
	bound.RectFill(x, y, w, h)
}

// RectOutline records a rectangle outline on the bound context.
func RectOutline(x, y, w, h float64) {
	if bound == nil {
		return
	}
	bound.RectOutline(x, y, w, h)
}

// Line records a line segment on the bound context.
func Line(x0, y0, x1, y1 float64) {
	if bound == nil {
		return
	}
	bound.Line(x0, y0, x1, y1)
}

// Sprite records a textured quad on the bound context.
func Sprite(texture TextureID, x, y, w, h float64) {
	if bound == nil {
		return
	}
	bound.Sprite(texture, x, y, w, h)
}

// SpriteRegion records a textured quad with a source region on the bound
// context.
func SpriteRegion(texture TextureID, src Rect, x, y, w, h float64) {
	if bound == nil {
		return
	}
	bound.SpriteRegion(texture, src, x, y, w, h)
}
