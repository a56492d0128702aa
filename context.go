package scrawl

const (
	// defaultCapacity is the minimum command capacity of a new context.
	defaultCapacity = 64

	// defaultLogicalW and defaultLogicalH are the initial logical canvas
	// dimensions of a new context.
	defaultLogicalW = 320
	defaultLogicalH = 180
)

// GrowthPolicy selects how a context behaves when a frame records more
// commands than the buffer can hold.
type GrowthPolicy uint8

const (
	// GrowDynamic reallocates the buffer when full, preserving command order.
	// Appends never drop a command. This is the default.
	GrowDynamic GrowthPolicy = iota

	// GrowFixed freezes capacity at creation. An append into a full buffer
	// drops the command and sets the sticky overflow flag for the remainder
	// of the frame. Suited to fixed-memory deployments.
	GrowFixed
)

// Config holds creation options for a Context. The zero value is valid:
// default capacity, dynamic growth, no implicit clear.
type Config struct {
	// Capacity is a hint for the per-frame command capacity. The effective
	// capacity is never below the default of 64.
	Capacity int

	// Policy selects the growth/overflow behavior when a frame exceeds
	// capacity.
	Policy GrowthPolicy

	// ClearOnBegin makes BeginFrame record a Clear command carrying the
	// current clear color as the first entry of every frame. Backends that
	// rely on a "frame starts with a clear" contract enable this; otherwise
	// clearing is left to the backend.
	ClearOnBegin bool
}

// Context owns the per-frame drawing state and the command buffer. All
// methods are synchronous and must be called from a single goroutine; the
// buffer is exclusively owned by its context.
type Context struct {
	logicalW float64
	logicalH float64

	clearColor Color
	drawColor  Color

	commands   []Command
	capacity   int
	overflowed bool

	policy       GrowthPolicy
	clearOnBegin bool
}

// NewContext creates a context with the given configuration. The logical
// canvas starts at 320×180, the clear color at opaque black, and the draw
// color at opaque white.
func NewContext(cfg Config) *Context {
	capacity := cfg.Capacity
	if capacity < defaultCapacity {
		capacity = defaultCapacity
	}
	return &Context{
		logicalW:     defaultLogicalW,
		logicalH:     defaultLogicalH,
		clearColor:   ColorBlack,
		drawColor:    ColorWhite,
		commands:     make([]Command, 0, capacity),
		capacity:     capacity,
		policy:       cfg.Policy,
		clearOnBegin: cfg.ClearOnBegin,
	}
}

// SetLogicalSize updates the logical canvas dimensions. Non-positive values
// are rejected as a silent no-op; the previous size stays in effect.
func (c *Context) SetLogicalSize(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	c.logicalW = w
	c.logicalH = h
}

// LogicalSize returns the logical canvas dimensions.
func (c *Context) LogicalSize() (w, h float64) {
	return c.logicalW, c.logicalH
}

// SetClearColor sets the color a backend clears the canvas with. With
// ClearOnBegin it is also the color of the implicit Clear command recorded
// by subsequent BeginFrame calls.
func (c *Context) SetClearColor(col Color) {
	c.clearColor = col
}

// ClearColor returns the current clear color.
func (c *Context) ClearColor() Color {
	return c.clearColor
}

// SetDrawColor sets the color captured by subsequent primitive calls.
// Already-recorded commands keep the color they were issued with.
func (c *Context) SetDrawColor(col Color) {
	c.drawColor = col
}

// DrawColor returns the current draw color.
func (c *Context) DrawColor() Color {
	return c.drawColor
}

// BeginFrame starts a new frame: the command count resets to zero and the
// overflow flag clears. Any view previously returned by Commands is
// invalidated. With ClearOnBegin, a Clear command carrying the current clear
// color is recorded as the frame's first entry.
func (c *Context) BeginFrame() {
	c.commands = c.commands[:0]
	c.overflowed = false
	if c.clearOnBegin {
		c.push(Command{
			Type:  CommandClear,
			Color: c.clearColor,
			W:     c.logicalW,
			H:     c.logicalH,
		})
	}
}

// EndFrame marks the end of recording: the stream is complete and ready for
// readback. It never mutates the command buffer.
func (c *Context) EndFrame() {}

// RectFill records a filled rectangle in the current draw color.
func (c *Context) RectFill(x, y, w, h float64) {
	c.push(Command{Type: CommandRectFill, Color: c.drawColor, X: x, Y: y, W: w, H: h})
}

// RectOutline records a rectangle outline in the current draw color.
func (c *Context) RectOutline(x, y, w, h float64) {
	c.push(Command{Type: CommandRectOutline, Color: c.drawColor, X: x, Y: y, W: w, H: h})
}

// Line records a line segment from (x0, y0) to (x1, y1) in the current draw
// color.
func (c *Context) Line(x0, y0, x1, y1 float64) {
	c.push(Command{Type: CommandLine, Color: c.drawColor, X: x0, Y: y0, X2: x1, Y2: y1})
}

// Sprite records a textured quad covering the destination rectangle, using
// the whole texture. The current draw color is captured as a tint.
func (c *Context) Sprite(texture TextureID, x, y, w, h float64) {
	c.push(Command{Type: CommandSprite, Color: c.drawColor, Texture: texture, X: x, Y: y, W: w, H: h})
}

// SpriteRegion records a textured quad sampling the src region of the
// texture into the destination rectangle.
func (c *Context) SpriteRegion(texture TextureID, src Rect, x, y, w, h float64) {
	c.push(Command{Type: CommandSprite, Color: c.drawColor, Texture: texture, X: x, Y: y, W: w, H: h, Src: src})
}

// Commands returns the current frame's command stream as a read-only view
// in insertion order. The view stays valid until the next BeginFrame on the
// same context; callers must not retain it across that boundary or mutate
// its entries.
func (c *Context) Commands() []Command {
	return c.commands
}

// Capacity returns the current command capacity. Under GrowDynamic it may
// exceed the requested capacity after a frame grows the buffer.
func (c *Context) Capacity() int {
	return c.capacity
}

// Len returns the number of commands recorded so far this frame.
func (c *Context) Len() int {
	return len(c.commands)
}

// Overflowed reports whether a command was dropped this frame under the
// GrowFixed policy. The flag is sticky until the next BeginFrame.
func (c *Context) Overflowed() bool {
	return c.overflowed
}

// push appends one command, growing or dropping per the configured policy.
// A dropped command never consumes a slot or disturbs recorded entries.
func (c *Context) push(cmd Command) {
	if len(c.commands) == c.capacity {
		if c.policy == GrowFixed {
			c.overflowed = true
			return
		}
		newCap := c.capacity * 2
		if newCap < len(c.commands)+1 {
			newCap = len(c.commands) + 1
		}
		grown := make([]Command, len(c.commands), newCap)
		copy(grown, c.commands)
		c.commands = grown
		c.capacity = newCap
	}
	c.commands = append(c.commands, cmd)
}
