// Package scrawl is a backend-agnostic 2D draw-command recorder.
//
// Application code issues drawing calls (rectangles, lines, sprites) against
// a logical canvas; scrawl buffers them into an ordered command stream that a
// rendering backend replays against a concrete graphics API each frame. The
// core never rasterizes, never touches GPU resources (textures are opaque
// [TextureID] tokens), and performs no I/O.
//
// # Quick start
//
//	ctx := scrawl.NewContext(scrawl.Config{Capacity: 1024})
//	ctx.SetLogicalSize(320, 180)
//	ctx.SetClearColor(scrawl.RGBA(0.05, 0.05, 0.1, 1))
//
//	for running {
//		ctx.BeginFrame()
//
//		ctx.SetDrawColor(scrawl.RGB(1, 0, 0))
//		ctx.RectFill(10, 10, 50, 30)
//
//		ctx.SetDrawColor(scrawl.RGB(0, 1, 0))
//		ctx.Line(0, 0, 319, 179)
//
//		ctx.EndFrame()
//
//		// A backend reads ctx.Commands() and replays them; see the
//		// ebitenrender subpackage for an Ebitengine backend.
//	}
//
// For single-canvas programs, [Bind] installs a context as the package-level
// active one and the package-level functions ([RectFill], [Line], ...)
// forward to it, silently doing nothing while no context is bound.
//
// # Frame lifecycle
//
// [Context.BeginFrame] resets the command count and overflow flag and
// invalidates any previously returned command view. [Context.EndFrame] is a
// pure boundary marker. Between the two, every primitive call appends exactly
// one [Command] capturing the draw color in effect at that moment. A backend
// must finish consuming [Context.Commands] before the next BeginFrame.
//
// When a frame records more commands than the buffer holds, the configured
// [GrowthPolicy] decides: [GrowDynamic] reallocates and never drops, while
// [GrowFixed] drops the excess and sets the sticky [Context.Overflowed] flag.
//
// # Replay contract
//
// Command geometry is in logical units, origin top-left, Y increasing
// downward. A compliant backend computes the integer-scale centered viewport
// with [FitViewport] from its own physical output size, transforms geometry
// with [Viewport.Apply] (or installs an equivalent native transform once per
// frame), clamps and quantizes colors via [Color.RGBA8], and skips command
// types it does not support without aborting the rest of the stream.
package scrawl
