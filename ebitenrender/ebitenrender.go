// Package ebitenrender replays scrawl command streams onto an
// [ebiten.Image].
//
// The renderer computes the integer-scale centered viewport from the
// destination image's own size, fills the letterbox margins with the border
// color, clears the viewport with the context's clear color, and then replays
// the frame's commands in insertion order. Sprite commands resolve their
// opaque [scrawl.TextureID] through a registry populated with
// [Renderer.RegisterTexture]; commands whose texture is unregistered are
// skipped without aborting the rest of the stream.
package ebitenrender

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/scrawl"
)

// Renderer replays a recorded frame onto an ebiten image. The zero value is
// not usable; create one with New.
type Renderer struct {
	textures map[scrawl.TextureID]*ebiten.Image

	// Border fills the letterbox/pillarbox margins outside the scaled
	// canvas. Defaults to opaque black, independent of the canvas clear
	// color.
	Border color.Color
}

// New creates a renderer with an empty texture registry and a black border.
func New() *Renderer {
	return &Renderer{
		textures: make(map[scrawl.TextureID]*ebiten.Image),
		Border:   color.Black,
	}
}

// RegisterTexture associates a texture token with an image. Registering nil
// removes the association.
func (r *Renderer) RegisterTexture(id scrawl.TextureID, img *ebiten.Image) {
	if img == nil {
		delete(r.textures, id)
		return
	}
	r.textures[id] = img
}

// Texture returns the image registered for id, or nil.
func (r *Renderer) Texture(id scrawl.TextureID) *ebiten.Image {
	return r.textures[id]
}

// Draw replays the context's current command stream onto dst. It must run
// after EndFrame and before the next BeginFrame on the same context.
func (r *Renderer) Draw(dst *ebiten.Image, ctx *scrawl.Context) {
	if dst == nil || ctx == nil {
		return
	}

	bounds := dst.Bounds()
	outW := float64(bounds.Dx())
	outH := float64(bounds.Dy())
	lw, lh := ctx.LogicalSize()
	vp := scrawl.FitViewport(outW, outH, lw, lh)

	dst.Fill(r.Border)
	r.fillViewport(dst, vp, ctx.ClearColor())

	for _, cmd := range ctx.Commands() {
		switch cmd.Type {
		case scrawl.CommandClear:
			r.fillViewport(dst, vp, cmd.Color)

		case scrawl.CommandRectFill:
			x, y, w, h := vp.ApplyRect(cmd.X, cmd.Y, cmd.W, cmd.H)
			vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), toNRGBA(cmd.Color), false)

		case scrawl.CommandRectOutline:
			x, y, w, h := vp.ApplyRect(cmd.X, cmd.Y, cmd.W, cmd.H)
			vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), float32(vp.Scale), toNRGBA(cmd.Color), false)

		case scrawl.CommandLine:
			x0, y0 := vp.Apply(cmd.X, cmd.Y)
			x1, y1 := vp.Apply(cmd.X2, cmd.Y2)
			vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(vp.Scale), toNRGBA(cmd.Color), false)

		case scrawl.CommandSprite:
			r.drawSprite(dst, vp, &cmd)

		default:
			// Unknown command type: skip, keep replaying.
		}
	}
}

// fillViewport fills the scaled canvas area with col.
func (r *Renderer) fillViewport(dst *ebiten.Image, vp scrawl.Viewport, col scrawl.Color) {
	vector.DrawFilledRect(dst, float32(vp.X), float32(vp.Y), float32(vp.Width), float32(vp.Height), toNRGBA(col), false)
}

// drawSprite resolves the command's texture and source region and draws it
// scaled into the destination rectangle. Unregistered textures and
// degenerate source regions are skipped.
func (r *Renderer) drawSprite(dst *ebiten.Image, vp scrawl.Viewport, cmd *scrawl.Command) {
	tex := r.textures[cmd.Texture]
	if tex == nil {
		return
	}

	src := tex
	if cmd.Src != (scrawl.Rect{}) {
		b := tex.Bounds()
		rect := image.Rect(
			b.Min.X+int(cmd.Src.X),
			b.Min.Y+int(cmd.Src.Y),
			b.Min.X+int(cmd.Src.X+cmd.Src.Width),
			b.Min.Y+int(cmd.Src.Y+cmd.Src.Height),
		)
		src = tex.SubImage(rect).(*ebiten.Image)
	}

	sb := src.Bounds()
	sw := float64(sb.Dx())
	sh := float64(sb.Dy())
	if sw <= 0 || sh <= 0 {
		return
	}

	x, y, w, h := vp.ApplyRect(cmd.X, cmd.Y, cmd.W, cmd.H)

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(w/sw, h/sh)
	op.GeoM.Translate(x, y)

	// ColorScale expects premultiplied components.
	a := float32(cmd.Color.A)
	op.ColorScale.Scale(float32(cmd.Color.R)*a, float32(cmd.Color.G)*a, float32(cmd.Color.B)*a, a)

	dst.DrawImage(src, &op)
}

// toNRGBA converts a scrawl color to a non-premultiplied 8-bit color using
// the replay contract's clamp-and-round-half-up quantization.
func toNRGBA(c scrawl.Color) color.NRGBA {
	r, g, b, a := c.RGBA8()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
