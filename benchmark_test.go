package scrawl

import "testing"

// BenchmarkRecordFrame measures a full record cycle: begin, 1000 mixed
// primitives, end. The warm-up frame grows the buffer once; steady-state
// frames reuse it with zero allocations.
func BenchmarkRecordFrame(b *testing.B) {
	ctx := NewContext(Config{Capacity: 1024})
	recordFrame(ctx)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		recordFrame(ctx)
	}
}

func BenchmarkRecordFrameFixedCap(b *testing.B) {
	ctx := NewContext(Config{Capacity: 1024, Policy: GrowFixed})
	recordFrame(ctx)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		recordFrame(ctx)
	}
}

func BenchmarkRectFill(b *testing.B) {
	ctx := NewContext(Config{Capacity: 1 << 20})
	ctx.BeginFrame()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if ctx.Len() == ctx.Capacity() {
			ctx.BeginFrame()
		}
		ctx.RectFill(0, 0, 1, 1)
	}
}

func recordFrame(ctx *Context) {
	ctx.BeginFrame()
	for i := 0; i < 250; i++ {
		x := float64(i)
		ctx.RectFill(x, 0, 8, 8)
		ctx.RectOutline(x, 10, 8, 8)
		ctx.Line(x, 20, x+8, 28)
		ctx.Sprite(TextureID(i%4), x, 30, 8, 8)
	}
	ctx.EndFrame()
}
