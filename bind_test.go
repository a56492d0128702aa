package scrawl

import "testing"

func TestUnboundCallsAreNoOps(t *testing.T) {
	Bind(nil)

	// None of these may fault or leave observable state behind.
	SetLogicalSize(640, 360)
	SetClearColor(RGB(1, 0, 0))
	SetDrawColor(RGB(0, 1, 0))
	BeginFrame()
	RectFill(0, 0, 1, 1)
	RectOutline(0, 0, 1, 1)
	Line(0, 0, 1, 1)
	Sprite(1, 0, 0, 1, 1)
	SpriteRegion(1, Rect{0, 0, 1, 1}, 0, 0, 1, 1)
	EndFrame()

	if got := Current(); got != nil {
		t.Errorf("Current() = %v, want nil", got)
	}
}

func TestBindAndUnbind(t *testing.T) {
	ctx := NewContext(Config{})
	Bind(ctx)
	defer Bind(nil)

	if got := Current(); got != ctx {
		t.Fatalf("Current() = %v, want bound context", got)
	}

	Bind(nil)
	if got := Current(); got != nil {
		t.Errorf("Current() = %v after Bind(nil), want nil", got)
	}
}

func TestBoundCallsForwardToContext(t *testing.T) {
	ctx := NewContext(Config{})
	Bind(ctx)
	defer Bind(nil)

	SetLogicalSize(640, 360)
	SetClearColor(RGB(0, 0, 1))
	BeginFrame()
	SetDrawColor(RGB(1, 0, 0))
	RectFill(5, 5, 10, 10)
	EndFrame()

	if w, h := ctx.LogicalSize(); w != 640 || h != 360 {
		t.Errorf("LogicalSize() = %v, %v, want 640, 360", w, h)
	}
	if got := ctx.ClearColor(); got != RGB(0, 0, 1) {
		t.Errorf("ClearColor() = %v, want blue", got)
	}
	cmds := ctx.Commands()
	if len(cmds) != 1 {
		t.Fatalf("len(Commands()) = %d, want 1", len(cmds))
	}
	if cmds[0].Type != CommandRectFill || cmds[0].Color != RGB(1, 0, 0) {
		t.Errorf("cmds[0] = %+v, want red rect fill", cmds[0])
	}
}

func TestBindSwitchesContexts(t *testing.T) {
	a := NewContext(Config{})
	b := NewContext(Config{})
	defer Bind(nil)

	Bind(a)
	BeginFrame()
	RectFill(0, 0, 1, 1)

	Bind(b)
	BeginFrame()
	Line(0, 0, 1, 1)
	Line(1, 1, 2, 2)

	if got := a.Len(); got != 1 {
		t.Errorf("a.Len() = %d, want 1", got)
	}
	if got := b.Len(); got != 2 {
		t.Errorf("b.Len() = %d, want 2", got)
	}
}
