package scrawl

import "testing"

// --- Color helpers ---

func TestRGBIsOpaque(t *testing.T) {
	c := RGB(0.2, 0.4, 0.6)
	if c != (Color{0.2, 0.4, 0.6, 1}) {
		t.Errorf("RGB(0.2, 0.4, 0.6) = %v, want alpha 1", c)
	}
}

func TestRGBA8Quantization(t *testing.T) {
	tests := []struct {
		name       string
		in         Color
		r, g, b, a uint8
	}{
		{"black", Color{0, 0, 0, 1}, 0, 0, 0, 255},
		{"white", Color{1, 1, 1, 1}, 255, 255, 255, 255},
		{"out of range clamps", Color{1.5, -0.2, 0.5, 1.0}, 255, 0, 128, 255},
		{"half rounds up", Color{0.5, 0.5, 0.5, 0.5}, 128, 128, 128, 128},
		{"transparent", Color{0.3, 0.3, 0.3, 0}, 77, 77, 77, 0},
		{"far out of range", Color{100, -100, 2, -1}, 255, 0, 255, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.in.RGBA8()
			if r != tt.r || g != tt.g || b != tt.b || a != tt.a {
				t.Errorf("Color%v.RGBA8() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					tt.in, r, g, b, a, tt.r, tt.g, tt.b, tt.a)
			}
		})
	}
}
