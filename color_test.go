package piewheel

import (
	"math"
	"testing"
)

// --- hsvToRGB tests ---

func TestHSVToRGB(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v float64
		r, g, b float64
	}{
		{"red", 0, 1, 1, 1, 0, 0},
		{"green", 1.0 / 3, 1, 1, 0, 1, 0},
		{"blue", 2.0 / 3, 1, 1, 0, 0, 1},
		{"yellow", 1.0 / 6, 1, 1, 1, 1, 0},
		{"zero saturation is gray", 0.42, 0, 0.5, 0.5, 0.5, 0.5},
		{"hue wraps past one", 4.0 / 3, 1, 1, 0, 1, 0},
		{"half value red", 0, 1, 0.5, 0.5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := hsvToRGB(tt.h, tt.s, tt.v)
			if math.Abs(r-tt.r) > 1e-9 || math.Abs(g-tt.g) > 1e-9 || math.Abs(b-tt.b) > 1e-9 {
				t.Errorf("hsvToRGB(%v, %v, %v) = (%v, %v, %v), want (%v, %v, %v)",
					tt.h, tt.s, tt.v, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

// --- wedgeColor tests ---

func TestWedgeColor_Distinct(t *testing.T) {
	const n = 8
	seen := make(map[Color]int, n)
	for i := 0; i < n; i++ {
		c := wedgeColor(i, n, wedgeBaseValue)
		if c.A != 1 {
			t.Errorf("wedge %d alpha = %v, want 1", i, c.A)
		}
		if prev, dup := seen[c]; dup {
			t.Errorf("wedges %d and %d share color %v", prev, i, c)
		}
		seen[c] = i
	}
}

func TestWedgeColor_Deterministic(t *testing.T) {
	a := wedgeColor(2, 5, wedgeBaseValue)
	b := wedgeColor(2, 5, wedgeBaseValue)
	if a != b {
		t.Errorf("wedgeColor not stable across calls: %v vs %v", a, b)
	}
}

func TestWedgeColor_HoverBrighter(t *testing.T) {
	// HSV components scale linearly with value, so every channel of the
	// hover color must be at least the idle channel and at least one
	// strictly greater.
	for i := 0; i < 5; i++ {
		idle := wedgeColor(i, 5, wedgeBaseValue)
		hover := wedgeColor(i, 5, wedgeHoverValue)
		if hover.R < idle.R || hover.G < idle.G || hover.B < idle.B {
			t.Errorf("wedge %d hover %v darker than idle %v", i, hover, idle)
		}
		if hover == idle {
			t.Errorf("wedge %d hover color identical to idle", i)
		}
	}
}

// --- Color tests ---

func TestColorToRGBA(t *testing.T) {
	tests := []struct {
		name       string
		in         Color
		r, g, b, a uint8
	}{
		{"white", Color{R: 1, G: 1, B: 1, A: 1}, 255, 255, 255, 255},
		{"black opaque", Color{A: 1}, 0, 0, 0, 255},
		{"clamped above", Color{R: 1.5, G: 1, B: 1, A: 1}, 255, 255, 255, 255},
		{"clamped below", Color{R: -0.5, A: 1}, 0, 0, 0, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.in.toRGBA()
			if c.R != tt.r || c.G != tt.g || c.B != tt.b || c.A != tt.a {
				t.Errorf("%v.toRGBA() = %v", tt.in, c)
			}
		})
	}
}
