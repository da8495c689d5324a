package badge

import (
	"math"
	"testing"
)

func TestClampPositionKeepsBoxInside(t *testing.T) {
	cases := []struct {
		name           string
		x, y, w, h     float64
		wantX, wantY   float64
	}{
		{"inside", 10, 10, 20, 10, 10, 10},
		{"overshoot right", 250, 10, 60, 12, 40, 10},
		{"overshoot bottom", 10, 999, 20, 10, 10, 90},
		{"negative", -50, -3, 25, 25, 0, 0},
		{"exact fit", 0, 0, 100, 100, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			x, y := ClampPosition(tc.x, tc.y, tc.w, tc.h)
			if x != tc.wantX || y != tc.wantY {
				t.Fatalf("got (%v, %v), want (%v, %v)", x, y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestClampPositionNonFiniteInput(t *testing.T) {
	x, y := ClampPosition(math.NaN(), math.Inf(1), 20, 10)
	if x != 0 {
		t.Fatalf("NaN x should clamp to 0, got %v", x)
	}
	// +Inf sanitizes to 0 before range clamping.
	if y != 0 {
		t.Fatalf("Inf y should clamp to 0, got %v", y)
	}
}

func TestClampSizeBounds(t *testing.T) {
	cfg := NewCanvasConfig(74, 105)

	w, h := cfg.ClampSize(1, 1)
	if w != MinComponentWidthPct || h != MinComponentHeightPct {
		t.Fatalf("tiny size should clamp to minimums, got %v×%v", w, h)
	}
	w, h = cfg.ClampSize(500, 500)
	if w != 100 || h != 100 {
		t.Fatalf("huge size should clamp to 100, got %v×%v", w, h)
	}
}

func TestPercentPixelRoundTrip(t *testing.T) {
	cfg := NewCanvasConfig(105, 148)
	px, py := cfg.PixelsFromPercent(40, 25)
	x, y := cfg.PercentFromPixels(px, py)
	if math.Abs(x-40) > 1e-9 || math.Abs(y-25) > 1e-9 {
		t.Fatalf("round trip drifted: got (%v, %v)", x, y)
	}
}

func TestNewCanvasConfigRejectsNonPositiveDimensions(t *testing.T) {
	cfg := NewCanvasConfig(0, -10)
	if cfg.WidthMM <= 0 || cfg.HeightMM <= 0 {
		t.Fatalf("invalid dimensions must fall back to the default preset, got %v×%v", cfg.WidthMM, cfg.HeightMM)
	}
}

func TestSwapOrientation(t *testing.T) {
	cfg := NewCanvasConfig(74, 105)
	flipped := cfg.SwapOrientation()
	if flipped.WidthMM != 105 || flipped.HeightMM != 74 {
		t.Fatalf("swap got %v×%v", flipped.WidthMM, flipped.HeightMM)
	}
}
