package badge

import (
	"math"
	"testing"
)

func TestSetZoomClampsAndDisengagesAutoFit(t *testing.T) {
	z := NewZoomState()
	if !z.AutoFit() {
		t.Fatalf("zoom should start in auto-fit")
	}

	z.SetZoom(1.2)
	if z.AutoFit() {
		t.Fatalf("explicit zoom must disengage auto-fit")
	}
	if z.Scale() != 1.2 {
		t.Fatalf("got scale %v", z.Scale())
	}

	z.SetZoom(9)
	if z.Scale() != MaxZoom {
		t.Fatalf("zoom must clamp to %v, got %v", MaxZoom, z.Scale())
	}
	z.SetZoom(0.01)
	if z.Scale() != MinZoom {
		t.Fatalf("zoom must clamp to %v, got %v", MinZoom, z.Scale())
	}
}

func TestContainerResizeIgnoredAfterManualZoom(t *testing.T) {
	z := NewZoomState()
	z.EngageAutoFit(800, 600, 280, 397)
	z.SetZoom(1.2)

	z.ContainerResized(300, 200, 280, 397)
	if z.Scale() != 1.2 {
		t.Fatalf("container resize must not change a manual zoom, got %v", z.Scale())
	}
	if z.AutoFit() {
		t.Fatalf("auto-fit must stay disengaged")
	}
}

func TestAutoFitComputesScaleFromContainer(t *testing.T) {
	z := NewZoomState()
	canvasW, canvasH := 280.0, 397.0

	z.EngageAutoFit(800, 600, canvasW, canvasH)
	want := math.Min((800-fitPadding)/canvasW, (600-fitPadding)/canvasH)
	if math.Abs(z.Scale()-want) > 1e-9 {
		t.Fatalf("fit scale got %v, want %v", z.Scale(), want)
	}

	// huge container caps at the fit ceiling, not MaxZoom
	z.EngageAutoFit(5000, 5000, canvasW, canvasH)
	if z.Scale() != MaxFitZoom {
		t.Fatalf("fit must cap at %v, got %v", MaxFitZoom, z.Scale())
	}

	// tiny container floors at the minimum
	z.EngageAutoFit(60, 60, canvasW, canvasH)
	if z.Scale() != MinZoom {
		t.Fatalf("fit must floor at %v, got %v", MinZoom, z.Scale())
	}
}

func TestAutoFitRecomputesWhileEngaged(t *testing.T) {
	z := NewZoomState()
	z.EngageAutoFit(800, 600, 280, 397)
	before := z.Scale()

	z.ContainerResized(400, 300, 280, 397)
	if z.Scale() == before {
		t.Fatalf("engaged auto-fit must track container resizes")
	}
}

func TestIncrementZoom(t *testing.T) {
	z := NewZoomState()
	z.SetZoom(1.0)
	z.IncrementZoom(0.25)
	if z.Scale() != 1.25 {
		t.Fatalf("got %v", z.Scale())
	}
	z.IncrementZoom(-5)
	if z.Scale() != MinZoom {
		t.Fatalf("decrement must clamp, got %v", z.Scale())
	}
}
