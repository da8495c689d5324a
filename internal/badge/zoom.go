package badge

import "math"

// Zoom limits. Auto-fit never scales past MaxFitZoom even when the
// container would allow it.
const (
	MinZoom    = 0.25
	MaxZoom    = 2.0
	MaxFitZoom = 1.5
)

// fitPadding is subtracted from the observed container box before fitting,
// in pixels per side pair.
const fitPadding = 48.0

// ZoomState is the display scale factor plus the auto-fit flag. Zoom is a
// presentation concern only; it never touches the percentage-based
// geometry.
type ZoomState struct {
	scale   float64
	autoFit bool
}

// NewZoomState starts at 1.0 with auto-fit engaged.
func NewZoomState() *ZoomState {
	return &ZoomState{scale: 1.0, autoFit: true}
}

// Scale returns the current display multiplier.
func (z *ZoomState) Scale() float64 { return z.scale }

// AutoFit reports whether auto-fit is engaged.
func (z *ZoomState) AutoFit() bool { return z.autoFit }

// SetZoom clamps to [MinZoom, MaxZoom] and disengages auto-fit: an
// explicit zoom action means the user has taken manual control.
func (z *ZoomState) SetZoom(v float64) {
	z.autoFit = false
	z.scale = clampZoom(v)
}

// IncrementZoom adjusts the current value by delta (also manual control).
func (z *ZoomState) IncrementZoom(delta float64) {
	z.SetZoom(z.scale + delta)
}

// EngageAutoFit re-engages auto-fit and recomputes the scale from the
// container and canvas pixel sizes.
func (z *ZoomState) EngageAutoFit(containerW, containerH, canvasW, canvasH float64) {
	z.autoFit = true
	z.recompute(containerW, containerH, canvasW, canvasH)
}

// ContainerResized recomputes the fit if and only if auto-fit is still
// engaged. Once the user has zoomed manually, container changes are
// ignored.
func (z *ZoomState) ContainerResized(containerW, containerH, canvasW, canvasH float64) {
	if !z.autoFit {
		return
	}
	z.recompute(containerW, containerH, canvasW, canvasH)
}

func (z *ZoomState) recompute(containerW, containerH, canvasW, canvasH float64) {
	availW := finite(containerW) - fitPadding
	availH := finite(containerH) - fitPadding
	if canvasW <= 0 || canvasH <= 0 || availW <= 0 || availH <= 0 {
		z.scale = MinZoom
		return
	}
	s := math.Min(availW/canvasW, availH/canvasH)
	s = math.Min(s, MaxFitZoom)
	z.scale = math.Max(s, MinZoom)
}

func clampZoom(v float64) float64 {
	v = finite(v)
	return math.Max(MinZoom, math.Min(MaxZoom, v))
}
