package badge

import "math"

// BackgroundFit controls how a background image fills the canvas.
type BackgroundFit string

const (
	FitCover   BackgroundFit = "cover"
	FitContain BackgroundFit = "contain"
)

// Background is the canvas fill: a color, an optional image, or both.
type Background struct {
	Color    string        `json:"color"`
	ImageURL string        `json:"imageUrl,omitempty"`
	Fit      BackgroundFit `json:"fit,omitempty"`
}

// CanvasConfig describes the printable badge surface. All editor math is
// derived from this struct; nothing reads package-level constants so two
// sessions (or two tests) can use independent canvases.
type CanvasConfig struct {
	WidthMM     float64
	HeightMM    float64
	PixelsPerMM float64
	Background  Background

	// Minimum usable component size, in percent of the canvas.
	MinComponentWidth  float64
	MinComponentHeight float64
}

// NewCanvasConfig fills in the scale constant and minimum sizes. Width and
// height must be positive; zero or negative dimensions fall back to the
// default preset.
func NewCanvasConfig(widthMM, heightMM float64) CanvasConfig {
	if !(widthMM > 0) || !(heightMM > 0) {
		p := DefaultPreset()
		widthMM, heightMM = p.WidthMM, p.HeightMM
	}
	return CanvasConfig{
		WidthMM:            widthMM,
		HeightMM:           heightMM,
		PixelsPerMM:        DefaultPixelsPerMM,
		MinComponentWidth:  MinComponentWidthPct,
		MinComponentHeight: MinComponentHeightPct,
	}
}

// PixelSize returns the unzoomed canvas size in pixels.
func (c CanvasConfig) PixelSize() (width, height float64) {
	return c.WidthMM * c.PixelsPerMM, c.HeightMM * c.PixelsPerMM
}

// SwapOrientation flips portrait/landscape. Orientation is never stored
// separately; it is implied by the width/height ratio.
func (c CanvasConfig) SwapOrientation() CanvasConfig {
	c.WidthMM, c.HeightMM = c.HeightMM, c.WidthMM
	return c
}

// finite replaces NaN/Inf with zero. Numeric form fields can transiently
// hold garbage while the user types, so bad input clamps instead of erroring.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ClampPosition keeps a box of the given size fully inside the canvas:
// x' = max(0, min(100-width, x)) and likewise for y. A drag can overshoot
// by any amount and the component still cannot leave the surface.
func ClampPosition(x, y, width, height float64) (float64, float64) {
	x, y = finite(x), finite(y)
	x = math.Max(0, math.Min(100-width, x))
	y = math.Max(0, math.Min(100-height, y))
	return x, y
}

// ClampSize bounds a proposed size to [min, 100] in each dimension.
// Position is deliberately not renormalized after a resize; see the
// registry docs for the compatibility note.
func (c CanvasConfig) ClampSize(width, height float64) (float64, float64) {
	width, height = finite(width), finite(height)
	width = math.Max(c.MinComponentWidth, math.Min(100, width))
	height = math.Max(c.MinComponentHeight, math.Min(100, height))
	return width, height
}

// PercentFromPixels converts a point in unscaled canvas pixels to
// percentage-space.
func (c CanvasConfig) PercentFromPixels(px, py float64) (float64, float64) {
	w, h := c.PixelSize()
	if w == 0 || h == 0 {
		return 0, 0
	}
	return finite(px) / w * 100, finite(py) / h * 100
}

// PixelsFromPercent converts a percentage-space point to unscaled canvas
// pixels.
func (c CanvasConfig) PixelsFromPercent(x, y float64) (float64, float64) {
	w, h := c.PixelSize()
	return finite(x) / 100 * w, finite(y) / 100 * h
}
