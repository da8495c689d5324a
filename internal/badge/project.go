package badge

// Box is a projected rectangle in a concrete unit system (pixels for the
// screen path, millimeters for print).
type Box struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Project maps a component's percentage geometry onto a canvas of the
// given pixel size.
func Project(c PlacedComponent, canvasWidthPx, canvasHeightPx float64) Box {
	return projectOnto(c, canvasWidthPx, canvasHeightPx)
}

// ProjectForPrint performs the identical percentage math against the
// physical millimeter dimensions. Screen and print therefore agree on
// relative placement by construction; this WYSIWYG parity is the reason
// the layout is stored in percent rather than pixels.
func ProjectForPrint(c PlacedComponent, canvasWidthMM, canvasHeightMM float64) Box {
	return projectOnto(c, canvasWidthMM, canvasHeightMM)
}

func projectOnto(c PlacedComponent, w, h float64) Box {
	return Box{
		Left:   c.X / 100 * w,
		Top:    c.Y / 100 * h,
		Width:  c.Width / 100 * w,
		Height: c.Height / 100 * h,
	}
}

// PrintLayout projects every visible component against the physical canvas
// size, keyed by component id, for an external print-document generator.
func PrintLayout(components []PlacedComponent, cfg CanvasConfig) map[string]Box {
	out := make(map[string]Box, len(components))
	for _, c := range components {
		if !c.Visible {
			continue
		}
		out[c.ID] = ProjectForPrint(c, cfg.WidthMM, cfg.HeightMM)
	}
	return out
}

// Justify maps horizontal text alignment to the flex justify-content /
// text-anchor keyword. The editor preview and the print path both call
// this one function so the two can never disagree — alignment divergence
// between preview and print was a recurring defect before the mapping was
// centralized.
func Justify(a Alignment) string {
	switch a {
	case AlignLeft:
		return "start"
	case AlignRight:
		return "end"
	default:
		return "center"
	}
}
