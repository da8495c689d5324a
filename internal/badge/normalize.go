package badge

import "strings"

// whiteColors are the spellings of pure white that get rewritten to black.
// White text on the default light background is unreadable, so load-time
// normalization guarantees legibility rather than trusting stored data.
var whiteColors = map[string]bool{
	"#fff":    true,
	"#ffffff": true,
	"white":   true,
}

// NormalizeComponent fills defaults into a possibly-legacy record and
// clamps its geometry. Missing style fields are a forward-compatibility
// concern, not a validation error: old records simply predate the fields.
func NormalizeComponent(c PlacedComponent, cfg CanvasConfig) PlacedComponent {
	if c.Kind.HasText() {
		c.Style = normalizeStyle(c.Style)
	}
	c.Width, c.Height = cfg.ClampSize(c.Width, c.Height)
	c.X, c.Y = ClampPosition(c.X, c.Y, c.Width, c.Height)
	return c
}

// NormalizeAll normalizes a loaded component list in place order.
func NormalizeAll(components []PlacedComponent, cfg CanvasConfig) []PlacedComponent {
	out := make([]PlacedComponent, len(components))
	for i, c := range components {
		out[i] = NormalizeComponent(c, cfg)
	}
	return out
}

func normalizeStyle(s TextStyle) TextStyle {
	if s.FontSize <= 0 {
		s.FontSize = 16
	}
	if s.FontFamily == "" {
		s.FontFamily = "sans-serif"
	}
	switch s.Align {
	case AlignLeft, AlignCenter, AlignRight:
	default:
		s.Align = AlignCenter
	}
	if s.Color == "" || whiteColors[strings.ToLower(s.Color)] {
		s.Color = "#000000"
	}
	return s
}
