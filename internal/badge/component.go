package badge

// ComponentKind is the variant tag of a placed element.
type ComponentKind string

const (
	KindBoundField ComponentKind = "boundField"
	KindQRCode     ComponentKind = "qrCode"
	KindLogoImage  ComponentKind = "logoImage"
	KindEventName  ComponentKind = "eventNameText"
	KindFreeText   ComponentKind = "freeText"
)

// Alignment is horizontal text alignment.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// TextStyle applies to the text-bearing component kinds only.
type TextStyle struct {
	FontSize   float64   `json:"fontSize"`
	FontFamily string    `json:"fontFamily"`
	Bold       bool      `json:"bold"`
	Italic     bool      `json:"italic"`
	Align      Alignment `json:"align"`
	Color      string    `json:"color"`
}

// PlacedComponent is one element positioned on the canvas. Position and
// size are percentages of the canvas width/height, so the stored layout
// survives canvas resizes and orientation swaps without migration.
type PlacedComponent struct {
	ID       string        `json:"id"`
	Kind     ComponentKind `json:"type"`
	FieldRef string        `json:"fieldRef,omitempty"`
	Label    string        `json:"label,omitempty"`
	X        float64       `json:"x"`
	Y        float64       `json:"y"`
	Width    float64       `json:"width"`
	Height   float64       `json:"height"`
	Visible  bool          `json:"visible"`
	Z        int           `json:"z"`
	Style    TextStyle     `json:"style"`
	// Text is the free-text content; empty means "use the default text"
	// for eventNameText.
	Text string `json:"text,omitempty"`
}

// HasText reports whether a kind carries text styling.
func (k ComponentKind) HasText() bool {
	switch k {
	case KindBoundField, KindEventName, KindFreeText:
		return true
	}
	return false
}

// defaultSize returns the initial size for a newly added component.
func defaultSize(kind ComponentKind) (width, height float64) {
	switch kind {
	case KindQRCode, KindLogoImage:
		return 25, 25
	default:
		return 60, 12
	}
}

// defaultStyle is applied to new text components and filled in for legacy
// records that predate per-component styling.
func defaultStyle() TextStyle {
	return TextStyle{
		FontSize:   16,
		FontFamily: "sans-serif",
		Align:      AlignCenter,
		Color:      "#000000",
	}
}
