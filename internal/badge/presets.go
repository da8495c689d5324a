package badge

// DefaultPixelsPerMM is the on-screen scale at 96 DPI (96 / 25.4).
const DefaultPixelsPerMM = 3.7795

// Minimum usable component size in percent of the canvas.
const (
	MinComponentWidthPct  = 5.0
	MinComponentHeightPct = 3.0
)

// SizePreset is a named physical badge size.
type SizePreset struct {
	Key      string  `json:"key"`
	Name     string  `json:"name"`
	WidthMM  float64 `json:"widthMm"`
	HeightMM float64 `json:"heightMm"`
}

// SizePresets lists the badge sizes offered in the designer, portrait
// orientation. Landscape is a width/height swap, not a separate preset.
var SizePresets = []SizePreset{
	{Key: "a6", Name: "A6 (105 × 148 mm)", WidthMM: 105, HeightMM: 148},
	{Key: "a7", Name: "A7 (74 × 105 mm)", WidthMM: 74, HeightMM: 105},
	{Key: "cr80", Name: "CR80 card (54 × 85.6 mm)", WidthMM: 54, HeightMM: 85.6},
	{Key: "b7", Name: "B7 (88 × 125 mm)", WidthMM: 88, HeightMM: 125},
	{Key: "4x6", Name: "4 × 6 in (102 × 152 mm)", WidthMM: 102, HeightMM: 152},
}

// PresetByKey looks up a size preset.
func PresetByKey(key string) (SizePreset, bool) {
	for _, p := range SizePresets {
		if p.Key == key {
			return p, true
		}
	}
	return SizePreset{}, false
}

// DefaultPreset is the size used when nothing else is configured.
func DefaultPreset() SizePreset {
	return SizePresets[1] // a7
}
