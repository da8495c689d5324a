package badge

import (
	"encoding/json"
	"fmt"
)

// DocumentVersion is the current template wire format.
//
//	v0: bare "components" list with no geometry (the pre-canvas format)
//	v1: canvas + components with geometry, flat style fields, "content" text
//	v2: current — nested style object, "text" field, explicit version tag
//
// Loading runs the chain v0→v1→v2 so each format change composes with the
// next instead of one best-effort converter handling every old shape.
const DocumentVersion = 2

// CanvasSettings is the persisted canvas portion of a template document.
// Either a preset key or custom millimeter dimensions; custom wins when
// both are present.
type CanvasSettings struct {
	Preset     string     `json:"preset,omitempty"`
	WidthMM    float64    `json:"widthMm,omitempty"`
	HeightMM   float64    `json:"heightMm,omitempty"`
	Background Background `json:"background"`
}

// Config resolves the settings into a CanvasConfig.
func (s CanvasSettings) Config() CanvasConfig {
	w, h := s.WidthMM, s.HeightMM
	if !(w > 0) || !(h > 0) {
		if p, ok := PresetByKey(s.Preset); ok {
			w, h = p.WidthMM, p.HeightMM
		}
	}
	cfg := NewCanvasConfig(w, h)
	cfg.Background = s.Background
	return cfg
}

// TemplateDocument is the full persisted designer state: canvas settings
// plus the component registry. Saves are whole-document replacement, never
// a diff.
type TemplateDocument struct {
	Version    int               `json:"version"`
	Canvas     CanvasSettings    `json:"canvas"`
	Components []PlacedComponent `json:"components"`
}

// --- Legacy shapes ---

// v0 stored a flat field list with visibility only; the designer laid the
// fields out itself.
type legacyV0Document struct {
	Components []legacyV0Component `json:"components"`
}

type legacyV0Component struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Label   string `json:"label,omitempty"`
	Visible *bool  `json:"visible,omitempty"`
}

// v1 introduced the canvas and percent geometry but kept style fields flat
// on the component and called free text "content".
type legacyV1Document struct {
	Canvas     CanvasSettings      `json:"canvas"`
	Components []legacyV1Component `json:"components"`
}

type legacyV1Component struct {
	ID         string  `json:"id"`
	Type       string  `json:"type"`
	FieldRef   string  `json:"fieldRef,omitempty"`
	Label      string  `json:"label,omitempty"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Visible    *bool   `json:"visible,omitempty"`
	Z          int     `json:"z"`
	FontSize   float64 `json:"fontSize,omitempty"`
	FontFamily string  `json:"fontFamily,omitempty"`
	Bold       bool    `json:"bold,omitempty"`
	Italic     bool    `json:"italic,omitempty"`
	Align      string  `json:"align,omitempty"`
	Color      string  `json:"color,omitempty"`
	Content    string  `json:"content,omitempty"`
}

// LoadDocument parses raw template JSON of any known version, migrates it
// to the current format and normalizes every component. Empty input yields
// an empty current-version document on the default canvas.
func LoadDocument(raw []byte) (*TemplateDocument, error) {
	if len(raw) == 0 {
		return &TemplateDocument{
			Version: DocumentVersion,
			Canvas:  CanvasSettings{Preset: DefaultPreset().Key},
		}, nil
	}

	doc, err := parseVersioned(raw)
	if err != nil {
		return nil, err
	}

	doc.Version = DocumentVersion
	doc.Components = NormalizeAll(doc.Components, doc.Canvas.Config())
	return doc, nil
}

func parseVersioned(raw []byte) (*TemplateDocument, error) {
	var probe struct {
		Version int             `json:"version"`
		Canvas  json.RawMessage `json:"canvas"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("invalid template document: %w", err)
	}

	switch {
	case probe.Version >= DocumentVersion:
		var doc TemplateDocument
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("invalid v2 template document: %w", err)
		}
		return &doc, nil
	case len(probe.Canvas) > 0:
		return migrateV1(raw)
	default:
		return migrateV0(raw)
	}
}

// migrateV0 assigns the default geometry to pre-canvas field lists,
// stacking the fields top to bottom the way the old designer rendered
// them.
func migrateV0(raw []byte) (*TemplateDocument, error) {
	var legacy legacyV0Document
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return nil, fmt.Errorf("invalid v0 template document: %w", err)
	}

	doc := &TemplateDocument{
		Canvas: CanvasSettings{Preset: DefaultPreset().Key},
	}
	cfg := doc.Canvas.Config()
	for i, lc := range legacy.Components {
		kind := ComponentKind(lc.Type)
		w, h := defaultSize(kind)
		x, y := ClampPosition((100-w)/2, float64(i)*(h+2)+4, w, h)
		c := PlacedComponent{
			ID:      lc.ID,
			Kind:    kind,
			Label:   lc.Label,
			X:       x,
			Y:       y,
			Width:   w,
			Height:  h,
			Visible: lc.Visible == nil || *lc.Visible,
			Z:       i,
		}
		doc.Components = append(doc.Components, NormalizeComponent(c, cfg))
	}
	return doc, nil
}

// migrateV1 nests the flat style fields and renames content to text.
func migrateV1(raw []byte) (*TemplateDocument, error) {
	var legacy legacyV1Document
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return nil, fmt.Errorf("invalid v1 template document: %w", err)
	}

	doc := &TemplateDocument{Canvas: legacy.Canvas}
	for _, lc := range legacy.Components {
		doc.Components = append(doc.Components, PlacedComponent{
			ID:       lc.ID,
			Kind:     ComponentKind(lc.Type),
			FieldRef: lc.FieldRef,
			Label:    lc.Label,
			X:        lc.X,
			Y:        lc.Y,
			Width:    lc.Width,
			Height:   lc.Height,
			Visible:  lc.Visible == nil || *lc.Visible,
			Z:        lc.Z,
			Style: TextStyle{
				FontSize:   lc.FontSize,
				FontFamily: lc.FontFamily,
				Bold:       lc.Bold,
				Italic:     lc.Italic,
				Align:      Alignment(lc.Align),
				Color:      lc.Color,
			},
			Text: lc.Content,
		})
	}
	return doc, nil
}

// SaveDocument serializes a document at the current version.
func SaveDocument(doc *TemplateDocument) ([]byte, error) {
	doc.Version = DocumentVersion
	return json.Marshal(doc)
}
