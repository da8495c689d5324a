package badge

import "testing"

func TestLoadEmptyDocument(t *testing.T) {
	doc, err := LoadDocument(nil)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Version != DocumentVersion {
		t.Fatalf("got version %d", doc.Version)
	}
	if doc.Canvas.Preset != DefaultPreset().Key {
		t.Fatalf("empty document should use the default preset")
	}
	if len(doc.Components) != 0 {
		t.Fatalf("empty document should have no components")
	}
}

func TestWhiteTextColorNormalizedToBlack(t *testing.T) {
	raw := []byte(`{
		"version": 2,
		"canvas": {"preset": "a7", "background": {"color": "#f4f4f4"}},
		"components": [
			{"id": "c1", "type": "freeText", "x": 10, "y": 10, "width": 60, "height": 12,
			 "visible": true, "style": {"fontSize": 14, "color": "#ffffff"}}
		]
	}`)
	doc, err := LoadDocument(raw)
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.Components[0].Style.Color; got != "#000000" {
		t.Fatalf("white text must normalize to black, got %q", got)
	}
}

func TestLegacyRecordGetsStyleDefaults(t *testing.T) {
	raw := []byte(`{
		"version": 2,
		"canvas": {"preset": "a7", "background": {}},
		"components": [
			{"id": "c1", "type": "boundField", "fieldRef": "fullName",
			 "x": 5, "y": 5, "width": 60, "height": 12, "visible": true}
		]
	}`)
	doc, err := LoadDocument(raw)
	if err != nil {
		t.Fatal(err)
	}
	s := doc.Components[0].Style
	if s.FontSize != 16 || s.FontFamily != "sans-serif" || s.Align != AlignCenter || s.Color != "#000000" {
		t.Fatalf("missing style fields must fill with defaults, got %+v", s)
	}
}

func TestMigrateV0AssignsGeometry(t *testing.T) {
	raw := []byte(`{
		"components": [
			{"id": "f1", "type": "boundField", "label": "Name"},
			{"id": "f2", "type": "qrCode", "visible": false}
		]
	}`)
	doc, err := LoadDocument(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Components) != 2 {
		t.Fatalf("got %d components", len(doc.Components))
	}

	first := doc.Components[0]
	if first.Width != 60 || first.Height != 12 {
		t.Fatalf("v0 text field should get the default size, got %v×%v", first.Width, first.Height)
	}
	if !first.Visible {
		t.Fatalf("v0 record without a visible flag defaults to visible")
	}
	if first.X < 0 || first.X+first.Width > 100 {
		t.Fatalf("assigned geometry out of bounds: %+v", first)
	}

	second := doc.Components[1]
	if second.Visible {
		t.Fatalf("explicit visible=false must survive migration")
	}
	if second.Z <= first.Z {
		t.Fatalf("v0 order must become z-order")
	}
}

func TestMigrateV1NestsStyleAndRenamesContent(t *testing.T) {
	raw := []byte(`{
		"canvas": {"preset": "cr80", "background": {"color": "#ffffff"}},
		"components": [
			{"id": "c1", "type": "freeText", "x": 10, "y": 10, "width": 40, "height": 10,
			 "fontSize": 20, "fontFamily": "serif", "bold": true, "align": "right",
			 "color": "#ff0000", "content": "VIP"}
		]
	}`)
	doc, err := LoadDocument(raw)
	if err != nil {
		t.Fatal(err)
	}

	c := doc.Components[0]
	if c.Text != "VIP" {
		t.Fatalf("content must migrate to text, got %q", c.Text)
	}
	if c.Style.FontSize != 20 || !c.Style.Bold || c.Style.Align != AlignRight || c.Style.Color != "#ff0000" {
		t.Fatalf("flat style fields must nest, got %+v", c.Style)
	}
	if doc.Canvas.Preset != "cr80" {
		t.Fatalf("canvas settings must carry over")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	orig := &TemplateDocument{
		Canvas: CanvasSettings{Preset: "a6", Background: Background{Color: "#e0e0ff"}},
		Components: []PlacedComponent{
			{ID: "c1", Kind: KindEventName, X: 20, Y: 8, Width: 60, Height: 12, Visible: true,
				Style: TextStyle{FontSize: 22, FontFamily: "serif", Align: AlignCenter, Color: "#202020"}},
		},
	}

	raw, err := SaveDocument(orig)
	if err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadDocument(raw)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Components[0] != orig.Components[0] {
		t.Fatalf("round trip changed the component:\n got %+v\nwant %+v", loaded.Components[0], orig.Components[0])
	}
}
