package badge

import "testing"

func testConfig() CanvasConfig {
	return NewCanvasConfig(74, 105)
}

func TestAddDefaultsAndSelection(t *testing.T) {
	r := NewRegistry(testConfig())

	c := r.Add(KindQRCode, "", "", nil)
	if c.Width != 25 || c.Height != 25 {
		t.Fatalf("qr default size got %v×%v", c.Width, c.Height)
	}
	// centered on the canvas center
	if c.X != 37.5 || c.Y != 37.5 {
		t.Fatalf("qr should center, got (%v, %v)", c.X, c.Y)
	}
	if r.Selected() != c.ID {
		t.Fatalf("new component should be selected")
	}
	if !c.Visible {
		t.Fatalf("new component should be visible")
	}

	txt := r.Add(KindFreeText, "", "", nil)
	if txt.Width != 60 || txt.Height != 12 {
		t.Fatalf("text default size got %v×%v", txt.Width, txt.Height)
	}
	if txt.Style.FontSize != 16 || txt.Style.Align != AlignCenter {
		t.Fatalf("text should carry the default style, got %+v", txt.Style)
	}
	if txt.Z <= c.Z {
		t.Fatalf("later component must stack above earlier one")
	}
}

func TestAddClampsDropPoint(t *testing.T) {
	r := NewRegistry(testConfig())
	c := r.Add(KindFreeText, "", "", &Point{X: 99, Y: 1})
	if c.X+c.Width > 100 || c.Y < 0 {
		t.Fatalf("dropped component escaped the canvas: %+v", c)
	}
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	r := NewRegistry(testConfig())
	r.Add(KindFreeText, "", "", nil)
	before := r.Snapshot()

	x := 10.0
	r.Update("no-such-id", Patch{X: &x})

	after := r.Snapshot()
	if len(before) != len(after) || before[0] != after[0] {
		t.Fatalf("update with a stale id must not change anything")
	}
}

func TestUpdateClampsMove(t *testing.T) {
	r := NewRegistry(testConfig())
	c := r.Add(KindFreeText, "", "", nil)

	x, y := 400.0, -50.0
	r.Update(c.ID, Patch{X: &x, Y: &y})

	got, _ := r.Get(c.ID)
	if got.X != 100-got.Width || got.Y != 0 {
		t.Fatalf("move must clamp to bounds, got (%v, %v)", got.X, got.Y)
	}
}

func TestResizeDoesNotReclampPosition(t *testing.T) {
	r := NewRegistry(testConfig())
	c := r.Add(KindFreeText, "", "", nil)

	x := 100 - c.Width
	r.Update(c.ID, Patch{X: &x})

	w := 90.0
	r.Update(c.ID, Patch{Width: &w})

	got, _ := r.Get(c.ID)
	// Preserved behavior: the box may extend past the far edge after a
	// resize; position is only re-clamped on the next move.
	if got.Width != 90 {
		t.Fatalf("resize should apply, got width %v", got.Width)
	}
	if got.X != x {
		t.Fatalf("resize must not move the component, got x=%v", got.X)
	}
}

func TestRemoveClearsSelection(t *testing.T) {
	r := NewRegistry(testConfig())
	a := r.Add(KindFreeText, "", "", nil)
	b := r.Add(KindQRCode, "", "", nil)

	r.Select(a.ID)
	r.Remove(a.ID)
	if r.Selected() != "" {
		t.Fatalf("removing the selected component must clear selection")
	}
	if _, ok := r.Get(a.ID); ok {
		t.Fatalf("component should be gone")
	}
	if _, ok := r.Get(b.ID); !ok {
		t.Fatalf("other components must survive")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	r := NewRegistry(testConfig())
	c := r.Add(KindFreeText, "", "", nil)

	snap := r.Snapshot()
	x := 5.0
	r.Update(c.ID, Patch{X: &x})

	if snap[0].X == 5.0 {
		t.Fatalf("mutating the registry must not alter a taken snapshot")
	}
}

func TestBoundsInvariantUnderRandomOperations(t *testing.T) {
	r := NewRegistry(testConfig())
	ids := make([]string, 0, 4)
	for i := 0; i < 4; i++ {
		kind := KindFreeText
		if i%2 == 0 {
			kind = KindLogoImage
		}
		ids = append(ids, r.Add(kind, "", "", &Point{X: float64(i * 37), Y: float64(i * 53)}).ID)
	}

	moves := []Point{{-900, 14}, {3, 9999}, {101, 101}, {50, 50}}
	for i, id := range ids {
		x, y := moves[i].X, moves[i].Y
		r.Update(id, Patch{X: &x, Y: &y})
		w, h := moves[(i+1)%4].X, moves[(i+1)%4].Y
		r.Update(id, Patch{Width: &w, Height: &h})
	}

	for _, c := range r.Components() {
		if c.X < 0 || c.Y < 0 {
			t.Fatalf("position went negative: %+v", c)
		}
		if c.Width < MinComponentWidthPct || c.Width > 100 ||
			c.Height < MinComponentHeightPct || c.Height > 100 {
			t.Fatalf("size out of range: %+v", c)
		}
	}
}
