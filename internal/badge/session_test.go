package badge

import (
	"testing"
	"time"
)

func newTestSession() *Session {
	return NewSession(CanvasSettings{Preset: "a7"})
}

func TestAddAtDropPointThenDragWithOvershoot(t *testing.T) {
	s := newTestSession()
	dispW, dispH := s.displaySize()

	// drop on the canvas center
	c := s.AddComponent(KindFreeText, "", "", &Point{X: dispW / 2, Y: dispH / 2})
	if c.Width != 60 || c.Height != 12 {
		t.Fatalf("default text geometry got %v×%v", c.Width, c.Height)
	}
	if c.X != 20 || c.Y != 44 {
		t.Fatalf("drop should center on the pointer, got (%v, %v)", c.X, c.Y)
	}

	// grab the component at its origin and drag far off the right edge
	originX, originY := c.X/100*dispW, c.Y/100*dispH
	s.PointerDown(c.ID, Point{X: originX, Y: originY})
	s.PointerMove(Point{X: originX + 1000*dispW, Y: originY})
	s.PointerUp()

	got, _ := s.Registry().Get(c.ID)
	if got.X != 100-got.Width {
		t.Fatalf("overshoot must clamp to x=%v, got %v", 100-got.Width, got.X)
	}
	if got.Y != 44 {
		t.Fatalf("pure horizontal drag must not move y, got %v", got.Y)
	}
}

func TestPointerDownCapturesGrabOffset(t *testing.T) {
	s := newTestSession()
	c := s.AddComponent(KindFreeText, "", "", nil)
	dispW, dispH := s.displaySize()

	// grab 10px inside the component, move the pointer 50px right
	grab := Point{X: c.X/100*dispW + 10, Y: c.Y/100*dispH + 10}
	s.PointerDown(c.ID, grab)
	s.PointerMove(Point{X: grab.X + 50, Y: grab.Y})
	s.PointerUp()

	got, _ := s.Registry().Get(c.ID)
	wantX := c.X + 50/dispW*100
	if diff := got.X - wantX; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("component must move by the pointer delta, got x=%v want %v", got.X, wantX)
	}
}

func TestDragIgnoredWhileResizing(t *testing.T) {
	s := newTestSession()
	c := s.AddComponent(KindFreeText, "", "", nil)

	s.StartResize(c.ID)
	s.PointerDown(c.ID, Point{X: 0, Y: 0}) // must not start a second gesture
	s.PointerMove(Point{X: 500, Y: 500})   // drag path ignores resize gestures

	got, _ := s.Registry().Get(c.ID)
	if got.X != c.X || got.Y != c.Y {
		t.Fatalf("position must not change during a resize gesture")
	}
	s.ResizeStop()
}

func TestResizeConvertsPixelBoxToPercent(t *testing.T) {
	s := newTestSession()
	c := s.AddComponent(KindQRCode, "", "", nil)
	dispW, dispH := s.displaySize()

	s.StartResize(c.ID)
	s.ResizeMove(dispW/2, dispH/4)
	s.ResizeStop()

	got, _ := s.Registry().Get(c.ID)
	if got.Width != 50 || got.Height != 25 {
		t.Fatalf("resize got %v×%v, want 50×25", got.Width, got.Height)
	}
}

func TestPointerCancelReleasesGestureWithoutCommit(t *testing.T) {
	s := newTestSession()
	c := s.AddComponent(KindFreeText, "", "", nil)
	depth := s.History().Len()

	s.PointerDown(c.ID, Point{X: 0, Y: 0})
	s.PointerCancel()

	if s.active != nil {
		t.Fatalf("cancel must release the gesture")
	}
	if s.History().Len() != depth {
		t.Fatalf("cancelled gesture must not push history")
	}

	// the session accepts a fresh gesture afterwards
	s.PointerDown(c.ID, Point{X: 0, Y: 0})
	if s.active == nil {
		t.Fatalf("session must accept a new gesture after cancel")
	}
	s.PointerUp()
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	s := newTestSession()
	a := s.AddComponent(KindFreeText, "", "", nil)
	b := s.AddComponent(KindQRCode, "", "", nil)

	s.Click(a.ID)
	if !s.RequestDelete() {
		t.Fatalf("delete with a selection should open the confirmation")
	}

	// not confirmed: nothing changes
	if s.Registry().Len() != 2 {
		t.Fatalf("unconfirmed delete must leave the registry unchanged")
	}

	s.ConfirmDelete()
	if _, ok := s.Registry().Get(a.ID); ok {
		t.Fatalf("confirmed delete must remove the component")
	}
	if _, ok := s.Registry().Get(b.ID); !ok {
		t.Fatalf("confirmed delete must remove only the requested component")
	}
}

func TestCancelDeleteKeepsComponent(t *testing.T) {
	s := newTestSession()
	a := s.AddComponent(KindFreeText, "", "", nil)

	s.Click(a.ID)
	s.RequestDelete()
	s.CancelDelete()
	s.ConfirmDelete() // nothing pending; must be a no-op

	if _, ok := s.Registry().Get(a.ID); !ok {
		t.Fatalf("cancelled delete must keep the component")
	}
}

func TestDeleteWithoutSelection(t *testing.T) {
	s := newTestSession()
	if s.RequestDelete() {
		t.Fatalf("delete without a selection must not open a confirmation")
	}
}

func TestShortcutsSuppressedWhileTyping(t *testing.T) {
	s := newTestSession()
	a := s.AddComponent(KindFreeText, "", "", nil)
	s.Click(a.ID)

	s.SetTextInputFocus(true)
	s.HandleKey("Delete")
	if s.PendingDelete() != "" {
		t.Fatalf("delete key must not fire while typing")
	}
	s.HandleKey("undo")
	if s.Registry().Len() != 1 {
		t.Fatalf("undo key must not fire while typing")
	}

	s.SetTextInputFocus(false)
	s.HandleKey("Delete")
	if s.PendingDelete() != a.ID {
		t.Fatalf("delete key should work once typing stops")
	}
}

func TestEscapeClearsSelectionAndDismissesConfirm(t *testing.T) {
	s := newTestSession()
	a := s.AddComponent(KindFreeText, "", "", nil)
	s.Click(a.ID)
	s.RequestDelete()

	s.HandleKey("Escape")
	if s.PendingDelete() != "" {
		t.Fatalf("escape must dismiss the delete confirmation first")
	}
	if s.Registry().Selected() == "" {
		t.Fatalf("dismissing the dialog should not clear the selection yet")
	}

	s.HandleKey("Escape")
	if s.Registry().Selected() != "" {
		t.Fatalf("escape must clear the selection")
	}
}

func TestClickEmptyCanvasClearsSelection(t *testing.T) {
	s := newTestSession()
	a := s.AddComponent(KindFreeText, "", "", nil)
	s.Click(a.ID)
	s.Click("")
	if s.Registry().Selected() != "" {
		t.Fatalf("clicking empty canvas must clear the selection")
	}
}

func TestSessionUndoRestoresRegistry(t *testing.T) {
	s := newTestSession()
	clock := newFakeClock()
	s.History().SetClock(clock.now)

	clock.advance(time.Second)
	a := s.AddComponent(KindFreeText, "", "", nil)

	clock.advance(time.Second)
	s.Click(a.ID)
	s.RequestDelete()
	s.ConfirmDelete()
	if s.Registry().Len() != 0 {
		t.Fatalf("delete should have emptied the registry")
	}

	if !s.Undo() {
		t.Fatalf("undo should be available")
	}
	if s.Registry().Len() != 1 {
		t.Fatalf("undo must restore the deleted component")
	}
	if !s.Redo() {
		t.Fatalf("redo should be available")
	}
	if s.Registry().Len() != 0 {
		t.Fatalf("redo must reapply the delete")
	}
}

func TestSetCanvasRecomputesFitOnlyWhileEngaged(t *testing.T) {
	s := newTestSession()
	s.Fit(800, 600)
	fitScale := s.Zoom().Scale()

	// orientation swap changes the pixel size, fit follows
	s.SetCanvas(CanvasSettings{WidthMM: 105, HeightMM: 74})
	if s.Zoom().Scale() == fitScale {
		t.Fatalf("auto-fit must recompute when the canvas changes shape")
	}

	s.SetZoom(1.0)
	s.SetCanvas(CanvasSettings{WidthMM: 74, HeightMM: 105})
	if s.Zoom().Scale() != 1.0 {
		t.Fatalf("manual zoom must survive canvas changes")
	}
}

func TestSwapOrientationFlipsCanvas(t *testing.T) {
	s := newTestSession()
	w, h := s.Config().WidthMM, s.Config().HeightMM

	s.SwapOrientation()
	if s.Config().WidthMM != h || s.Config().HeightMM != w {
		t.Fatalf("got %v×%v mm, want %v×%v", s.Config().WidthMM, s.Config().HeightMM, h, w)
	}

	// components keep their percent geometry across the flip
	c := s.AddComponent(KindFreeText, "", "", nil)
	s.SwapOrientation()
	got, _ := s.Registry().Get(c.ID)
	if got.X != c.X || got.Width != c.Width {
		t.Fatalf("percent geometry must be orientation independent")
	}
}

func TestLoadSessionSeedsHistoryFloor(t *testing.T) {
	doc := &TemplateDocument{
		Canvas: CanvasSettings{Preset: "a7"},
		Components: []PlacedComponent{
			{ID: "c1", Kind: KindFreeText, X: 10, Y: 10, Width: 60, Height: 12, Visible: true},
		},
	}
	s := LoadSession(doc)

	if s.Registry().Len() != 1 {
		t.Fatalf("loaded components missing")
	}
	if s.Undo() {
		t.Fatalf("freshly loaded session has nothing to undo")
	}
}
