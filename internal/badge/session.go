package badge

// gestureKind distinguishes the two pointer gestures.
type gestureKind int

const (
	gestureDrag gestureKind = iota
	gestureResize
)

// gesture is the explicit object owned by the session for the duration of
// one pointer interaction. It replaces ad hoc window-level listener
// registration: created on gesture start, released exactly once on every
// exit path (pointer-up, pointer-cancel, window-blur, session close).
type gesture struct {
	kind        gestureKind
	componentID string
	// offset from the component's display-pixel origin to the pointer at
	// gesture start, so the component doesn't jump under the cursor.
	offsetX, offsetY float64
	released         bool
}

// release tears the gesture down. Idempotent; reports whether this call
// performed the release.
func (g *gesture) release() bool {
	if g.released {
		return false
	}
	g.released = true
	return true
}

// Session is one badge-designer editing session: the component registry,
// its history, the zoom state and the in-flight gesture. All methods are
// called from a single goroutine (one websocket read loop, or a test);
// there is no multi-writer concurrency in this design.
type Session struct {
	cfg      CanvasConfig
	settings CanvasSettings
	registry *Registry
	history  *History
	zoom     *ZoomState

	active        *gesture
	pendingDelete string
	typing        bool

	// last observed container box, for auto-fit recomputation when the
	// canvas dimensions change while auto-fit is engaged.
	containerW, containerH float64
}

// NewSession starts an empty session on the given canvas settings.
func NewSession(settings CanvasSettings) *Session {
	return load(settings, nil)
}

// LoadSession starts a session from a migrated template document.
func LoadSession(doc *TemplateDocument) *Session {
	return load(doc.Canvas, doc.Components)
}

func load(settings CanvasSettings, components []PlacedComponent) *Session {
	cfg := settings.Config()
	reg := NewRegistry(cfg)
	if components != nil {
		reg.Restore(NormalizeAll(components, cfg))
	}
	h := NewHistory(HistoryDepth, HistoryDebounce)
	h.Force(reg.Snapshot())
	return &Session{
		cfg:      cfg,
		settings: settings,
		registry: reg,
		history:  h,
		zoom:     NewZoomState(),
	}
}

// Registry exposes the live registry, primarily for tests and projection.
func (s *Session) Registry() *Registry { return s.registry }

// History exposes the undo stack, primarily for tests.
func (s *Session) History() *History { return s.history }

// Zoom exposes the zoom state.
func (s *Session) Zoom() *ZoomState { return s.zoom }

// Config returns the current canvas configuration.
func (s *Session) Config() CanvasConfig { return s.cfg }

// displaySize is the canvas size in display pixels at the current zoom.
// Pointer coordinates from the client are in this space.
func (s *Session) displaySize() (float64, float64) {
	w, h := s.cfg.PixelSize()
	return w * s.zoom.Scale(), h * s.zoom.Scale()
}

func (s *Session) percentFromDisplay(px, py float64) (float64, float64) {
	w, h := s.displaySize()
	if w == 0 || h == 0 {
		return 0, 0
	}
	return finite(px) / w * 100, finite(py) / h * 100
}

// --- Pointer gestures ---

// PointerDown on a component body begins a drag. Ignored while another
// gesture is in flight. The component becomes the selection.
func (s *Session) PointerDown(id string, p Point) {
	if s.active != nil {
		return
	}
	c, ok := s.registry.Get(id)
	if !ok {
		return
	}
	s.registry.Select(id)

	w, h := s.displaySize()
	s.active = &gesture{
		kind:        gestureDrag,
		componentID: id,
		offsetX:     p.X - c.X/100*w,
		offsetY:     p.Y - c.Y/100*h,
	}
}

// PointerMove while dragging recomputes the percentage position from the
// pixel delta and clamps it. Moves while idle are ignored.
func (s *Session) PointerMove(p Point) {
	if s.active == nil || s.active.kind != gestureDrag {
		return
	}
	x, y := s.percentFromDisplay(p.X-s.active.offsetX, p.Y-s.active.offsetY)
	c, ok := s.registry.Get(s.active.componentID)
	if !ok {
		return
	}
	x, y = ClampPosition(x, y, c.Width, c.Height)
	s.registry.Update(s.active.componentID, Patch{X: &x, Y: &y})
}

// PointerUp completes the gesture and records it in history.
func (s *Session) PointerUp() {
	if s.active == nil {
		return
	}
	if s.active.release() {
		s.history.Record(s.registry.Snapshot())
	}
	s.active = nil
}

// PointerCancel tears the gesture down without committing a history entry.
// Fired on browser pointercancel and window blur; the guaranteed-release
// path of the scoped acquisition.
func (s *Session) PointerCancel() {
	if s.active == nil {
		return
	}
	s.active.release()
	s.active = nil
}

// WindowBlur is the same teardown as PointerCancel.
func (s *Session) WindowBlur() { s.PointerCancel() }

// StartResize begins a resize-handle gesture on a component.
func (s *Session) StartResize(id string) {
	if s.active != nil {
		return
	}
	if _, ok := s.registry.Get(id); !ok {
		return
	}
	s.registry.Select(id)
	s.active = &gesture{kind: gestureResize, componentID: id}
}

// ResizeMove applies the current handle position as a new pixel box. The
// size is converted back to percent and clamped; position is left alone.
func (s *Session) ResizeMove(widthPx, heightPx float64) {
	if s.active == nil || s.active.kind != gestureResize {
		return
	}
	w, h := s.percentFromDisplay(widthPx, heightPx)
	s.registry.Update(s.active.componentID, Patch{Width: &w, Height: &h})
}

// ResizeStop completes the resize gesture.
func (s *Session) ResizeStop() { s.PointerUp() }

// --- Selection and palette ---

// Click selects a component; clicking empty canvas (id == "") clears the
// selection.
func (s *Session) Click(id string) {
	if id == "" {
		s.registry.ClearSelection()
		return
	}
	s.registry.Select(id)
}

// AddComponent places a new component from the palette. drop, when given,
// is the drop point in display pixels.
func (s *Session) AddComponent(kind ComponentKind, fieldRef, label string, drop *Point) PlacedComponent {
	var dropPct *Point
	if drop != nil {
		x, y := s.percentFromDisplay(drop.X, drop.Y)
		dropPct = &Point{X: x, Y: y}
	}
	c := s.registry.Add(kind, fieldRef, label, dropPct)
	s.history.Record(s.registry.Snapshot())
	return c
}

// UpdateComponent applies a style-panel edit and records it.
func (s *Session) UpdateComponent(id string, p Patch) {
	s.registry.Update(id, p)
	s.history.Record(s.registry.Snapshot())
}

// --- Delete confirmation ---

// RequestDelete opens the confirmation step for the current selection.
// Delete is never single-step: the confirm gate plus undo is the double
// safety net for the only destructive operation in the editor.
func (s *Session) RequestDelete() bool {
	sel := s.registry.Selected()
	if sel == "" {
		return false
	}
	s.pendingDelete = sel
	return true
}

// PendingDelete returns the id awaiting confirmation, or "".
func (s *Session) PendingDelete() string { return s.pendingDelete }

// ConfirmDelete removes the pending component and records the change.
func (s *Session) ConfirmDelete() {
	if s.pendingDelete == "" {
		return
	}
	s.registry.Remove(s.pendingDelete)
	s.pendingDelete = ""
	s.history.Record(s.registry.Snapshot())
}

// CancelDelete dismisses the confirmation without touching the registry.
func (s *Session) CancelDelete() { s.pendingDelete = "" }

// --- Keyboard dispatch ---

// SetTextInputFocus tells the session whether a form control has keyboard
// focus. Editing shortcuts must not fire while the user is typing.
func (s *Session) SetTextInputFocus(focused bool) { s.typing = focused }

// HandleKey dispatches a keyboard shortcut. Undo, redo and delete are
// suppressed while a text input has focus; Escape always works.
func (s *Session) HandleKey(key string) {
	switch key {
	case "Escape":
		if s.pendingDelete != "" {
			s.CancelDelete()
			return
		}
		s.registry.ClearSelection()
	case "Delete", "Backspace":
		if s.typing {
			return
		}
		s.RequestDelete()
	case "undo":
		if s.typing {
			return
		}
		s.Undo()
	case "redo":
		if s.typing {
			return
		}
		s.Redo()
	}
}

// --- History ---

// Undo restores the previous snapshot into the live registry.
func (s *Session) Undo() bool {
	snap, ok := s.history.Undo()
	if !ok {
		return false
	}
	s.registry.Restore(snap)
	return true
}

// Redo restores the next snapshot.
func (s *Session) Redo() bool {
	snap, ok := s.history.Redo()
	if !ok {
		return false
	}
	s.registry.Restore(snap)
	return true
}

// --- Zoom / fit ---

// SetZoom takes manual control of the display scale.
func (s *Session) SetZoom(v float64) { s.zoom.SetZoom(v) }

// IncrementZoom nudges the scale by delta.
func (s *Session) IncrementZoom(delta float64) { s.zoom.IncrementZoom(delta) }

// Fit engages auto-fit against the given container box.
func (s *Session) Fit(containerW, containerH float64) {
	s.containerW, s.containerH = containerW, containerH
	w, h := s.cfg.PixelSize()
	s.zoom.EngageAutoFit(containerW, containerH, w, h)
}

// ContainerResized updates the fit while auto-fit remains engaged. Manual
// zoom control makes this a no-op.
func (s *Session) ContainerResized(containerW, containerH float64) {
	s.containerW, s.containerH = containerW, containerH
	w, h := s.cfg.PixelSize()
	s.zoom.ContainerResized(containerW, containerH, w, h)
}

// SetCanvas swaps the canvas settings (size preset, custom dimensions,
// orientation, background). Auto-fit, when engaged, recomputes against the
// new physical size.
func (s *Session) SetCanvas(settings CanvasSettings) {
	s.settings = settings
	s.cfg = settings.Config()
	s.registry.cfg = s.cfg
	if s.containerW > 0 {
		w, h := s.cfg.PixelSize()
		s.zoom.ContainerResized(s.containerW, s.containerH, w, h)
	}
}

// SwapOrientation flips the canvas between portrait and landscape. Custom
// dimensions flip directly; preset-derived ones become explicit.
func (s *Session) SwapOrientation() {
	swapped := s.cfg.SwapOrientation()
	s.SetCanvas(CanvasSettings{
		WidthMM:    swapped.WidthMM,
		HeightMM:   swapped.HeightMM,
		Background: s.settings.Background,
	})
}

// --- Persistence boundary ---

// Document emits the full session state for saving: whole-registry
// replacement, no diff format.
func (s *Session) Document() *TemplateDocument {
	return &TemplateDocument{
		Version:    DocumentVersion,
		Canvas:     s.settings,
		Components: s.registry.Snapshot(),
	}
}

// SessionState is the render state pushed to a designer client after each
// message.
type SessionState struct {
	Components    []PlacedComponent `json:"components"`
	Selected      string            `json:"selected,omitempty"`
	PendingDelete string            `json:"pendingDelete,omitempty"`
	Zoom          float64           `json:"zoom"`
	AutoFit       bool              `json:"autoFit"`
	CanUndo       bool              `json:"canUndo"`
	CanRedo       bool              `json:"canRedo"`
}

// State snapshots the session for the client.
func (s *Session) State() SessionState {
	return SessionState{
		Components:    s.registry.Components(),
		Selected:      s.registry.Selected(),
		PendingDelete: s.pendingDelete,
		Zoom:          s.zoom.Scale(),
		AutoFit:       s.zoom.AutoFit(),
		CanUndo:       s.history.CanUndo(),
		CanRedo:       s.history.CanRedo(),
	}
}
