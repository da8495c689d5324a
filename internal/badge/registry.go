package badge

import "github.com/google/uuid"

// Point is a pair of coordinates; the unit depends on context (percent in
// the registry, display pixels in the session).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Patch is a partial component update. Nil fields are left untouched.
type Patch struct {
	X       *float64   `json:"x,omitempty"`
	Y       *float64   `json:"y,omitempty"`
	Width   *float64   `json:"width,omitempty"`
	Height  *float64   `json:"height,omitempty"`
	Visible *bool      `json:"visible,omitempty"`
	Style   *TextStyle `json:"style,omitempty"`
	Text    *string    `json:"text,omitempty"`
	Label   *string    `json:"label,omitempty"`
}

// Registry is the ordered collection of components placed on one canvas.
// Z-order is insertion order: newer components render above older ones.
// There is no bring-to-front operation.
type Registry struct {
	cfg        CanvasConfig
	components []PlacedComponent
	selected   string
}

// NewRegistry returns an empty registry for the given canvas.
func NewRegistry(cfg CanvasConfig) *Registry {
	return &Registry{cfg: cfg}
}

// Config returns the canvas configuration the registry was built with.
func (r *Registry) Config() CanvasConfig { return r.cfg }

// Add places a new component. The default geometry is centered on the drop
// point when given, otherwise on the canvas center, then clamped into
// bounds. The new component becomes the selection.
func (r *Registry) Add(kind ComponentKind, fieldRef, label string, drop *Point) PlacedComponent {
	w, h := defaultSize(kind)
	w, h = r.cfg.ClampSize(w, h)

	cx, cy := 50.0, 50.0
	if drop != nil {
		cx, cy = finite(drop.X), finite(drop.Y)
	}
	x, y := ClampPosition(cx-w/2, cy-h/2, w, h)

	c := PlacedComponent{
		ID:       uuid.NewString(),
		Kind:     kind,
		FieldRef: fieldRef,
		Label:    label,
		X:        x,
		Y:        y,
		Width:    w,
		Height:   h,
		Visible:  true,
		Z:        r.nextZ(),
	}
	if kind.HasText() {
		c.Style = defaultStyle()
	}
	r.components = append(r.components, c)
	r.selected = c.ID
	return c
}

// Update merges a patch into the component with the given id. A missing id
// is a silent no-op: the UI only updates components it just rendered, so a
// stale id means the state is already consistent.
func (r *Registry) Update(id string, p Patch) {
	i := r.index(id)
	if i < 0 {
		return
	}
	c := &r.components[i]
	if p.Width != nil || p.Height != nil {
		w, h := c.Width, c.Height
		if p.Width != nil {
			w = *p.Width
		}
		if p.Height != nil {
			h = *p.Height
		}
		// Position is not re-clamped after a resize. A resize against the
		// far edge can leave x+width > 100; the stored format has always
		// allowed this and print output tolerates it.
		c.Width, c.Height = r.cfg.ClampSize(w, h)
	}
	if p.X != nil || p.Y != nil {
		x, y := c.X, c.Y
		if p.X != nil {
			x = *p.X
		}
		if p.Y != nil {
			y = *p.Y
		}
		c.X, c.Y = ClampPosition(x, y, c.Width, c.Height)
	}
	if p.Visible != nil {
		c.Visible = *p.Visible
	}
	if p.Style != nil {
		c.Style = normalizeStyle(*p.Style)
	}
	if p.Text != nil {
		c.Text = *p.Text
	}
	if p.Label != nil {
		c.Label = *p.Label
	}
}

// Remove deletes the component and clears the selection if it pointed at
// it. Unknown ids are a silent no-op.
func (r *Registry) Remove(id string) {
	i := r.index(id)
	if i < 0 {
		return
	}
	r.components = append(r.components[:i], r.components[i+1:]...)
	if r.selected == id {
		r.selected = ""
	}
}

// Select makes the component the exclusive selection. Selecting an unknown
// id clears the selection.
func (r *Registry) Select(id string) {
	if r.index(id) < 0 {
		r.selected = ""
		return
	}
	r.selected = id
}

// ClearSelection deselects everything.
func (r *Registry) ClearSelection() { r.selected = "" }

// Selected returns the selected component id, or "".
func (r *Registry) Selected() string { return r.selected }

// Get returns a copy of the component with the given id.
func (r *Registry) Get(id string) (PlacedComponent, bool) {
	i := r.index(id)
	if i < 0 {
		return PlacedComponent{}, false
	}
	return r.components[i], true
}

// Len returns the number of placed components.
func (r *Registry) Len() int { return len(r.components) }

// Components returns a copy of the component list in z-order.
func (r *Registry) Components() []PlacedComponent {
	out := make([]PlacedComponent, len(r.components))
	copy(out, r.components)
	return out
}

// Snapshot returns a deep copy of the registry contents for the history
// stack. History owns copies, never references, so later edits cannot
// retroactively alter past snapshots.
func (r *Registry) Snapshot() []PlacedComponent {
	return r.Components()
}

// Restore replaces the registry contents with a snapshot. The selection is
// kept when the selected component still exists, otherwise cleared.
func (r *Registry) Restore(snapshot []PlacedComponent) {
	r.components = make([]PlacedComponent, len(snapshot))
	copy(r.components, snapshot)
	if r.selected != "" && r.index(r.selected) < 0 {
		r.selected = ""
	}
}

func (r *Registry) index(id string) int {
	for i := range r.components {
		if r.components[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *Registry) nextZ() int {
	z := 0
	for i := range r.components {
		if r.components[i].Z >= z {
			z = r.components[i].Z + 1
		}
	}
	return z
}
