package slider

// PointerKind distinguishes mouse from touch input.
type PointerKind int

const (
	PointerMouse PointerKind = iota
	PointerTouch
)

// Pointer identifies the input that owns a drag. ID is the touch ID for
// touches and ignored for the mouse.
type Pointer struct {
	Kind PointerKind
	ID   int
}

// DragSession is the handle for one drag gesture. Move events are only
// accepted while the session is active; End releases it on every exit path
// (pointer up, touch end, touch cancel, teardown) and is safe to repeat.
type DragSession struct {
	slider  *Slider
	pointer Pointer
	active  bool
}

// Begin starts a drag owned by pointer at clientX. A running session is
// ended first.
func (s *Slider) Begin(pointer Pointer, clientX float64) *DragSession {
	if s.session != nil {
		s.session.End()
	}

	d := &DragSession{slider: s, pointer: pointer, active: true}
	s.session = d
	s.Dragging = true
	if pointer.Kind == PointerTouch {
		s.Hovered = true
	}
	if s.OnGrab != nil {
		s.OnGrab()
	}
	s.PositionToValue(clientX)
	return d
}

// Pointer returns the pointer that owns the drag.
func (d *DragSession) Pointer() Pointer { return d.pointer }

// Active reports whether the session still owns the slider.
func (d *DragSession) Active() bool { return d.active }

// Move forwards a pointer move. It returns true when a value was committed.
func (d *DragSession) Move(clientX float64) bool {
	if !d.active {
		return false
	}
	_, committed := d.slider.PositionToValue(clientX)
	return committed
}

// End finishes the drag.
func (d *DragSession) End() {
	if !d.active {
		return
	}
	d.active = false

	s := d.slider
	if s.session == d {
		s.session = nil
	}
	s.Dragging = false
	s.Hovered = false
	s.syncView()
	if s.OnRelease != nil {
		s.OnRelease()
	}
}
