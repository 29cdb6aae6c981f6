// Package slider turns pointer or touch movement over a bounded track into a
// numeric value. Visual feedback (View) is updated immediately, the committed
// value is published through OnChange at most once per throttle window.
package slider

import (
	"math"
	"strconv"
	"time"
)

// DefaultThrottle is the minimum spacing between two committed updates (~60 Hz).
const DefaultThrottle = 16 * time.Millisecond

// Track is the on-screen bounding box of the slider track.
type Track struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether (x, y) lies inside the track.
func (t Track) Contains(x, y float64) bool {
	return x >= t.X && x <= t.X+t.Width && y >= t.Y && y <= t.Y+t.Height
}

// View is the immediate-mode visual state of the slider.
type View struct {
	Percent float64 // 0..100
}

// HandleX returns the left edge of a handle of the given width, centred on
// the current position.
func (v View) HandleX(track Track, handleWidth float64) float64 {
	return track.X + v.Percent/100*track.Width - handleWidth/2
}

// FillWidth returns the width of the filled part of the track.
func (v View) FillWidth(track Track) float64 {
	return v.Percent / 100 * track.Width
}

// Throttle gates events to one per Interval.
type Throttle struct {
	Interval time.Duration
	last     time.Time
}

// Allow reports whether an event at now may pass and, if so, opens a new window.
func (t *Throttle) Allow(now time.Time) bool {
	if !t.last.IsZero() && now.Sub(t.last) < t.Interval {
		return false
	}
	t.last = now
	return true
}

// Slider is a horizontal drag-value control.
//
// min must be strictly less than max; other bounds are a caller error and
// are not checked.
type Slider struct {
	Hovered  bool
	Dragging bool

	// OnChange receives every committed value.
	OnChange func(value float64)
	// OnGrab fires when a drag starts, OnRelease when it ends.
	OnGrab    func()
	OnRelease func()

	min, max float64
	value    float64
	view     View
	track    Track
	throttle Throttle
	now      func() time.Time
	session  *DragSession
}

// Option configures a Slider.
type Option func(*Slider)

// WithClock overrides the clock used by the throttle.
func WithClock(now func() time.Time) Option {
	return func(s *Slider) { s.now = now }
}

// WithThrottle overrides the minimum spacing between committed updates.
func WithThrottle(d time.Duration) Option {
	return func(s *Slider) { s.throttle.Interval = d }
}

// WithOnChange sets the change callback.
func WithOnChange(fn func(float64)) Option {
	return func(s *Slider) { s.OnChange = fn }
}

// WithOnGrab sets the callback fired when a drag starts.
func WithOnGrab(fn func()) Option {
	return func(s *Slider) { s.OnGrab = fn }
}

// WithOnRelease sets the callback fired when a drag ends.
func WithOnRelease(fn func()) Option {
	return func(s *Slider) { s.OnRelease = fn }
}

// New creates a slider over [min, max] starting at initial.
func New(min, max, initial float64, opts ...Option) *Slider {
	s := &Slider{
		min:      min,
		max:      max,
		throttle: Throttle{Interval: DefaultThrottle},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.value = s.clamp(initial)
	s.syncView()
	return s
}

// Min returns the lower bound.
func (s *Slider) Min() float64 { return s.min }

// Max returns the upper bound.
func (s *Slider) Max() float64 { return s.max }

// Value returns the committed value.
func (s *Slider) Value() float64 { return s.value }

// View returns the visual state.
func (s *Slider) View() View { return s.view }

// Track returns the last track set by layout.
func (s *Slider) Track() Track { return s.track }

// SetTrack updates the track bounding box. Called by layout every frame.
func (s *Slider) SetTrack(t Track) { s.track = t }

// Percent returns the committed value as a percentage of the range.
func (s *Slider) Percent() float64 {
	return s.percentOf(s.value)
}

// SetValue syncs the slider with an externally owned value. The view is not
// touched while the user drags, so an echo of our own commit cannot make the
// handle jump.
func (s *Slider) SetValue(v float64) {
	s.value = s.clamp(v)
	if !s.Dragging {
		s.syncView()
	}
}

// SetHovered updates hover state. Leaving the control keeps the hover flag
// while a drag is in progress.
func (s *Slider) SetHovered(hovered bool) {
	if !hovered && s.Dragging {
		return
	}
	s.Hovered = hovered
}

// TooltipVisible reports whether the value bubble should be drawn.
func (s *Slider) TooltipVisible() bool {
	return s.Hovered || s.Dragging
}

// TooltipText renders the committed value with at most one decimal.
func (s *Slider) TooltipText() string {
	return strconv.FormatFloat(math.Round(s.value*10)/10, 'f', -1, 64)
}

// PositionToValue maps a horizontal screen coordinate to a value and commits
// it. It returns false without side effects when the track has no width or
// the throttle window is still open.
func (s *Slider) PositionToValue(clientX float64) (float64, bool) {
	if s.track.Width <= 0 {
		return s.value, false
	}
	if !s.throttle.Allow(s.now()) {
		return s.value, false
	}

	percent := (clientX - s.track.X) / s.track.Width
	percent = math.Max(0, math.Min(1, percent))
	value := s.min + percent*(s.max-s.min)

	// Visual feedback first, then the owned state and the outside world.
	s.view.Percent = percent * 100

	s.value = value
	if s.OnChange != nil {
		s.OnChange(value)
	}
	return value, true
}

// Dispose ends any active drag. Call it when the control goes away.
func (s *Slider) Dispose() {
	if s.session != nil {
		s.session.End()
	}
}

// Session returns the active drag session, or nil.
func (s *Slider) Session() *DragSession {
	if s.session != nil && s.session.Active() {
		return s.session
	}
	return nil
}

func (s *Slider) clamp(v float64) float64 {
	return math.Max(s.min, math.Min(s.max, v))
}

func (s *Slider) percentOf(v float64) float64 {
	span := s.max - s.min
	if span <= 0 {
		return 0
	}
	return math.Max(0, math.Min(100, (v-s.min)/span*100))
}

func (s *Slider) syncView() {
	s.view.Percent = s.percentOf(s.value)
}
