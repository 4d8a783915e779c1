package render

import "math"

// Unset is the sentinel value a tracked field holds before its first paint.
// Comparisons treat it as "always changed / always rollover".
const Unset = -1

// State caches the values a mode renderer last painted to the display, so
// the next update can repaint only what changed. One instance lives inside
// each mode; it is reset on mode entry to force a full repaint and mutated
// only right after a successful paint.
type State struct {
	Hour   int
	Minute int
	Second int

	angles      map[string]float64
	ArcFill     int
	initialized bool
}

// NewState returns a State with every tracked field unset.
func NewState() *State {
	s := &State{}
	s.Reset()
	return s
}

// Reset returns every tracked field to its sentinel, forcing the next
// update cycle through the full-repaint path.
func (s *State) Reset() {
	s.Hour = Unset
	s.Minute = Unset
	s.Second = Unset
	s.ArcFill = Unset
	s.angles = make(map[string]float64)
	s.initialized = false
}

// Initialized reports whether a full paint has happened since the last Reset.
func (s *State) Initialized() bool { return s.initialized }

// MarkInitialized records that the mode has been fully painted.
func (s *State) MarkInitialized() { s.initialized = true }

// Angle returns the last painted angle for the given hand, or NaN when the
// hand has not been painted since the last Reset.
func (s *State) Angle(hand string) float64 {
	if a, ok := s.angles[hand]; ok {
		return a
	}
	return math.NaN()
}

// SetAngle records the angle just painted for the given hand.
func (s *State) SetAngle(hand string, deg float64) {
	s.angles[hand] = deg
}

// AngleChanged reports whether deg differs from the last painted angle for
// the hand. An unset angle always counts as changed.
func (s *State) AngleChanged(hand string, deg float64) bool {
	prev, ok := s.angles[hand]
	return !ok || prev != deg
}

// Rollover reports whether a cyclic field wrapped from its maximum back
// toward zero. The sentinel counts as a rollover so the first paint always
// takes the clear-everything path.
func Rollover(prev, cur int) bool {
	return prev == Unset || cur < prev
}
