package lowpass

// TrackingState describes how a filter's coefficients relate to the
// control value they were derived from.
type TrackingState int

const (
	// Uninitialized means no coefficients have been derived since the last reset.
	Uninitialized TrackingState = iota
	// Stale means coefficients exist but their inputs (e.g. sample rate) changed.
	Stale
	// Current means coefficients match the tracked control value.
	Current
)

func (s TrackingState) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Stale:
		return "stale"
	case Current:
		return "current"
	default:
		return "unknown"
	}
}

// Tracking caches the control value behind a filter's coefficients.
type Tracking struct {
	state TrackingState
	value float64
}

// NeedsUpdate reports whether coefficients must be recomputed for value.
func (t *Tracking) NeedsUpdate(value float64) bool {
	return t.state != Current || t.value != value
}

// Mark records value as the source of the current coefficients.
func (t *Tracking) Mark(value float64) {
	t.state = Current
	t.value = value
}

// Invalidate forces the next NeedsUpdate to report true while keeping
// the last tracked value for inspection.
func (t *Tracking) Invalidate() {
	if t.state == Current {
		t.state = Stale
	}
}

// Clear returns the tracking to Uninitialized.
func (t *Tracking) Clear() {
	t.state = Uninitialized
	t.value = 0
}

// State returns the current tracking state.
func (t *Tracking) State() TrackingState { return t.state }

// Value returns the last tracked control value. It is meaningless while
// the state is Uninitialized.
func (t *Tracking) Value() float64 { return t.value }
