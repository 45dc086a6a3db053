package selection

import (
	"time"

	"hostbook/internal/domain/calendar"
)

// Phase names the shape of the current selection.
type Phase string

const (
	PhaseEmpty     Phase = "EMPTY"
	PhaseStartOnly Phase = "START_ONLY"
	PhaseComplete  Phase = "COMPLETE"
)

// State is the two-tap range selection. It is a plain value: callers store
// it in their own UI state and thread it through TapDay; nothing here is
// shared or mutable between calls. The machine knows nothing about
// availability, so booked, blocked, and past days must be filtered out
// before a tap reaches it.
type State struct {
	Phase Phase
	Start time.Time
	End   time.Time
}

// Empty returns the initial state for a fresh selection session.
func Empty() State {
	return State{Phase: PhaseEmpty}
}

// TapDay advances the selection by one tap:
//   - empty: the tap anchors the start
//   - start only: a later tap completes the range, any other tap re-anchors
//     the start (restart on non-forward tap, not an error)
//   - complete: any tap discards the range and anchors a fresh start
func TapDay(state State, tapped time.Time) State {
	tapped = calendar.StartOfDay(tapped)
	switch state.Phase {
	case PhaseStartOnly:
		if tapped.After(state.Start) {
			return State{Phase: PhaseComplete, Start: state.Start, End: tapped}
		}
		return State{Phase: PhaseStartOnly, Start: tapped}
	case PhaseComplete:
		return State{Phase: PhaseStartOnly, Start: tapped}
	default:
		return State{Phase: PhaseStartOnly, Start: tapped}
	}
}

// Reset abandons the selection, e.g. on modal dismiss.
func Reset() State {
	return Empty()
}

// IsSelected reports whether d is one of the tapped endpoints.
func (s State) IsSelected(d time.Time) bool {
	d = calendar.StartOfDay(d)
	switch s.Phase {
	case PhaseStartOnly:
		return d.Equal(s.Start)
	case PhaseComplete:
		return d.Equal(s.Start) || d.Equal(s.End)
	}
	return false
}

// InRange reports whether d lies strictly between the endpoints of a
// complete selection. Endpoints render as "selected", not "in range".
func (s State) InRange(d time.Time) bool {
	if s.Phase != PhaseComplete {
		return false
	}
	d = calendar.StartOfDay(d)
	return d.After(s.Start) && d.Before(s.End)
}
