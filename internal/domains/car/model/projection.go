package model

import (
	"time"
)

// ActiveWindow is the half-open date range [Start, End) of an active reservation.
type ActiveWindow struct {
	Start time.Time
	End   time.Time
}

// Spans reports whether day falls inside the window.
func (w ActiveWindow) Spans(day time.Time) bool {
	return !day.Before(w.Start) && day.Before(w.End)
}

// Projection is the effective status shown to customers.
type Projection struct {
	Status        Status
	AvailableFrom *time.Time
}

// ProjectStatus derives the effective car status from the stored one and the
// active reservations of the car. It never writes.
//
//   - busy, maintenance and sold are returned as stored
//   - available with an active reservation spanning today becomes reserved until its end
//   - reserved with no active reservation spanning today becomes available as of today
func ProjectStatus(stored Status, availableFrom *time.Time, active []ActiveWindow, today time.Time) Projection {
	if stored.IsStaffControlled() {
		return Projection{Status: stored, AvailableFrom: availableFrom}
	}

	spanning, ok := latestSpanning(active, today)

	switch {
	case stored == StatusAvailable && ok:
		end := spanning.End

		return Projection{Status: StatusReserved, AvailableFrom: &end}
	case stored == StatusReserved && !ok:
		return Projection{Status: StatusAvailable, AvailableFrom: &today}
	default:
		return Projection{Status: stored, AvailableFrom: availableFrom}
	}
}

func latestSpanning(active []ActiveWindow, today time.Time) (ActiveWindow, bool) {
	var (
		found  ActiveWindow
		exists bool
	)

	for _, window := range active {
		if !window.Spans(today) {
			continue
		}

		if !exists || window.End.After(found.End) {
			found = window
			exists = true
		}
	}

	return found, exists
}
