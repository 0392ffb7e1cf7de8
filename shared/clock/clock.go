package clock

import (
	"carrental/shared/timezone"
	"time"
)

// Clock is the single source of "now" for every date rule.
type Clock interface {
	Now() time.Time
	// Today is the current calendar date in the application zone, as UTC midnight.
	Today() time.Time
}

type systemClock struct{}

func New() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return timezone.Now()
}

func (c systemClock) Today() time.Time {
	return Date(c.Now())
}

type fixedClock struct {
	now time.Time
}

// NewFixed returns a clock frozen at t.
func NewFixed(t time.Time) Clock {
	return fixedClock{now: t}
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func (c fixedClock) Today() time.Time {
	return Date(c.now)
}

// Date truncates t to its calendar date, expressed as UTC midnight.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a UTC midnight date.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, value, time.UTC)
}
