package model

import (
	"carrental/shared/clock"
	"carrental/shared/constant"
	"carrental/shared/failure"
	"fmt"
	"math"
	"time"
)

// DateRange is a half-open range of calendar dates [Start, End).
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange normalizes both ends to calendar dates and requires start < end.
func NewDateRange(start, end time.Time) (DateRange, error) {
	r := DateRange{Start: clock.Date(start), End: clock.Date(end)}
	if !r.Start.Before(r.End) {
		return DateRange{}, failure.New(failure.KindInvalidDateRange, "start date must be before end date") // nolint:wrapcheck
	}

	return r, nil
}

// ParseDateRange parses two YYYY-MM-DD dates into a range.
func ParseDateRange(start, end string) (DateRange, error) {
	startDate, err := clock.ParseDate(start)
	if err != nil {
		return DateRange{}, failure.New(failure.KindInvalidDateRange, fmt.Sprintf("invalid start date %q", start)) // nolint:wrapcheck
	}

	endDate, err := clock.ParseDate(end)
	if err != nil {
		return DateRange{}, failure.New(failure.KindInvalidDateRange, fmt.Sprintf("invalid end date %q", end)) // nolint:wrapcheck
	}

	return NewDateRange(startDate, endDate)
}

// Overlaps reports whether the two ranges share at least one day.
// Back-to-back ranges, where one ends on the day the other starts, do not overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// Days is the number of rental days, rounding partial days up.
func (r DateRange) Days() int {
	return int(math.Ceil(r.End.Sub(r.Start).Hours() / constant.HoursPerDay))
}

func (r DateRange) StartsBefore(day time.Time) bool {
	return r.Start.Before(day)
}

func (r DateRange) String() string {
	return fmt.Sprintf("[%s, %s)", r.Start.Format(constant.DateFormat), r.End.Format(constant.DateFormat))
}

// FirstOverlap returns the earliest reservation in existing that blocks candidate
// under filter. excludeID skips the reservation being transitioned.
func FirstOverlap(existing []Reservation, candidate DateRange, filter StatusFilter, excludeID string) (Reservation, bool) {
	var (
		found  Reservation
		exists bool
	)

	for _, reservation := range existing {
		if reservation.ID == excludeID || !filter.Contains(reservation.Status) {
			continue
		}

		if !reservation.Range().Overlaps(candidate) {
			continue
		}

		if !exists || reservation.StartDate.Before(found.StartDate) {
			found = reservation
			exists = true
		}
	}

	return found, exists
}
