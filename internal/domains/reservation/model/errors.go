package model

import (
	"carrental/shared/constant"
	"carrental/shared/failure"
	"fmt"
)

// Conflict describes the reservation that blocked a request.
// It carries no customer details.
type Conflict struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Status Status `json:"status"`
}

func ConflictOf(r Reservation) Conflict {
	return Conflict{
		Start:  r.StartDate.Format(constant.DateFormat),
		End:    r.EndDate.Format(constant.DateFormat),
		Status: r.Status,
	}
}

func ErrDatesConflict(blocking Reservation) error {
	return failure.WithDetail(failure.KindDatesConflict, "car is already rented for the requested dates", ConflictOf(blocking)) // nolint:wrapcheck
}

func ErrStartInPast() error {
	return failure.New(failure.KindStartInPast, "start date must not be in the past") // nolint:wrapcheck
}

func ErrCarNotAvailable(carID int64) error {
	return failure.New(failure.KindCarNotAvailable, fmt.Sprintf("car %d is not available for booking", carID)) // nolint:wrapcheck
}

func ErrCarNotFound(carID int64) error {
	return failure.New(failure.KindCarNotFound, fmt.Sprintf("car %d not found", carID)) // nolint:wrapcheck
}

func ErrLocationNotFound(locationID int64) error {
	return failure.New(failure.KindLocationNotFound, fmt.Sprintf("pickup location %d not found", locationID)) // nolint:wrapcheck
}

func ErrReservationNotFound(id string) error {
	return failure.New(failure.KindReservationNotFound, fmt.Sprintf("reservation %s not found", id)) // nolint:wrapcheck
}

func ErrInvalidTransition(from, to Status) error {
	return failure.WithDetail( // nolint:wrapcheck
		failure.KindInvalidTransition,
		fmt.Sprintf("cannot move reservation from %s to %s", from, to),
		map[string]any{"from": from, "to": to, "allowed": from.Next()},
	)
}

const ReasonOverlappingActive = "another active reservation overlaps these dates"
