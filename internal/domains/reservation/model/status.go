package model

import (
	"carrental/shared/failure"
	"fmt"
	"slices"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusActive, StatusCancelled},
	StatusActive:    {StatusCompleted, StatusCancelled},
	StatusCompleted: nil,
	StatusCancelled: nil,
}

// ParseStatus rejects anything outside the five known statuses.
func ParseStatus(value string) (Status, error) {
	status := Status(value)
	if _, ok := transitions[status]; !ok {
		return "", failure.New(failure.KindUnknownStatus, fmt.Sprintf("unknown reservation status %q", value)) // nolint:wrapcheck
	}

	return status, nil
}

// CanTransitionTo reports whether the state machine allows s -> next.
// Staying in the same status is not a transition.
func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(transitions[s], next)
}

// Next lists the statuses reachable from s.
func (s Status) Next() []Status {
	return slices.Clone(transitions[s])
}

func (s Status) IsTerminal() bool {
	targets, ok := transitions[s]

	return ok && len(targets) == 0
}

func (s Status) String() string {
	return string(s)
}

// StatusFilter selects which reservations count as blocking in an overlap check.
type StatusFilter []Status

var (
	// StrictFilter blocks only on rentals in progress. Used for booking decisions.
	StrictFilter = StatusFilter{StatusActive}
	// InclusiveFilter also blocks on reservations that may still become active.
	// Used for availability displays.
	InclusiveFilter = StatusFilter{StatusPending, StatusConfirmed, StatusActive}
)

func (f StatusFilter) Contains(status Status) bool {
	return slices.Contains(f, status)
}

func (f StatusFilter) Strings() []string {
	values := make([]string, 0, len(f))
	for _, status := range f {
		values = append(values, string(status))
	}

	return values
}

const (
	FilterModeStrict    = "strict"
	FilterModeInclusive = "inclusive"
)

// FilterFor maps a filter mode name to its status filter. An empty mode is strict.
func FilterFor(mode string) (StatusFilter, error) {
	switch mode {
	case "", FilterModeStrict:
		return StrictFilter, nil
	case FilterModeInclusive:
		return InclusiveFilter, nil
	default:
		return nil, failure.BadRequestFromString(fmt.Sprintf("unknown availability mode %q", mode)) // nolint:wrapcheck
	}
}
