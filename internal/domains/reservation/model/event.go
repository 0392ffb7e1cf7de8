package model

import (
	"carrental/shared/constant"
	"time"
)

const (
	EventCreated       = "reservation.created"
	EventStatusChanged = "reservation.status_changed"
)

// Event is published after a reservation change has been committed.
type Event struct {
	Type           string    `json:"type"`
	ReservationID  string    `json:"reservation_id"`
	CarID          int64     `json:"car_id"`
	CustomerID     int64     `json:"customer_id"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	Status         Status    `json:"status"`
	PreviousStatus Status    `json:"previous_status,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func NewEvent(eventType string, r Reservation, previous Status, at time.Time) Event {
	return Event{
		Type:           eventType,
		ReservationID:  r.ID,
		CarID:          r.CarID,
		CustomerID:     r.CustomerID,
		StartDate:      r.StartDate.Format(constant.DateFormat),
		EndDate:        r.EndDate.Format(constant.DateFormat),
		Status:         r.Status,
		PreviousStatus: previous,
		OccurredAt:     at,
	}
}
