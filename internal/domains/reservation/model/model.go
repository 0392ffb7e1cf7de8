package model

import (
	"carrental/shared/model"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID         = "id"
	FieldCarID      = "car_id"
	FieldCustomerID = "customer_id"
	FieldLocationID = "location_id"
	FieldStartDate  = "start_date"
	FieldEndDate    = "end_date"
	FieldStatus     = "status"
	FieldNotes      = "notes"
)

// SortableFields lists the columns a listing may be ordered by.
var SortableFields = []string{FieldStartDate, FieldEndDate, FieldStatus, "created_at"}

// Reservation is a customer's booking of one car for a half-open date range
// [StartDate, EndDate). Dates are calendar dates stored as UTC midnight.
type Reservation struct {
	ID         string          `db:"id"`
	CarID      int64           `db:"car_id"`
	CustomerID int64           `db:"customer_id"`
	LocationID int64           `db:"location_id"`
	StartDate  time.Time       `db:"start_date"`
	EndDate    time.Time       `db:"end_date"`
	DailyRate  decimal.Decimal `db:"daily_rate"`
	TotalDays  int             `db:"total_days"`
	Subtotal   decimal.Decimal `db:"subtotal"`
	Tax        decimal.Decimal `db:"tax"`
	Total      decimal.Decimal `db:"total"`
	Deposit    decimal.Decimal `db:"deposit"`
	Status     Status          `db:"status"`
	Notes      string          `db:"notes"`
	model.Metadata
}

func (r Reservation) Range() DateRange {
	return DateRange{Start: r.StartDate, End: r.EndDate}
}

// StatusChange is what a transition writes to the reservation row.
// Notes replace the stored notes only when set.
type StatusChange struct {
	Status Status
	Notes  *string
	Actor  string
	At     time.Time
}

// Detail is a reservation enriched with the names of what it references.
type Detail struct {
	Reservation
	CustomerName string `db:"customer_name" table:"customers" column:"name"`
	CarName      string `db:"car_name"      table:"cars"      column:"name"`
	PlateNumber  string `db:"plate_number"  table:"cars"`
	LocationName string `db:"location_name" table:"locations" column:"name"`
}

func (Detail) GetJoinQuery() string {
	return "JOIN customers ON customers.id = reservations.customer_id " +
		"JOIN cars ON cars.id = reservations.car_id " +
		"JOIN locations ON locations.id = reservations.location_id"
}
