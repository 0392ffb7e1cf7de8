package model

import (
	"carrental/shared/model"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "cars"
	EntityName = "car"

	FieldID            = "id"
	FieldName          = "name"
	FieldPlateNumber   = "plate_number"
	FieldStatus        = "status"
	FieldDailyRate     = "daily_rate"
	FieldAvailableFrom = "available_from"
)

// SortableFields lists the columns a listing may be ordered by.
var SortableFields = []string{FieldName, FieldDailyRate, FieldAvailableFrom, "created_at"}

type Car struct {
	ID            int64           `db:"id"             insert:"-"`
	Name          string          `db:"name"`
	PlateNumber   string          `db:"plate_number"`
	Status        Status          `db:"status"`
	DailyRate     decimal.Decimal `db:"daily_rate"`
	AvailableFrom *time.Time      `db:"available_from"`
	model.Metadata
}

// Project returns the customer-facing status of the car.
func (c Car) Project(active []ActiveWindow, today time.Time) Projection {
	return ProjectStatus(c.Status, c.AvailableFrom, active, today)
}
