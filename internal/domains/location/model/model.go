package model

import (
	"carrental/shared/model"
)

const (
	TableName  = "locations"
	EntityName = "location"

	FieldID      = "id"
	FieldName    = "name"
	FieldAddress = "address"
)

// Location is a pickup point. Reservations only reference it.
type Location struct {
	ID      int64  `db:"id"      insert:"-"`
	Name    string `db:"name"`
	Address string `db:"address"`
	model.Metadata
}
