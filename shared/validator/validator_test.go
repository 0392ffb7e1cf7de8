package validator_test

import (
	"carrental/shared/failure"
	"carrental/shared/validator"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type bookingForm struct {
	CarID     int64  `json:"car_id"     validate:"required,gt=0"`
	StartDate string `json:"start_date" validate:"required,date"`
	EndDate   string `json:"end_date"   validate:"required,date"`
	Notes     string `json:"notes"      validate:"max=20"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        bookingForm
		expectError bool
		message     string
	}{
		{
			name:        "valid struct",
			data:        bookingForm{CarID: 1, StartDate: "2025-03-12", EndDate: "2025-03-14"},
			expectError: false,
		},
		{
			name:        "missing car",
			data:        bookingForm{StartDate: "2025-03-12", EndDate: "2025-03-14"},
			expectError: true,
			message:     "CarID is required",
		},
		{
			name:        "malformed date",
			data:        bookingForm{CarID: 1, StartDate: "12/03/2025", EndDate: "2025-03-14"},
			expectError: true,
			message:     "StartDate must be a date in YYYY-MM-DD format",
		},
		{
			name:        "impossible date",
			data:        bookingForm{CarID: 1, StartDate: "2025-02-30", EndDate: "2025-03-14"},
			expectError: true,
		},
		{
			name:        "notes too long",
			data:        bookingForm{CarID: 1, StartDate: "2025-03-12", EndDate: "2025-03-14", Notes: strings.Repeat("x", 21)},
			expectError: true,
			message:     "Notes must be less than or equal to 20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if !tt.expectError {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			if tt.message != "" {
				assert.Equal(t, tt.message, err.Error())
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{name: "valid date", field: "2025-03-10", tag: "date", expectError: false},
		{name: "invalid date", field: "2025-13-10", tag: "date", expectError: true},
		{name: "valid oneof", field: "active", tag: "oneof=pending active", expectError: false},
		{name: "invalid oneof", field: "lost", tag: "oneof=pending active", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"car_id":1,"start_date":"2025-03-12","end_date":"2025-03-14"}`,
			expectError: false,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"car_id":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data bookingForm
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
