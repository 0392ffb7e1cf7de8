package model_test

import (
	"carrental/internal/domains/reservation/model"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		name     string
		rate     string
		days     int
		subtotal string
		tax      string
		total    string
		deposit  string
	}{
		{name: "two days", rate: "1000", days: 2, subtotal: "2000.00", tax: "360.00", total: "2360.00", deposit: "472.00"},
		{name: "single day", rate: "45.50", days: 1, subtotal: "45.50", tax: "8.19", total: "53.69", deposit: "10.74"},
		{name: "rounded tax", rate: "33.33", days: 3, subtotal: "99.99", tax: "18.00", total: "117.99", deposit: "23.60"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price := model.Quote(decimal.RequireFromString(tt.rate), tt.days)

			assert.Equal(t, tt.days, price.TotalDays)
			assert.Equal(t, tt.subtotal, price.Subtotal.StringFixed(2))
			assert.Equal(t, tt.tax, price.Tax.StringFixed(2))
			assert.Equal(t, tt.total, price.Total.StringFixed(2))
			assert.Equal(t, tt.deposit, price.Deposit.StringFixed(2))
			assert.True(t, price.Total.Equal(price.Subtotal.Add(price.Tax)))
		})
	}
}

func TestPrice_Apply(t *testing.T) {
	var r model.Reservation

	model.Quote(decimal.NewFromInt(1000), 2).Apply(&r)

	assert.Equal(t, 2, r.TotalDays)
	assert.Equal(t, "2360.00", r.Total.StringFixed(2))
	assert.Equal(t, "472.00", r.Deposit.StringFixed(2))
}
