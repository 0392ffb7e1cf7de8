package model

import (
	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

var (
	TaxRate     = decimal.RequireFromString("0.18")
	DepositRate = decimal.RequireFromString("0.20")
)

// Price is the pricing snapshot stored on a reservation at creation time.
type Price struct {
	DailyRate decimal.Decimal
	TotalDays int
	Subtotal  decimal.Decimal
	Tax       decimal.Decimal
	Total     decimal.Decimal
	Deposit   decimal.Decimal
}

// Quote prices days of rental at rate. Every amount is rounded to cents.
func Quote(rate decimal.Decimal, days int) Price {
	subtotal := rate.Mul(decimal.NewFromInt(int64(days))).Round(moneyPlaces)
	tax := subtotal.Mul(TaxRate).Round(moneyPlaces)
	total := subtotal.Add(tax)

	return Price{
		DailyRate: rate,
		TotalDays: days,
		Subtotal:  subtotal,
		Tax:       tax,
		Total:     total,
		Deposit:   total.Mul(DepositRate).Round(moneyPlaces),
	}
}

// Apply copies the price onto the reservation.
func (p Price) Apply(r *Reservation) {
	r.DailyRate = p.DailyRate
	r.TotalDays = p.TotalDays
	r.Subtotal = p.Subtotal
	r.Tax = p.Tax
	r.Total = p.Total
	r.Deposit = p.Deposit
}
