package dto

import (
	"carrental/internal/domains/reservation/model"
	"carrental/shared"
	"carrental/shared/constant"
	gDto "carrental/shared/dto"
)

// CreateReservationRequest carries the dates as sent. They are parsed by the
// service so a bad or missing date is reported as InvalidDateRange.
type CreateReservationRequest struct {
	CarID      int64  `json:"car_id"      validate:"required,gt=0"`
	LocationID int64  `json:"location_id" validate:"required,gt=0"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Notes      string `json:"notes"       validate:"omitempty,max=500"`
}

// TransitionRequest moves a reservation to Status. Notes, when present,
// replace the stored notes. An empty or unrecognised Status is UnknownStatus.
type TransitionRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes"  validate:"omitempty,max=500"`
}

type ReservationResponse struct {
	ID           string `json:"id"`
	CarID        int64  `json:"car_id"`
	CarName      string `json:"car_name,omitempty"`
	PlateNumber  string `json:"plate_number,omitempty"`
	CustomerID   int64  `json:"customer_id"`
	CustomerName string `json:"customer_name,omitempty"`
	LocationID   int64  `json:"location_id"`
	LocationName string `json:"location_name,omitempty"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Status       string `json:"status"`
	DailyRate    string `json:"daily_rate"`
	TotalDays    int    `json:"total_days"`
	Subtotal     string `json:"subtotal"`
	Tax          string `json:"tax"`
	Total        string `json:"total"`
	Deposit      string `json:"deposit"`
	Notes        string `json:"notes"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(m model.Reservation) {
	r.ID = m.ID
	r.CarID = m.CarID
	r.CustomerID = m.CustomerID
	r.LocationID = m.LocationID
	r.StartDate = m.StartDate.Format(constant.DateFormat)
	r.EndDate = m.EndDate.Format(constant.DateFormat)
	r.Status = m.Status.String()
	r.DailyRate = m.DailyRate.StringFixed(2)
	r.TotalDays = m.TotalDays
	r.Subtotal = m.Subtotal.StringFixed(2)
	r.Tax = m.Tax.StringFixed(2)
	r.Total = m.Total.StringFixed(2)
	r.Deposit = m.Deposit.StringFixed(2)
	r.Notes = m.Notes
	r.Metadata.FromModel(m.Metadata)
}

func (r *ReservationResponse) FromDetail(m model.Detail) {
	r.FromModel(m.Reservation)
	r.CarName = m.CarName
	r.PlateNumber = m.PlateNumber
	r.CustomerName = m.CustomerName
	r.LocationName = m.LocationName
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Pagination   gDto.Pagination       `json:"pagination"`
}

func (g *GetReservationsResponse) FromModels(details []model.Detail, total int, params gDto.QueryParams) {
	g.Reservations = make([]ReservationResponse, 0, len(details))

	for _, detail := range details {
		var res ReservationResponse
		res.FromDetail(detail)
		g.Reservations = append(g.Reservations, res)
	}

	g.Pagination = gDto.Pagination{
		Page:      params.Page,
		Limit:     params.Limit,
		Total:     total,
		TotalPage: shared.CalculateTotalPage(total, params.Limit),
	}
}

type AvailabilityResponse struct {
	Available              bool            `json:"available"`
	Reason                 string          `json:"reason,omitempty"`
	ConflictingReservation *model.Conflict `json:"conflicting_reservation,omitempty"`
}

type DateRangeResponse struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Status string `json:"status"`
}

type UnavailableRangesResponse struct {
	CarID  int64               `json:"car_id"`
	Ranges []DateRangeResponse `json:"ranges"`
}

func (u *UnavailableRangesResponse) FromModels(carID int64, reservations []model.Reservation) {
	u.CarID = carID
	u.Ranges = make([]DateRangeResponse, 0, len(reservations))

	for _, r := range reservations {
		u.Ranges = append(u.Ranges, DateRangeResponse{
			Start:  r.StartDate.Format(constant.DateFormat),
			End:    r.EndDate.Format(constant.DateFormat),
			Status: r.Status.String(),
		})
	}
}
