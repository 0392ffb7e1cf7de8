package dto

import (
	"carrental/internal/domains/car/model"
	"carrental/shared"
	"carrental/shared/constant"
	gDto "carrental/shared/dto"
	"time"
)

type CarResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	PlateNumber   string `json:"plate_number"`
	Status        string `json:"status"`
	StoredStatus  string `json:"stored_status"`
	DailyRate     string `json:"daily_rate"`
	AvailableFrom string `json:"available_from,omitempty"`
	gDto.Metadata
}

// FromModel fills the response from the stored car and its projected status.
func (c *CarResponse) FromModel(car model.Car, projection model.Projection) {
	c.ID = car.ID
	c.Name = car.Name
	c.PlateNumber = car.PlateNumber
	c.Status = projection.Status.String()
	c.StoredStatus = car.Status.String()
	c.DailyRate = car.DailyRate.StringFixed(2)
	c.AvailableFrom = formatDate(projection.AvailableFrom)
	c.Metadata.FromModel(car.Metadata)
}

type GetCarsResponse struct {
	Cars       []CarResponse   `json:"cars"`
	Pagination gDto.Pagination `json:"pagination"`
}

func (g *GetCarsResponse) FromModels(cars []model.Car, projections map[int64]model.Projection, total int, params gDto.QueryParams) {
	g.Cars = make([]CarResponse, 0, len(cars))

	for _, car := range cars {
		var res CarResponse
		res.FromModel(car, projections[car.ID])
		g.Cars = append(g.Cars, res)
	}

	g.Pagination = gDto.Pagination{
		Page:      params.Page,
		Limit:     params.Limit,
		Total:     total,
		TotalPage: shared.CalculateTotalPage(total, params.Limit),
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}

	return t.Format(constant.DateFormat)
}
