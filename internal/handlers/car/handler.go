package car

import (
	"carrental/infras/otel"
	"carrental/internal/domains/car/model"
	"carrental/internal/domains/car/service"
	reservationModel "carrental/internal/domains/reservation/model"
	reservationService "carrental/internal/domains/reservation/service"
	"carrental/shared/constant"
	gDto "carrental/shared/dto"
	"carrental/shared/failure"
	"carrental/transport/http/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service     service.Car
	reservation reservationService.Reservation
	otel        otel.Otel
}

func New(service service.Car, reservation reservationService.Reservation, otel otel.Otel) Handler {
	return Handler{
		service:     service,
		reservation: reservation,
		otel:        otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/cars", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetCars)
		routerGroup.Get("/{id}", handler.GetCarByID)
		routerGroup.Get("/{id}/availability", handler.CheckAvailability)
		routerGroup.Get("/{id}/unavailable-ranges", handler.GetUnavailableRanges)
	})
}

// GetCars lists the fleet with the status customers should see.
// @Summary Get all cars
// @Description Retrieve cars with their projected status, optional filtering and pagination.
// @Tags Car
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param status query string false "Filter by stored status"
// @Success 200 {object} response.Data[dto.GetCarsResponse] "List of cars"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cars [get]
func (handler *Handler) GetCars(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCars")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if name := r.URL.Query().Get(constant.RequestParamName); name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	if status := r.URL.Query().Get(constant.RequestParamStatus); status != "" {
		if !model.Status(status).IsValid() {
			response.WithError(w, failure.BadRequestFromString("unknown car status "+strconv.Quote(status)))

			return
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	cars, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cars")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cars retrieved successfully")

	response.WithJSON(w, http.StatusOK, cars)
}

// GetCarByID retrieves a car by its ID.
// @Summary Get a car by ID
// @Description Retrieve a car with its projected status.
// @Tags Car
// @Accept json
// @Produce json
// @Param id path integer true "Car ID"
// @Success 200 {object} response.Data[dto.CarResponse] "Car details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cars/{id} [get]
func (handler *Handler) GetCarByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCarByID")
	defer scope.End()

	id, err := carID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	car, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("car_id", id).Msg("failed to get car by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, car)
}

// CheckAvailability reports whether a booking for the given dates would be accepted.
// @Summary Check car availability
// @Description Check a date range against the car's reservations. mode=strict (default) blocks on active rentals only, mode=inclusive also on pending and confirmed ones.
// @Tags Car
// @Accept json
// @Produce json
// @Param id path integer true "Car ID"
// @Param start query string true "Start date (YYYY-MM-DD)"
// @Param end query string true "End date (YYYY-MM-DD), exclusive"
// @Param mode query string false "strict or inclusive"
// @Success 200 {object} response.Data[reservationDto.AvailabilityResponse] "Availability"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cars/{id}/availability [get]
func (handler *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	id, err := carID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	query := r.URL.Query()

	filter, err := reservationModel.FilterFor(query.Get(constant.RequestParamMode))
	if err != nil {
		response.WithError(w, err)

		return
	}

	availability, err := handler.reservation.CheckAvailability(ctx, id, query.Get(constant.RequestParamStart), query.Get(constant.RequestParamEnd), filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("car_id", id).Msg("failed to check availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, availability)
}

// GetUnavailableRanges lists the ranges a booking calendar should grey out.
// @Summary Get unavailable ranges
// @Description List current and future date ranges held by pending, confirmed or active reservations.
// @Tags Car
// @Accept json
// @Produce json
// @Param id path integer true "Car ID"
// @Success 200 {object} response.Data[reservationDto.UnavailableRangesResponse] "Unavailable ranges"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cars/{id}/unavailable-ranges [get]
func (handler *Handler) GetUnavailableRanges(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUnavailableRanges")
	defer scope.End()

	id, err := carID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	ranges, err := handler.reservation.ListUnavailableRanges(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("car_id", id).Msg("failed to list unavailable ranges")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, ranges)
}

// carID reads the path id. Anything that is not a positive integer names no car.
func carID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, constant.RequestParamID)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.New(failure.KindCarNotFound, "car "+strconv.Quote(raw)+" not found") // nolint:wrapcheck
	}

	return id, nil
}
