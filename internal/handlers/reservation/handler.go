package reservation

import (
	"carrental/infras/otel"
	"carrental/internal/domains/reservation/model"
	"carrental/internal/domains/reservation/model/dto"
	"carrental/internal/domains/reservation/service"
	"carrental/shared/constant"
	gDto "carrental/shared/dto"
	"carrental/shared/failure"
	"carrental/shared/validator"
	"carrental/transport/http/middleware"
	"carrental/transport/http/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Get("/", handler.GetReservations)
		routerGroup.Get("/mine", handler.GetMyReservations)
		routerGroup.Get("/{id}", handler.GetReservationByID)
		routerGroup.Patch("/{id}/status", handler.TransitionReservation)
	})
}

// CreateReservation books a car for the authenticated customer.
// @Summary Create a reservation
// @Description Book a car for a date range. The reservation starts out pending.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Reservation details"
// @Success 201 {object} response.Data[dto.ReservationResponse] "Reservation created"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations [post]
// @Security BearerAuth
func (handler *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	customerID, err := customerOf(middleware.CurrentUser(ctx))
	if err != nil {
		response.WithError(w, err)

		return
	}

	var req dto.CreateReservationRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	reservation, err := handler.service.CreateReservation(ctx, customerID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("car_id", req.CarID).Msg("failed to create reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation created successfully by customer " + strconv.FormatInt(customerID, 10))

	response.WithJSON(w, http.StatusCreated, reservation)
}

// GetReservations lists every reservation for staff.
// @Summary Get all reservations
// @Description Retrieve reservations with optional status and car filters.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param car_id query integer false "Filter by car"
// @Success 200 {object} response.Data[dto.GetReservationsResponse] "List of reservations"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations [get]
// @Security BearerAuth
func (handler *Handler) GetReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if raw := r.URL.Query().Get(constant.RequestParamStatus); raw != "" {
		status, err := model.ParseStatus(raw)
		if err != nil {
			response.WithError(w, err)

			return
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status.String(),
			Table:    model.TableName,
		})
	}

	if raw := r.URL.Query().Get(constant.RequestParamCarID); raw != "" {
		carID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.WithError(w, failure.BadRequestFromString("car_id must be an integer"))

			return
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCarID,
			Operator: gDto.FilterOperatorEq,
			Value:    carID,
			Table:    model.TableName,
		})
	}

	reservations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, reservations)
}

// GetMyReservations lists the authenticated customer's reservations.
// @Summary Get my reservations
// @Tags Reservation
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetReservationsResponse] "List of reservations"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/mine [get]
// @Security BearerAuth
func (handler *Handler) GetMyReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyReservations")
	defer scope.End()

	customerID, err := customerOf(middleware.CurrentUser(ctx))
	if err != nil {
		response.WithError(w, err)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	reservations, err := handler.service.GetByCustomer(ctx, customerID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("customer_id", customerID).Msg("failed to get customer reservations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, reservations)
}

// GetReservationByID retrieves a reservation. Customers only see their own.
// @Summary Get a reservation by ID
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ReservationResponse] "Reservation details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetReservationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	reservation, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("reservation_id", id).Msg("failed to get reservation by ID")

		response.WithError(w, err)

		return
	}

	user := middleware.CurrentUser(ctx)
	if !user.IsStaff() && strconv.FormatInt(reservation.CustomerID, 10) != user.ID {
		response.WithError(w, model.ErrReservationNotFound(id))

		return
	}

	response.WithJSON(w, http.StatusOK, reservation)
}

// TransitionReservation moves a reservation through its lifecycle.
// @Summary Change reservation status
// @Description Move a reservation to a new status. Car status follows the reservation.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body dto.TransitionRequest true "Target status"
// @Success 200 {object} response.Data[dto.ReservationResponse] "Updated reservation"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) TransitionReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TransitionReservation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.TransitionRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	actor := middleware.CurrentUser(ctx).ID

	reservation, err := handler.service.TransitionReservation(ctx, id, req, actor)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("reservation_id", id).Str("status", req.Status).Msg("failed to transition reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation moved to " + reservation.Status + " by " + actor)

	response.WithJSON(w, http.StatusOK, reservation)
}

func customerOf(user middleware.User) (int64, error) {
	id, err := strconv.ParseInt(user.ID, 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.Unauthorized("Invalid token claims") // nolint:wrapcheck
	}

	return id, nil
}
