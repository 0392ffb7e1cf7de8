package service

import (
	carModel "carrental/internal/domains/car/model"
	locationModel "carrental/internal/domains/location/model"
	"carrental/internal/domains/reservation/model"
	"carrental/internal/domains/reservation/model/dto"
	"carrental/shared"
	"carrental/shared/constant"
	"carrental/shared/failure"
	gModel "carrental/shared/model"
	gRepo "carrental/shared/repository"
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	ReasonDatesConflict   = "car is already rented for the requested dates"
	ReasonCarNotAvailable = "car is not available for booking"
)

// CreateReservation books a car for a customer. The car row is locked for the
// whole check-then-insert so concurrent bookings of one car are serialized.
func (s *serviceImpl) CreateReservation(ctx context.Context, customerID int64, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.CreateReservation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rng, err := s.validateRange(req.StartDate, req.EndDate)
	if err != nil {
		return res, err
	}

	locationExists, err := s.locationRepo.Exist(ctx, shared.FilterByID(req.LocationID, locationModel.FieldID, locationModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if location exists")

		return res, fmt.Errorf("failed to check if location exists: %w", err)
	}

	if !locationExists {
		return res, model.ErrLocationNotFound(req.LocationID)
	}

	now := s.clock.Now()
	actor := strconv.FormatInt(customerID, 10)

	reservation := model.Reservation{
		ID:         uuid.NewString(),
		CarID:      req.CarID,
		CustomerID: customerID,
		LocationID: req.LocationID,
		StartDate:  rng.Start,
		EndDate:    rng.End,
		Status:     model.StatusPending,
		Notes:      req.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}

	err = s.transactor.WithinTx(ctx, txOptions, func(ctx context.Context, tx *sqlx.Tx) error {
		car, found, err := s.carRepo.GetForUpdateTx(ctx, tx, req.CarID)
		if err != nil {
			return fmt.Errorf("failed to lock car: %w", err)
		}

		if !found || !car.Status.IsBookable() {
			return model.ErrCarNotAvailable(req.CarID)
		}

		blocking, found, err := s.repo.FindOverlappingTx(ctx, tx, req.CarID, rng, model.StrictFilter, constant.Empty)
		if err != nil {
			return fmt.Errorf("failed to check overlapping reservations: %w", err)
		}

		if found {
			return model.ErrDatesConflict(blocking)
		}

		model.Quote(car.DailyRate, rng.Days()).Apply(&reservation)

		return s.repo.InsertTx(ctx, tx, reservation) //nolint:wrapcheck
	})

	switch {
	case err == nil:
	case gRepo.HasPqCode(err, constant.PqErrorCodeFkViolation):
		return res, failure.BadRequestFromString("unknown customer, car or location") // nolint:wrapcheck
	case failure.GetKind(err) != failure.KindStorageFailure:
		return res, err
	default:
		log.Error().Err(err).Int64("car_id", req.CarID).Msg("failed to create reservation")

		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	log.Info().Str("reservation_id", reservation.ID).Int64("car_id", reservation.CarID).Msg("reservation created")

	s.publish(ctx, model.NewEvent(model.EventCreated, reservation, constant.Empty, now))

	res.FromModel(reservation)

	return res, nil
}

func (s *serviceImpl) IsOverlapping(ctx context.Context, carID int64, rng model.DateRange, filter model.StatusFilter) (overlapping bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.IsOverlapping")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, overlapping, err = s.repo.FindOverlapping(ctx, carID, rng, filter)
	if err != nil {
		log.Error().Err(err).Int64("car_id", carID).Msg("failed to check overlapping reservations")

		return false, fmt.Errorf("failed to check overlapping reservations: %w", err)
	}

	return overlapping, nil
}

// CheckAvailability answers whether a booking for the range would be accepted
// right now, without creating anything.
func (s *serviceImpl) CheckAvailability(
	ctx context.Context, carID int64, start, end string, filter model.StatusFilter,
) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.CheckAvailability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rng, err := s.validateRange(start, end)
	if err != nil {
		return res, err
	}

	car, err := s.getCar(ctx, carID)
	if err != nil {
		return res, err
	}

	if !car.Status.IsBookable() {
		return dto.AvailabilityResponse{Available: false, Reason: ReasonCarNotAvailable}, nil
	}

	blocking, found, err := s.repo.FindOverlapping(ctx, carID, rng, filter)
	if err != nil {
		log.Error().Err(err).Int64("car_id", carID).Msg("failed to check overlapping reservations")

		return res, fmt.Errorf("failed to check overlapping reservations: %w", err)
	}

	if found {
		conflict := model.ConflictOf(blocking)

		return dto.AvailabilityResponse{Available: false, Reason: ReasonDatesConflict, ConflictingReservation: &conflict}, nil
	}

	return dto.AvailabilityResponse{Available: true}, nil
}

// ListUnavailableRanges lists the current and future ranges a calendar should
// grey out. It blocks on every non-terminal reservation.
func (s *serviceImpl) ListUnavailableRanges(ctx context.Context, carID int64) (res dto.UnavailableRangesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.ListUnavailableRanges")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.getCar(ctx, carID); err != nil {
		return res, err
	}

	reservations, err := s.repo.ListBlocking(ctx, carID, model.InclusiveFilter, s.clock.Today())
	if err != nil {
		log.Error().Err(err).Int64("car_id", carID).Msg("failed to list unavailable ranges")

		return res, fmt.Errorf("failed to list unavailable ranges: %w", err)
	}

	res.FromModels(carID, reservations)

	return res, nil
}

func (s *serviceImpl) validateRange(start, end string) (model.DateRange, error) {
	rng, err := model.ParseDateRange(start, end)
	if err != nil {
		return rng, err
	}

	if rng.StartsBefore(s.clock.Today()) {
		return rng, model.ErrStartInPast()
	}

	return rng, nil
}

func (s *serviceImpl) getCar(ctx context.Context, carID int64) (carModel.Car, error) {
	car, found, err := s.carRepo.Get(ctx, shared.FilterByID(carID, carModel.FieldID, carModel.TableName))
	if err != nil {
		log.Error().Err(err).Int64("car_id", carID).Msg("failed to get car")

		return car, fmt.Errorf("failed to get car: %w", err)
	}

	if !found {
		return car, model.ErrCarNotFound(carID)
	}

	return car, nil
}
