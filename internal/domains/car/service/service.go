package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"carrental/infras/otel"
	"carrental/internal/domains/car/model"
	"carrental/internal/domains/car/model/dto"
	"carrental/internal/domains/car/repository"
	"carrental/shared"
	"carrental/shared/clock"
	"carrental/shared/constant"
	gDto "carrental/shared/dto"
	"carrental/shared/failure"
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// ActiveReservations yields the active rental windows spanning a given day.
type ActiveReservations interface {
	ActiveWindows(ctx context.Context, carIDs []int64, day time.Time) (map[int64][]model.ActiveWindow, error)
}

type Car interface {
	Get(ctx context.Context, id int64) (dto.CarResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCarsResponse, error)
	ReleaseLapsedCars(ctx context.Context) (int64, error)
}

type serviceImpl struct {
	repo         repository.Car
	reservations ActiveReservations
	clock        clock.Clock
	otel         otel.Otel
}

func New(repo repository.Car, reservations ActiveReservations, clk clock.Clock, otel otel.Otel) Car {
	return &serviceImpl{
		repo:         repo,
		reservations: reservations,
		clock:        clk,
		otel:         otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.CarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".car.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	car, found, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("car_id", id).Msg("failed to get car")

		return res, fmt.Errorf("failed to get car: %w", err)
	}

	if !found {
		return res, failure.New(failure.KindCarNotFound, "car not found") // nolint:wrapcheck
	}

	projections, err := s.project(ctx, []model.Car{car})
	if err != nil {
		return res, err
	}

	res.FromModel(car, projections[car.ID])

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCarsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".car.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.Sanitize(model.FieldName, model.SortableFields...)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count cars")

		return res, fmt.Errorf("failed to count cars: %w", err)
	}

	cars, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cars")

		return res, fmt.Errorf("failed to get cars: %w", err)
	}

	projections, err := s.project(ctx, cars)
	if err != nil {
		return res, err
	}

	res.FromModels(cars, projections, total, params)

	return res, nil
}

// ReleaseLapsedCars persists the projection for reserved cars whose rental has lapsed.
func (s *serviceImpl) ReleaseLapsedCars(ctx context.Context) (released int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".car.ReleaseLapsedCars")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	released, err = s.repo.ReleaseLapsed(ctx, s.clock.Today())
	if err != nil {
		log.Error().Err(err).Msg("failed to release lapsed cars")

		return 0, fmt.Errorf("failed to release lapsed cars: %w", err)
	}

	return released, nil
}

func (s *serviceImpl) project(ctx context.Context, cars []model.Car) (map[int64]model.Projection, error) {
	projections := make(map[int64]model.Projection, len(cars))
	if len(cars) == 0 {
		return projections, nil
	}

	ids := make([]int64, 0, len(cars))
	for _, car := range cars {
		ids = append(ids, car.ID)
	}

	today := s.clock.Today()

	windows, err := s.reservations.ActiveWindows(ctx, ids, today)
	if err != nil {
		log.Error().Err(err).Msg("failed to load active reservations")

		return nil, fmt.Errorf("failed to load active reservations: %w", err)
	}

	for _, car := range cars {
		projections[car.ID] = car.Project(windows[car.ID], today)
	}

	return projections, nil
}
