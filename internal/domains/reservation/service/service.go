package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"carrental/config"
	"carrental/infras/kafka"
	"carrental/infras/otel"
	carRepo "carrental/internal/domains/car/repository"
	locationRepo "carrental/internal/domains/location/repository"
	"carrental/internal/domains/reservation/model"
	"carrental/internal/domains/reservation/model/dto"
	"carrental/internal/domains/reservation/repository"
	"carrental/shared"
	"carrental/shared/cache"
	"carrental/shared/clock"
	"carrental/shared/constant"
	gDto "carrental/shared/dto"
	gRepo "carrental/shared/repository"
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetReservation = "reservation:get"
)

var txOptions = &sql.TxOptions{Isolation: sql.LevelRepeatableRead}

type Reservation interface {
	CreateReservation(ctx context.Context, customerID int64, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	TransitionReservation(ctx context.Context, id string, req dto.TransitionRequest, actor string) (dto.ReservationResponse, error)
	IsOverlapping(ctx context.Context, carID int64, rng model.DateRange, filter model.StatusFilter) (bool, error)
	CheckAvailability(ctx context.Context, carID int64, start, end string, filter model.StatusFilter) (dto.AvailabilityResponse, error)
	ListUnavailableRanges(ctx context.Context, carID int64) (dto.UnavailableRangesResponse, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	GetByCustomer(ctx context.Context, customerID int64, params gDto.QueryParams) (dto.GetReservationsResponse, error)
}

type serviceImpl struct {
	repo         repository.Reservation
	carRepo      carRepo.Car
	locationRepo locationRepo.Location
	transactor   gRepo.Transactor
	producer     kafka.Producer
	cache        cache.RedisCache
	clock        clock.Clock
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	repo repository.Reservation,
	carRepo carRepo.Car,
	locationRepo locationRepo.Location,
	transactor gRepo.Transactor,
	producer kafka.Producer,
	cache cache.RedisCache,
	clk clock.Clock,
	cfg *config.Config,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:         repo,
		carRepo:      carRepo,
		locationRepo: locationRepo,
		transactor:   transactor,
		producer:     producer,
		cache:        cache,
		clock:        clk,
		cfg:          cfg,
		otel:         otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = uuid.Parse(id); err != nil {
		return res, model.ErrReservationNotFound(id)
	}

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	detail, found, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("reservation_id", id).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if !found {
		return res, model.ErrReservationNotFound(id)
	}

	res.FromDetail(detail)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save reservation to cache")
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.Sanitize(model.FieldStartDate, model.SortableFields...)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	details, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(details, total, params)

	return res, nil
}

func (s *serviceImpl) GetByCustomer(ctx context.Context, customerID int64, params gDto.QueryParams) (dto.GetReservationsResponse, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldCustomerID, Value: customerID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}

	return s.GetAll(ctx, params, filter)
}

// publish is fire-and-forget after commit. A broker outage never fails a request.
func (s *serviceImpl) publish(ctx context.Context, event model.Event) {
	msg := kafka.Message{
		Key:   strconv.FormatInt(event.CarID, 10),
		Value: event,
	}

	if err := s.producer.SendMessages(ctx, s.cfg.Kafka.Topics.Reservation, msg); err != nil {
		log.Error().Err(err).Str("event", event.Type).Str("reservation_id", event.ReservationID).Msg("failed to publish reservation event")
	}
}
