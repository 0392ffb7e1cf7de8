//go:build wireinject
// +build wireinject

package di

import (
	"carrental/config"
	"carrental/infras/jwt"
	"carrental/infras/kafka"
	"carrental/infras/otel"
	"carrental/infras/postgres"
	"carrental/infras/redis"
	"carrental/infras/scheduler"
	"carrental/permissions"
	"carrental/shared/cache"
	"carrental/shared/clock"
	gRepository "carrental/shared/repository"
	"carrental/transport/http"
	"carrental/transport/http/middleware"
	"carrental/transport/http/router"

	carRepository "carrental/internal/domains/car/repository"
	carService "carrental/internal/domains/car/service"
	locationRepository "carrental/internal/domains/location/repository"
	reservationRepository "carrental/internal/domains/reservation/repository"
	reservationService "carrental/internal/domains/reservation/service"
	carHandler "carrental/internal/handlers/car"
	reservationHandler "carrental/internal/handlers/reservation"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	scheduler.New,
	wire.Bind(new(scheduler.CarSweeper), new(carService.Car)),
	wire.Bind(new(http.Jobs), new(*scheduler.Scheduler)),
	provideClosers,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	clock.New,
	gRepository.NewTransactor,
)

var carDomain = wire.NewSet(
	carRepository.New,
	carService.New,
	wire.Bind(new(carService.ActiveReservations), new(reservationRepository.Reservation)),
)

var locationDomain = wire.NewSet(
	locationRepository.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var domains = wire.NewSet(
	carDomain,
	locationDomain,
	reservationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	carHandler.New,
	reservationHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
