//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"reserva/config"
	"reserva/infras/kafka"
	"reserva/infras/otel"
	"reserva/infras/postgres"
	"reserva/infras/redis"
	reservationRepository "reserva/internal/domains/reservation/repository"
	reservationService "reserva/internal/domains/reservation/service"
	healthHandler "reserva/internal/handlers/health"
	reservationHandler "reserva/internal/handlers/reservation"
	"reserva/shared/cache"
	"reserva/transport/http"
	"reserva/transport/http/middleware"
	"reserva/transport/http/router"
	"reserva/transport/ws"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var eventSinks = wire.NewSet(
	ws.NewHub,
	providePublisher,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	reservationHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		eventSinks,
		reservationDomain,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
