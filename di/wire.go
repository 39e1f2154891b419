//go:build wireinject
// +build wireinject

package di

import (
	"drivent/config"
	"drivent/infras/jwt"
	"drivent/infras/kafka"
	"drivent/infras/otel"
	"drivent/infras/postgres"
	"drivent/infras/redis"
	"drivent/infras/s3"
	"drivent/permissions"
	"drivent/shared/cache"
	"drivent/transport/http"
	"drivent/transport/http/middleware"
	"drivent/transport/http/router"

	bookingRepository "drivent/internal/domains/booking/repository"
	bookingService "drivent/internal/domains/booking/service"
	hotelRepository "drivent/internal/domains/hotel/repository"
	hotelService "drivent/internal/domains/hotel/service"
	roomRepository "drivent/internal/domains/room/repository"
	roomService "drivent/internal/domains/room/service"
	sessionRepository "drivent/internal/domains/session/repository"
	sessionService "drivent/internal/domains/session/service"
	ticketRepository "drivent/internal/domains/ticket/repository"
	ticketService "drivent/internal/domains/ticket/service"

	bookingHandler "drivent/internal/handlers/booking"
	hotelHandler "drivent/internal/handlers/hotel"
	roomHandler "drivent/internal/handlers/room"

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
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var ticketDomain = wire.NewSet(
	ticketRepository.New,
	ticketService.New,
)

var sessionDomain = wire.NewSet(
	sessionRepository.New,
	sessionService.New,
)

var hotelDomain = wire.NewSet(
	hotelRepository.New,
	hotelService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	ticketDomain,
	sessionDomain,
	hotelDomain,
	roomDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	hotelHandler.New,
	roomHandler.New,
	bookingHandler.New,
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
