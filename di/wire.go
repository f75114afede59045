//go:build wireinject
// +build wireinject

package di

import (
	"suitespot/config"
	"suitespot/infras/kafka"
	"suitespot/infras/otel"
	"suitespot/infras/postgres"
	"suitespot/infras/redis"
	"suitespot/shared/cache"
	"suitespot/transport/http"
	"suitespot/transport/http/middleware"
	"suitespot/transport/http/router"

	billingRepository "suitespot/internal/domains/billing/repository"
	billingService "suitespot/internal/domains/billing/service"
	bookingRepository "suitespot/internal/domains/booking/repository"
	bookingService "suitespot/internal/domains/booking/service"
	frontdeskService "suitespot/internal/domains/frontdesk/service"
	guestRepository "suitespot/internal/domains/guest/repository"
	guestService "suitespot/internal/domains/guest/service"
	roomRepository "suitespot/internal/domains/room/repository"
	roomService "suitespot/internal/domains/room/service"
	settingsRepository "suitespot/internal/domains/settings/repository"
	settingsService "suitespot/internal/domains/settings/service"
	taxiRepository "suitespot/internal/domains/taxi/repository"
	taxiService "suitespot/internal/domains/taxi/service"

	billingHandler "suitespot/internal/handlers/billing"
	bookingHandler "suitespot/internal/handlers/booking"
	frontdeskHandler "suitespot/internal/handlers/frontdesk"
	guestHandler "suitespot/internal/handlers/guest"
	roomHandler "suitespot/internal/handlers/room"
	settingsHandler "suitespot/internal/handlers/settings"
	taxiHandler "suitespot/internal/handlers/taxi"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
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

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var billingDomain = wire.NewSet(
	billingRepository.New,
	billingService.New,
)

var settingsDomain = wire.NewSet(
	settingsRepository.New,
	settingsService.New,
)

var taxiDomain = wire.NewSet(
	taxiRepository.New,
	taxiService.New,
)

var frontdeskDomain = wire.NewSet(
	frontdeskService.New,
)

var domains = wire.NewSet(
	roomDomain,
	guestDomain,
	bookingDomain,
	billingDomain,
	settingsDomain,
	taxiDomain,
	frontdeskDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	guestHandler.New,
	bookingHandler.New,
	billingHandler.New,
	settingsHandler.New,
	frontdeskHandler.New,
	taxiHandler.New,
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
