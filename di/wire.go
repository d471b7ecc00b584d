//go:build wireinject
// +build wireinject

package di

import (
	"tzconv/config"
	"tzconv/infras/otel"
	"tzconv/infras/redis"
	"tzconv/internal/domains/conversion/converter"
	conversionService "tzconv/internal/domains/conversion/service"
	zoneRepository "tzconv/internal/domains/zone/repository"
	zoneService "tzconv/internal/domains/zone/service"
	conversionHandler "tzconv/internal/handlers/conversion"
	zoneHandler "tzconv/internal/handlers/zone"
	"tzconv/shared/cache"
	"tzconv/transport/http"
	"tzconv/transport/http/middleware"
	"tzconv/transport/http/router"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.New,
)

var zoneDomain = wire.NewSet(
	zoneRepository.New,
	zoneService.New,
)

var conversionDomain = wire.NewSet(
	wire.Bind(new(converter.Resolver), new(zoneRepository.Zone)),
	converter.New,
	conversionService.New,
)

var domains = wire.NewSet(
	zoneDomain,
	conversionDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	conversionHandler.New,
	zoneHandler.New,
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
