//go:build wireinject
// +build wireinject

package di

import (
	"intake/config"
	"intake/infras/hubspot"
	"intake/infras/jwt"
	"intake/infras/kafka"
	"intake/infras/mailer"
	"intake/infras/otel"
	"intake/infras/redis"
	"intake/permissions"
	"intake/shared/cache"
	"intake/transport/http"
	"intake/transport/http/middleware"
	"intake/transport/http/router"

	authService "intake/internal/domains/auth/service"
	consultationService "intake/internal/domains/consultation/service"
	contactRepository "intake/internal/domains/contact/repository"
	contactService "intake/internal/domains/contact/service"
	ticketRepository "intake/internal/domains/ticket/repository"
	ticketService "intake/internal/domains/ticket/service"
	authHandler "intake/internal/handlers/auth"
	intakeHandler "intake/internal/handlers/intake"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	jwt.New,
	hubspot.New,
	kafka.New,
	mailer.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var contactDomain = wire.NewSet(
	contactRepository.New,
	contactService.NewResolver,
	contactService.NewWriter,
)

var ticketDomain = wire.NewSet(
	ticketRepository.New,
	ticketService.New,
)

var domains = wire.NewSet(
	contactDomain,
	ticketDomain,
	consultationService.New,
	authService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	intakeHandler.New,
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
