package router

import (
	"intake/internal/handlers/auth"
	"intake/internal/handlers/intake"
	"intake/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth   auth.Handler
	Intake intake.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Session        middleware.Auth
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.Session.Session)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Intake.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, session middleware.Auth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Session:        session,
	}
}
