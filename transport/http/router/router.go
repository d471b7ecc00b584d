package router

import (
	"net/http"
	"tzconv/internal/handlers/conversion"
	"tzconv/internal/handlers/zone"
	"tzconv/transport/http/middleware"
	"tzconv/transport/http/response"
	"tzconv/web"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "tzconv/docs"
)

type DomainHandlers struct {
	Conversion conversion.Handler
	Zone       zone.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(
		r.Middleware.RequestID,
		r.Middleware.Logger,
		r.Middleware.Recover,
		r.Middleware.CORS(),
		r.Middleware.Tracing,
	)

	router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(web.Static))))
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	r.DomainHandlers.Zone.Router(router)
	r.DomainHandlers.Conversion.Router(router)

	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.WithNotFound(w)
	})
}

func New(domainHandlers DomainHandlers, middleware middleware.AppMiddleware) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     middleware,
	}
}
