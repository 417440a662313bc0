package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/maxgala/aspire-provisioner/internal/config"
	"github.com/maxgala/aspire-provisioner/internal/transport/http/handler"
	appmiddleware "github.com/maxgala/aspire-provisioner/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// NewRouter builds the dev/replay router: a trigger endpoint mirroring the
// Lambda contract plus audit inspection. Not deployed to production; the
// Lambda entrypoint is the production transport.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	var authMw func(http.Handler) http.Handler
	if deps.JWTProvider != nil {
		authMw = appmiddleware.Auth(deps.JWTProvider)
	} else {
		authMw = func(next http.Handler) http.Handler { return next }
	}

	// 5 requests/second, burst of 10 — applied to the replay endpoint.
	triggerRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	healthH := handler.NewHealthHandler()
	triggerH := handler.NewTriggerHandler(deps.Provisioner)
	provisionH := handler.NewProvisionHandler(deps.Provisions)
	userH := handler.NewUserHandler(deps.Users)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health-check/{action}", healthH.Ping)

		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.With(triggerRL.Limit).Post("/triggers/post-confirmation", triggerH.Confirm)
			r.Get("/provisions/{username}", provisionH.ListByUsername)
			r.Get("/users/{username}", userH.Get)
		})
	})

	return r
}
