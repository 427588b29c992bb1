package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/uadetect/pkg/httpserver"
	"github.com/dmitrymomot/uadetect/pkg/logger"
	"github.com/dmitrymomot/uadetect/pkg/useragent"
)

// NewRouter mounts the classification and probe routes. checks run on every
// readiness probe; pass Detector.Ping to cover the shared cache.
func NewRouter(d *useragent.Detector, log *slog.Logger, checks ...func(context.Context) error) http.Handler {
	if log == nil {
		log = logger.Discard()
	}
	h := &handlers{detector: d, logger: log}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log, checks...))

	r.Route("/v1", func(r chi.Router) {
		r.With(useragent.Middleware(d)).Get("/me", h.self)
		r.Get("/parse", h.parseQuery)
		r.Post("/parse", h.parseBody)
	})
	return r
}
