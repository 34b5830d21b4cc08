package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	// metrics are scraped without tracing or access logs
	router.Handle("/metrics", h.metrics.Handler())

	router.Group(func(r chi.Router) {
		r.Use(h.withTraceID, h.withLogging, withGZip)
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}

		r.Get("/api/health", h.health)
		r.Get("/api/version", h.getServerVersion)

		r.Get("/api/external", h.getExternal)
		r.Get("/api/external/*", h.getExternalPath)

		r.Route("/api/users", func(r chi.Router) {
			r.Get("/", h.listUsers)
			r.Post("/", h.createUser)
			r.Get("/{id}", h.getUser)
			r.Put("/{id}", h.updateUser)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
