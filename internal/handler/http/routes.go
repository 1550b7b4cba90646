package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const sourceIDParam = "sourceID"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Route("/api/sync", func(r chi.Router) {
		r.Post("/{"+sourceIDParam+"}", h.runSync)
		r.Get("/{"+sourceIDParam+"}", h.getSyncStatus)
	})

	router.Get("/api/version/", h.getServerVersion)
	router.Get("/api/version/build", h.getBuildInfo)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
