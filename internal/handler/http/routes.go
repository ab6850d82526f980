package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withCORS)
	router.Use(h.withLogging)

	router.Group(func(r chi.Router) {
		r.Get("/api/search", h.search)
		r.Get("/api/shipment/{xid}", h.shipmentDetail)
		r.Get("/api/health", h.health)
		r.Get("/api/version", h.version)
	})

	router.Get("/", h.root)
	router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(h.app.StaticDir))))

	return router
}
