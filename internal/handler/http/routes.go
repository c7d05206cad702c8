package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// inbound change notifications, HMAC-signed by the remote
	router.Group(func(r chi.Router) {
		r.Use(h.verifySignature)
		r.Post("/webhooks/catalog", h.catalogWebhook)
	})

	// local control and query API
	router.Route("/api", func(r chi.Router) {
		r.Get("/sync/status", h.getSyncStatus)
		r.Post("/sync/full", h.startFullSync)
		r.Post("/sync/incremental", h.startIncrementalSync)

		r.Post("/catalog/changes", h.applyCatalogChange)
		r.Get("/catalog/objects/{type}", h.listCatalogObjects)
		r.Get("/catalog/objects/{type}/{id}", h.getCatalogObject)
		r.Get("/catalog/images/{id}", h.getCatalogImage)
	})

	return router
}
