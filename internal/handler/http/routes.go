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
	router.Use(withGZip)

	router.Route("/api/blobs", func(r chi.Router) {
		r.Get("/", h.listBlobs)
		r.Post("/{filename}", h.uploadBlob)
		r.Get("/{filename}", h.getBlob)
		r.Delete("/{filename}", h.deleteBlob)
	})

	return router
}
