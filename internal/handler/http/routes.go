// SPDX-License-Identifier: Apache-2.0

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)

	// every route requires a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/snapshot", h.getSnapshot)
		r.Put("/api/snapshot", h.putSnapshot)

		r.Get("/api/blobs", h.listBlobs)
		r.Post("/api/blobs", h.createBlob)
		r.Get("/api/blobs/{id}", h.readBlob)
	})

	return router
}
