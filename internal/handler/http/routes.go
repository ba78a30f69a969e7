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
	router.Use(h.withLogging)
	router.Use(h.auth)

	router.Get("/manifest", h.manifest)

	router.Route("/resource", func(r chi.Router) {
		r.Delete("/", h.clear)

		r.Route("/{key}", func(r chi.Router) {
			r.Get("/latest", h.latest)
			r.Get("/", h.listRefs)
			r.Post("/", h.write)
			r.Delete("/", h.deleteKey)
			r.Get("/{ref}", h.resolve)
		})
	})

	return router
}
