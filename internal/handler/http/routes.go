// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog-api/internal/metrics"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// maxBodyBytes caps request bodies. Reading past it fails the decoding,
// which answers 400.
const maxBodyBytes = 1 << 20

// Init builds the router of the API.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(h.recoverer)
	router.Use(middleware.RequestSize(maxBodyBytes))
	router.Use(middleware.Compress(5, utils.ContentTypeJSONAPI, "text/plain"))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/healthz", h.healthz)
		r.Get("/version", h.getServerVersion)
		r.Method(http.MethodGet, "/metrics", metrics.Handler(h.gatherer))

		r.Get("/articles", h.listArticles)
		r.Get("/articles/{id}", h.getArticle)
		r.Get("/articles/{id}/comments", h.listComments)
	})

	// credential endpoints
	router.Group(func(r chi.Router) {
		r.Use(h.rateLimited)
		r.Post("/login", h.login)
		r.Post("/users", h.register)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Delete("/logout", h.logout)

		r.Post("/articles", h.createArticle)
		r.Patch("/articles/{id}", h.updateArticle)
		r.Delete("/articles/{id}", h.deleteArticle)

		r.Post("/articles/{id}/comments", h.createComment)
	})

	return router
}
