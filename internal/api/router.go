// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/maintainarr/maintainarr/internal/apperrors"
	"github.com/maintainarr/maintainarr/internal/authz"
	"github.com/maintainarr/maintainarr/internal/metrics"
	"github.com/maintainarr/maintainarr/internal/middleware"
)

// Per-IP request budgets.
const (
	authRequestsPerMinute     = 10
	providerRequestsPerMinute = 120
)

// NewRouter builds the HTTP routes.
func NewRouter(h *Handler, enforcer *authz.Enforcer) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	if h.cfg.Server.TrustProxy {
		r.Use(chimiddleware.RealIP)
	}
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.AccessLog(middleware.DefaultSlowRequest))
	r.Use(middleware.PrometheusMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           86400,
	}))
	r.Use(h.sessions.Load)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.errors.Write(w, r, apperrors.NewNotFound("Route"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		h.errors.Write(w, r, apperrors.New(http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed"))
	})

	r.Get("/api/health", h.Health)

	r.Route("/api/auth", func(r chi.Router) {
		r.Use(h.rateLimit("auth", authRequestsPerMinute))
		r.Post("/plex", h.PlexLogin)
		r.Get("/me", h.Me)
		r.Post("/logout", h.Logout)
	})

	authorize := authz.NewMiddleware(enforcer, h.errors.Write)
	r.Route("/api/providers", func(r chi.Router) {
		r.Use(h.rateLimit("providers", providerRequestsPerMinute))

		r.Get("/metadata", h.ProviderMetadata)
		r.Get("/ratings", h.Ratings)

		r.Group(func(r chi.Router) {
			r.Use(h.requireUser)
			r.Use(authorize.Authorize(authz.ObjectProviders))

			r.Get("/", h.ListProviders)
			r.Post("/", h.CreateProvider)
			r.Get("/{id}", h.GetProvider)
			r.Put("/{id}", h.UpdateProvider)
			r.Delete("/{id}", h.DeleteProvider)
			r.Get("/{id}/metadata", h.StoredProviderMetadata)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}

// rateLimit limits requests per client IP and answers 429 in the error
// envelope.
func (h *Handler) rateLimit(group string, perMinute int) func(http.Handler) http.Handler {
	return httprate.Limit(perMinute, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			metrics.APIRateLimitHits.WithLabelValues(group).Inc()
			h.errors.Write(w, r, apperrors.New(http.StatusTooManyRequests, "TOO_MANY_REQUESTS", "Too many requests"))
		}),
	)
}
