package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"boost-engine/internal/core/port"
)

const defaultPageSize = 20

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the boost and listing use cases and a logger for structured
// logging. Routes are registered on a chi.Router for convenient method
// handling.
type Handler struct {
	boosts   port.BoostUseCase
	listings port.ListingUseCase
	logger   *slog.Logger
	router   chi.Router

	pageSize int
}

// NewHandler creates a handler with all routes configured. pageSize is used
// when a list request carries no page_size; zero selects the default.
func NewHandler(boosts port.BoostUseCase, listings port.ListingUseCase, logger *slog.Logger, pageSize int) *Handler {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	h := &Handler{boosts: boosts, listings: listings, logger: logger, pageSize: pageSize}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/boosts", h.handleCreateBoost)
		r.Route("/boosts/{id}", func(r chi.Router) {
			r.Get("/", h.handleGetBoost)
			r.Get("/stats", h.handleBoostStats)
			r.Get("/clicks", h.handleListClicks)
			r.Post("/clicks", h.handleBoostClick)
			r.Post("/pause", h.handlePause)
			r.Post("/resume", h.handleResume)
			r.Post("/cancel", h.handleCancel)
		})
		r.Get("/owners/{ownerID}/boosts", h.handleListOwnerBoosts)
		r.Post("/targets/{targetType}/{targetID}/clicks", h.handleTargetClick)
		r.Get("/listings/{targetType}", h.handleListing)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Debug("http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("took", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
