package httpadapter

import (
	"expvar"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"stellar-ads/internal/core/port"
)

// Options tune the router. Zero values fall back to permissive defaults
// suitable for an embeddable widget.
type Options struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: it decodes requests, calls the AdUseCase and renders JSON.
type Handler struct {
	svc    port.AdUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured on a new
// chi.Router.
func NewHandler(svc port.AdUseCase, logger *slog.Logger, opts Options) *Handler {
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"https://*", "http://*"}
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 30 * time.Second
	}

	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middleware.Timeout(opts.RequestTimeout))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.handleHealth)
		r.Get("/debug/vars", expvar.Handler().ServeHTTP)

		r.Get("/ad", h.handleAdRequest)
		r.Get("/click", h.handleAdClick)
		r.Post("/impression", h.handleImpression)
		r.Get("/rewards", h.handleRewardStatus)
		r.Get("/stats/overview", h.handleStatsOverview)
		r.Get("/settlements/{memo}", h.handleSettlement)

		r.Route("/sites", func(r chi.Router) {
			r.Get("/", h.handleListSites)
			r.Post("/", h.handleCreateSite)
			r.Post("/validate", h.handleValidateSite)
			r.Patch("/{siteID}", h.handleUpdateSite)
		})
		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.handleListCampaigns)
			r.Post("/", h.handleCreateCampaign)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.write(w, http.StatusOK, map[string]string{"status": "ok"})
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
			slog.Duration("elapsed", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
