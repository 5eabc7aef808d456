package http

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/visastat/frontend"
	"github.com/secmon-lab/visastat/pkg/domain/interfaces"
	"github.com/secmon-lab/visastat/pkg/domain/model"
	"github.com/secmon-lab/visastat/pkg/service/chart"
	"github.com/secmon-lab/visastat/pkg/usecase"
	"github.com/secmon-lab/visastat/pkg/utils/apperr"
)

// Config holds HTTP server configuration
type Config struct {
	addr        string
	corsOrigins []string
	chart       *model.ChartConfig
}

// NewConfig creates a new HTTP server configuration. A nil chart config uses the defaults.
func NewConfig(addr string, corsOrigins []string, chartConfig *model.ChartConfig) *Config {
	return &Config{
		addr:        addr,
		corsOrigins: corsOrigins,
		chart:       chartConfig.WithDefaults(),
	}
}

// UseCases bundles the use cases served over HTTP
type UseCases struct {
	dashboard usecase.DashboardUseCase
	status    usecase.StatusLookupUseCase
}

// NewUseCases creates a new use case bundle
func NewUseCases(dashboard usecase.DashboardUseCase, status usecase.StatusLookupUseCase) *UseCases {
	return &UseCases{
		dashboard: dashboard,
		status:    status,
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

type handler struct {
	dashboard usecase.DashboardUseCase
	status    usecase.StatusLookupUseCase
	html      interfaces.ChartRenderer
	png       interfaces.ChartRenderer
	page      *template.Template
	title     string
}

// NewServer creates a new HTTP server
func NewServer(ctx context.Context, cfg *Config, uc *UseCases) (*Server, error) {
	if uc == nil || uc.dashboard == nil {
		return nil, goerr.New("dashboard use case is required")
	}
	if cfg == nil {
		cfg = NewConfig("", nil, nil)
	}

	page, err := frontend.Templates()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse page templates")
	}

	h := &handler{
		dashboard: uc.dashboard,
		status:    uc.status,
		html:      chart.NewECharts(cfg.chart),
		png:       chart.NewPNG(cfg.chart),
		page:      page,
		title:     cfg.chart.Title,
	}

	router := chi.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	router.Get("/health", h.handleHealth)

	// Dashboard page and chart outputs
	router.Get("/", h.handleDashboard)
	router.Get("/chart", h.handleChart(h.html))
	router.Get("/chart.png", h.handleChart(h.png))

	router.Route("/api", func(r chi.Router) {
		if len(cfg.corsOrigins) > 0 {
			r.Use(CORSMiddleware(cfg.corsOrigins))
		}
		r.Get("/locations", h.handleLocations)
		r.Get("/chart", h.handleChartData)
		if h.statusEnabled() {
			r.Get("/status", h.handleStatusAPI)
		}
	})

	if h.statusEnabled() {
		router.Post("/status", h.handleStatusForm)
	}

	fs, err := frontend.GetHTTPFS()
	if err != nil {
		ctxlog.From(ctx).Warn("Static assets are not available", "error", err)
	} else {
		router.Handle("/static/*", http.StripPrefix("/static", NewStaticHandler(fs)))
	}

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}

	return server, nil
}

func (h *handler) statusEnabled() bool {
	return h.status != nil && h.status.IsConfigured()
}

// handleHealth handles health check requests
func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	state, _ := h.dashboard.State()
	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "visastat",
		"dataset": state.String(),
	})
}

// errorStatus maps an error to the HTTP status code returned for it
func errorStatus(err error) int {
	switch {
	case goerr.HasTag(err, model.ErrTagValidation):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrDatasetNotLoaded):
		return http.StatusServiceUnavailable
	case errors.Is(err, model.ErrEmptyChart):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// userMessage returns the message shown to the client for err
func (h *handler) userMessage(err error) string {
	switch errorStatus(err) {
	case http.StatusBadRequest, http.StatusNotFound:
		if goErr := goerr.Unwrap(err); goErr != nil {
			return goErr.Error()
		}
		return err.Error()
	case http.StatusServiceUnavailable:
		if state, _ := h.dashboard.State(); state == usecase.LoadStatePending {
			return usecase.MsgDatasetLoading
		}
		return usecase.MsgLoadFailed
	default:
		return "internal server error"
	}
}

// handleError logs unexpected errors and writes an error response
func (h *handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		apperr.Handle(r.Context(), err)
	}
	writeError(w, r, h.userMessage(err), status)
}

// writeError writes an error response
func writeError(w http.ResponseWriter, r *http.Request, message string, status int) {
	writeJSON(w, r, status, map[string]string{
		"error": message,
	})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}
