package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/loanapp/docs"
	applicationshandlers "github.com/GlebRadaev/loanapp/internal/handlers/applications"
	metricshandlers "github.com/GlebRadaev/loanapp/internal/handlers/metrics"
	"github.com/GlebRadaev/loanapp/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type ApplicationHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	GetApplications(w http.ResponseWriter, r *http.Request)
}

type MetricsHandler interface {
	GetMetrics(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	ApplicationHandler ApplicationHandler
	MetricsHandler     MetricsHandler
	Telemetry          http.Handler
}

func New(s *service.Services, telemetry http.Handler) *Handlers {
	return &Handlers{
		ApplicationHandler: applicationshandlers.New(s.ApplicationService),
		MetricsHandler:     metricshandlers.New(s.MetricsService),
		Telemetry:          telemetry,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	if h.Telemetry != nil {
		r.Method(http.MethodGet, "/metrics", h.Telemetry)
	}
	r.Route("/api", func(r chi.Router) {
		r.Route("/applications", func(r chi.Router) {
			r.Post("/", h.ApplicationHandler.Apply)
			r.Get("/", h.ApplicationHandler.GetApplications)
		})
		r.Get("/metrics", h.MetricsHandler.GetMetrics)
	})

	return r
}
