package service

import (
	"github.com/GlebRadaev/loanapp/internal/console"
	"github.com/GlebRadaev/loanapp/internal/handlers/applications"
	"github.com/GlebRadaev/loanapp/internal/handlers/metrics"
	"github.com/GlebRadaev/loanapp/internal/repo"
	"github.com/GlebRadaev/loanapp/internal/service/applicationservice"
	"github.com/GlebRadaev/loanapp/internal/service/loanservice"
	"github.com/GlebRadaev/loanapp/internal/service/metricsservice"
	"github.com/GlebRadaev/loanapp/internal/service/riskservice"
)

// Services exposes one loan service through the interfaces each surface needs.
// HTTP handlers, the console and the reporter all share the same store.
type Services struct {
	ApplicationService applications.Service
	MetricsService     metrics.Service
	ConsoleService     console.Service
}

func New(repo *repo.Repositories) *Services {
	riskService := riskservice.New()
	applicationService := applicationservice.New(riskService)
	metricsService := metricsservice.New(repo.ApplicationRepo)
	loanService := loanservice.New(applicationService, repo.ApplicationRepo, metricsService)

	return &Services{
		ApplicationService: loanService,
		MetricsService:     loanService,
		ConsoleService:     loanService,
	}
}
