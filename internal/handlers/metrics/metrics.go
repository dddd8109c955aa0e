package metrics

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/loanapp/internal/domain"
	"github.com/GlebRadaev/loanapp/internal/dto"
	"github.com/GlebRadaev/loanapp/pkg/utils"
	"go.uber.org/zap"
)

//go:generate mockgen -source=metrics.go -destination=mock_metrics.go -package=metrics

type Service interface {
	Metrics(ctx context.Context) (domain.MetricsSnapshot, error)
}

type MetricsHandler struct {
	metricsService Service
}

func New(metricsService Service) *MetricsHandler {
	return &MetricsHandler{
		metricsService: metricsService,
	}
}

// GetMetrics godoc
//
//	@Summary		Application metrics
//	@Description	Count of applications per status, total value of approved loans and the mean loan to value rate. The mean is omitted when nothing has been processed.
//	@Tags			Metrics
//	@Produce		json
//	@Success		200	{object}	dto.MetricsResponseDTO	"Metrics"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/metrics [get]
func (h *MetricsHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.metricsService.Metrics(r.Context())
	if err != nil {
		zap.L().Error("failed to collect metrics", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	summary := make([]dto.StatusCountDTO, len(snapshot.Summary))
	for i, s := range snapshot.Summary {
		summary[i] = dto.StatusCountDTO{Status: s.Status, Count: s.Count}
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.MetricsResponseDTO{
		Summary:                summary,
		ApprovedLoanTotalValue: snapshot.ApprovedLoanTotalValue,
		MeanLoanToValueRate:    snapshot.MeanLoanToValueRate,
	})
}
