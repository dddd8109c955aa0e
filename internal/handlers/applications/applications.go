package applications

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/loanapp/internal/domain"
	"github.com/GlebRadaev/loanapp/internal/dto"
	"github.com/GlebRadaev/loanapp/pkg/utils"
	"go.uber.org/zap"
)

//go:generate mockgen -source=applications.go -destination=mock_applications.go -package=applications

type Service interface {
	Apply(ctx context.Context, req domain.LoanApplicationRequest) (domain.Response, error)
	Applications(ctx context.Context) ([]domain.Record, error)
}

type ApplicationHandler struct {
	applicationService Service
}

func New(applicationService Service) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
	}
}

// Apply godoc
//
//	@Summary		Submit a loan application
//	@Description	Validate the application, calculate its loan to value rate and decide it. Decided applications are stored.
//	@Tags			Applications
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ApplyRequestDTO			true	"Loan application"
//	@Success		200		{object}	dto.ProcessedResponseDTO	"Application processed"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		422		{object}	utils.Response				"Unable to process application"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/applications [post]
func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req dto.ApplyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.applicationService.Apply(r.Context(), domain.NewLoanApplicationRequest(req.LoanAmount, req.AssetValue, req.CreditScore))
	if err != nil {
		zap.L().Error("failed to apply loan application", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	switch resp := resp.(type) {
	case domain.Processed:
		out := dto.ProcessedResponseDTO{
			LoanAmount:      int(resp.LoanAmount),
			AssetValue:      int(resp.AssetValue),
			CreditScore:     int(resp.CreditScore),
			LoanToValueRate: int(resp.LoanToValueRate),
			Status:          resp.Status.String(),
		}
		if declined, ok := resp.Status.(domain.Declined); ok {
			out.Reason = declined.Reason
		}
		utils.RespondWithJSON(w, http.StatusOK, out)
	case domain.UnableToProcess:
		utils.RespondWithError(w, http.StatusUnprocessableEntity, resp.Reason)
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// GetApplications godoc
//
//	@Summary		List processed applications
//	@Description	Return every stored application in the order it was processed.
//	@Tags			Applications
//	@Produce		json
//	@Success		200	{array}		dto.GetApplicationsResponseDTO	"Stored applications"
//	@Success		204	{string}	string							"No applications yet"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/applications [get]
func (h *ApplicationHandler) GetApplications(w http.ResponseWriter, r *http.Request) {
	records, err := h.applicationService.Applications(r.Context())
	if err != nil {
		zap.L().Error("failed to list loan applications", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(records) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	response := make([]dto.GetApplicationsResponseDTO, len(records))
	for i, rec := range records {
		response[i] = dto.GetApplicationsResponseDTO{
			ID:              rec.ID,
			LoanAmount:      int(rec.LoanAmount),
			AssetValue:      int(rec.AssetValue),
			CreditScore:     int(rec.CreditScore),
			LoanToValueRate: int(rec.LoanToValueRate),
			Status:          rec.Status.String(),
			CreatedAt:       rec.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
