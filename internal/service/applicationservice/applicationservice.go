package applicationservice

import (
	"github.com/GlebRadaev/loanapp/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=applicationservice.go -destination=mock_applicationservice.go -package=applicationservice

type Decider interface {
	Decide(loanAmount domain.LoanAmount, ltv domain.LoanToValueRate, creditScore domain.CreditScore) domain.Status
}

const (
	ReasonInvalidRequest  = "Request is invalid."
	ReasonLTVNotAvailable = "Unable to calculate loan to value rate."
)

type Service struct {
	decider Decider
}

func New(decider Decider) *Service {
	return &Service{
		decider: decider,
	}
}

// Process runs a request through validation, LTV calculation and the risk decision.
// Invalid input is reported as UnableToProcess, never as an error.
func (s *Service) Process(req domain.LoanApplicationRequest) domain.Response {
	if !req.IsValid() {
		zap.L().Debug("loan application rejected as invalid",
			zap.Int("loan_amount", int(req.LoanAmount)),
			zap.Int("asset_value", int(req.AssetValue)),
			zap.Int("credit_score", int(req.CreditScore)),
		)
		return domain.UnableToProcess{Reason: ReasonInvalidRequest}
	}

	ltv, ok := domain.CalculateLoanToValueRate(req.LoanAmount, req.AssetValue)
	if !ok {
		zap.L().Debug("loan to value rate not available",
			zap.Int("loan_amount", int(req.LoanAmount)),
			zap.Int("asset_value", int(req.AssetValue)),
		)
		return domain.UnableToProcess{Reason: ReasonLTVNotAvailable}
	}

	status := s.decider.Decide(req.LoanAmount, ltv, req.CreditScore)

	return domain.Processed{
		LoanAmount:      req.LoanAmount,
		AssetValue:      req.AssetValue,
		CreditScore:     req.CreditScore,
		LoanToValueRate: ltv,
		Status:          status,
	}
}
