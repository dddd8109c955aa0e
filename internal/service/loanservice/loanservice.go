package loanservice

import (
	"context"
	"errors"
	"sync"

	"github.com/GlebRadaev/loanapp/internal/domain"
	"github.com/GlebRadaev/loanapp/internal/service/metricsservice"
	"go.uber.org/zap"
)

//go:generate mockgen -source=loanservice.go -destination=mock_loanservice.go -package=loanservice

type Processor interface {
	Process(req domain.LoanApplicationRequest) domain.Response
}

type Repo interface {
	Insert(response domain.Response)
	All() []domain.Record
}

type Metrics interface {
	SummaryCountByStatus() []domain.StatusSummary
	ApprovedLoanTotalValue() int
	MeanLoanToValueRate() (int, error)
}

// Service owns the application history. The processor, repo and metrics are
// single-threaded, so every call that touches the repo holds mu.
type Service struct {
	mu        sync.Mutex
	processor Processor
	repo      Repo
	metrics   Metrics
}

func New(processor Processor, repo Repo, metrics Metrics) *Service {
	return &Service{
		processor: processor,
		repo:      repo,
		metrics:   metrics,
	}
}

// Apply processes the request and stores it when a decision was made.
func (s *Service) Apply(ctx context.Context, req domain.LoanApplicationRequest) (domain.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	response := s.processor.Process(req)
	switch resp := response.(type) {
	case domain.Processed:
		s.repo.Insert(resp)
		fields := []zap.Field{
			zap.Int("loan_amount", int(resp.LoanAmount)),
			zap.Int("ltv", int(resp.LoanToValueRate)),
			zap.String("status", resp.Status.String()),
		}
		if declined, ok := resp.Status.(domain.Declined); ok {
			fields = append(fields, zap.String("reason", declined.Reason))
		}
		zap.L().Info("loan application processed", fields...)
	case domain.UnableToProcess:
		zap.L().Info("unable to process loan application", zap.String("reason", resp.Reason))
	}
	return response, nil
}

func (s *Service) Applications(ctx context.Context) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.All(), nil
}

// Metrics computes a snapshot; MeanLoanToValueRate stays nil for an empty history.
func (s *Service) Metrics(ctx context.Context) (domain.MetricsSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.MetricsSnapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := domain.MetricsSnapshot{
		Summary:                s.metrics.SummaryCountByStatus(),
		ApprovedLoanTotalValue: s.metrics.ApprovedLoanTotalValue(),
	}

	mean, err := s.metrics.MeanLoanToValueRate()
	switch {
	case errors.Is(err, metricsservice.ErrEmptyDataset):
	case err != nil:
		zap.L().Error("failed to compute mean loan to value rate", zap.Error(err))
		return domain.MetricsSnapshot{}, err
	default:
		snapshot.MeanLoanToValueRate = &mean
	}
	return snapshot, nil
}
