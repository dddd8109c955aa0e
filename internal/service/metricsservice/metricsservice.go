package metricsservice

import (
	"errors"

	"github.com/GlebRadaev/loanapp/internal/domain"
)

//go:generate mockgen -source=metricsservice.go -destination=mock_metricsservice.go -package=metricsservice

type Repo interface {
	All() []domain.Record
}

var (
	ErrEmptyDataset = errors.New("no loan applications to aggregate")
)

// Service aggregates the repo contents. Nothing is cached: every call reads
// the repo again.
type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// SummaryCountByStatus counts records per exact status label, in order of first
// appearance.
func (s *Service) SummaryCountByStatus() []domain.StatusSummary {
	records := s.repo.All()

	summary := make([]domain.StatusSummary, 0)
	index := make(map[string]int)
	for _, record := range records {
		label := record.Status.String()
		i, ok := index[label]
		if !ok {
			i = len(summary)
			index[label] = i
			summary = append(summary, domain.StatusSummary{Status: label})
		}
		summary[i].Count++
	}
	return summary
}

func (s *Service) ApprovedLoanTotalValue() int {
	total := 0
	for _, record := range s.repo.All() {
		if domain.StatusLabelEqual(record.Status.String(), domain.StatusApproved) {
			total += int(record.LoanAmount)
		}
	}
	return total
}

// MeanLoanToValueRate is the truncated mean LTV over every record regardless of
// status. It returns ErrEmptyDataset when there are no records.
func (s *Service) MeanLoanToValueRate() (int, error) {
	records := s.repo.All()
	if len(records) == 0 {
		return 0, ErrEmptyDataset
	}

	sum := 0
	for _, record := range records {
		sum += int(record.LoanToValueRate)
	}
	return sum / len(records), nil
}
