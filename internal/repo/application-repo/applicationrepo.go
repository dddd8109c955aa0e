package applicationrepo

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/loanapp/internal/domain"
)

// Repository is an append-only, in-memory history of processed applications.
// It is not safe for concurrent use; the owner serializes access.
type Repository struct {
	records []domain.Record
	now     func() time.Time
}

func New() *Repository {
	return &Repository{
		now: time.Now,
	}
}

// Insert stores a Processed response and ignores anything else.
func (r *Repository) Insert(response domain.Response) {
	switch resp := response.(type) {
	case domain.Processed:
		record := domain.Record{
			ID:              uuid.NewString(),
			LoanAmount:      resp.LoanAmount,
			AssetValue:      resp.AssetValue,
			CreditScore:     resp.CreditScore,
			LoanToValueRate: resp.LoanToValueRate,
			Status:          resp.Status,
			CreatedAt:       r.now(),
		}
		r.records = append(r.records, record)
		zap.L().Debug("loan application stored",
			zap.String("id", record.ID),
			zap.String("status", record.Status.String()),
		)
	case domain.UnableToProcess:
	}
}

// All returns a copy of the stored records in insertion order.
func (r *Repository) All() []domain.Record {
	records := make([]domain.Record, len(r.records))
	copy(records, r.records)
	return records
}

func (r *Repository) Len() int {
	return len(r.records)
}
