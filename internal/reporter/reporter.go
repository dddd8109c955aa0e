package reporter

import (
	"context"
	"time"

	"github.com/GlebRadaev/loanapp/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=reporter.go -destination=mock_reporter.go -package=reporter

type Source interface {
	Metrics(ctx context.Context) (domain.MetricsSnapshot, error)
}

// Reporter periodically logs a snapshot of the application metrics.
type Reporter struct {
	source   Source
	interval time.Duration
}

func New(interval time.Duration, source Source) *Reporter {
	return &Reporter{
		source:   source,
		interval: interval,
	}
}

// Run reports on every tick until ctx is done. A non-positive interval
// disables reporting and Run returns at once.
func (r *Reporter) Run(ctx context.Context) {
	if r.interval <= 0 {
		zap.L().Info("Metrics reporter disabled")
		return
	}
	zap.L().Info("Metrics reporter started", zap.Duration("interval", r.interval))

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping reporter")
			return
		case <-ticker.C:
			r.report(ctx)
		}
	}
}

func (r *Reporter) report(ctx context.Context) {
	snapshot, err := r.source.Metrics(ctx)
	if err != nil {
		zap.L().Error("Failed to collect metrics", zap.Error(err))
		return
	}

	fields := make([]zap.Field, 0, len(snapshot.Summary)+2)
	for _, s := range snapshot.Summary {
		fields = append(fields, zap.Int(s.Status, s.Count))
	}
	fields = append(fields, zap.Int("approvedTotalValue", snapshot.ApprovedLoanTotalValue))
	if snapshot.MeanLoanToValueRate != nil {
		fields = append(fields, zap.Int("meanLTV", *snapshot.MeanLoanToValueRate))
	}
	zap.L().Info("Loan application metrics", fields...)
}
