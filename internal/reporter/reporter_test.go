package reporter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/loanapp/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func NewMock(t *testing.T, interval time.Duration) (*Reporter, *MockSource, *observer.ObservedLogs) {
	ctrl := gomock.NewController(t)
	source := NewMockSource(ctrl)

	core, logs := observer.New(zapcore.DebugLevel)
	undo := zap.ReplaceGlobals(zap.New(core))
	t.Cleanup(undo)

	return New(interval, source), source, logs
}

func TestReporter_report(t *testing.T) {
	mean := 50

	tests := []struct {
		name           string
		prepareMock    func(source *MockSource)
		expectedLog    string
		expectedLevel  zapcore.Level
		expectedFields map[string]interface{}
	}{
		{
			name: "logs snapshot",
			prepareMock: func(source *MockSource) {
				source.EXPECT().Metrics(gomock.Any()).Return(domain.MetricsSnapshot{
					Summary: []domain.StatusSummary{
						{Status: "Approved", Count: 8},
						{Status: "Declined", Count: 1},
					},
					ApprovedLoanTotalValue: 3_700_000,
					MeanLoanToValueRate:    &mean,
				}, nil)
			},
			expectedLog:   "Loan application metrics",
			expectedLevel: zapcore.InfoLevel,
			expectedFields: map[string]interface{}{
				"Approved":           int64(8),
				"Declined":           int64(1),
				"approvedTotalValue": int64(3_700_000),
				"meanLTV":            int64(50),
			},
		},
		{
			name: "empty snapshot has no mean",
			prepareMock: func(source *MockSource) {
				source.EXPECT().Metrics(gomock.Any()).Return(domain.MetricsSnapshot{
					Summary: []domain.StatusSummary{},
				}, nil)
			},
			expectedLog:   "Loan application metrics",
			expectedLevel: zapcore.InfoLevel,
			expectedFields: map[string]interface{}{
				"approvedTotalValue": int64(0),
			},
		},
		{
			name: "source error",
			prepareMock: func(source *MockSource) {
				source.EXPECT().Metrics(gomock.Any()).Return(domain.MetricsSnapshot{}, errors.New("boom"))
			},
			expectedLog:   "Failed to collect metrics",
			expectedLevel: zapcore.ErrorLevel,
			expectedFields: map[string]interface{}{
				"error": "boom",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reporter, source, logs := NewMock(t, time.Minute)
			tt.prepareMock(source)

			reporter.report(context.Background())

			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.expectedLog, entries[0].Message)
			assert.Equal(t, tt.expectedLevel, entries[0].Level)
			assert.Equal(t, tt.expectedFields, entries[0].ContextMap())
		})
	}
}

func TestReporter_Run(t *testing.T) {
	reporter, source, logs := NewMock(t, 10*time.Millisecond)
	source.EXPECT().Metrics(gomock.Any()).Return(domain.MetricsSnapshot{Summary: []domain.StatusSummary{}}, nil).MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		reporter.Run(ctx)
	}()

	assert.Eventually(t, func() bool {
		return logs.FilterMessage("Loan application metrics").Len() > 0
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("reporter did not stop after cancel")
	}
	assert.Equal(t, 1, logs.FilterMessage("Context canceled, stopping reporter").Len())
}

func TestReporter_RunDisabled(t *testing.T) {
	reporter, _, logs := NewMock(t, 0)

	reporter.Run(context.Background())

	assert.Equal(t, 1, logs.FilterMessage("Metrics reporter disabled").Len())
}
