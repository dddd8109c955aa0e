package telemetry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GlebRadaev/loanapp/internal/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	snapshot domain.MetricsSnapshot
	err      error
	calls    int
}

func (s *stubSource) Metrics(context.Context) (domain.MetricsSnapshot, error) {
	s.calls++
	return s.snapshot, s.err
}

func TestCollector(t *testing.T) {
	mean := 50

	tests := []struct {
		name     string
		snapshot domain.MetricsSnapshot
		expected string
	}{
		{
			name: "populated store",
			snapshot: domain.MetricsSnapshot{
				Summary: []domain.StatusSummary{
					{Status: "Approved", Count: 8},
					{Status: "Declined", Count: 1},
				},
				ApprovedLoanTotalValue: 3_700_000,
				MeanLoanToValueRate:    &mean,
			},
			expected: `
# HELP loan_applications Number of processed loan applications by status.
# TYPE loan_applications gauge
loan_applications{status="Approved"} 8
loan_applications{status="Declined"} 1
# HELP loan_applications_approved_value_gbp Total value of approved loans in GBP.
# TYPE loan_applications_approved_value_gbp gauge
loan_applications_approved_value_gbp 3.7e+06
# HELP loan_applications_mean_ltv_percent Mean loan to value rate of all processed loans.
# TYPE loan_applications_mean_ltv_percent gauge
loan_applications_mean_ltv_percent 50
`,
		},
		{
			name:     "empty store skips mean",
			snapshot: domain.MetricsSnapshot{Summary: []domain.StatusSummary{}},
			expected: `
# HELP loan_applications_approved_value_gbp Total value of approved loans in GBP.
# TYPE loan_applications_approved_value_gbp gauge
loan_applications_approved_value_gbp 0
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collector := NewCollector(&stubSource{snapshot: tt.snapshot})

			err := testutil.CollectAndCompare(collector, strings.NewReader(tt.expected))
			assert.NoError(t, err)
		})
	}
}

func TestCollector_ReadsOnEveryScrape(t *testing.T) {
	source := &stubSource{snapshot: domain.MetricsSnapshot{Summary: []domain.StatusSummary{}}}
	collector := NewCollector(source)

	assert.Equal(t, 1, testutil.CollectAndCount(collector, "loan_applications_approved_value_gbp"))
	source.snapshot.ApprovedLoanTotalValue = 100_000
	assert.Equal(t, float64(100_000), testutil.ToFloat64(collector))
	assert.Equal(t, 2, source.calls)
}

func TestCollector_SourceError(t *testing.T) {
	collector := NewCollector(&stubSource{err: errors.New("boom")})

	_, err := testutil.CollectAndLint(collector)
	assert.Error(t, err)
}

func TestHandler(t *testing.T) {
	handler, err := Handler(&stubSource{snapshot: domain.MetricsSnapshot{
		Summary:                []domain.StatusSummary{{Status: "Approved", Count: 2}},
		ApprovedLoanTotalValue: 500_000,
	}})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `loan_applications{status="Approved"} 2`)
	assert.Contains(t, w.Body.String(), "loan_applications_approved_value_gbp 500000")
	assert.NotContains(t, w.Body.String(), "loan_applications_mean_ltv_percent")
}
