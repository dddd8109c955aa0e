package telemetry

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/loanapp/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const namespace = "loan_applications"

type Source interface {
	Metrics(ctx context.Context) (domain.MetricsSnapshot, error)
}

// Collector exposes the application metrics to Prometheus.
// Values are read from the source on every scrape.
type Collector struct {
	source        Source
	applications  *prometheus.Desc
	approvedValue *prometheus.Desc
	meanLTV       *prometheus.Desc
}

func NewCollector(source Source) *Collector {
	return &Collector{
		source: source,
		applications: prometheus.NewDesc(
			namespace,
			"Number of processed loan applications by status.",
			[]string{"status"}, nil,
		),
		approvedValue: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "approved_value_gbp"),
			"Total value of approved loans in GBP.",
			nil, nil,
		),
		meanLTV: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "mean_ltv_percent"),
			"Mean loan to value rate of all processed loans.",
			nil, nil,
		),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.applications
	ch <- c.approvedValue
	ch <- c.meanLTV
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	snapshot, err := c.source.Metrics(context.Background())
	if err != nil {
		zap.L().Error("failed to collect metrics for exposition", zap.Error(err))
		ch <- prometheus.NewInvalidMetric(c.applications, err)
		return
	}

	for _, s := range snapshot.Summary {
		ch <- prometheus.MustNewConstMetric(c.applications, prometheus.GaugeValue, float64(s.Count), s.Status)
	}
	ch <- prometheus.MustNewConstMetric(c.approvedValue, prometheus.GaugeValue, float64(snapshot.ApprovedLoanTotalValue))
	if snapshot.MeanLoanToValueRate != nil {
		ch <- prometheus.MustNewConstMetric(c.meanLTV, prometheus.GaugeValue, float64(*snapshot.MeanLoanToValueRate))
	}
}

// Handler registers a collector for source on a fresh registry and returns
// the exposition handler for it.
func Handler(source Source) (http.Handler, error) {
	registry := prometheus.NewRegistry()
	if err := registry.Register(NewCollector(source)); err != nil {
		return nil, err
	}
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{}), nil
}
