package validator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Table validation metrics
	tableValidationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ayec_table_validation_duration_seconds",
			Help:    "Time taken to validate a single table file",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		},
	)

	tableValidationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ayec_table_validation_total",
			Help: "Total number of table validations",
		},
		[]string{"status"}, // passed or failed
	)

	checkResultTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ayec_check_result_total",
			Help: "Total number of individual check outcomes",
		},
		[]string{"check", "status"},
	)
)

// observeTable records metrics for a completed table validation.
func observeTable(res *Result) {
	tableValidationDuration.Observe(res.Duration.Seconds())
	tableValidationTotal.WithLabelValues(string(res.Status)).Inc()
	for _, c := range res.Checks {
		checkResultTotal.WithLabelValues(c.Check, string(c.Status)).Inc()
	}
}
