package batch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Batch run metrics
	runDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ayec_batch_run_duration_seconds",
			Help:    "Time taken for a complete batch validation run",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300},
		},
	)

	runFilesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ayec_batch_files_total",
			Help: "Total number of files seen by batch runs",
		},
		[]string{"disposition"}, // passed, failed, skipped, missing
	)
)

// observeRun records metrics for a completed batch run.
func observeRun(res *Result) {
	runDuration.Observe(res.Summary.Duration.Seconds())
	runFilesTotal.WithLabelValues("passed").Add(float64(res.Summary.Passed))
	runFilesTotal.WithLabelValues("failed").Add(float64(res.Summary.Failed))
	runFilesTotal.WithLabelValues("skipped").Add(float64(res.Summary.Skipped))
	runFilesTotal.WithLabelValues("missing").Add(float64(res.Summary.Missing))
}
