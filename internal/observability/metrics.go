package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	exportsProcessedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "recap_service",
		Subsystem: "pipeline",
		Name:      "exports_processed_total",
		Help:      "Number of export archives successfully turned into a recap.",
	})
	exportsFailedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "recap_service",
		Subsystem: "pipeline",
		Name:      "exports_failed_total",
		Help:      "Number of export archives rejected, labelled by reason.",
	}, []string{"reason"})
	rowsDroppedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "recap_service",
		Subsystem: "pipeline",
		Name:      "activity_rows_dropped_total",
		Help:      "Number of activity rows discarded during normalization.",
	})
	processingDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "recap_service",
		Subsystem: "pipeline",
		Name:      "processing_duration_seconds",
		Help:      "Wall time spent extracting and aggregating one archive.",
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
	})
)

func init() {
	prometheus.MustRegister(
		exportsProcessedCounter,
		exportsFailedCounter,
		rowsDroppedCounter,
		processingDuration,
	)
}

// RecordExportProcessed counts a successful recap build and its duration.
func RecordExportProcessed(elapsed time.Duration) {
	exportsProcessedCounter.Inc()
	processingDuration.Observe(elapsed.Seconds())
}

// RecordExportFailed counts a rejected archive by failure reason.
func RecordExportFailed(reason string) {
	exportsFailedCounter.WithLabelValues(reason).Inc()
}

// RecordRowsDropped accumulates rows discarded while normalizing.
func RecordRowsDropped(n int) {
	if n <= 0 {
		return
	}
	rowsDroppedCounter.Add(float64(n))
}
