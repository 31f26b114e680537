package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Preload batches by outcome: ok/desync/reset/error
	PreloadBatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "srsqueue_preload_batches_total",
			Help: "Total number of preload detail requests",
		},
		[]string{"outcome"},
	)

	// Items the server returned as null during preload
	PreloadNullItems = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "srsqueue_preload_null_items_total",
			Help: "Total number of unresolved items in preload responses",
		},
	)

	// Queue resets by trigger: desync/manual and status
	QueueResets = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "srsqueue_queue_resets_total",
			Help: "Total number of server queue resets",
		},
		[]string{"status"},
	)

	// Rune items pushed two weeks out, by reason: strokes/kana
	Bumps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "srsqueue_bumped_items_total",
			Help: "Total number of items bumped out of the queue",
		},
		[]string{"reason"},
	)

	// Reviews completed, by grade
	Reviews = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "srsqueue_reviews_total",
			Help: "Total number of completed reviews",
		},
		[]string{"grade"},
	)

	// Reviews submitted to the server, by status
	Submissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "srsqueue_review_submissions_total",
			Help: "Total number of reviews submitted",
		},
		[]string{"status"},
	)

	DueCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "srsqueue_due_count",
			Help: "Current number of due items",
		},
	)

	QueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "srsqueue_queue_length",
			Help: "Items currently in the working queue",
		},
	)

	// Time spent in remote calls made by background jobs
	JobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "srsqueue_job_duration_seconds",
			Help:    "Time spent running scheduled jobs",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"job", "status"},
	)
)

// Handler serves the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}

// Status maps an error to a label value
func Status(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}
