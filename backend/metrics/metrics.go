package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Counter for progress store mutations
	mutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vedaverse_progress_mutations_total",
			Help: "Total number of progress store mutations",
		},
		[]string{"op", "status"}, // status: success/rejected/failure
	)

	totalScore = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vedaverse_progress_total_score",
			Help: "Learner's current total score",
		},
	)

	learningStreak = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vedaverse_progress_learning_streak",
			Help: "Learner's current streak in days",
		},
	)
)

const (
	StatusSuccess  = "success"
	StatusRejected = "rejected"
	StatusFailure  = "failure"
)

// ObserveMutation counts one mutation attempt of op.
func ObserveMutation(op, status string) {
	mutations.WithLabelValues(op, status).Inc()
}

// ObserveRecord publishes the gauges derived from the committed record.
func ObserveRecord(score, streak int) {
	totalScore.Set(float64(score))
	learningStreak.Set(float64(streak))
}

// Handler serves the default registry in the prometheus text format.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
