package game

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for the game service.
type Metrics struct {
	GamesStarted       prometheus.Counter
	GamesFinished      *prometheus.CounterVec
	LifelinesUsed      *prometheus.CounterVec
	ScoreWriteFailures prometheus.Counter
}

func NewMetrics() *Metrics {
	return &Metrics{
		GamesStarted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "redditionaire",
			Subsystem: "game",
			Name:      "games_started_total",
			Help:      "Total number of games started",
		}),
		GamesFinished: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "redditionaire",
			Subsystem: "game",
			Name:      "games_finished_total",
			Help:      "Total number of games reaching a terminal state",
		}, []string{"outcome"}),
		LifelinesUsed: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "redditionaire",
			Subsystem: "game",
			Name:      "lifelines_used_total",
			Help:      "Total number of lifelines consumed",
		}, []string{"kind"}),
		ScoreWriteFailures: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "redditionaire",
			Subsystem: "game",
			Name:      "score_write_failures_total",
			Help:      "Total number of failed leaderboard writes",
		}),
	}
}
