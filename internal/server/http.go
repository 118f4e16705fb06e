package server

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"redditionaire/internal/config"
)

// WSUpgrader handles WebSocket upgrades (configure CORS/security as needed).
var WSUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// TODO: implement proper origin checking for production
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Handlers carries the route handlers wired by the application. Any nil
// handler leaves its route unregistered.
type Handlers struct {
	GameWS      http.HandlerFunc
	Ladder      http.HandlerFunc
	HowToPlay   http.HandlerFunc
	Leaderboard http.HandlerFunc
}

// NewHTTPServer wires base routes (health, metrics) plus the game surface.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, pool *pgxpool.Pool, rdb *redis.Client, handlers Handlers) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := pingDependencies(r.Context(), pool, rdb); err != nil {
			logger.Error().Err(err).Msg("dependency ping failed")
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"degraded"}`))
			return
		}
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("/metrics", promhttp.Handler())

	if handlers.GameWS != nil {
		mux.HandleFunc("/ws/game", handlers.GameWS)
	}
	if handlers.Ladder != nil {
		mux.HandleFunc("/v1/ladder", handlers.Ladder)
	}
	if handlers.HowToPlay != nil {
		mux.HandleFunc("/v1/howtoplay", handlers.HowToPlay)
	}
	if handlers.Leaderboard != nil {
		mux.HandleFunc("/v1/leaderboards/", handlers.Leaderboard)
	}

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: mux,
	}
}

// pingDependencies checks the stores the service depends on. Postgres is
// optional; a nil pool means the static question set is in use.
func pingDependencies(ctx context.Context, pool *pgxpool.Pool, rdb *redis.Client) error {
	if pool != nil {
		if err := pool.Ping(ctx); err != nil {
			return err
		}
	}
	if rdb != nil {
		if err := rdb.Ping(ctx).Err(); err != nil {
			return err
		}
	}
	return nil
}
