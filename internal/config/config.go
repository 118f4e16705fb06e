package config

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// App holds core runtime configuration.
type App struct {
	Name                    string        `env:"APP_NAME" envDefault:"redditionaire"`
	Env                     string        `env:"APP_ENV" envDefault:"development"`
	HTTPAddr                string        `env:"HTTP_ADDR" envDefault:"0.0.0.0:8080"`
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_SECONDS" envDefault:"20s"`

	Postgres    Postgres
	Redis       Redis
	Security    Security
	Game        Game
	Leaderboard Leaderboard
}

// Postgres captures connection info for the optional question pool database.
// When Host is empty the service runs on the built-in static pool.
type Postgres struct {
	Host     string `env:"PG_HOST" envDefault:""`
	Port     int    `env:"PG_PORT" envDefault:"5432"`
	User     string `env:"PG_USER" envDefault:""`
	Password string `env:"PG_PASSWORD" envDefault:""`
	Database string `env:"PG_DATABASE" envDefault:""`
	SSLMode  string `env:"PG_SSL_MODE" envDefault:"disable"`
}

// Enabled reports whether a Postgres pool source is configured.
func (p Postgres) Enabled() bool { return p.Host != "" }

// ConnString renders a pgx-compatible connection string.
func (p Postgres) ConnString() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s pool_max_conns=10",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode)
}

// Redis holds leaderboard store configuration.
type Redis struct {
	Addr     string `env:"REDIS_ADDR,notEmpty"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	PoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"20"`
}

// Security stores secrets for token verification. An empty JWT secret
// disables identity resolution and every player shows up as a guest.
type Security struct {
	JWTSecret string `env:"JWT_SECRET" envDefault:""`
}

// Game groups gameplay defaults.
type Game struct {
	QuestionsPerGame int           `env:"QUESTIONS_PER_GAME" envDefault:"12"`
	EasyCount        int           `env:"EASY_QUESTION_COUNT" envDefault:"4"`
	MediumCount      int           `env:"MEDIUM_QUESTION_COUNT" envDefault:"4"`
	HardCount        int           `env:"HARD_QUESTION_COUNT" envDefault:"4"`
	QuestionTime     time.Duration `env:"PER_QUESTION_SECONDS" envDefault:"30s"`
}

// Leaderboard governs the community top list.
type Leaderboard struct {
	TopN int `env:"LEADERBOARD_TOP" envDefault:"10"`
}

// Load parses environment variables into App config.
func Load(ctx context.Context) (*App, error) {
	cfg := &App{}
	if err := env.ParseWithOptions(cfg, env.Options{RequiredIfNoDef: true}); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
