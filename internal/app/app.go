package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"redditionaire/internal/config"
	"redditionaire/internal/game"
	"redditionaire/internal/identity"
	"redditionaire/internal/leaderboard"
	"redditionaire/internal/logging"
	"redditionaire/internal/question"
	"redditionaire/internal/server"
)

// Application aggregates shared infrastructure (DB, cache, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	pool    *pgxpool.Pool
	redis   *redis.Client
	http    *http.Server
	gameSvc *game.Service
}

// New bootstraps config, logger, stores and the HTTP server.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env)
	logger.Info().Msg("starting application bootstrap")

	var pool *pgxpool.Pool
	if cfg.Postgres.Enabled() {
		var err error
		pool, err = pgxpool.New(ctx, cfg.Postgres.ConnString())
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
	} else {
		logger.Info().Msg("postgres not configured, serving the built-in question set")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})

	// Question pool is loaded once and treated as read-only afterwards.
	var loader question.Loader
	if pool != nil {
		loader = question.NewPostgresLoader(pool)
	} else {
		loader = question.NewStaticLoader(question.DefaultPool())
	}
	questions, err := loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load question pool: %w", err)
	}
	questions = question.Sanitize(questions, logger)
	logger.Info().Int("questions", len(questions)).Msg("question pool loaded")

	rules := question.DefaultRules()
	rules.QuestionsPerGame = cfg.Game.QuestionsPerGame
	rules.EasyCount = cfg.Game.EasyCount
	rules.MediumCount = cfg.Game.MediumCount
	rules.HardCount = cfg.Game.HardCount

	var players identity.Resolver
	var community identity.CommunityResolver
	if cfg.Security.JWTSecret != "" {
		jwtResolver := identity.NewJWTResolver([]byte(cfg.Security.JWTSecret))
		players, community = jwtResolver, jwtResolver
	} else {
		logger.Warn().Msg("JWT secret not configured; all players are guests")
		players, community = identity.GuestResolver{}, identity.GuestResolver{}
	}

	store := leaderboard.NewStore(leaderboard.StoreOptions{
		KV:     leaderboard.NewRedisKV(redisClient),
		TopN:   cfg.Leaderboard.TopN,
		Logger: logger,
	})

	engine := game.NewEngine(game.DefaultLadder(), int(cfg.Game.QuestionTime.Seconds()), logger)
	gameSvc := game.NewService(game.ServiceOptions{
		Engine:   engine,
		Selector: question.NewSelector(logger),
		Pool:     questions,
		Rules:    rules,
		Recorder: store,
		Metrics:  game.NewMetrics(),
		Logger:   logger,
	})

	gameWS := game.NewWSHandler(gameSvc, players, community, logger)
	gameHTTP := game.NewHTTPHandler(gameSvc, logger)
	lbHTTP := leaderboard.NewHTTPHandler(store, logger)

	apiServer := server.NewHTTPServer(cfg, logger, pool, redisClient, server.Handlers{
		GameWS:      gameWS.HandleWebSocket,
		Ladder:      gameHTTP.HandleLadder,
		HowToPlay:   gameHTTP.HandleHowToPlay,
		Leaderboard: lbHTTP.HandleGet,
	})

	return &Application{
		cfg:     cfg,
		logger:  logger,
		pool:    pool,
		redis:   redisClient,
		http:    apiServer,
		gameSvc: gameSvc,
	}, nil
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	a.gameSvc.Close()

	if a.pool != nil {
		a.pool.Close()
	}
	if err := a.redis.Close(); err != nil {
		a.logger.Error().Err(err).Msg("redis shutdown error")
	}

	a.logger.Info().Msg("shutdown complete")
	return nil
}
