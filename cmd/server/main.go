package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/riftglance/insights-api/internal/cache"
	"github.com/riftglance/insights-api/internal/config"
	"github.com/riftglance/insights-api/internal/fetch"
	"github.com/riftglance/insights-api/internal/handlers"
	"github.com/riftglance/insights-api/internal/logic"
	"github.com/riftglance/insights-api/internal/riot"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var logger *zap.Logger
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	store, closeStore, err := newStore(cfg)
	if err != nil {
		sugar.Fatalw("Store init failed", "error", err)
	}
	defer closeStore()

	riotClient := riot.NewClient(riot.Config{
		APIKey:      cfg.RiotAPIKey,
		BaseURL:     cfg.RiotBaseURL,
		MaxAttempts: cfg.FetchRetries,
		Logger:      logger,
	})

	fetcher := fetch.NewFetcher(fetch.Config{
		Store:    store,
		Upstream: riotClient,
		MatchTTL: cfg.MatchTTL,
		Logger:   logger,
	})

	scenes := logic.NewScenes(logic.Config{
		Matches:    fetcher,
		League:     riotClient,
		Insights:   store,
		Logger:     logger,
		BatchSize:  cfg.BatchSize,
		Pacing:     cfg.BatchPacing,
		InsightTTL: cfg.InsightTTL,
		Heuristics: logic.HeuristicConfig{
			GankDeathFraction: cfg.GankDeathFraction,
			LPPerWin:          cfg.LPPerWin,
			LPPerLoss:         cfg.LPPerLoss,
		},
	})

	h := handlers.New(handlers.Config{
		Scenes: scenes,
		Store:  store,
		Logger: logger,
	})

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Handle("/metrics", promhttp.Handler())
	router.Mount("/", h.Routes())

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		sugar.Infow("Server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("Server failed", "error", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	sugar.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("Shutdown failed", "error", err)
	}
}

// newStore picks the record store: Redis when configured, the
// in-process store otherwise.
func newStore(cfg *config.Config) (cache.Store, func(), error) {
	if cfg.RedisURL == "" {
		mem := cache.NewMemory(cfg.SweepInterval)
		return mem, func() { mem.Close() }, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	return cache.NewRedis(client), func() { client.Close() }, nil
}
