package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/zenhabit/zenhabit-engine/internal/adapters/docstore"
	"github.com/zenhabit/zenhabit-engine/internal/adapters/genai"
	adapterHTTP "github.com/zenhabit/zenhabit-engine/internal/adapters/handler/http"
	"github.com/zenhabit/zenhabit-engine/internal/config"
	"github.com/zenhabit/zenhabit-engine/internal/core/domain"
	"github.com/zenhabit/zenhabit-engine/internal/core/services"
	"github.com/zenhabit/zenhabit-engine/internal/core/workers"
	"github.com/zenhabit/zenhabit-engine/internal/platform/logger"
)

func main() {
	startTime := time.Now()

	_ = godotenv.Load()

	log := logger.New("zenhabit-api")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var redisClient *redis.Client
	if cfg.RedisHost != "" {
		redisClient, err = docstore.NewRedisClient(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			if cfg.StorageDriver == config.StorageRedis {
				log.Fatal().Err(err).Msg("redis storage driver selected but redis is unreachable")
			}
			log.Warn().Err(err).Msg("redis unreachable, rate limiter and summary cache disabled")
			redisClient = nil
		}
	}

	var store domain.DocumentStore
	switch cfg.StorageDriver {
	case config.StorageDiskv:
		store = docstore.NewDiskvStore(cfg.DataDir)
	case config.StorageRedis:
		store = docstore.NewRedisStore(redisClient)
	case config.StoragePostgres:
		db, err := sqlx.Connect("pgx", cfg.PostgresDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer db.Close()

		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)

		pgStore := docstore.NewPostgresStore(db)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to prepare database schema")
		}
		store = pgStore
	case config.StorageMemory:
		store = docstore.NewMemoryStore()
	}

	journal := services.NewJournalService(store, log)
	loaded := journal.Load(ctx)
	log.Info().Int("entries", len(loaded)).Str("storage", cfg.StorageDriver).Msg("journal loaded")

	summaryWorker := workers.NewSummaryWorker(journal, redisClient, log)
	summaryWorker.Start(ctx)
	journal.OnMutation(summaryWorker.Enqueue)

	generator := genai.NewGeminiClient(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTimeout)
	insights := services.NewInsightService(generator, log)

	// The web client runs its own confirmation dialog before calling the
	// delete endpoint, so the server-side confirmer is a pass-through.
	confirm := domain.ConfirmerFunc(func(string) bool { return true })

	session := services.NewSessionService(journal, insights, confirm, log)
	stats := services.NewStatsService(journal, summaryWorker, log)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		JournalHandler: adapterHTTP.NewJournalHandler(session, journal, log),
		StatsHandler:   adapterHTTP.NewStatsHandler(stats),
		InsightHandler: adapterHTTP.NewInsightHandler(session, journal, log),
		SessionHandler: adapterHTTP.NewSessionHandler(session, log),
		Journal:        journal,
		Redis:          redisClient,
		StorageDriver:  cfg.StorageDriver,
		StartTime:      startTime,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		// Insight refreshes wait synchronously on the generation service.
		WriteTimeout: cfg.GeminiTimeout + 10*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("zenhabit journal engine running")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("critical server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("stop signal received, shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown error")
	}

	log.Info().Msg("server stopped gracefully")
}
