package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"donation-gateway/config"
	httpHandler "donation-gateway/internal/adapter/http/handler"
	pgStorage "donation-gateway/internal/adapter/storage/postgres"
	redisStorage "donation-gateway/internal/adapter/storage/redis"
	"donation-gateway/internal/core/ports"
	"donation-gateway/internal/provider"
	"donation-gateway/internal/service"
	"donation-gateway/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Donation Gateway")

	ctx := context.Background()

	// Initialize PostgreSQL pool. The gateway stays up without it:
	// intent creation degrades to untracked mode and webhooks answer 503
	// until the store returns.
	var (
		donationRepo ports.DonationRepository
		eventRepo    ports.WebhookEventRepository
		checkers     []ports.HealthChecker
	)
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Error().Err(err).Msg("PostgreSQL unavailable, starting without transaction store")
	} else {
		defer pool.Close()
		donationRepo = pgStorage.NewDonationRepo(pool)
		eventRepo = pgStorage.NewWebhookEventRepo(pool)
		checkers = append(checkers, pgStorage.NewHealthCheck(pool))
		log.Info().Msg("PostgreSQL connected")
	}

	// Initialize Redis client. Also optional: without it the dedup fast
	// path and rate limiting are disabled, correctness is unaffected.
	var (
		eventCache     ports.EventDedupCache
		rateLimitStore *redisStorage.RateLimitStore
	)
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Error().Err(err).Msg("Redis unavailable, starting without cache and rate limiting")
	} else {
		defer rdb.Close()
		eventCache = redisStorage.NewEventCache(rdb)
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		checkers = append(checkers, redisStorage.NewHealthCheck(rdb))
		log.Info().Msg("Redis connected")
	}

	// Provider adapters and business services
	registry := provider.NewRegistry(cfg.Donation)
	methodSvc := service.NewMethodService(cfg.Donation, log)
	intentSvc := service.NewIntentService(registry, methodSvc, donationRepo, log)
	webhookSvc := service.NewWebhookService(registry, eventRepo, donationRepo, eventCache, log)

	if !methodSvc.HasAnyEnabled() {
		log.Warn().Msg("No donation method is fully configured, only bank transfer is available")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		MethodSvc:      methodSvc,
		IntentSvc:      intentSvc,
		WebhookSvc:     webhookSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: checkers,
		IdentitySecret: cfg.Identity.Secret,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
