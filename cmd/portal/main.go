package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"cyberstudy/portal/internal/cache"
	"cyberstudy/portal/internal/config"
	"cyberstudy/portal/internal/handlers"
	"cyberstudy/portal/internal/jobs"
	"cyberstudy/portal/internal/log"
	"cyberstudy/portal/internal/server"
	"cyberstudy/portal/internal/session"
	"cyberstudy/portal/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := log.New(cfg.Environment)

	ctx := context.Background()

	userStore := store.NewUserStore(cfg.Store.Path)
	if cfg.Demo.Seed {
		if err := userStore.SeedDemoAccounts(); err != nil {
			logger.Fatal().Err(err).Msg("failed to seed demo accounts")
		}
		logger.Info().Msg("demo accounts provisioned")
	}

	var (
		sessionStore session.Store
		memoryStore  *session.MemoryStore
	)
	switch cfg.Session.Backend {
	case "redis":
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect redis")
		}
		defer redisClient.Close()
		sessionStore = session.NewRedisStore(redisClient)
	default:
		memoryStore = session.NewMemoryStore()
		sessionStore = memoryStore
	}

	sessions := session.NewManager(sessionStore, cfg.Session.DefaultTTL, cfg.Session.RememberTTL)

	handlerSet := handlers.NewHandlerSet(logger, userStore, sessions, cfg)
	httpServer := server.NewHTTPServer(cfg, logger, handlerSet)

	scheduler := jobs.NewScheduler(memoryStore, logger)
	if err := scheduler.Start(); err != nil {
		logger.Error().Err(err).Msg("scheduler start failed")
	}

	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	waitForShutdown(logger, httpServer, scheduler)
}

func waitForShutdown(logger zerolog.Logger, srv *server.HTTPServer, scheduler *jobs.Scheduler) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
		if err := srv.Shutdown(context.Background()); err != nil {
			logger.Error().Err(err).Msg("forced shutdown failed")
		}
	}

	if scheduler != nil {
		scheduler.Stop()
	}

	logger.Info().Msg("server exited cleanly")
}
