package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/osse101/SideQuest_Go/docs"
	"github.com/osse101/SideQuest_Go/internal/bootstrap"
	"github.com/osse101/SideQuest_Go/internal/config"
	"github.com/osse101/SideQuest_Go/internal/database"
	"github.com/osse101/SideQuest_Go/internal/scheduler"
	"github.com/osse101/SideQuest_Go/internal/server"
	"github.com/osse101/SideQuest_Go/internal/worker"
)

const shutdownTimeout = 15 * time.Second

// @title SideQuest API
// @version 1.0
// @description Daily quest tracker with streaks, stats and achievements.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to setup logger", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	warnings, err := config.ValidateEnvWithWarnings()
	switch {
	case err != nil && cfg.IsProduction():
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	case err != nil:
		slog.Warn("Environment incomplete; continuing with defaults", "error", err)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}


	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("SideQuest exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	dbPool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolConfig{
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdleTime: cfg.DBMaxConnIdleTime,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
	})
	if err != nil {
		return err
	}
	defer dbPool.Close()

	if cfg.AutoMigrate {
		if err := database.Migrate(ctx, dbPool); err != nil {
			return err
		}
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}

	repos := bootstrap.InitializeRepositories(dbPool)
	services, err := bootstrap.InitializeServices(cfg, repos, bus)
	if err != nil {
		return err
	}

	// The relay outlives ctx cancellation until GracefulShutdown stops it.
	rt, err := bootstrap.SetupRealtime(context.WithoutCancel(ctx), cfg)
	if err != nil {
		return err
	}

	bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:     bus,
		StatsService: services.Stats,
		Realtime:     rt.Dispatcher,
	})

	pool := worker.NewPool(cfg.WorkerCount, worker.DefaultQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(cfg.SessionCleanupInterval, worker.NewSessionCleanupJob(services.Auth, publisher), true)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		Version:        cfg.Version,
		TrustedProxies: cfg.TrustedProxies,
		SecureCookies:  cfg.IsProduction(),
	}, server.Services{
		DB:       dbPool,
		Auth:     services.Auth,
		Quests:   services.Quests,
		Daily:    services.Daily,
		Stats:    services.Stats,
		Settings: services.Settings,
		Export:   services.Export,
		SSEHub:   rt.Hub,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Scheduler:          sched,
		WorkerPool:         pool,
		Realtime:           rt,
		ResilientPublisher: publisher,
	})
	return runErr
}
