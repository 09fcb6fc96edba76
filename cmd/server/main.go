package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hoopgrid/hoopgrid-server/internal/battle"
	"github.com/hoopgrid/hoopgrid-server/internal/broadcast"
	"github.com/hoopgrid/hoopgrid-server/internal/config"
	"github.com/hoopgrid/hoopgrid-server/internal/oracle"
	"github.com/hoopgrid/hoopgrid-server/internal/server"
	"github.com/hoopgrid/hoopgrid-server/internal/store"
)

var (
	configPath = flag.String("config", "", "path to configuration file")
	version    = "dev" // set via ldflags during build
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting hoopgrid battle server",
		zap.String("version", version),
		zap.String("address", cfg.Server.Address),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Battle store: Postgres when a DSN is configured, in-memory otherwise.
	var battleStore battle.Store
	if cfg.Database.DSN != "" {
		pg, pgErr := store.NewPostgres(ctx, cfg.Database.DSN, logger)
		if pgErr != nil {
			logger.Fatal("failed to connect battle store", zap.Error(pgErr))
		}
		defer pg.Close()
		battleStore = pg
	} else {
		logger.Warn("no database configured, battles are held in memory only")
		battleStore = store.NewMemory()
	}

	hub := broadcast.NewHub(logger)
	gridOracle := oracle.NewService(logger)

	rules := battle.Rules{
		TurnClock:         cfg.Battle.TurnClock,
		GraceWindow:       cfg.Battle.GraceWindow,
		InactivityTimeout: cfg.Battle.InactivityTimeout,
		MaxRounds:         cfg.Battle.MaxRounds,
	}
	mgr := battle.NewManager(battleStore, gridOracle, hub, rules, logger)
	logger.Info("battle manager initialized",
		zap.Duration("turn_clock", rules.TurnClock),
		zap.Int("max_rounds", rules.MaxRounds),
	)

	// Retention sweep: old battles are deleted after a fixed age; the core
	// never assumes a session is immortal once finished.
	sched, err := gocron.NewScheduler()
	if err != nil {
		logger.Fatal("failed to create scheduler", zap.Error(err))
	}
	_, err = sched.NewJob(
		gocron.DurationJob(cfg.Battle.CleanupInterval),
		gocron.NewTask(func() {
			removed, cleanupErr := battleStore.DeleteOlderThan(ctx, cfg.Battle.RetentionAge)
			if cleanupErr != nil {
				logger.Error("battle cleanup failed", zap.Error(cleanupErr))
				return
			}
			if removed > 0 {
				logger.Info("stale battles removed", zap.Int64("count", removed))
			}
		}),
	)
	if err != nil {
		logger.Fatal("failed to schedule battle cleanup", zap.Error(err))
	}
	sched.Start()

	srv := server.New(mgr, hub, logger)
	httpServer := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: srv.Router(),
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("address", cfg.Server.Address))
		if serveErr := httpServer.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			logger.Error("HTTP server error", zap.Error(serveErr))
		}
	}()

	sig := <-sigChan
	logger.Info("received shutdown signal", zap.String("signal", sig.String()))

	logger.Info("shutting down gracefully...")
	cancel()

	if err := sched.Shutdown(); err != nil {
		logger.Warn("scheduler shutdown error", zap.Error(err))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP shutdown error", zap.Error(err))
	}

	logger.Info("hoopgrid battle server stopped")
}

// initLogger initializes the zap logger based on configuration
func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
