package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aevon-lab/interval/internal/calc"
	corecfg "github.com/aevon-lab/interval/internal/core/config"
	"github.com/aevon-lab/interval/internal/core/schedule"
	"github.com/aevon-lab/interval/internal/core/storage"
	"github.com/aevon-lab/interval/internal/core/storage/postgres"
	"github.com/aevon-lab/interval/internal/metrics"
	"github.com/aevon-lab/interval/internal/migrations"
	"github.com/aevon-lab/interval/internal/scheduling"
	"github.com/aevon-lab/interval/internal/server"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file")
	flag.Parse()

	// 0. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded config",
		"database", cfg.Database.Type,
		"horizon", cfg.Schedules.HorizonInterval().String(),
		"workers", cfg.Evaluator.WorkerCount)

	// 2. Initialize Storage
	store, db, closeStore, err := openStore(cfg.Database)
	if err != nil {
		slog.Error("Failed to initialize schedule store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	// 3. Load and seed schedule definitions
	defs, err := schedule.LoadDefinitions(cfg.Schedules.ConfigDir)
	if err != nil {
		slog.Error("Failed to load schedule definitions", "dir", cfg.Schedules.ConfigDir, "error", err)
		os.Exit(1)
	}

	var rec *metrics.Recorder
	if cfg.Metrics.Enabled {
		rec = metrics.New()
	}

	schedulingSvc := scheduling.NewService(store, cfg.Schedules.MaxOccurrences, cfg.Schedules.HorizonInterval(), rec)
	if err := schedulingSvc.Seed(context.Background(), defs); err != nil {
		slog.Error("Failed to seed schedules", "error", err)
		os.Exit(1)
	}
	slog.Info("Schedule definitions loaded", "dir", cfg.Schedules.ConfigDir, "count", len(defs))

	// 4. Initialize interval API
	calcSvc := calc.NewService(cfg.Evaluator.WorkerCount, cfg.Evaluator.MaxBatchSize, cfg.Server.MaxBodySizeMB, rec)

	// 5. Initialize Server
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), db, cfg.Server.Mode)
	calcSvc.RegisterRoutes(srv.Engine)
	schedulingSvc.RegisterRoutes(srv.Engine)
	if rec != nil {
		srv.MountMetrics(cfg.Metrics.Path, rec.Handler())
	}

	// 6. Start
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}

// openStore returns the configured schedule store. db is nil for the
// in-memory store.
func openStore(cfg corecfg.DatabaseConfig) (storage.ScheduleStore, *sql.DB, func(), error) {
	if cfg.Type == "memory" {
		slog.Info("Using in-memory schedule store")
		return storage.NewMemoryStore(), nil, func() {}, nil
	}

	// Migrations run before the adapter prepares statements against the
	// schedules table.
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open database for migrations: %w", err)
	}
	err = migrations.RunMigrations(db, cfg.AutoMigrate)
	db.Close()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	adapter, err := postgres.NewAdapter(cfg.DSN, cfg.MaxOpenConns, cfg.MaxIdleConns)
	if err != nil {
		return nil, nil, nil, err
	}
	return adapter, adapter.DB(), func() { adapter.Close() }, nil
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
