package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Domenick1991/flightsinfo/config"
	"github.com/Domenick1991/flightsinfo/internal/logger"
	"github.com/Domenick1991/flightsinfo/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:          "flightsinfo",
		Short:        "Flight catalog service",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", defaultConfigPath(), "path to the YAML config (env CONFIG_PATH)")
	cmd.AddCommand(serveCmd(&cfgPath), migrateCmd(&cfgPath), seedCmd(&cfgPath))
	return cmd
}

func defaultConfigPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return "config.yaml"
}

// loadEnv reads the config and builds the process logger. The returned cleanup flushes the log file.
func loadEnv(cfgPath string) (*config.Config, *log.Logger, func() error, error) {
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}
	l, cleanup, err := logger.Setup("flightsinfo", cfg.Log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("setup logger: %w", err)
	}
	return cfg, l, cleanup, nil
}

func connectPostgres(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}

// openStore returns the configured flight store. A memory store is filled from storage.seed_path when set.
func openStore(ctx context.Context, cfg *config.Config, l *log.Logger) (repository.FlightStore, error) {
	if cfg.Storage.Driver == config.StorageMemory {
		store := repository.NewMemoryStore()
		if cfg.Storage.SeedPath != "" {
			seed, err := repository.LoadSeed(cfg.Storage.SeedPath)
			if err != nil {
				return nil, err
			}
			n, err := seed.Apply(ctx, store)
			if err != nil {
				return nil, err
			}
			l.Infof("memory store seeded with %d reference records", n)
		}
		return store, nil
	}

	pool, err := connectPostgres(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return repository.NewPGStore(pool), nil
}
