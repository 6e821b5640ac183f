package main

import (
	"errors"
	"time"

	"github.com/Domenick1991/flightsinfo/config"
	"github.com/Domenick1991/flightsinfo/internal/cache"
	"github.com/Domenick1991/flightsinfo/internal/repository"
	"github.com/spf13/cobra"
)

func seedCmd(cfgPath *string) *cobra.Command {
	var file string

	c := &cobra.Command{
		Use:   "seed",
		Short: "Load airports and aircraft from a YAML file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, l, cleanup, err := loadEnv(*cfgPath)
			if err != nil {
				return err
			}
			defer func() { _ = cleanup() }()

			if cfg.Storage.Driver != config.StoragePostgres {
				return errors.New("seed requires storage.driver postgres; the memory store reads storage.seed_path on serve")
			}
			if file == "" {
				file = cfg.Storage.SeedPath
			}
			if file == "" {
				return errors.New("no seed file: pass --file or set storage.seed_path")
			}

			seed, err := repository.LoadSeed(file)
			if err != nil {
				return err
			}

			pool, err := connectPostgres(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			n, err := seed.Apply(cmd.Context(), repository.NewPGStore(pool))
			if err != nil {
				return err
			}
			l.Infof("upserted %d reference records from %s", n, file)

			if cfg.Redis.Enabled {
				redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Flights.ReferenceCacheTTL)*time.Second)
				defer func() { _ = redisCache.Close() }()
				if err := redisCache.InvalidateReference(cmd.Context()); err != nil {
					l.Warnf("invalidate reference cache: %v", err)
				}
			}
			return nil
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "seed file (defaults to storage.seed_path)")
	return c
}
