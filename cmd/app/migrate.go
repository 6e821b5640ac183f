package main

import (
	"errors"

	"github.com/Domenick1991/flightsinfo/config"
	"github.com/Domenick1991/flightsinfo/internal/repository"
	"github.com/spf13/cobra"
)

func migrateCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the PostgreSQL schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, l, cleanup, err := loadEnv(*cfgPath)
			if err != nil {
				return err
			}
			defer func() { _ = cleanup() }()

			if cfg.Storage.Driver != config.StoragePostgres {
				return errors.New("migrate requires storage.driver postgres")
			}

			pool, err := connectPostgres(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			applied, err := repository.Migrate(cmd.Context(), pool)
			if err != nil {
				return err
			}
			for _, name := range applied {
				l.Infof("applied %s", name)
			}
			return nil
		},
	}
}
