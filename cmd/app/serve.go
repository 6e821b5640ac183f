package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/flightsinfo/internal/bootstrap"
	"github.com/Domenick1991/flightsinfo/internal/cache"
	"github.com/Domenick1991/flightsinfo/internal/geo"
	"github.com/Domenick1991/flightsinfo/internal/kafka"
	"github.com/Domenick1991/flightsinfo/internal/service/flights"
	"github.com/spf13/cobra"
)

func serveCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP and gRPC servers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, l, cleanup, err := loadEnv(*cfgPath)
			if err != nil {
				return err
			}
			defer func() { _ = cleanup() }()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			store, err := openStore(ctx, cfg, l)
			if err != nil {
				return err
			}

			opts := []flights.FlightServiceOption{flights.WithLogger(l)}

			if cfg.Redis.Enabled {
				redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Flights.ReferenceCacheTTL)*time.Second)
				defer func() { _ = redisCache.Close() }()
				opts = append(opts, flights.WithReferenceCache(redisCache))
			}

			if len(cfg.Kafka.Brokers) > 0 {
				producer := kafka.NewProducer(cfg.Kafka.Brokers, l)
				defer func() { _ = producer.Close() }()
				if err := producer.CheckConnection(ctx); err != nil {
					l.Warnf("kafka unreachable, flight events will be dropped until it recovers: %v", err)
				}
				opts = append(opts, flights.WithEvents(producer, cfg.Kafka.FlightEventsTopic))
			}

			service := flights.NewFlightService(geo.NewHaversine(), store, opts...)
			defer service.Shutdown()

			l.Infof("storage driver %s", cfg.Storage.Driver)
			return bootstrap.Run(ctx, cfg, service, l)
		},
	}
}
