package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/flightsinfo/config"
	"github.com/Domenick1991/flightsinfo/internal/audit"
	"github.com/Domenick1991/flightsinfo/internal/kafka"
	"github.com/Domenick1991/flightsinfo/internal/logger"
	"github.com/labstack/gommon/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	l, cleanup, err := logger.Setup("flightsinfo-worker", cfg.Log)
	if err != nil {
		log.Fatalf("setup logger: %v", err)
	}
	defer func() { _ = cleanup() }()

	if len(cfg.Kafka.Brokers) == 0 {
		l.Fatal("kafka.brokers is empty, nothing to consume")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.FlightEventsTopic)
	defer consumer.Close()

	recorder := audit.NewRecorder(l)

	l.Infof("consuming %s as %s", cfg.Kafka.FlightEventsTopic, cfg.Kafka.GroupID)
	err = consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
		event, err := kafka.DecodeFlightEvent(msg)
		if err != nil {
			l.Warnf("skip undecodable message at offset %d: %v", msg.Offset, err)
			return nil
		}
		return recorder.Record(ctx, event)
	})
	if err != nil && ctx.Err() == nil {
		l.Errorf("consumer stopped: %v", err)
		return
	}
	l.Info("worker stopped")
}
