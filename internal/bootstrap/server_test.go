package bootstrap

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/Domenick1991/flightsinfo/config"
	"github.com/Domenick1991/flightsinfo/internal/geo"
	"github.com/Domenick1991/flightsinfo/internal/logger"
	"github.com/Domenick1991/flightsinfo/internal/repository"
	"github.com/Domenick1991/flightsinfo/internal/service/flights"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
)

func TestServers_ShutdownOnCancel(t *testing.T) {
	cfg := &config.Config{
		HTTP: config.HTTPConfig{Address: "127.0.0.1:0"},
		GRPC: config.GRPCConfig{Address: "127.0.0.1:0"},
	}
	service := flights.NewFlightService(geo.NewHaversine(), repository.NewMemoryStore())
	servers := NewServers(cfg, service, logger.Discard())

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- servers.Serve(ctx, lis) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("servers did not stop")
	}
}

func TestLoggingInterceptor(t *testing.T) {
	interceptor := loggingInterceptor(logger.Discard())
	info := &grpc.UnaryServerInfo{FullMethod: "/flightsinfo.v1.FlightsService/ListFlights"}

	resp, err := interceptor(context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
		return "resp", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "resp", resp)
}
