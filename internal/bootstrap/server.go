package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Domenick1991/flightsinfo/api"
	"github.com/Domenick1991/flightsinfo/config"
	flightsapi "github.com/Domenick1991/flightsinfo/internal/api/flights_service_api"
	"github.com/Domenick1991/flightsinfo/internal/service/flights"
	"github.com/labstack/gommon/log"
	"google.golang.org/grpc"
)

const shutdownTimeout = 5 * time.Second

type Servers struct {
	grpcServer *grpc.Server
	httpServer *http.Server
	logger     *log.Logger
}

// Run starts gRPC and HTTP servers and blocks until ctx is canceled or a server fails.
func Run(ctx context.Context, cfg *config.Config, flightSvc flights.FlightUseCase, logger *log.Logger) error {
	s := NewServers(cfg, flightSvc, logger)

	lis, err := net.Listen("tcp", cfg.GRPC.Address)
	if err != nil {
		return fmt.Errorf("listen gRPC %s: %w", cfg.GRPC.Address, err)
	}
	return s.Serve(ctx, lis)
}

func NewServers(cfg *config.Config, flightSvc flights.FlightUseCase, logger *log.Logger) *Servers {
	grpcSrv := grpc.NewServer(grpc.UnaryInterceptor(loggingInterceptor(logger)))
	flightsapi.RegisterFlightsServiceServer(grpcSrv, flightsapi.NewServer(flightSvc))

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           api.NewRouter(flightSvc, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &Servers{
		grpcServer: grpcSrv,
		httpServer: httpSrv,
		logger:     logger,
	}
}

// Serve runs gRPC on lis and HTTP on the configured address until ctx is done.
func (s *Servers) Serve(ctx context.Context, lis net.Listener) error {
	errCh := make(chan error, 2)

	go func() {
		s.logger.Infof("gRPC listening on %s", lis.Addr())
		errCh <- s.grpcServer.Serve(lis)
	}()

	go func() {
		s.logger.Infof("HTTP listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		s.grpcServer.Stop()
		_ = s.httpServer.Close()
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down servers")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.grpcServer.GracefulStop()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func loggingInterceptor(logger *log.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		if err != nil {
			logger.Warnf("%s failed after %s: %v", info.FullMethod, time.Since(start), err)
			return resp, err
		}
		logger.Debugf("%s ok in %s", info.FullMethod, time.Since(start))
		return resp, nil
	}
}
