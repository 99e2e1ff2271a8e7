package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"coffee/api/grpcserver"
	"coffee/config"
	"coffee/infra/kafka"
	"coffee/infra/logging"
	"coffee/infra/tracing"
	"coffee/jobs/broadcaster"
	"coffee/registry"
	"coffee/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "coffee server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ---------------- Tracing ----------------

	shutdownTracing, err := tracing.Init(ctx, "coffee", cfg.OTLPEndpoint, log)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Warn("tracing shutdown", zap.Error(err))
		}
	}()

	// ---------------- Registry ----------------

	reg, err := registry.Open(cfg.RegistryBackend, log)
	if err != nil {
		return fmt.Errorf("registry: %w", err)
	}
	defer func() {
		if sum, err := reg.Summary(); err != nil {
			log.Warn("registry summary", zap.Error(err))
		} else {
			log.Info("registry stopped",
				zap.Uint64("issued", sum.Issued),
				zap.Int("stored", sum.Stored),
			)
		}
		if err := reg.Close(); err != nil {
			log.Warn("registry close", zap.Error(err))
		}
	}()

	// ---------------- Events ----------------

	var events service.Publisher = service.NopPublisher{}
	bcDone := make(chan struct{})
	bcCtx, stopBroadcaster := context.WithCancel(context.Background())
	defer stopBroadcaster()

	if cfg.EventsDriver != "" {
		sink, err := kafka.NewSink(cfg.EventsDriver, cfg.KafkaBrokers, cfg.EventsTopic)
		if err != nil {
			return fmt.Errorf("events: %w", err)
		}
		bc := broadcaster.New(sink, cfg.EventsBuffer, log)
		events = bc

		go func() {
			defer close(bcDone)
			bc.Run(bcCtx)
		}()
		defer func() {
			stopBroadcaster()
			<-bcDone
			st := bc.Stats()
			log.Info("events stopped",
				zap.Uint64("published", st.Published),
				zap.Uint64("dropped", st.Dropped),
				zap.Uint64("failed", st.Failed),
			)
			if err := bc.Close(); err != nil {
				log.Warn("events sink close", zap.Error(err))
			}
		}()
		log.Info("events enabled",
			zap.String("driver", cfg.EventsDriver),
			zap.Strings("brokers", cfg.KafkaBrokers),
			zap.String("topic", cfg.EventsTopic),
		)
	}

	// ---------------- Service ----------------

	svc := service.NewOrderService(reg, events, log.Named("orders"))

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.GRPCAddr, err)
	}

	gs, hs := grpcserver.NewGRPCServer(grpcserver.NewServer(svc, log), log.Named("grpc"))

	serveErr := make(chan error, 1)
	go func() { serveErr <- gs.Serve(lis) }()

	log.Info("coffee server listening",
		zap.String("addr", lis.Addr().String()),
		zap.String("registry", cfg.RegistryBackend),
	)

	select {
	case err := <-serveErr:
		return fmt.Errorf("grpc serve: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	hs.Shutdown()

	drained := make(chan struct{})
	go func() {
		gs.GracefulStop()
		close(drained)
	}()
	select {
	case <-drained:
	case <-time.After(cfg.ShutdownTimeout):
		log.Warn("graceful stop timed out, forcing", zap.Duration("timeout", cfg.ShutdownTimeout))
		gs.Stop()
		<-drained
	}

	log.Info("coffee server stopped")
	return nil
}
