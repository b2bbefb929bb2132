// Command chat-delivery starts the real-time delivery gRPC server.
package main

import (
	"context"
	"flag"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	pb "github.com/rcrwhyg/chat/gen/go/delivery/v1"
	"github.com/rcrwhyg/chat/internal/bridge"
	"github.com/rcrwhyg/chat/internal/config"
	"github.com/rcrwhyg/chat/internal/dispatch"
	"github.com/rcrwhyg/chat/internal/limiter"
	"github.com/rcrwhyg/chat/internal/migrate"
	"github.com/rcrwhyg/chat/internal/registry"
	"github.com/rcrwhyg/chat/internal/repository/postgres"
	"github.com/rcrwhyg/chat/internal/resume"
	"github.com/rcrwhyg/chat/internal/router"
	grpcserver "github.com/rcrwhyg/chat/internal/server/grpc"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// main loads configuration, runs migrations, and starts the delivery pipeline
// (bridge -> router -> dispatcher) next to the gRPC server.
func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	// Flags override the environment for the common knobs.
	addr := flag.String("addr", cfg.Addr, "listen address")
	dsn := flag.String("dsn", cfg.DSN, "PostgreSQL DSN")
	jwtKey := flag.String("jwt-key", cfg.JWTKey, "HS256 verification key (required)")
	dev := flag.Bool("dev", cfg.Dev, "enable server reflection (dev only)")
	flag.Parse()

	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", *addr),
	)

	if *jwtKey == "" {
		logger.Fatal("missing jwt verification key (--jwt-key)")
	}

	// Context with OS signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := migrate.Up(ctx, *dsn); err != nil {
		logger.Fatal("migrate up", zap.Error(err))
	}

	// DB pool and repositories
	db, err := postgres.New(ctx, *dsn)
	if err != nil {
		logger.Fatal("connect postgres", zap.Error(err))
	}
	defer db.Close()

	chatRepo := postgres.NewChatRepo(db)
	eventRepo := postgres.NewEventRepo(db)
	messageRepo := postgres.NewMessageRepo(db)
	cursorRepo := postgres.NewCursorRepo(db)

	// Delivery pipeline
	reg := registry.New(cfg.ConnBuffer, logger)
	listener := bridge.New(*dsn, eventRepo, cfg.PollInterval, logger)
	rtr := router.New(chatRepo, eventRepo, logger)
	disp := dispatch.New(reg, cursorRepo, cfg.DispatchWorkers, logger)
	rm := resume.New(chatRepo, eventRepo, messageRepo, cursorRepo, cfg.ResumeWindow, cfg.ResumeBatch, logger)

	// gRPC server with interceptors
	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			grpcserver.RecoverUnary(logger),
			grpcserver.LoggingUnary(logger),
		),
		grpc.ChainStreamInterceptor(
			grpcserver.RecoverStream(logger),
			grpcserver.LoggingStream(logger),
		),
	}
	if cfg.TLSCert != "" {
		creds, err := credentials.NewServerTLSFromFile(cfg.TLSCert, cfg.TLSKey)
		if err != nil {
			logger.Fatal("failed to load TLS cert/key", zap.Error(err))
		}
		opts = append(opts, grpc.Creds(creds))
	}
	s := grpc.NewServer(opts...)

	app := grpcserver.New(reg, rm, cursorRepo, eventRepo, limiter.New(cfg.MaxStreamsPerUser), []byte(*jwtKey), logger)
	pb.RegisterDeliveryServiceServer(s, app)

	// Health & reflection (dev)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	if *dev {
		reflection.Register(s)
	}

	lis, err := net.Listen("tcp", *addr)
	if err != nil {
		logger.Fatal("listen", zap.Error(err))
	}

	errCh := make(chan error, 1)
	go func() {
		// A bridge failure means no new events can be observed: flip health
		// and bring the process down rather than serve a silently stale feed.
		if err := listener.Run(ctx); err != nil {
			hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
			errCh <- err
		}
	}()
	go func() { _ = rtr.Run(ctx, listener.Notes()) }()
	go func() { _ = disp.Run(ctx, rtr.Envelopes()) }()
	go func() {
		logger.Info("listening", zap.String("addr", *addr))
		errCh <- s.Serve(lis)
	}()

	// Wait for stop
	select {
	case <-ctx.Done():
		reg.CloseAll()
		done := make(chan struct{})
		go func() {
			s.GracefulStop()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			s.Stop()
		}
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("shutdown complete")
}
