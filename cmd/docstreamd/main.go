package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/docstream/docstream/constants"
	v1 "github.com/docstream/docstream/gen/proto/docstream/v1"
	"github.com/docstream/docstream/internal/common"
	"github.com/docstream/docstream/internal/export"
	"github.com/docstream/docstream/internal/extraction/anthropic"
	"github.com/docstream/docstream/internal/normalize"
	"github.com/docstream/docstream/internal/pipeline"
	repo "github.com/docstream/docstream/internal/repository"
	svc "github.com/docstream/docstream/internal/server"
	"github.com/docstream/docstream/internal/storage"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	constants.SetFreeTierLimit(cfg.Plans.FreeMonthlyLimit)

	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	store, err := storage.NewStore(cfg.Storage.UploadDir, cfg.Storage.MaxFileSizeMB, logger)
	if err != nil {
		logger.Error("failed to initialize upload storage", "dir", cfg.Storage.UploadDir, "error", err)
		os.Exit(1)
	}

	usersRepo := repo.NewUserRepository(entc, logger)
	documentsRepo := repo.NewDocumentRepository(entc, logger)
	usageRepo := repo.NewUsageRepository(entc, logger)

	extractor := anthropic.NewClient(anthropic.Config{
		APIKey:    cfg.Extraction.APIKey,
		Model:     cfg.Extraction.Model,
		MaxTokens: cfg.Extraction.MaxTokens,
		Timeout:   cfg.Extraction.Timeout,
	}, logger)

	processor := pipeline.NewProcessor(
		store, usersRepo, documentsRepo, usageRepo,
		extractor, normalize.New(logger), logger,
	)

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	v1.RegisterUsersServiceServer(grpcServer, svc.NewUsersService(usersRepo, usageRepo, logger))
	v1.RegisterDocumentsServiceServer(grpcServer, svc.NewDocumentsService(processor, documentsRepo, store, logger))
	v1.RegisterExportServiceServer(grpcServer, svc.NewExportService(export.NewService(documentsRepo, logger), logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("docstream listening", "addr", addr, "model", cfg.Extraction.Model)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()
}
