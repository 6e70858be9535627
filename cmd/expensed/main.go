package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	expensespb "github.com/oghenetejiriorukpegmail/expense-tracker/gen/proto/expenses/v1"
	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/async"
	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/common"
	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/export"
	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/pipeline"
	repo "github.com/oghenetejiriorukpegmail/expense-tracker/internal/repository"
	svc "github.com/oghenetejiriorukpegmail/expense-tracker/internal/server"
	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/storage"
	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/vision"
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	taskRepo := repo.NewTaskRepository(entc, logger)
	expenseRepo := repo.NewExpenseRepository(entc, logger)
	mileageRepo := repo.NewMileageRepository(entc, logger)

	store := storage.NewSupabaseGateway(cfg.Storage, logger)

	registry := vision.NewRegistry(cfg.Vision, nil, logger)
	extractor := vision.NewService(registry, logger)

	exporter := export.NewService(expenseRepo, store, logger)
	dispatcher := pipeline.NewDispatcher(logger, taskRepo, expenseRepo, mileageRepo, store, extractor, exporter)

	queue := async.NewDispatchQueue(dispatcher, logger,
		async.WithWorkers(cfg.Queue.Workers),
		async.WithQueueSize(cfg.Queue.Size),
		async.WithProcessTimeout(cfg.Queue.DispatchTimeout),
	)

	taskService := svc.NewTaskService(taskRepo, dispatcher, logger)
	expensespb.RegisterTasksServiceServer(grpcServer, taskService)
	uploadService := svc.NewUploadService(taskRepo, expenseRepo, mileageRepo, store, queue, logger)
	expensespb.RegisterUploadsServiceServer(grpcServer, uploadService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	logger.Info("expense-tracker listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
