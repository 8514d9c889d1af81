package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"servicelog-backend/internal/api/grpc/interceptor"
	httpapi "servicelog-backend/internal/api/http"
	"servicelog-backend/internal/config"
	"servicelog-backend/internal/jobs"
	"servicelog-backend/internal/logger"
	"servicelog-backend/internal/metrics"
	"servicelog-backend/internal/reminder"
	"servicelog-backend/internal/repository/postgres"
	"servicelog-backend/internal/scheduler"
	"servicelog-backend/internal/security"
	"servicelog-backend/internal/service"
	"servicelog-backend/internal/storage"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Service Log Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress(), "health_address", cfg.GetHealthAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	logger.Debug("Connecting to database...", "connection_string", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database))
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if cfg.Database.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	}

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Storage
	logger.Info("Using local document storage", "upload_dir", cfg.Storage.UploadDir)
	documentStore, err := storage.NewLocalStorage(cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Initialize Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder, err := metrics.NewPrometheusRecorder("", registry)
	if err != nil {
		log.Fatalf("Failed to register metrics: %v", err)
	}

	// Initialize Services
	clock := reminder.SystemClock{}
	documentSvc := service.NewDocumentService(documentStore, cfg.MaxFileSizeBytes(), clock, recorder)
	vehicleSvc := service.NewVehicleService(store.VehicleRepository, clock)
	recordSvc := service.NewServiceRecordService(store.VehicleRepository, store.ServiceRecordRepository, store, documentSvc, clock, recorder)
	reminderSvc := service.NewReminderService(store.VehicleRepository, store.ReminderRepository, clock)
	statsSvc := service.NewStatsService(store.VehicleRepository, store.ServiceRecordRepository, store.ReminderRepository, clock)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience)

	// Set up HTTP server
	router := httpapi.NewRouter(httpapi.Handlers{
		Vehicles:       httpapi.NewVehicleHandler(vehicleSvc),
		ServiceRecords: httpapi.NewServiceRecordHandler(recordSvc),
		Reminders:      httpapi.NewReminderHandler(reminderSvc),
		Documents:      httpapi.NewDocumentHandler(documentSvc, cfg.MaxFileSizeBytes()),
		Stats:          httpapi.NewStatsHandler(statsSvc),
		Metrics:        promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}, tokenManager, recorder.Middleware)

	httpServer := &http.Server{
		Addr:              cfg.GetServerAddress(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Set up gRPC health server
	lis, err := net.Listen("tcp", cfg.GetHealthAddress())
	if err != nil {
		logger.Error("Failed to listen", "error", err, "address", cfg.GetHealthAddress())
		log.Fatalf("Failed to listen: %v", err)
	}
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(interceptor.Unary()),
		grpc.ChainStreamInterceptor(interceptor.Stream()),
	)
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	// Register reflection service for grpcurl
	reflection.Register(grpcServer)

	// Initialize Scheduler
	jobRunner := jobs.NewJobRunner(documentStore, store.ServiceRecordRepository, cfg, clock)
	cronScheduler, err := scheduler.NewScheduler(jobRunner)
	if err != nil {
		log.Fatalf("Failed to initialize scheduler: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("HTTP server listening", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("gRPC health server listening", "address", cfg.GetHealthAddress())
		if err := grpcServer.Serve(lis); err != nil {
			return fmt.Errorf("grpc server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return watchDatabase(ctx, db, healthServer)
	})

	cronScheduler.Start()

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down...")
		healthServer.Shutdown()
		cronScheduler.Stop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		err := httpServer.Shutdown(shutdownCtx)
		grpcServer.GracefulStop()
		return err
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped. Goodbye!")
}

// watchDatabase reports SERVING while the database answers pings.
func watchDatabase(ctx context.Context, db *sql.DB, hs *health.Server) error {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	status := healthpb.HealthCheckResponse_SERVING
	hs.SetServingStatus("", status)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			err := db.PingContext(pingCtx)
			cancel()

			next := healthpb.HealthCheckResponse_SERVING
			if err != nil {
				next = healthpb.HealthCheckResponse_NOT_SERVING
			}
			if next != status {
				logger.Warn("Database health changed", "status", next.String(), "error", err)
				status = next
				hs.SetServingStatus("", status)
			}
		}
	}
}
