package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/giftcard-connector/internal/application/services"
	"github.com/DanielPopoola/giftcard-connector/internal/config"
	"github.com/DanielPopoola/giftcard-connector/internal/infrastructure/giftcard"
	"github.com/DanielPopoola/giftcard-connector/internal/infrastructure/metrics"
	"github.com/DanielPopoola/giftcard-connector/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/giftcard-connector/internal/infrastructure/session"
	"github.com/DanielPopoola/giftcard-connector/internal/interfaces/rest"
	"github.com/DanielPopoola/giftcard-connector/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/giftcard-connector/internal/interfaces/rest/middleware"
	"github.com/DanielPopoola/giftcard-connector/internal/telemetry"
	"github.com/DanielPopoola/giftcard-connector/internal/worker"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting giftcard connector",
		"port", cfg.Server.Port,
		"env", cfg.Primary.Env,
		"provider_mode", cfg.Provider.Mode,
		"log_level", cfg.Logger.Level,
	)

	ctx := context.Background()

	shutdownTracing, err := telemetry.Init(ctx, cfg.Telemetry, cfg.Primary)
	if err != nil {
		logger.Error("failed to initialize telemetry", "error", err)
		os.Exit(1)
	}

	db, err := postgres.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	redisClient, err := session.NewClient(ctx, &cfg.Redis)
	if err != nil {
		logger.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	registry := metrics.NewRegistry()
	m := metrics.New(registry)

	provider, err := giftcard.NewProvider(cfg.Provider, cfg.Breaker, m, logger)
	if err != nil {
		logger.Error("failed to configure gift card provider", "error", err)
		os.Exit(1)
	}

	cartRepo := postgres.NewCartRepository(db)
	paymentRepo := postgres.NewPaymentRepository(db)
	sessionStore := session.NewStore(redisClient, cfg.Redis.KeyPrefix, logger)

	giftCardService := services.NewGiftCardService(
		cartRepo,
		paymentRepo,
		provider,
		services.GiftCardConfig{
			Currency:         cfg.Provider.Currency,
			PaymentInterface: cfg.Provider.PaymentInterface,
		},
		logger,
	)

	statusService := services.NewStatusService(
		[]services.HealthCheck{
			services.ProviderHealthCheck(provider),
			{Name: "postgres permissions", Check: db.CheckPermissions},
			{Name: "redis session store", Check: sessionStore.Ping},
		},
		services.StatusConfig{
			Timeout: cfg.Health.Timeout,
			Version: cfg.Primary.Version,
			Metadata: map[string]string{
				"name":         cfg.Primary.ServiceName,
				"env":          cfg.Primary.Env,
				"providerMode": cfg.Provider.Mode,
				"currency":     cfg.Provider.Currency,
			},
		},
		m,
		logger,
	)

	validator, err := rest.NewSchemaValidator(ctx)
	if err != nil {
		logger.Error("failed to load openapi document", "error", err)
		os.Exit(1)
	}

	h := handlers.NewHandlers(giftCardService, statusService, validator, logger)

	mux := http.NewServeMux()
	h.RegisterRoutes(mux, middleware.Session(sessionStore, logger))
	mux.Handle("GET /metrics", metrics.Handler(registry))

	handler := middleware.Recovery(logger)(mux)
	handler = middleware.Metrics(m)(handler)
	handler = middleware.Timeout(cfg.Server.RequestTimeout)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = otelhttp.NewHandler(handler, cfg.Primary.ServiceName)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	reconciler := worker.NewReconciler(
		paymentRepo,
		m,
		cfg.Worker.Interval,
		cfg.Worker.OrphanAge,
		cfg.Worker.BatchSize,
		logger,
	)

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	go reconciler.Start(workerCtx)

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	cancelWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("failed to flush traces", "error", err)
	}

	logger.Info("server exited")
}
