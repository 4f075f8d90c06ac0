package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appdelivery "github.com/andromeda/ordersync/internal/application/delivery"
	apppos "github.com/andromeda/ordersync/internal/application/pos"
	"github.com/andromeda/ordersync/internal/domain/delivery"
	"github.com/andromeda/ordersync/internal/infrastructure/bringg"
	"github.com/andromeda/ordersync/internal/infrastructure/cache"
	"github.com/andromeda/ordersync/internal/infrastructure/config"
	"github.com/andromeda/ordersync/internal/infrastructure/logger"
	"github.com/andromeda/ordersync/internal/infrastructure/messaging"
	"github.com/andromeda/ordersync/internal/infrastructure/persistence"
	"github.com/andromeda/ordersync/internal/infrastructure/telemetry"
	"github.com/andromeda/ordersync/internal/infrastructure/timezone"
	"github.com/andromeda/ordersync/internal/infrastructure/webhook"
	"github.com/andromeda/ordersync/internal/interfaces/http/handler"
	"github.com/andromeda/ordersync/internal/interfaces/http/middleware"
	"github.com/andromeda/ordersync/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.NewForEnvironment(cfg.App.Env, cfg.Log.Level, cfg.Log.Format, cfg.Log.Output)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting order sync service",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	ctx := context.Background()

	db, err := persistence.NewDatabase(&cfg.Database, log, logger.MapGormLogLevel(cfg.Log.Level))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	meters, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.MetricsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ExportInterval:    cfg.Telemetry.ExportInterval,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize metrics", zap.Error(err))
	}
	defer func() {
		_ = meters.Shutdown(context.Background())
	}()

	clock, err := timezone.NewConverter(cfg.Timezone.Location)
	if err != nil {
		log.Fatal("Failed to load timezone", zap.Error(err))
	}

	// Repositories
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	storeRepo := persistence.NewGormStoreRepository(db.DB)
	translationRepo := persistence.NewGormTranslationRepository(db.DB)
	settingsRepo := persistence.NewGormBringgSettingsRepository(db.DB)

	// Outbound adapters
	forwarder := webhook.NewForwarder(webhook.Config{
		BaseAddress:      cfg.Webhook.BaseAddress,
		Timeout:          cfg.Webhook.Timeout,
		RateLimit:        cfg.Webhook.RateLimit,
		Burst:            cfg.Webhook.Burst,
		MaxResponseBytes: cfg.Webhook.MaxResponseBytes,
	}, log)
	taskClient := bringg.NewClient(cfg.Bringg.APIURL, cfg.Bringg.Timeout, log)

	resolver := appdelivery.NewResolver(orderRepo, storeRepo, log)
	syncOpts := []appdelivery.SynchronizerOption{}

	if cfg.Webhook.DedupeEnabled {
		dedupe := cache.NewDedupeStore(ctx, cfg.Redis, log)
		defer func() {
			_ = dedupe.Close()
		}()
		syncOpts = append(syncOpts, appdelivery.WithDeduplication(dedupe, cfg.Webhook.DedupeTTL))
	}

	if cfg.RabbitMQ.Enabled {
		publisher, err := messaging.Dial(messaging.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
		}, log)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ", zap.Error(err))
		}
		defer func() {
			_ = publisher.Close()
		}()
		syncOpts = append(syncOpts, appdelivery.WithStatusPublisher(publisher))
	}

	deliveryMetrics, err := telemetry.NewDeliveryMetrics(meters.Meter("ordersync.delivery"))
	if err != nil {
		log.Fatal("Failed to create delivery metrics", zap.Error(err))
	}
	syncOpts = append(syncOpts, appdelivery.WithEventRecorder(deliveryMetrics))

	synchronizer := appdelivery.NewSynchronizer(
		resolver,
		forwarder,
		orderRepo,
		delivery.Endpoints{
			Task:        cfg.Webhook.BringgEndpoint,
			OrderStatus: cfg.Webhook.OrderStatusEndpoint,
		},
		log.Named("synchronizer"),
		syncOpts...,
	)
	taskService := appdelivery.NewTaskService(resolver, settingsRepo, taskClient, log)
	translationService := apppos.NewOrderTranslationService(orderRepo, translationRepo, clock, log)

	// HTTP
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Invalid trusted proxies", zap.Error(err))
	}
	engine.Use(middleware.Global(log, meters.Meter("http.server"))...)

	engine.GET("/health", handler.NewHealthHandler(db).Check)

	bringgRoutes := router.NewBringgGroup(
		handler.NewDeliveryWebhookHandler(synchronizer, cfg.HTTP.MaxBodySize),
		handler.NewTaskHandler(taskService),
	)
	router.NewRouter(engine).
		RegisterRoot(bringgRoutes).
		Register(bringgRoutes).
		Register(router.NewPOSGroup(
			handler.NewPOSOrderHandler(translationService),
			middleware.BodyLimit(cfg.HTTP.MaxBodySize),
		)).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout(cfg.HTTP.ShutdownTimeout))
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	log.Info("Server exited gracefully")
}

func shutdownTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return 30 * time.Second
	}
	return d
}
