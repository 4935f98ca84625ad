package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/localstyle/brand-admin-go/internal/config"
	"github.com/localstyle/brand-admin-go/internal/domain"
	"github.com/localstyle/brand-admin-go/internal/handler"
	"github.com/localstyle/brand-admin-go/internal/infra/cache"
	"github.com/localstyle/brand-admin-go/internal/infra/memstore"
	"github.com/localstyle/brand-admin-go/internal/infra/notify"
	"github.com/localstyle/brand-admin-go/internal/infra/observability"
	"github.com/localstyle/brand-admin-go/internal/infra/resilience"
	"github.com/localstyle/brand-admin-go/internal/service"

	"go.uber.org/zap"
)

func main() {
	// --- Load .env file (for local development) ---
	_ = config.LoadDotEnv(".env")

	// --- Config ---
	cfg := config.Load()

	// --- Logger ---
	logger := observability.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("configuration loaded",
		zap.Int("port", cfg.Port),
		zap.String("log_level", cfg.LogLevel),
		zap.Duration("cache_ttl", cfg.CacheTTL),
		zap.Int("max_retries", cfg.MaxRetries),
		zap.Duration("initial_backoff", cfg.InitialBackoff),
		zap.Duration("jwt_access_ttl", cfg.JWTAccessTTL),
		zap.Duration("jwt_refresh_ttl", cfg.JWTRefreshTTL),
		zap.Bool("mock_auth", cfg.MockAuth),
	)

	// --- Tracing ---
	shutdown, err := observability.InitTracer(cfg.OTLPEndpoint, "brand-admin-api")
	if err != nil {
		logger.Fatal("failed to init tracer", zap.Error(err))
	}
	defer shutdown(context.Background())

	// --- Metrics ---
	metrics := observability.NewMetrics()

	// --- Caches ---
	productCache := cache.New[*domain.ProductListResponse](cfg.CacheTTL)
	categoryCache := cache.New[*domain.CategoryListResponse](cfg.CacheTTL)
	staffCache := cache.New[*domain.StaffListResponse](cfg.CacheTTL)

	// --- Stores (in-memory, seeded with the demo dataset) ---
	stores := memstore.NewStores()
	if err := memstore.Seed(context.Background(), stores); err != nil {
		logger.Fatal("failed to seed stores", zap.Error(err))
	}
	logger.Info("in-memory stores seeded")

	// --- Notifier ---
	resilienceCfg := resilience.Config{
		MaxRetries:     cfg.MaxRetries,
		InitialBackoff: cfg.InitialBackoff,
		MaxConcurrency: cfg.MaxConcurrency,
	}
	notifier := notify.NewEmailNotifier(notify.NewLogSender(logger), resilienceCfg, metrics, logger)

	// --- Services ---
	authSvc, err := service.NewAuthService(
		stores.Tokens, metrics, logger,
		cfg.JWTSecret, cfg.JWTAccessTTL, cfg.JWTRefreshTTL, cfg.MockAuth,
	)
	if err != nil {
		logger.Fatal("failed to init auth service", zap.Error(err))
	}

	services := &handler.Services{
		Auth:       authSvc,
		Brand:      service.NewBrandService(stores.Brand, metrics, logger),
		Catalog:    service.NewCatalogService(stores.Products, productCache, metrics, logger),
		Categories: service.NewCategoryService(stores.Categories, categoryCache, metrics, logger),
		Staff: service.NewStaffService(
			stores.Staff, stores.Invites, stores.Branches,
			notifier, staffCache, metrics, logger,
		),
		Dashboard: service.NewDashboardService(
			stores.Products, stores.Categories, stores.Staff, stores.Invites,
			metrics, logger,
		),
	}

	// --- Router ---
	router := handler.NewRouter(services, metrics, cfg.AllowedOrigins, logger)

	// --- Server ---
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// --- Graceful shutdown ---
	go func() {
		logger.Info("server starting", zap.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
