package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spyshark/backend/internal/application/analytics"
	"github.com/spyshark/backend/internal/application/catalog"
	"github.com/spyshark/backend/internal/application/shops"
	syncapp "github.com/spyshark/backend/internal/application/sync"
	"github.com/spyshark/backend/internal/infrastructure/config"
	"github.com/spyshark/backend/internal/infrastructure/currency"
	"github.com/spyshark/backend/internal/infrastructure/ecommerce"
	"github.com/spyshark/backend/internal/infrastructure/logger"
	"github.com/spyshark/backend/internal/infrastructure/persistence"
	"github.com/spyshark/backend/internal/infrastructure/traffic"
	"github.com/spyshark/backend/internal/interfaces/http/handler"
	"github.com/spyshark/backend/internal/interfaces/http/middleware"
	"github.com/spyshark/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()

	// Redis is optional; without it exchange rates are fetched on every sync
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis unavailable, rate caching disabled", zap.Error(err))
			redisClient = nil
		}
		cancel()
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Repositories
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	shopRepo := persistence.NewGormShopRepository(db.DB)

	// External clients
	shopifyAdapter, err := ecommerce.NewShopifyAdapter(&ecommerce.ShopifyConfig{
		OrdersAPIVersion:   cfg.Shopify.OrdersAPIVersion,
		ProductsAPIVersion: cfg.Shopify.ProductsAPIVersion,
		PageSize:           cfg.Shopify.PageSize,
		PageDelay:          cfg.Shopify.PageDelay,
		TimeoutSeconds:     cfg.Shopify.TimeoutSeconds,
	})
	if err != nil {
		log.Fatal("Invalid Shopify configuration", zap.Error(err))
	}

	rateClient := currency.NewClient(cfg.Currency.APIBaseURL, cfg.Currency.TimeoutSeconds)
	rateProvider := currency.NewCachedProvider(redisClient, rateClient, cfg.Currency.CacheTTL, log)
	trafficClient := traffic.NewClient(cfg.Traffic.APIBaseURL, cfg.Traffic.TimeoutSeconds)

	// Application services
	profitService := analytics.NewProfitService(orderRepo, productRepo, log)
	ordersService := analytics.NewOrdersService(orderRepo, productRepo, log)
	productService := catalog.NewProductService(productRepo, log)
	shopService := shops.NewShopService(shopRepo, log)
	orderSyncService := syncapp.NewOrderSyncService(shopifyAdapter, orderRepo, log)
	productSyncService := syncapp.NewProductSyncService(shopifyAdapter, rateProvider, productRepo, log)

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Failed to set trusted proxies", zap.Error(err))
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.GET("/health", healthHandler(db))

	router.NewRouter(engine).
		Register(handler.NewAnalyticsHandler(profitService, ordersService)).
		Register(handler.NewSyncHandler(orderSyncService, productSyncService)).
		Register(handler.NewProductHandler(productService)).
		Register(handler.NewShopHandler(shopService)).
		Register(handler.NewTrafficHandler(trafficClient)).
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
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler reports process and database health
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
