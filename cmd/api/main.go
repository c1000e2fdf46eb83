package main

import (
	"context"
	_ "embed"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/fekuna/retail-backoffice/config"
	"github.com/fekuna/retail-backoffice/internal/httpx"
	"github.com/fekuna/retail-backoffice/internal/validation"
	"github.com/fekuna/retail-backoffice/pkg/broker"
	"github.com/fekuna/retail-backoffice/pkg/cache"
	"github.com/fekuna/retail-backoffice/pkg/postgres"
	"github.com/fekuna/retail-backoffice/pkg/search"

	custRepoPkg "github.com/fekuna/retail-backoffice/internal/customer/repository"

	invH "github.com/fekuna/retail-backoffice/internal/inventory/handler"
	invRepoPkg "github.com/fekuna/retail-backoffice/internal/inventory/repository"
	invUCPkg "github.com/fekuna/retail-backoffice/internal/inventory/usecase"

	orderRepoPkg "github.com/fekuna/retail-backoffice/internal/order/repository"
	orderUCPkg "github.com/fekuna/retail-backoffice/internal/order/usecase"

	prodH "github.com/fekuna/retail-backoffice/internal/product/handler"
	prodRepoPkg "github.com/fekuna/retail-backoffice/internal/product/repository"
	prodUCPkg "github.com/fekuna/retail-backoffice/internal/product/usecase"

	revH "github.com/fekuna/retail-backoffice/internal/review/handler"
	revRepoPkg "github.com/fekuna/retail-backoffice/internal/review/repository"

	storeH "github.com/fekuna/retail-backoffice/internal/store/handler"
	storeRepoPkg "github.com/fekuna/retail-backoffice/internal/store/repository"
	storeUCPkg "github.com/fekuna/retail-backoffice/internal/store/usecase"
)

//go:embed migrations.sql
var migrationSQL string

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	appLogger := newLogger(cfg)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	if _, err := db.Exec(migrationSQL); err != nil {
		appLogger.Fatal("Failed running migrations", zap.Error(err))
	}

	// 4. Initialize Redis
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))

	// 5. Initialize Kafka Producer
	orderPublisher := broker.NewPublisher(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
	})
	defer orderPublisher.Close()
	appLogger.Info("Connected to Kafka Producer",
		zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))

	// 6. Initialize Elasticsearch
	esClient, err := search.NewClient(&search.Config{
		Addresses: cfg.Elastic.Addresses,
		Username:  cfg.Elastic.Username,
		Password:  cfg.Elastic.Password,
	})
	if err != nil {
		appLogger.Warn("Could not connect to Elasticsearch (search falls back to the database)", zap.Error(err))
		esClient = nil
	} else {
		appLogger.Info("Connected to Elasticsearch", zap.Strings("addresses", cfg.Elastic.Addresses))
	}

	// 7. Initialize Repositories
	prodRepo := prodRepoPkg.NewPGRepository(db)
	invRepo := invRepoPkg.NewPGRepository(db)
	storeRepo := storeRepoPkg.NewPGRepository(db)
	custRepo := custRepoPkg.NewPGRepository(db)
	orderRepo := orderRepoPkg.NewPGRepository(db)
	reviewRepo := revRepoPkg.NewRedisRepository(redisClient)

	validator := validation.NewValidator(prodRepo, storeRepo, invRepo)

	// 8. Initialize UseCases
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, redisClient, esClient, appLogger)
	invUC := invUCPkg.NewInventoryUseCase(invRepo, prodRepo, validator, redisClient, appLogger)
	storeUC := storeUCPkg.NewStoreUseCase(storeRepo, appLogger)
	orderUC := orderUCPkg.NewOrderUseCase(orderRepo, orderPublisher, appLogger)

	// 9. Initialize Handlers & Router
	r := mux.NewRouter()
	r.Use(httpx.RequestLogger(appLogger))

	prodH.NewProductHandler(prodUC, appLogger).RegisterRoutes(r)
	invH.NewInventoryHandler(invUC, prodUC, appLogger).RegisterRoutes(r)
	storeH.NewStoreHandler(storeUC, orderUC, appLogger).RegisterRoutes(r)
	revH.NewReviewHandler(reviewRepo, custRepo, appLogger).RegisterRoutes(r)

	// 10. Start HTTP Server
	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	appLogger.Info("Starting HTTP server", zap.String("port", port))

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("forced shutdown: %v", err)
	}
	appLogger.Info("Server stopped")
}

func newLogger(cfg *config.Config) *zap.Logger {
	zapCfg := zap.NewProductionConfig()
	zapCfg.Encoding = "json"

	if cfg.Server.AppEnv == "development" || cfg.Server.AppEnv == "dev" {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.Encoding = "console"
	}

	if level, err := zap.ParseAtomicLevel(cfg.Logger.Level); err == nil {
		zapCfg.Level = level
	}
	zapCfg.DisableCaller = cfg.Logger.DisableCaller
	zapCfg.DisableStacktrace = cfg.Logger.DisableStacktrace

	logger, err := zapCfg.Build()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	return logger
}
