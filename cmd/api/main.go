package main

import (
	"flag"
	"fmt"
	"net/http"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"stockvault/config"
	"stockvault/internal/handler"
	"stockvault/internal/middleware"
	"stockvault/internal/provider/alphavantage"
	"stockvault/internal/repository"
	"stockvault/internal/router"
	"stockvault/internal/service"
)

func main() {
	cfg := config.Load()

	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	db, err := gorm.Open(postgres.Open(cfg.PostgresDSN), &gorm.Config{})
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	migrateFlag := flag.Bool("migrate", false, "Run database migrations and exit")
	flag.Parse()

	if *migrateFlag {
		sqlDB, err := db.DB()
		if err != nil {
			logger.Fatalf("Failed to get sql.DB: %v", err)
		}
		if err := goose.SetDialect("postgres"); err != nil {
			logger.Fatalf("Goose: failed to set dialect: %v", err)
		}
		logger.Info("Running database migrations...")
		if err := goose.Up(sqlDB, "migrations"); err != nil {
			logger.Fatalf("Goose migration failed: %v", err)
		}
		return
	}

	if cfg.AlphaVantageKey == "" {
		logger.Warn("ALPHA_API_KEY not set, upstream fetches will fail")
	}

	// A hung upstream call must not block a request forever.
	httpClient := &http.Client{Timeout: time.Duration(cfg.RequestTimeoutSec) * time.Second}
	market := alphavantage.NewClient(cfg.AlphaVantageKey,
		alphavantage.WithBaseURL(cfg.AlphaVantageURL),
		alphavantage.WithHTTPClient(httpClient),
	)

	stockRepo := repository.NewGormStockRepository(db, logger)
	stockService := service.NewStockService(stockRepo, market, logger)
	stockHandler := handler.NewStockHandler(stockService)

	routerConfig := &router.Config{
		StockHandler: stockHandler,
		RateLimiter:  middleware.NewRateLimiter(cfg.DailyRequestQuota),
	}

	router := router.NewRouter(routerConfig)

	router.Run(fmt.Sprintf(":%s", cfg.ServerPort))
}
