package router

import (
	"github.com/gin-gonic/gin"

	"stockvault/internal/handler"
	"stockvault/internal/middleware"
)

type Config struct {
	StockHandler *handler.StockHandler
	RateLimiter  *middleware.RateLimiter
}

func NewRouter(cfg *Config) *gin.Engine {
	router := gin.Default()

	router.GET("/health", cfg.StockHandler.Health)

	api := router.Group("/v1/")
	registerStockRoutes(api, cfg)

	return router
}
