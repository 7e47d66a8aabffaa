package router

import (
	"github.com/gin-gonic/gin"
)

func registerStockRoutes(router *gin.RouterGroup, cfg *Config) {
	stocks := router.Group("/stocks")
	if cfg.RateLimiter != nil {
		stocks.Use(cfg.RateLimiter.Middleware())
	}
	{
		stocks.GET("", cfg.StockHandler.GetStocks)
	}
}
