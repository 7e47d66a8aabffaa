package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"stockvault/internal/model"
	"stockvault/internal/service"
)

// StockGetter is the slice of the stock service the handlers need.
type StockGetter interface {
	GetStockData(ctx context.Context, symbol, startDate, endDate, currency string) (*model.StockData, error)
}

type StockRequest struct {
	Symbol    string `form:"symbol" binding:"required"`
	Currency  string `form:"currency" binding:"required"`
	StartDate string `form:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"required,datetime=2006-01-02"`
}

type StockHandler struct {
	stockService StockGetter
}

func NewStockHandler(service StockGetter) *StockHandler {
	return &StockHandler{
		stockService: service,
	}
}

func (h *StockHandler) GetStocks(c *gin.Context) {
	var req StockRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	data, err := h.stockService.GetStockData(c.Request.Context(), req.Symbol, req.StartDate, req.EndDate, req.Currency)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
		case errors.Is(err, service.ErrUpstreamUnavailable), errors.Is(err, service.ErrRateUnavailable):
			c.JSON(http.StatusBadGateway, gin.H{"detail": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, data)
}

func (h *StockHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
