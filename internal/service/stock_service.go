package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"stockvault/internal/model"
	"stockvault/internal/repository"
)

// staleAfter is how long a cached symbol is trusted before a request past its
// refresh horizon triggers a new upstream call. The provider returns the full
// series on every call and is rate-limit-expensive, so once a day per symbol
// is the freshness/cost trade-off.
const staleAfter = 24 * time.Hour

// MarketDataClient abstracts the upstream quote source.
type MarketDataClient interface {
	DailySeries(ctx context.Context, symbol string) (*model.StockData, error)
	ExchangeRate(ctx context.Context, fromCurrency, toCurrency string) (float64, error)
}

type StockService struct {
	repo   repository.StockRepository
	market MarketDataClient
	logger *logrus.Logger
}

func NewStockService(repo repository.StockRepository, market MarketDataClient, logger *logrus.Logger) *StockService {
	return &StockService{
		repo:   repo,
		market: market,
		logger: logger,
	}
}

// GetStockData returns the daily close series for symbol inside the inclusive
// [startDate, endDate] window, converted to the requested currency.
//
// When the cache is cold or stale for the requested horizon the series is
// fetched upstream and written back before returning; otherwise it is served
// from the cache, whose SQL query already applies the window.
func (ss *StockService) GetStockData(ctx context.Context, symbol, startDate, endDate, currency string) (*model.StockData, error) {
	stock, err := ss.repo.GetStock(ctx, symbol)
	if err != nil {
		return nil, err
	}

	var data *model.StockData
	if ss.needsRefresh(stock, endDate) {
		data, err = ss.refresh(ctx, symbol)
		if err != nil {
			return nil, err
		}
		if data != nil {
			data.Window(startDate, endDate)
		}
	} else {
		data, err = ss.repo.GetStockData(ctx, symbol, startDate, endDate)
		if err != nil {
			return nil, err
		}
	}

	if data == nil || len(data.DailyClose) == 0 {
		return nil, fmt.Errorf("%w: %s between %s and %s", ErrNotFound, symbol, startDate, endDate)
	}

	if err := ss.convertCurrency(ctx, data, currency); err != nil {
		return nil, err
	}
	return data, nil
}

// needsRefresh decides whether the cache is authoritative for a request
// ending at endDate:
//  1. unknown symbol: refresh (cold cache);
//  2. endDate already covered by the last fetch: serve from cache, no matter
//     how old that fetch is;
//  3. otherwise refresh only once the last fetch is more than a day old.
func (ss *StockService) needsRefresh(stock *model.Stock, endDate string) bool {
	if stock == nil {
		ss.logger.Infof("no cached record, refresh needed")
		return true
	}
	if endDate <= stock.LastRefreshed.Format(model.DateLayout) {
		return false
	}
	if time.Since(stock.LastRefreshed) > staleAfter {
		ss.logger.Infof("cached data for %s is stale, refresh needed", stock.Symbol)
		return true
	}
	return false
}

// refresh fetches the full series upstream and writes it back into the cache
// before the result is handed to anyone.
func (ss *StockService) refresh(ctx context.Context, symbol string) (*model.StockData, error) {
	data, err := ss.market.DailySeries(ctx, symbol)
	if err != nil {
		ss.logger.Errorf("daily series fetch for %s failed: %v", symbol, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if err := ss.repo.CacheStockData(ctx, data); err != nil {
		return nil, err
	}
	return data, nil
}

// convertCurrency multiplies every close by the scalar rate from the series
// currency to the target and restamps the series currency. The rate is looked
// up on every call since it is a moving value.
func (ss *StockService) convertCurrency(ctx context.Context, data *model.StockData, currency string) error {
	rate, err := ss.market.ExchangeRate(ctx, data.Currency, currency)
	if err != nil {
		ss.logger.Errorf("exchange rate %s->%s failed: %v", data.Currency, currency, err)
		return fmt.Errorf("%w: %v", ErrRateUnavailable, err)
	}
	for date, closePrice := range data.DailyClose {
		data.DailyClose[date] = closePrice * rate
	}
	data.Currency = currency
	return nil
}
