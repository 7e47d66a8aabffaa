package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stockvault/internal/model"
)

type StockRepository interface {
	GetStock(ctx context.Context, symbol string) (*model.Stock, error)
	GetStockData(ctx context.Context, symbol, startDate, endDate string) (*model.StockData, error)
	CacheStockData(ctx context.Context, data *model.StockData) error
}

type gormStockRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormStockRepository(db *gorm.DB, logger *logrus.Logger) StockRepository {
	return &gormStockRepository{db: db, logger: logger}
}

// GetStock returns the metadata row for symbol, or nil when the symbol has
// never been cached.
func (gsr *gormStockRepository) GetStock(ctx context.Context, symbol string) (*model.Stock, error) {
	var stock model.Stock
	err := gsr.db.WithContext(ctx).Where("symbol = ?", symbol).First(&stock).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &stock, nil
}

type stockPriceRow struct {
	Symbol        string
	Currency      string
	Date          time.Time
	Close         float64
	LastRefreshed time.Time
}

// GetStockData reads the cached series for symbol inside the inclusive
// [startDate, endDate] window. An empty window is not an error: it returns
// (nil, nil) and the caller decides what that means.
func (gsr *gormStockRepository) GetStockData(ctx context.Context, symbol, startDate, endDate string) (*model.StockData, error) {
	var rows []stockPriceRow
	err := gsr.db.WithContext(ctx).
		Model(&model.StockPrice{}).
		Select("stocks.symbol, stocks.currency, stock_prices.date, stock_prices.close, stocks.last_refreshed").
		Joins("JOIN stocks ON stocks.id = stock_prices.stock_id").
		Where("stocks.symbol = ? AND stock_prices.date >= ? AND stock_prices.date <= ?", symbol, startDate, endDate).
		Order("stock_prices.date desc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		gsr.logger.Infof("no cached data for %s between %s and %s", symbol, startDate, endDate)
		return nil, nil
	}

	dailyClose := make(map[string]float64, len(rows))
	for _, row := range rows {
		dailyClose[row.Date.Format(model.DateLayout)] = row.Close
	}
	gsr.logger.Infof("read %d cached prices for %s between %s and %s", len(rows), symbol, startDate, endDate)
	return &model.StockData{
		Symbol:        symbol,
		Currency:      rows[0].Currency,
		LastRefreshed: rows[0].LastRefreshed.Format(model.DateLayout),
		DailyClose:    dailyClose,
	}, nil
}

// CacheStockData persists one refresh atomically: the symbol upsert and every
// new price row become visible together or not at all. Points at or before the
// latest cached date are skipped; the unique (stock_id, date) index backed by
// ON CONFLICT DO NOTHING keeps racing refreshes idempotent at the row level.
func (gsr *gormStockRepository) CacheStockData(ctx context.Context, data *model.StockData) error {
	refreshedAt, err := time.Parse(model.DateLayout, data.LastRefreshed)
	if err != nil {
		return err
	}

	return gsr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var stock model.Stock
		err := tx.Where("symbol = ?", data.Symbol).First(&stock).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			stock = model.Stock{Symbol: data.Symbol, Currency: data.Currency, LastRefreshed: refreshedAt}
			if err := tx.Create(&stock).Error; err != nil {
				return err
			}
			gsr.logger.Infof("created stock record for %s", data.Symbol)
		case err == nil:
			if err := tx.Model(&stock).Update("last_refreshed", refreshedAt).Error; err != nil {
				return err
			}
		default:
			return err
		}

		var lastDate sql.NullTime
		row := tx.Model(&model.StockPrice{}).
			Select("max(date)").
			Where("stock_id = ?", stock.ID).
			Row()
		if err := row.Scan(&lastDate); err != nil {
			return err
		}

		prices := newPriceRows(data, stock.ID, lastDate)
		if len(prices) == 0 {
			return nil
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&prices).Error; err != nil {
			return err
		}
		gsr.logger.Infof("cached %d prices for %s", len(prices), data.Symbol)
		return nil
	})
}

// newPriceRows keeps only the points strictly after the latest cached date.
func newPriceRows(data *model.StockData, stockID uint, lastDate sql.NullTime) []model.StockPrice {
	var last string
	if lastDate.Valid {
		last = lastDate.Time.Format(model.DateLayout)
	}

	prices := make([]model.StockPrice, 0, len(data.DailyClose))
	for _, date := range data.Dates() {
		if lastDate.Valid && date <= last {
			continue
		}
		day, err := time.Parse(model.DateLayout, date)
		if err != nil {
			continue
		}
		prices = append(prices, model.StockPrice{
			StockID: stockID,
			Date:    day,
			Close:   data.DailyClose[date],
		})
	}
	return prices
}
