package model

import "time"

type Stock struct {
	ID            uint      `gorm:"column:id;primaryKey" json:"id"`
	Symbol        string    `gorm:"column:symbol;uniqueIndex" json:"symbol"`
	Currency      string    `gorm:"column:currency" json:"currency"`
	LastRefreshed time.Time `gorm:"column:last_refreshed" json:"last_refreshed"`
}

func (Stock) TableName() string {
	return "stocks"
}

type StockPrice struct {
	ID      uint      `gorm:"column:id;primaryKey" json:"id"`
	StockID uint      `gorm:"column:stock_id;uniqueIndex:idx_stock_date" json:"stock_id"`
	Date    time.Time `gorm:"column:date;type:date;uniqueIndex:idx_stock_date" json:"date"`
	Close   float64   `gorm:"column:close;type:double precision" json:"close"`
}

func (StockPrice) TableName() string {
	return "stock_prices"
}
