package model

import "sort"

const DateLayout = "2006-01-02"

// StockData is the in-memory daily series exchanged between the repository,
// the provider client and the service. DailyClose is keyed by "2006-01-02"
// date strings, which order lexically the same as chronologically.
type StockData struct {
	Symbol        string             `json:"symbol"`
	Currency      string             `json:"currency"`
	LastRefreshed string             `json:"last_refreshed"`
	DailyClose    map[string]float64 `json:"daily_close"`
}

// Dates returns the series dates in ascending order.
func (sd *StockData) Dates() []string {
	dates := make([]string, 0, len(sd.DailyClose))
	for date := range sd.DailyClose {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// Window keeps only the points falling inside [start, end] inclusive.
func (sd *StockData) Window(start, end string) {
	for date := range sd.DailyClose {
		if date < start || date > end {
			delete(sd.DailyClose, date)
		}
	}
}
