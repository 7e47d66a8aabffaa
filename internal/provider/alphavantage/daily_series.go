package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"stockvault/internal/model"
)

// reportingCurrency is the currency Alpha Vantage denominates equity prices in.
const reportingCurrency = "USD"

type dailySeriesResponse struct {
	TimeSeries  map[string]dailyQuote `json:"Time Series (Daily)"`
	Information string                `json:"Information,omitempty"`
}

type dailyQuote struct {
	Open   float64 `json:"1. open,string"`
	High   float64 `json:"2. high,string"`
	Low    float64 `json:"3. low,string"`
	Close  float64 `json:"4. close,string"`
	Volume uint    `json:"5. volume,string"`
}

// ServerError is an in-band refusal from the API, reported through the
// Information field of an otherwise successful response.
type ServerError struct {
	Information string
}

func (se ServerError) Error() string {
	return se.Information
}

// DailySeries fetches the full available daily close series for symbol.
// The series is stamped with the fetch time, since the API exposes no
// "as of" moment of its own. A single failed attempt is terminal; the
// caller decides how to react.
func (c *Client) DailySeries(ctx context.Context, symbol string) (*model.StockData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	for key, values := range c.query {
		for _, value := range values {
			q.Add(key, value)
		}
	}
	q.Set("function", "TIME_SERIES_DAILY")
	q.Set("symbol", symbol)
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("alphavantage: daily series for %s returned status %d", symbol, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var unmarshaled dailySeriesResponse
	if err := json.Unmarshal(raw, &unmarshaled); err != nil {
		return nil, err
	}
	if unmarshaled.Information != "" {
		return nil, ServerError{Information: unmarshaled.Information}
	}
	if len(unmarshaled.TimeSeries) == 0 {
		return nil, fmt.Errorf("alphavantage: empty daily series for %s", symbol)
	}

	dailyClose := make(map[string]float64, len(unmarshaled.TimeSeries))
	for date, quote := range unmarshaled.TimeSeries {
		dailyClose[date] = quote.Close
	}

	return &model.StockData{
		Symbol:        symbol,
		Currency:      reportingCurrency,
		LastRefreshed: time.Now().UTC().Format(model.DateLayout),
		DailyClose:    dailyClose,
	}, nil
}
