package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

type exchangeRateResponse struct {
	RealtimeRate exchangeRateQuote `json:"Realtime Currency Exchange Rate"`
	Information  string            `json:"Information,omitempty"`
}

type exchangeRateQuote struct {
	FromCurrency string `json:"1. From_Currency Code"`
	ToCurrency   string `json:"3. To_Currency Code"`
	ExchangeRate string `json:"5. Exchange Rate"`
}

// ExchangeRate fetches the scalar conversion rate between two currencies.
// A response without a numeric rate is an error; there is no default rate.
func (c *Client) ExchangeRate(ctx context.Context, fromCurrency, toCurrency string) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return 0, err
	}

	q := req.URL.Query()
	for key, values := range c.query {
		for _, value := range values {
			q.Add(key, value)
		}
	}
	q.Set("function", "CURRENCY_EXCHANGE_RATE")
	q.Set("from_currency", fromCurrency)
	q.Set("to_currency", toCurrency)
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("alphavantage: exchange rate %s->%s returned status %d", fromCurrency, toCurrency, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}

	var unmarshaled exchangeRateResponse
	if err := json.Unmarshal(raw, &unmarshaled); err != nil {
		return 0, err
	}
	if unmarshaled.Information != "" {
		return 0, ServerError{Information: unmarshaled.Information}
	}
	if unmarshaled.RealtimeRate.ExchangeRate == "" {
		return 0, fmt.Errorf("alphavantage: no exchange rate for %s->%s", fromCurrency, toCurrency)
	}

	rate, err := strconv.ParseFloat(unmarshaled.RealtimeRate.ExchangeRate, 64)
	if err != nil {
		return 0, fmt.Errorf("alphavantage: malformed exchange rate %q: %w", unmarshaled.RealtimeRate.ExchangeRate, err)
	}
	return rate, nil
}
