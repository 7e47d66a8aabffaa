package service

import "errors"

// The three per-request outcomes a caller can act on. Everything is
// recoverable; nothing here is fatal to the process.
var (
	// ErrNotFound means neither the cache nor the provider produced data
	// for the requested symbol and window.
	ErrNotFound = errors.New("no stock data found")

	// ErrUpstreamUnavailable means the provider call failed at the
	// transport or HTTP level. Failed calls are not retried.
	ErrUpstreamUnavailable = errors.New("upstream provider unavailable")

	// ErrRateUnavailable means conversion could not obtain a numeric
	// exchange rate. No default rate is ever substituted.
	ErrRateUnavailable = errors.New("exchange rate unavailable")
)
