package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"stockvault/internal/model"
)

func series(closes map[string]float64) *model.StockData {
	return &model.StockData{
		Symbol:        "AAPL",
		Currency:      "USD",
		LastRefreshed: "2021-06-18",
		DailyClose:    closes,
	}
}

func TestNewPriceRows_EmptyCacheTakesEverything(t *testing.T) {
	t.Parallel()

	rows := newPriceRows(series(map[string]float64{
		"2021-06-17": 130.0,
		"2021-06-18": 131.79,
	}), 1, sql.NullTime{})

	require.Len(t, rows, 2)
	// Ascending date order.
	require.Equal(t, "2021-06-17", rows[0].Date.Format(model.DateLayout))
	require.Equal(t, 130.0, rows[0].Close)
	require.Equal(t, "2021-06-18", rows[1].Date.Format(model.DateLayout))
	require.Equal(t, 131.79, rows[1].Close)
}

func TestNewPriceRows_SkipsDatesAtOrBeforeLastCached(t *testing.T) {
	t.Parallel()

	last := sql.NullTime{
		Time:  time.Date(2021, 6, 17, 0, 0, 0, 0, time.UTC),
		Valid: true,
	}

	rows := newPriceRows(series(map[string]float64{
		"2021-06-16": 129.5,
		"2021-06-17": 130.0,
		"2021-06-18": 131.79,
	}), 1, last)

	require.Len(t, rows, 1)
	require.Equal(t, "2021-06-18", rows[0].Date.Format(model.DateLayout))
}

func TestNewPriceRows_SameSeriesTwiceAddsNothing(t *testing.T) {
	t.Parallel()

	closes := map[string]float64{
		"2021-06-17": 130.0,
		"2021-06-18": 131.79,
	}
	first := newPriceRows(series(closes), 1, sql.NullTime{})
	require.Len(t, first, 2)

	// After the first write-back the latest cached date is 2021-06-18, so a
	// replay of the same provider response yields no new rows.
	last := sql.NullTime{Time: first[len(first)-1].Date, Valid: true}
	second := newPriceRows(series(closes), 1, last)
	require.Empty(t, second)
}
