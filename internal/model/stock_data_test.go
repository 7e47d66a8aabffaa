package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"stockvault/internal/model"
)

func TestStockData_DatesAreChronological(t *testing.T) {
	t.Parallel()

	data := &model.StockData{DailyClose: map[string]float64{
		"2021-06-18": 131.79,
		"2021-06-16": 129.5,
		"2021-06-17": 130.0,
	}}

	require.Equal(t, []string{"2021-06-16", "2021-06-17", "2021-06-18"}, data.Dates())
}

func TestStockData_WindowIsInclusive(t *testing.T) {
	t.Parallel()

	data := &model.StockData{DailyClose: map[string]float64{
		"2021-06-15": 128.1,
		"2021-06-16": 129.5,
		"2021-06-17": 130.0,
		"2021-06-18": 131.79,
	}}

	data.Window("2021-06-16", "2021-06-17")

	require.Equal(t, map[string]float64{"2021-06-16": 129.5, "2021-06-17": 130.0}, data.DailyClose)
}
