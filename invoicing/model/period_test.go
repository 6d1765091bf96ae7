package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPeriod(t *testing.T) {
	testCases := []struct {
		name          string
		year, month   int
		expectedError string
	}{
		{name: "valid", year: 2025, month: 7},
		{name: "month_zero", year: 2025, month: 0, expectedError: "invalid month"},
		{name: "month_thirteen", year: 2025, month: 13, expectedError: "invalid month"},
		{name: "year_too_small", year: 1999, month: 1, expectedError: "invalid year"},
		{name: "year_too_large", year: 10000, month: 1, expectedError: "invalid year"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewPeriod(tc.year, tc.month)
			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.year, p.Year)
			assert.Equal(t, time.Month(tc.month), p.Month)
		})
	}
}

func TestPeriodBounds(t *testing.T) {
	p := Period{Year: 2024, Month: time.December}

	assert.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), p.Start())
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), p.End())
	assert.Equal(t, "2024-12", p.String())

	assert.True(t, p.Contains(p.Start()))
	assert.True(t, p.Contains(time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, p.Contains(p.End()), "end is exclusive")
	assert.False(t, p.Contains(p.Start().Add(-time.Nanosecond)))

	// 2024-12-31 20:00 in UTC-5 is already January in UTC
	est := time.FixedZone("EST", -5*60*60)
	assert.False(t, p.Contains(time.Date(2024, time.December, 31, 20, 0, 0, 0, est)))
}

func TestSumPayable(t *testing.T) {
	amount := func(s string) *Money {
		m := NewMoney(decimal.RequireFromString(s))
		return &m
	}

	orders := []WorkOrder{
		{PayableAmount: amount("20000.00")},
		{PayableAmount: amount("15000.00")},
		{PayableAmount: nil},
	}

	assert.Equal(t, "35000.00", SumPayable(orders).StringFixed(2))
	assert.True(t, SumPayable(nil).IsZero())
}
