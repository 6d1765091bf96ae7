package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitRetention(t *testing.T) {
	testCases := []struct {
		name              string
		total             string
		expectedImmediate string
		expectedRetained  string
		expectedError     bool
	}{
		{
			name:              "round_total",
			total:             "35000.00",
			expectedImmediate: "31500.00",
			expectedRetained:  "3500.00",
		},
		{
			name:              "odd_cents_retained_absorbs_remainder",
			total:             "100.01",
			expectedImmediate: "90.01",
			expectedRetained:  "10.00",
		},
		{
			name:              "rounds_half_up",
			total:             "0.05",
			expectedImmediate: "0.05",
			expectedRetained:  "0.00",
		},
		{
			name:              "single_cent",
			total:             "0.01",
			expectedImmediate: "0.01",
			expectedRetained:  "0.00",
		},
		{
			name:              "large_total",
			total:             "123456789.99",
			expectedImmediate: "111111110.99",
			expectedRetained:  "12345679.00",
		},
		{
			name:          "zero_total",
			total:         "0",
			expectedError: true,
		},
		{
			name:          "negative_total",
			total:         "-10.00",
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			total := decimal.RequireFromString(tc.total)

			split, err := SplitRetention(total)

			if tc.expectedError {
				var amountErr *InvalidAmountError
				require.ErrorAs(t, err, &amountErr)
				assert.True(t, amountErr.Amount.Equal(total))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedImmediate, split.Immediate.StringFixed(2))
			assert.Equal(t, tc.expectedRetained, split.Retained.StringFixed(2))
			assert.True(t, split.Immediate.Add(split.Retained).Equal(total), "tranches must add up to the total")
		})
	}
}

func TestSplitRetention_AlwaysAdditive(t *testing.T) {
	for cents := int64(1); cents <= 2000; cents++ {
		total := decimal.New(cents, -2)
		split, err := SplitRetention(total)
		require.NoError(t, err)
		require.True(t, split.Immediate.Add(split.Retained).Equal(total), "total %s", total)
		require.False(t, split.Retained.IsNegative(), "total %s", total)
	}
}
