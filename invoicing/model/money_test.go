package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_JSON(t *testing.T) {
	testCases := []struct {
		name     string
		amount   string
		expected string
	}{
		{name: "whole_amount", amount: "31500", expected: `"31500.00"`},
		{name: "trailing_zero_kept", amount: "0.10", expected: `"0.10"`},
		{name: "one_place", amount: "0.1", expected: `"0.10"`},
		{name: "cents", amount: "1234.57", expected: `"1234.57"`},
		{name: "zero", amount: "0", expected: `"0.00"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			raw, err := json.Marshal(NewMoney(decimal.RequireFromString(tc.amount)))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, string(raw))

			var decoded Money
			require.NoError(t, json.Unmarshal(raw, &decoded))
			assert.True(t, decoded.Equal(decimal.RequireFromString(tc.amount)))
		})
	}
}

func TestInvoice_AmountsRenderWithCents(t *testing.T) {
	payable := NewMoney(decimal.RequireFromString("20000"))
	invoice := Invoice{
		TotalAmount:     NewMoney(decimal.RequireFromString("35000")),
		ImmediateAmount: NewMoney(decimal.RequireFromString("31500")),
		RetainedAmount:  NewMoney(decimal.RequireFromString("3500")),
		WorkOrders:      []WorkOrder{{PayableAmount: &payable}},
	}

	raw, err := json.Marshal(invoice)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "35000.00", decoded["total_amount"])
	assert.Equal(t, "31500.00", decoded["immediate_amount"])
	assert.Equal(t, "3500.00", decoded["retained_amount"])
	orders := decoded["work_orders"].([]any)
	assert.Equal(t, "20000.00", orders[0].(map[string]any)["payable_amount"])
}
