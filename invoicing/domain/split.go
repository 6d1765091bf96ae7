package domain

import (
	"github.com/shopspring/decimal"

	"github.com/fieldworks/contractor-billing/invoicing/model"
)

var (
	// ImmediateShare is the part of an invoice total payable without further gating.
	ImmediateShare = decimal.RequireFromString("0.90")
	amountPlaces   = int32(2)
)

// SplitRetention splits total into the immediate and retained tranches.
// The retained tranche is derived by subtraction so that the two always add up to total.
func SplitRetention(total decimal.Decimal) (model.Split, error) {
	if !total.IsPositive() {
		return model.Split{}, &InvalidAmountError{Amount: total}
	}

	immediate := total.Mul(ImmediateShare).Round(amountPlaces)
	return model.Split{
		Immediate: immediate,
		Retained:  total.Sub(immediate),
	}, nil
}
