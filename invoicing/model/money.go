package model

import (
	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

// Money is an amount in the invoice currency. It always renders with cent precision,
// so 31500 is written as "31500.00".
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

func (m Money) String() string {
	return m.StringFixed(moneyPlaces)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	return m.Decimal.UnmarshalJSON(data)
}

func (m Money) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
