package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction mirrors the transactions table.
type Transaction struct {
	ID            int64
	BusinessDate  time.Time
	DateTime      time.Time
	Type          string
	CurrencyCode  string
	ForeignAmount decimal.Decimal
	Rate          decimal.Decimal
	MMKAmount     decimal.Decimal
	CustomerName  *string
	CreatedBy     *string
}
