package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyBalance mirrors the daily_balances table.
type DailyBalance struct {
	ID                int64
	BusinessDate      time.Time
	OpeningBalanceMMK decimal.Decimal
	ClosingBalanceMMK *decimal.Decimal
	OpenedAt          time.Time
	ClosedAt          *time.Time
}

// FxBalance mirrors the daily_balance_fx table.
type FxBalance struct {
	ID             int64
	DailyBalanceID int64
	CurrencyCode   string
	OpeningAmount  decimal.Decimal
	ClosingAmount  *decimal.Decimal
	UpdatedAt      time.Time
}
