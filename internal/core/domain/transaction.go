package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes the two directions of a shop trade.
type TransactionType string

const (
	// TransactionBuy means the shop buys foreign currency from the customer,
	// paying out local currency.
	TransactionBuy TransactionType = "BUY"
	// TransactionSell means the shop sells foreign currency to the customer,
	// receiving local currency.
	TransactionSell TransactionType = "SELL"
)

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	return t == TransactionBuy || t == TransactionSell
}

// Transaction is a single buy/sell record in the ledger.
// MMKAmount is always ForeignAmount * Rate rounded to 2 decimals at the time
// of the last write; it is never edited independently.
type Transaction struct {
	ID            int64           `json:"id"`
	BusinessDate  time.Time       `json:"businessDate"`
	DateTime      time.Time       `json:"dateTime"`
	Type          TransactionType `json:"type"`
	CurrencyCode  string          `json:"currencyCode"`
	ForeignAmount decimal.Decimal `json:"foreignAmount"`
	Rate          decimal.Decimal `json:"rate"`
	MMKAmount     decimal.Decimal `json:"mmkAmount"`
	CustomerName  *string         `json:"customerName,omitempty"`
	CreatedBy     *string         `json:"createdBy,omitempty"`
}

// LocalAmount computes the local-currency amount for a foreign amount and
// rate, rounded to 2 decimals.
func LocalAmount(foreignAmount, rate decimal.Decimal) decimal.Decimal {
	return foreignAmount.Mul(rate).Round(2)
}
