package models

import "github.com/shopspring/decimal"

// Currency mirrors the currencies table.
type Currency struct {
	Code     string
	Name     string
	BuyRate  decimal.Decimal
	SellRate decimal.Decimal
	IsActive bool
}
