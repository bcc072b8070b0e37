package domain

import "github.com/shopspring/decimal"

// Currency represents a foreign currency the shop trades, with its current
// buy/sell rates against the local currency.
type Currency struct {
	Code     string          `json:"code"` // Primary Key (e.g., "USD")
	Name     string          `json:"name"` // e.g., "US Dollar"
	BuyRate  decimal.Decimal `json:"buyRate"`
	SellRate decimal.Decimal `json:"sellRate"`
	IsActive bool            `json:"isActive"`
}

// RateFor returns the rate snapshot to apply for a transaction type:
// the buy rate when the shop buys foreign currency, the sell rate when it sells.
func (c Currency) RateFor(t TransactionType) decimal.Decimal {
	if t == TransactionBuy {
		return c.BuyRate
	}
	return c.SellRate
}
