package dto

import (
	"github.com/shopspring/decimal"
	"github.com/shwefx/money_changer_app/internal/core/domain"
)

// CreateCurrencyRequest defines the data needed to register a new currency.
type CreateCurrencyRequest struct {
	Code     string          `json:"code" binding:"required,uppercase,alpha,min=2,max=8"`
	Name     string          `json:"name" binding:"required"`
	BuyRate  decimal.Decimal `json:"buyRate"`
	SellRate decimal.Decimal `json:"sellRate"`
	IsActive *bool           `json:"isActive"`
}

// UpdateCurrencyRequest carries a partial patch; nil fields keep their
// existing values.
type UpdateCurrencyRequest struct {
	Name     *string          `json:"name"`
	BuyRate  *decimal.Decimal `json:"buyRate"`
	SellRate *decimal.Decimal `json:"sellRate"`
	IsActive *bool            `json:"isActive"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	BuyRate  decimal.Decimal `json:"buyRate"`
	SellRate decimal.Decimal `json:"sellRate"`
	IsActive bool            `json:"isActive"`
}

// ToCurrencyResponse converts a domain.Currency to its response DTO.
func ToCurrencyResponse(c *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		Code:     c.Code,
		Name:     c.Name,
		BuyRate:  c.BuyRate,
		SellRate: c.SellRate,
		IsActive: c.IsActive,
	}
}

// ToListCurrencyResponse converts a slice of domain currencies.
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}
