package mapping

import (
	"github.com/shwefx/money_changer_app/internal/core/domain"
	"github.com/shwefx/money_changer_app/internal/models"
)

// ToModelCurrency converts a domain.Currency to the DB model.
func ToModelCurrency(c domain.Currency) models.Currency {
	return models.Currency{
		Code:     c.Code,
		Name:     c.Name,
		BuyRate:  c.BuyRate,
		SellRate: c.SellRate,
		IsActive: c.IsActive,
	}
}

// ToDomainCurrency converts a DB model currency to the domain type.
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		Code:     m.Code,
		Name:     m.Name,
		BuyRate:  m.BuyRate,
		SellRate: m.SellRate,
		IsActive: m.IsActive,
	}
}

// ToDomainCurrencySlice converts a slice of model currencies.
func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	out := make([]domain.Currency, len(ms))
	for i, m := range ms {
		out[i] = ToDomainCurrency(m)
	}
	return out
}
