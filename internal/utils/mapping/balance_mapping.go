package mapping

import (
	"github.com/shwefx/money_changer_app/internal/core/domain"
	"github.com/shwefx/money_changer_app/internal/models"
)

// ToDomainDailyBalance converts a DB model daily balance to the domain type.
func ToDomainDailyBalance(m models.DailyBalance) domain.DailyBalance {
	return domain.DailyBalance{
		ID:                m.ID,
		BusinessDate:      m.BusinessDate,
		OpeningBalanceMMK: m.OpeningBalanceMMK,
		ClosingBalanceMMK: m.ClosingBalanceMMK,
		OpenedAt:          m.OpenedAt,
		ClosedAt:          m.ClosedAt,
	}
}

// ToDomainFxBalance converts a DB model FX balance to the domain type.
func ToDomainFxBalance(m models.FxBalance) domain.FxBalance {
	return domain.FxBalance{
		ID:             m.ID,
		DailyBalanceID: m.DailyBalanceID,
		CurrencyCode:   m.CurrencyCode,
		OpeningAmount:  m.OpeningAmount,
		ClosingAmount:  m.ClosingAmount,
		UpdatedAt:      m.UpdatedAt,
	}
}

// ToDomainFxBalanceSlice converts a slice of model FX balances.
func ToDomainFxBalanceSlice(ms []models.FxBalance) []domain.FxBalance {
	out := make([]domain.FxBalance, len(ms))
	for i, m := range ms {
		out[i] = ToDomainFxBalance(m)
	}
	return out
}
