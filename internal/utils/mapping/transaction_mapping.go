package mapping

import (
	"github.com/shwefx/money_changer_app/internal/core/domain"
	"github.com/shwefx/money_changer_app/internal/models"
)

// ToModelTransaction converts a domain.Transaction to the DB model.
func ToModelTransaction(t domain.Transaction) models.Transaction {
	return models.Transaction{
		ID:            t.ID,
		BusinessDate:  t.BusinessDate,
		DateTime:      t.DateTime,
		Type:          string(t.Type),
		CurrencyCode:  t.CurrencyCode,
		ForeignAmount: t.ForeignAmount,
		Rate:          t.Rate,
		MMKAmount:     t.MMKAmount,
		CustomerName:  t.CustomerName,
		CreatedBy:     t.CreatedBy,
	}
}

// ToDomainTransaction converts a DB model transaction to the domain type.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:            m.ID,
		BusinessDate:  m.BusinessDate,
		DateTime:      m.DateTime,
		Type:          domain.TransactionType(m.Type),
		CurrencyCode:  m.CurrencyCode,
		ForeignAmount: m.ForeignAmount,
		Rate:          m.Rate,
		MMKAmount:     m.MMKAmount,
		CustomerName:  m.CustomerName,
		CreatedBy:     m.CreatedBy,
	}
}

// ToDomainTransactionSlice converts a slice of model transactions.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		out[i] = ToDomainTransaction(m)
	}
	return out
}
