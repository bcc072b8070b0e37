package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/shwefx/money_changer_app/internal/core/domain"
)

// CreateTransactionRequest defines the data a cashier submits for a new trade.
// The business date and rate snapshot are derived server-side.
type CreateTransactionRequest struct {
	Type          string          `json:"type" binding:"required,txtype"`
	CurrencyCode  string          `json:"currencyCode" binding:"required"`
	ForeignAmount decimal.Decimal `json:"foreignAmount"`
	CustomerName  *string         `json:"customerName"`
}

// UpdateTransactionRequest carries a partial patch; nil fields keep their
// existing values. The local amount is always recomputed from the resulting
// foreign amount and rate.
type UpdateTransactionRequest struct {
	Type          *string          `json:"type" binding:"omitempty,txtype"`
	CurrencyCode  *string          `json:"currencyCode"`
	ForeignAmount *decimal.Decimal `json:"foreignAmount"`
	Rate          *decimal.Decimal `json:"rate"`
	CustomerName  *string          `json:"customerName"`
}

// TransactionResponse defines the data returned for a ledger record.
type TransactionResponse struct {
	ID            int64           `json:"id"`
	BusinessDate  string          `json:"businessDate"`
	DateTime      time.Time       `json:"dateTime"`
	Type          string          `json:"type"`
	CurrencyCode  string          `json:"currencyCode"`
	ForeignAmount decimal.Decimal `json:"foreignAmount"`
	Rate          decimal.Decimal `json:"rate"`
	MMKAmount     decimal.Decimal `json:"mmkAmount"`
	CustomerName  *string         `json:"customerName"`
	CreatedBy     *string         `json:"createdBy"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            t.ID,
		BusinessDate:  t.BusinessDate.Format("2006-01-02"),
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

// ToListTransactionResponse converts a slice of domain transactions.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
