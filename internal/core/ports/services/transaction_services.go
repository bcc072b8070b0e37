package services

import (
	"context"
	"time"

	"github.com/shwefx/money_changer_app/internal/core/domain"
	"github.com/shwefx/money_changer_app/internal/dto"
)

// TransactionSvcFacade exposes the transaction ledger operations. Every
// mutation consults the balance engine's day-closed guard first.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, createdBy string) (*domain.Transaction, error)
	GetTransaction(ctx context.Context, id int64) (*domain.Transaction, error)
	// ListTransactions returns the given business date in full, or the latest
	// records across all dates when date is nil.
	ListTransactions(ctx context.Context, date *time.Time) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, id int64, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error
}
