package repositories

import (
	"context"
	"time"

	"github.com/shwefx/money_changer_app/internal/core/domain"
)

// TransactionRepository defines persistence operations for the transaction ledger.
type TransactionRepository interface {
	// SaveTransaction inserts a new transaction and fills the generated ID and
	// DateTime on the passed struct.
	SaveTransaction(ctx context.Context, txn *domain.Transaction) error
	FindTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error)
	// ListTransactionsByDate returns the whole business day, newest first.
	ListTransactionsByDate(ctx context.Context, date time.Time) ([]domain.Transaction, error)
	// ListRecentTransactions returns the latest transactions across all dates.
	ListRecentTransactions(ctx context.Context, limit int) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
	DeleteTransaction(ctx context.Context, id int64) error

	// GetDayTotals sums the local-currency amounts of one business date,
	// split by direction.
	GetDayTotals(ctx context.Context, date time.Time) (domain.DayTotals, error)
	// GetFxFlowsByDate sums the foreign amounts of one business date, grouped
	// by currency code.
	GetFxFlowsByDate(ctx context.Context, date time.Time) (map[string]domain.FxFlow, error)
}
