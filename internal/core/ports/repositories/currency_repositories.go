package repositories

import (
	"context"

	"github.com/shwefx/money_changer_app/internal/core/domain"
)

// CurrencyRepository defines persistence operations for the currency registry.
type CurrencyRepository interface {
	// SaveCurrency inserts a new currency. Returns apperrors.ErrConflict when
	// the code already exists.
	SaveCurrency(ctx context.Context, currency domain.Currency) error
	// UpdateCurrency overwrites an existing currency row. Returns
	// apperrors.ErrNotFound when no row matches the code.
	UpdateCurrency(ctx context.Context, currency domain.Currency) error
	// FindCurrencyByCode returns the currency regardless of active flag.
	FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
	// DeleteCurrency hard-deletes a currency row.
	DeleteCurrency(ctx context.Context, code string) error
	// IsCurrencyReferenced reports whether any transaction references the code.
	IsCurrencyReferenced(ctx context.Context, code string) (bool, error)
}
