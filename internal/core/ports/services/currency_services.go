package services

import (
	"context"

	"github.com/shwefx/money_changer_app/internal/core/domain"
	"github.com/shwefx/money_changer_app/internal/dto"
)

// CurrencySvcFacade exposes the currency registry operations.
type CurrencySvcFacade interface {
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error)
	UpdateCurrency(ctx context.Context, code string, req dto.UpdateCurrencyRequest) (*domain.Currency, error)
	GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
	// DeleteCurrency hard-deletes a currency; fails with apperrors.ErrConflict
	// while any transaction references it.
	DeleteCurrency(ctx context.Context, code string) error
}
