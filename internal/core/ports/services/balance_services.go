package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shwefx/money_changer_app/internal/core/domain"
)

// BalanceSvcFacade exposes the balance engine: the per-date open/close state
// machine, the FX sub-ledger and the stateless suggested-closing view.
type BalanceSvcFacade interface {
	// SetOpening creates or overwrites the opening balance for a date.
	// Rejected with apperrors.ErrDayClosed once the day is closed.
	SetOpening(ctx context.Context, date time.Time, amount decimal.Decimal) (*domain.DailyBalance, error)
	// CloseDay stores the closing balance and locks the day. Fails with
	// apperrors.ErrPrereqMissing when no opening has been set.
	CloseDay(ctx context.Context, date time.Time, amount decimal.Decimal) (*domain.DailyBalance, error)
	// ReopenDay clears the closed state. Fails with apperrors.ErrNotFound when
	// no balance record exists for the date.
	ReopenDay(ctx context.Context, date time.Time) (*domain.DailyBalance, error)
	// GetBalance returns the reconciliation view; valid for any date,
	// including ones with no balance record.
	GetBalance(ctx context.Context, date time.Time) (*domain.BalanceSnapshot, error)
	// IsDayClosed is the guard consulted by the transaction ledger.
	IsDayClosed(ctx context.Context, date time.Time) (bool, error)

	OpenFx(ctx context.Context, date time.Time, currencyCode string, amount decimal.Decimal) (*domain.FxBalance, error)
	CloseFx(ctx context.Context, date time.Time, currencyCode string, amount decimal.Decimal) (*domain.FxBalance, error)
	DeleteFx(ctx context.Context, date time.Time, currencyCode string) error
}
