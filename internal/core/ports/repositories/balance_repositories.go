package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shwefx/money_changer_app/internal/core/domain"
)

// BalanceRepository defines persistence operations for daily balances and
// their per-currency FX sub-records.
//
// The three Fx mutation methods each execute as a single database transaction
// that takes an exclusive row lock on the owning daily_balances row before
// validating and writing, so concurrent FX mutations for the same date cannot
// interleave inconsistently.
type BalanceRepository interface {
	// UpsertOpeningBalance creates the daily balance row for a date or
	// overwrites its opening amount. Returns apperrors.ErrDayClosed when the
	// day has already been closed.
	UpsertOpeningBalance(ctx context.Context, date time.Time, opening decimal.Decimal) (*domain.DailyBalance, error)
	FindDailyBalanceByDate(ctx context.Context, date time.Time) (*domain.DailyBalance, error)
	// CloseDay stamps closed_at and stores the closing balance. Returns
	// apperrors.ErrNotFound when no row exists for the date.
	CloseDay(ctx context.Context, date time.Time, closing decimal.Decimal) (*domain.DailyBalance, error)
	// ReopenDay clears closed_at and the closing balance. Returns
	// apperrors.ErrNotFound when no row exists for the date.
	ReopenDay(ctx context.Context, date time.Time) (*domain.DailyBalance, error)

	ListFxBalances(ctx context.Context, dailyBalanceID int64) ([]domain.FxBalance, error)
	// UpsertFxOpening sets the FX opening amount for (date, currency) under the
	// day-row lock. Errors: ErrPrereqMissing (no daily balance row),
	// ErrDayClosed.
	UpsertFxOpening(ctx context.Context, date time.Time, currencyCode string, amount decimal.Decimal) (*domain.FxBalance, error)
	// SetFxClosing sets the FX closing amount under the day-row lock. Errors:
	// ErrPrereqMissing (no daily balance row or no FX opening), ErrDayClosed.
	SetFxClosing(ctx context.Context, date time.Time, currencyCode string, amount decimal.Decimal) (*domain.FxBalance, error)
	// DeleteFxBalance removes the FX row under the day-row lock. Errors:
	// ErrNotFound (no daily balance or FX row), ErrDayClosed.
	DeleteFxBalance(ctx context.Context, date time.Time, currencyCode string) error
}
