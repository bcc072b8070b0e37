package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shwefx/money_changer_app/internal/core/domain"
)

// ReportingRepository supplies grouped aggregates for the reporting service.
// Transaction totals and balance profit/loss are queried independently; the
// service merges the two sides per period.
type ReportingRepository interface {
	GetDailyTotals(ctx context.Context, date time.Time) (*domain.DailyReport, error)

	GetRangeTotals(ctx context.Context, start, end time.Time) (*domain.PeriodTotals, error)
	// GetRangeProfitLoss sums closing-opening over closed daily balances with
	// both ends non-null within the inclusive range.
	GetRangeProfitLoss(ctx context.Context, start, end time.Time) (decimal.Decimal, error)

	// Monthly aggregates for one year, keyed by "YYYY-MM".
	GetMonthlyTxTotals(ctx context.Context, year int) (map[string]domain.PeriodTotals, error)
	GetMonthlyProfitLoss(ctx context.Context, year int) (map[string]decimal.Decimal, error)

	// Yearly aggregates over all data, keyed by "YYYY".
	GetYearlyTxTotals(ctx context.Context) (map[string]domain.PeriodTotals, error)
	GetYearlyProfitLoss(ctx context.Context) (map[string]decimal.Decimal, error)
}
