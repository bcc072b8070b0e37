package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/shwefx/money_changer_app/internal/core/domain"
	portsrepo "github.com/shwefx/money_changer_app/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for report aggregates.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

func (r *PgxReportingRepository) GetDailyTotals(ctx context.Context, date time.Time) (*domain.DailyReport, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN type = 'BUY' THEN mmk_amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN type = 'SELL' THEN mmk_amount ELSE 0 END), 0)
		FROM transactions
		WHERE business_date = $1::date;
	`
	report := domain.DailyReport{Date: date}
	err := r.Pool.QueryRow(ctx, query, date).
		Scan(&report.TotalTransactions, &report.TotalMMKPaidOut, &report.TotalMMKReceived)
	if err != nil {
		return nil, fmt.Errorf("failed to sum daily report: %w", err)
	}
	return &report, nil
}

func (r *PgxReportingRepository) GetRangeTotals(ctx context.Context, start, end time.Time) (*domain.PeriodTotals, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN type = 'BUY' THEN mmk_amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN type = 'SELL' THEN mmk_amount ELSE 0 END), 0)
		FROM transactions
		WHERE business_date BETWEEN $1::date AND $2::date;
	`
	var totals domain.PeriodTotals
	err := r.Pool.QueryRow(ctx, query, start, end).
		Scan(&totals.TotalTransactions, &totals.TotalMMKPaidOut, &totals.TotalMMKReceived)
	if err != nil {
		return nil, fmt.Errorf("failed to sum range totals: %w", err)
	}
	return &totals, nil
}

// GetRangeProfitLoss sums closing minus opening over days closed within the
// inclusive range.
func (r *PgxReportingRepository) GetRangeProfitLoss(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(closing_balance_mmk - opening_balance_mmk), 0)
		FROM daily_balances
		WHERE business_date BETWEEN $1::date AND $2::date
			AND closed_at IS NOT NULL
			AND closing_balance_mmk IS NOT NULL;
	`
	var profitLoss decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, start, end).Scan(&profitLoss); err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to sum range profit/loss: %w", err)
	}
	return profitLoss, nil
}

func (r *PgxReportingRepository) GetMonthlyTxTotals(ctx context.Context, year int) (map[string]domain.PeriodTotals, error) {
	query := `
		SELECT
			to_char(business_date, 'YYYY-MM') AS period,
			COUNT(*),
			COALESCE(SUM(CASE WHEN type = 'BUY' THEN mmk_amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN type = 'SELL' THEN mmk_amount ELSE 0 END), 0)
		FROM transactions
		WHERE EXTRACT(YEAR FROM business_date) = $1
		GROUP BY period;
	`
	rows, err := r.Pool.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly totals: %w", err)
	}
	defer rows.Close()
	return collectPeriodTotals(rows)
}

func (r *PgxReportingRepository) GetMonthlyProfitLoss(ctx context.Context, year int) (map[string]decimal.Decimal, error) {
	query := `
		SELECT
			to_char(business_date, 'YYYY-MM') AS period,
			COALESCE(SUM(closing_balance_mmk - opening_balance_mmk), 0)
		FROM daily_balances
		WHERE EXTRACT(YEAR FROM business_date) = $1
			AND closed_at IS NOT NULL
			AND closing_balance_mmk IS NOT NULL
		GROUP BY period;
	`
	rows, err := r.Pool.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly profit/loss: %w", err)
	}
	defer rows.Close()
	return collectPeriodProfitLoss(rows)
}

func (r *PgxReportingRepository) GetYearlyTxTotals(ctx context.Context) (map[string]domain.PeriodTotals, error) {
	query := `
		SELECT
			to_char(business_date, 'YYYY') AS period,
			COUNT(*),
			COALESCE(SUM(CASE WHEN type = 'BUY' THEN mmk_amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN type = 'SELL' THEN mmk_amount ELSE 0 END), 0)
		FROM transactions
		GROUP BY period;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query yearly totals: %w", err)
	}
	defer rows.Close()
	return collectPeriodTotals(rows)
}

func (r *PgxReportingRepository) GetYearlyProfitLoss(ctx context.Context) (map[string]decimal.Decimal, error) {
	query := `
		SELECT
			to_char(business_date, 'YYYY') AS period,
			COALESCE(SUM(closing_balance_mmk - opening_balance_mmk), 0)
		FROM daily_balances
		WHERE closed_at IS NOT NULL
			AND closing_balance_mmk IS NOT NULL
		GROUP BY period;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query yearly profit/loss: %w", err)
	}
	defer rows.Close()
	return collectPeriodProfitLoss(rows)
}

func collectPeriodTotals(rows pgx.Rows) (map[string]domain.PeriodTotals, error) {
	totals := make(map[string]domain.PeriodTotals)
	for rows.Next() {
		var (
			period string
			t      domain.PeriodTotals
		)
		if err := rows.Scan(&period, &t.TotalTransactions, &t.TotalMMKPaidOut, &t.TotalMMKReceived); err != nil {
			return nil, fmt.Errorf("failed to scan period totals row: %w", err)
		}
		totals[period] = t
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read period totals rows: %w", err)
	}
	return totals, nil
}

func collectPeriodProfitLoss(rows pgx.Rows) (map[string]decimal.Decimal, error) {
	profitLoss := make(map[string]decimal.Decimal)
	for rows.Next() {
		var (
			period string
			amount decimal.Decimal
		)
		if err := rows.Scan(&period, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan profit/loss row: %w", err)
		}
		profitLoss[period] = amount
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read profit/loss rows: %w", err)
	}
	return profitLoss, nil
}
