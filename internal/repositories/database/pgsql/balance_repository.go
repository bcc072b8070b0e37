package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/shwefx/money_changer_app/internal/apperrors"
	"github.com/shwefx/money_changer_app/internal/core/domain"
	portsrepo "github.com/shwefx/money_changer_app/internal/core/ports/repositories"
	"github.com/shwefx/money_changer_app/internal/models"
	"github.com/shwefx/money_changer_app/internal/utils/mapping"
)

type PgxBalanceRepository struct {
	BaseRepository
}

// newPgxBalanceRepository creates a new repository for daily balances and the
// FX sub-ledger.
func newPgxBalanceRepository(pool *pgxpool.Pool) portsrepo.BalanceRepository {
	return &PgxBalanceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.BalanceRepository = (*PgxBalanceRepository)(nil)

const dailyBalanceColumns = `id, business_date, opening_balance_mmk, closing_balance_mmk, opened_at, closed_at`

func scanDailyBalance(row pgx.Row) (models.DailyBalance, error) {
	var m models.DailyBalance
	err := row.Scan(
		&m.ID,
		&m.BusinessDate,
		&m.OpeningBalanceMMK,
		&m.ClosingBalanceMMK,
		&m.OpenedAt,
		&m.ClosedAt,
	)
	return m, err
}

// UpsertOpeningBalance creates the balance row for a date or overwrites its
// opening amount. The conditional upsert only touches rows that are still
// open; a closed day yields no row and maps to ErrDayClosed.
func (r *PgxBalanceRepository) UpsertOpeningBalance(ctx context.Context, date time.Time, opening decimal.Decimal) (*domain.DailyBalance, error) {
	query := `
		INSERT INTO daily_balances (business_date, opening_balance_mmk)
		VALUES ($1::date, $2)
		ON CONFLICT (business_date) DO UPDATE
			SET opening_balance_mmk = EXCLUDED.opening_balance_mmk
			WHERE daily_balances.closed_at IS NULL
		RETURNING ` + dailyBalanceColumns + `;
	`
	m, err := scanDailyBalance(r.Pool.QueryRow(ctx, query, date, opening))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDayClosed
		}
		return nil, fmt.Errorf("failed to upsert opening balance: %w", err)
	}
	balance := mapping.ToDomainDailyBalance(m)
	return &balance, nil
}

func (r *PgxBalanceRepository) FindDailyBalanceByDate(ctx context.Context, date time.Time) (*domain.DailyBalance, error) {
	query := `SELECT ` + dailyBalanceColumns + ` FROM daily_balances WHERE business_date = $1::date;`
	m, err := scanDailyBalance(r.Pool.QueryRow(ctx, query, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find daily balance: %w", err)
	}
	balance := mapping.ToDomainDailyBalance(m)
	return &balance, nil
}

// CloseDay stamps closed_at and stores the closing balance.
func (r *PgxBalanceRepository) CloseDay(ctx context.Context, date time.Time, closing decimal.Decimal) (*domain.DailyBalance, error) {
	query := `
		UPDATE daily_balances
		SET closing_balance_mmk = $2, closed_at = now()
		WHERE business_date = $1::date
		RETURNING ` + dailyBalanceColumns + `;
	`
	m, err := scanDailyBalance(r.Pool.QueryRow(ctx, query, date, closing))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to close day: %w", err)
	}
	balance := mapping.ToDomainDailyBalance(m)
	return &balance, nil
}

// ReopenDay clears closed_at and the closing balance.
func (r *PgxBalanceRepository) ReopenDay(ctx context.Context, date time.Time) (*domain.DailyBalance, error) {
	query := `
		UPDATE daily_balances
		SET closing_balance_mmk = NULL, closed_at = NULL
		WHERE business_date = $1::date
		RETURNING ` + dailyBalanceColumns + `;
	`
	m, err := scanDailyBalance(r.Pool.QueryRow(ctx, query, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to reopen day: %w", err)
	}
	balance := mapping.ToDomainDailyBalance(m)
	return &balance, nil
}

func (r *PgxBalanceRepository) ListFxBalances(ctx context.Context, dailyBalanceID int64) ([]domain.FxBalance, error) {
	query := `
		SELECT id, daily_balance_id, currency_code, opening_amount, closing_amount, updated_at
		FROM daily_balance_fx
		WHERE daily_balance_id = $1
		ORDER BY currency_code;
	`
	rows, err := r.Pool.Query(ctx, query, dailyBalanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query fx balances: %w", err)
	}
	defer rows.Close()

	modelFx, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.FxBalance, error) {
		var m models.FxBalance
		err := row.Scan(&m.ID, &m.DailyBalanceID, &m.CurrencyCode, &m.OpeningAmount, &m.ClosingAmount, &m.UpdatedAt)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect fx balance rows: %w", err)
	}
	return mapping.ToDomainFxBalanceSlice(modelFx), nil
}

// lockDayRow takes an exclusive lock on the daily_balances row of a date for
// the duration of tx. missingErr is returned when no row exists.
func lockDayRow(ctx context.Context, tx pgx.Tx, date time.Time, missingErr error) (int64, error) {
	var (
		id       int64
		closedAt *time.Time
	)
	query := `SELECT id, closed_at FROM daily_balances WHERE business_date = $1::date FOR UPDATE;`
	err := tx.QueryRow(ctx, query, date).Scan(&id, &closedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, missingErr
		}
		return 0, fmt.Errorf("failed to lock daily balance row: %w", err)
	}
	if closedAt != nil {
		return 0, apperrors.ErrDayClosed
	}
	return id, nil
}

// UpsertFxOpening sets the FX opening amount for (date, currency) inside a
// single transaction holding the day-row lock.
func (r *PgxBalanceRepository) UpsertFxOpening(ctx context.Context, date time.Time, currencyCode string, amount decimal.Decimal) (*domain.FxBalance, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	dayID, err := lockDayRow(ctx, tx, date, apperrors.ErrPrereqMissing)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO daily_balance_fx (daily_balance_id, currency_code, opening_amount, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (daily_balance_id, currency_code) DO UPDATE
			SET opening_amount = EXCLUDED.opening_amount, updated_at = now()
		RETURNING id, daily_balance_id, currency_code, opening_amount, closing_amount, updated_at;
	`
	var m models.FxBalance
	err = tx.QueryRow(ctx, query, dayID, currencyCode, amount).
		Scan(&m.ID, &m.DailyBalanceID, &m.CurrencyCode, &m.OpeningAmount, &m.ClosingAmount, &m.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert fx opening: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	fx := mapping.ToDomainFxBalance(m)
	return &fx, nil
}

// SetFxClosing sets the FX closing amount inside a single transaction holding
// the day-row lock. The FX row must already have an opening.
func (r *PgxBalanceRepository) SetFxClosing(ctx context.Context, date time.Time, currencyCode string, amount decimal.Decimal) (*domain.FxBalance, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	dayID, err := lockDayRow(ctx, tx, date, apperrors.ErrPrereqMissing)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE daily_balance_fx
		SET closing_amount = $3, updated_at = now()
		WHERE daily_balance_id = $1 AND currency_code = $2
		RETURNING id, daily_balance_id, currency_code, opening_amount, closing_amount, updated_at;
	`
	var m models.FxBalance
	err = tx.QueryRow(ctx, query, dayID, currencyCode, amount).
		Scan(&m.ID, &m.DailyBalanceID, &m.CurrencyCode, &m.OpeningAmount, &m.ClosingAmount, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPrereqMissing
		}
		return nil, fmt.Errorf("failed to set fx closing: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	fx := mapping.ToDomainFxBalance(m)
	return &fx, nil
}

// DeleteFxBalance removes the FX row inside a single transaction holding the
// day-row lock.
func (r *PgxBalanceRepository) DeleteFxBalance(ctx context.Context, date time.Time, currencyCode string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	dayID, err := lockDayRow(ctx, tx, date, apperrors.ErrNotFound)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM daily_balance_fx WHERE daily_balance_id = $1 AND currency_code = $2;`, dayID, currencyCode)
	if err != nil {
		return fmt.Errorf("failed to delete fx balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}
