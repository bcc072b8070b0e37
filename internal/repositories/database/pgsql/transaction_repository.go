package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shwefx/money_changer_app/internal/apperrors"
	"github.com/shwefx/money_changer_app/internal/core/domain"
	portsrepo "github.com/shwefx/money_changer_app/internal/core/ports/repositories"
	"github.com/shwefx/money_changer_app/internal/models"
	"github.com/shwefx/money_changer_app/internal/utils/mapping"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for the buy/sell ledger.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

const transactionColumns = `id, business_date, date_time, type, currency_code, foreign_amount, rate, mmk_amount, customer_name, created_by`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.ID,
		&m.BusinessDate,
		&m.DateTime,
		&m.Type,
		&m.CurrencyCode,
		&m.ForeignAmount,
		&m.Rate,
		&m.MMKAmount,
		&m.CustomerName,
		&m.CreatedBy,
	)
	return m, err
}

// SaveTransaction inserts a new ledger row and fills the generated ID and
// timestamp on the passed struct.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn *domain.Transaction) error {
	query := `
		INSERT INTO transactions (business_date, type, currency_code, foreign_amount, rate, mmk_amount, customer_name, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, date_time;
	`
	err := r.Pool.QueryRow(ctx, query,
		txn.BusinessDate,
		string(txn.Type),
		txn.CurrencyCode,
		txn.ForeignAmount,
		txn.Rate,
		txn.MMKAmount,
		txn.CustomerName,
		txn.CreatedBy,
	).Scan(&txn.ID, &txn.DateTime)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1;`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %d: %w", id, err)
	}
	domainTxn := mapping.ToDomainTransaction(m)
	return &domainTxn, nil
}

// ListTransactionsByDate returns all rows of one business date, newest first.
func (r *PgxTransactionRepository) ListTransactionsByDate(ctx context.Context, date time.Time) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE business_date = $1::date
		ORDER BY date_time DESC, id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions by date: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// ListRecentTransactions returns the latest rows across all dates.
func (r *PgxTransactionRepository) ListRecentTransactions(ctx context.Context, limit int) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		ORDER BY date_time DESC, id DESC
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent transactions: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	modelTxns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect transaction rows: %w", err)
	}
	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		UPDATE transactions
		SET type = $2, currency_code = $3, foreign_amount = $4, rate = $5, mmk_amount = $6, customer_name = $7
		WHERE id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ID,
		m.Type,
		m.CurrencyCode,
		m.ForeignAmount,
		m.Rate,
		m.MMKAmount,
		m.CustomerName,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %d: %w", m.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, id int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// GetDayTotals sums the local-currency amounts of one business date, split by
// direction.
func (r *PgxTransactionRepository) GetDayTotals(ctx context.Context, date time.Time) (domain.DayTotals, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN type = 'BUY' THEN mmk_amount ELSE 0 END), 0) AS paid_out,
			COALESCE(SUM(CASE WHEN type = 'SELL' THEN mmk_amount ELSE 0 END), 0) AS received
		FROM transactions
		WHERE business_date = $1::date;
	`
	var totals domain.DayTotals
	if err := r.Pool.QueryRow(ctx, query, date).Scan(&totals.PaidOut, &totals.Received); err != nil {
		return domain.DayTotals{}, fmt.Errorf("failed to sum day totals: %w", err)
	}
	return totals, nil
}

// GetFxFlowsByDate sums the foreign amounts of one business date per currency.
func (r *PgxTransactionRepository) GetFxFlowsByDate(ctx context.Context, date time.Time) (map[string]domain.FxFlow, error) {
	query := `
		SELECT
			currency_code,
			COALESCE(SUM(CASE WHEN type = 'BUY' THEN foreign_amount ELSE 0 END), 0) AS foreign_in,
			COALESCE(SUM(CASE WHEN type = 'SELL' THEN foreign_amount ELSE 0 END), 0) AS foreign_out
		FROM transactions
		WHERE business_date = $1::date
		GROUP BY currency_code;
	`
	rows, err := r.Pool.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query fx flows: %w", err)
	}
	defer rows.Close()

	flows := make(map[string]domain.FxFlow)
	for rows.Next() {
		var (
			code string
			flow domain.FxFlow
		)
		if err := rows.Scan(&code, &flow.ForeignIn, &flow.ForeignOut); err != nil {
			return nil, fmt.Errorf("failed to scan fx flow row: %w", err)
		}
		flows[code] = flow
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read fx flow rows: %w", err)
	}
	return flows, nil
}
