package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shwefx/money_changer_app/internal/apperrors"
	"github.com/shwefx/money_changer_app/internal/core/domain"
	portsrepo "github.com/shwefx/money_changer_app/internal/core/ports/repositories"
	"github.com/shwefx/money_changer_app/internal/models"
	"github.com/shwefx/money_changer_app/internal/utils/mapping"
)

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for the currency registry.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepository {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepository = (*PgxCurrencyRepository)(nil)

const uniqueViolationCode = "23505"

// SaveCurrency inserts a new currency row.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	modelCurr := mapping.ToModelCurrency(currency)

	query := `
		INSERT INTO currencies (code, name, buy_rate, sell_rate, is_active)
		VALUES ($1, $2, $3, $4, $5);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelCurr.Code,
		modelCurr.Name,
		modelCurr.BuyRate,
		modelCurr.SellRate,
		modelCurr.IsActive,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("failed to save currency %s: %w", modelCurr.Code, err)
	}
	return nil
}

// UpdateCurrency overwrites an existing currency row.
func (r *PgxCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.Currency) error {
	modelCurr := mapping.ToModelCurrency(currency)

	query := `
		UPDATE currencies
		SET name = $2, buy_rate = $3, sell_rate = $4, is_active = $5
		WHERE code = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		modelCurr.Code,
		modelCurr.Name,
		modelCurr.BuyRate,
		modelCurr.SellRate,
		modelCurr.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to update currency %s: %w", modelCurr.Code, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindCurrencyByCode retrieves a currency by its code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	query := `
		SELECT code, name, buy_rate, sell_rate, is_active
		FROM currencies
		WHERE code = $1;
	`
	var modelCurr models.Currency
	err := r.Pool.QueryRow(ctx, query, code).Scan(
		&modelCurr.Code,
		&modelCurr.Name,
		&modelCurr.BuyRate,
		&modelCurr.SellRate,
		&modelCurr.IsActive,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency by code %s: %w", code, err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// ListCurrencies retrieves all currencies.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `
		SELECT code, name, buy_rate, sell_rate, is_active
		FROM currencies
		ORDER BY code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		var currency models.Currency
		err := row.Scan(
			&currency.Code,
			&currency.Name,
			&currency.BuyRate,
			&currency.SellRate,
			&currency.IsActive,
		)
		return currency, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect currency rows: %w", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}

// DeleteCurrency hard-deletes a currency row.
func (r *PgxCurrencyRepository) DeleteCurrency(ctx context.Context, code string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM currencies WHERE code = $1;`, code)
	if err != nil {
		return fmt.Errorf("failed to delete currency %s: %w", code, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// IsCurrencyReferenced reports whether any transaction references the code.
func (r *PgxCurrencyRepository) IsCurrencyReferenced(ctx context.Context, code string) (bool, error) {
	var referenced bool
	query := `SELECT EXISTS (SELECT 1 FROM transactions WHERE currency_code = $1);`
	if err := r.Pool.QueryRow(ctx, query, code).Scan(&referenced); err != nil {
		return false, fmt.Errorf("failed to check currency references for %s: %w", code, err)
	}
	return referenced, nil
}
