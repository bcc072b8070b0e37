package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shwefx/money_changer_app/internal/apperrors"
	"github.com/shwefx/money_changer_app/internal/core/domain"
	portsrepo "github.com/shwefx/money_changer_app/internal/core/ports/repositories"
)

// BalanceService implements the balance engine: the open/close state machine
// for business dates, the per-currency FX sub-ledger and the derived
// reconciliation view. Suggested closings are computed on read and never
// stored.
type BalanceService struct {
	balanceRepo  portsrepo.BalanceRepository
	txnRepo      portsrepo.TransactionRepository
	currencyRepo portsrepo.CurrencyRepository
}

func NewBalanceService(
	balanceRepo portsrepo.BalanceRepository,
	txnRepo portsrepo.TransactionRepository,
	currencyRepo portsrepo.CurrencyRepository,
) *BalanceService {
	return &BalanceService{
		balanceRepo:  balanceRepo,
		txnRepo:      txnRepo,
		currencyRepo: currencyRepo,
	}
}

func (s *BalanceService) SetOpening(ctx context.Context, date time.Time, amount decimal.Decimal) (*domain.DailyBalance, error) {
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: opening balance must not be negative", apperrors.ErrValidation)
	}
	balance, err := s.balanceRepo.UpsertOpeningBalance(ctx, date, amount)
	if err != nil {
		if errors.Is(err, apperrors.ErrDayClosed) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to set opening balance: %w", err)
	}
	return balance, nil
}

func (s *BalanceService) CloseDay(ctx context.Context, date time.Time, amount decimal.Decimal) (*domain.DailyBalance, error) {
	balance, err := s.balanceRepo.CloseDay(ctx, date, amount)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Closing requires an opening balance to exist first.
			return nil, fmt.Errorf("%w: no opening balance for %s", apperrors.ErrPrereqMissing, date.Format("2006-01-02"))
		}
		return nil, fmt.Errorf("failed to close day: %w", err)
	}
	return balance, nil
}

func (s *BalanceService) ReopenDay(ctx context.Context, date time.Time) (*domain.DailyBalance, error) {
	balance, err := s.balanceRepo.ReopenDay(ctx, date)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: no balance record for %s", apperrors.ErrNotFound, date.Format("2006-01-02"))
		}
		return nil, fmt.Errorf("failed to reopen day: %w", err)
	}
	return balance, nil
}

func (s *BalanceService) IsDayClosed(ctx context.Context, date time.Time) (bool, error) {
	balance, err := s.balanceRepo.FindDailyBalanceByDate(ctx, date)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check day state: %w", err)
	}
	return balance.IsClosed(), nil
}

// GetBalance assembles the reconciliation view for a date. It is valid for
// any date: with no balance record the stored fields and suggestions are nil
// and only ledger flows are reported.
func (s *BalanceService) GetBalance(ctx context.Context, date time.Time) (*domain.BalanceSnapshot, error) {
	balance, err := s.balanceRepo.FindDailyBalanceByDate(ctx, date)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to load daily balance: %w", err)
	}

	totals, err := s.txnRepo.GetDayTotals(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load day totals: %w", err)
	}
	flows, err := s.txnRepo.GetFxFlowsByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load fx flows: %w", err)
	}

	snapshot := &domain.BalanceSnapshot{
		Date:    date,
		Balance: balance,
		Totals:  totals,
	}

	var fxRows []domain.FxBalance
	if balance != nil {
		fxRows, err = s.balanceRepo.ListFxBalances(ctx, balance.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load fx balances: %w", err)
		}
		// suggested closing = opening + MMK received - MMK paid out
		suggested := balance.OpeningBalanceMMK.Add(totals.Received).Sub(totals.PaidOut).Round(2)
		snapshot.SuggestedClosingMMK = &suggested
	}

	snapshot.FxBalances = buildFxLines(fxRows, flows)
	return snapshot, nil
}

// buildFxLines merges stored FX rows with ledger flows. A line appears for
// every currency present on either side; suggestions need a stored opening.
func buildFxLines(fxRows []domain.FxBalance, flows map[string]domain.FxFlow) []domain.FxBalanceLine {
	byCurrency := make(map[string]*domain.FxBalanceLine)
	for i := range fxRows {
		row := fxRows[i]
		opening := row.OpeningAmount
		byCurrency[row.CurrencyCode] = &domain.FxBalanceLine{
			Currency:      row.CurrencyCode,
			OpeningAmount: &opening,
			ClosingAmount: row.ClosingAmount,
		}
	}
	for code := range flows {
		if _, ok := byCurrency[code]; !ok {
			byCurrency[code] = &domain.FxBalanceLine{Currency: code}
		}
	}

	lines := make([]domain.FxBalanceLine, 0, len(byCurrency))
	for code, line := range byCurrency {
		flow := flows[code]
		line.ForeignIn = flow.ForeignIn
		line.ForeignOut = flow.ForeignOut
		line.NetForeign = flow.ForeignIn.Sub(flow.ForeignOut)
		if line.OpeningAmount != nil {
			suggested := line.OpeningAmount.Add(line.NetForeign).Round(2)
			line.SuggestedClosingAmount = &suggested
			if line.ClosingAmount != nil {
				diff := line.ClosingAmount.Sub(suggested).Round(2)
				line.DiffAmount = &diff
			}
		}
		lines = append(lines, *line)
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].Currency < lines[j].Currency })
	return lines
}

func (s *BalanceService) OpenFx(ctx context.Context, date time.Time, currencyCode string, amount decimal.Decimal) (*domain.FxBalance, error) {
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: fx opening amount must not be negative", apperrors.ErrValidation)
	}
	code, err := s.activeCurrencyCode(ctx, currencyCode)
	if err != nil {
		return nil, err
	}

	fx, err := s.balanceRepo.UpsertFxOpening(ctx, date, code, amount)
	if err != nil {
		if errors.Is(err, apperrors.ErrPrereqMissing) || errors.Is(err, apperrors.ErrDayClosed) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to set fx opening: %w", err)
	}
	return fx, nil
}

func (s *BalanceService) CloseFx(ctx context.Context, date time.Time, currencyCode string, amount decimal.Decimal) (*domain.FxBalance, error) {
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: fx closing amount must not be negative", apperrors.ErrValidation)
	}
	code, err := s.activeCurrencyCode(ctx, currencyCode)
	if err != nil {
		return nil, err
	}

	fx, err := s.balanceRepo.SetFxClosing(ctx, date, code, amount)
	if err != nil {
		if errors.Is(err, apperrors.ErrPrereqMissing) || errors.Is(err, apperrors.ErrDayClosed) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to set fx closing: %w", err)
	}
	return fx, nil
}

// activeCurrencyCode normalises a currency code and verifies it is registered
// and active.
func (s *BalanceService) activeCurrencyCode(ctx context.Context, currencyCode string) (string, error) {
	code := strings.ToUpper(currencyCode)
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", fmt.Errorf("%w: %s", apperrors.ErrUnknownCurrency, code)
		}
		return "", fmt.Errorf("failed to look up currency: %w", err)
	}
	if !currency.IsActive {
		return "", fmt.Errorf("%w: %s", apperrors.ErrUnknownCurrency, code)
	}
	return code, nil
}

func (s *BalanceService) DeleteFx(ctx context.Context, date time.Time, currencyCode string) error {
	err := s.balanceRepo.DeleteFxBalance(ctx, date, strings.ToUpper(currencyCode))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrDayClosed) {
			return err
		}
		return fmt.Errorf("failed to delete fx balance: %w", err)
	}
	return nil
}
