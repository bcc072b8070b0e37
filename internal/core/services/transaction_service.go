package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shwefx/money_changer_app/internal/apperrors"
	"github.com/shwefx/money_changer_app/internal/core/domain"
	portsrepo "github.com/shwefx/money_changer_app/internal/core/ports/repositories"
	portssvc "github.com/shwefx/money_changer_app/internal/core/ports/services"
	"github.com/shwefx/money_changer_app/internal/dto"
)

// recentTransactionsLimit caps the undated listing.
const recentTransactionsLimit = 100

// TransactionService implements the buy/sell ledger. New records always take
// the business date from the shop clock and snapshot the currency's current
// rate; records on a closed day reject every mutation.
type TransactionService struct {
	txnRepo      portsrepo.TransactionRepository
	currencyRepo portsrepo.CurrencyRepository
	balanceSvc   portssvc.BalanceSvcFacade
	location     *time.Location
}

func NewTransactionService(
	txnRepo portsrepo.TransactionRepository,
	currencyRepo portsrepo.CurrencyRepository,
	balanceSvc portssvc.BalanceSvcFacade,
	location *time.Location,
) *TransactionService {
	return &TransactionService{
		txnRepo:      txnRepo,
		currencyRepo: currencyRepo,
		balanceSvc:   balanceSvc,
		location:     location,
	}
}

// businessToday is the shop's current business date.
func (s *TransactionService) businessToday() time.Time {
	now := time.Now().In(s.location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *TransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, createdBy string) (*domain.Transaction, error) {
	txnType := domain.TransactionType(strings.ToUpper(req.Type))
	if !txnType.IsValid() {
		return nil, fmt.Errorf("%w: type must be BUY or SELL", apperrors.ErrValidation)
	}
	if !req.ForeignAmount.IsPositive() {
		return nil, fmt.Errorf("%w: foreignAmount must be positive", apperrors.ErrValidation)
	}

	code := strings.ToUpper(req.CurrencyCode)
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownCurrency, code)
		}
		return nil, fmt.Errorf("failed to look up currency: %w", err)
	}
	if !currency.IsActive {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownCurrency, code)
	}
	rate := currency.RateFor(txnType)
	if !rate.IsPositive() {
		return nil, fmt.Errorf("%w: no %s rate configured for %s", apperrors.ErrValidation, txnType, code)
	}

	businessDate := s.businessToday()
	closed, err := s.balanceSvc.IsDayClosed(ctx, businessDate)
	if err != nil {
		return nil, fmt.Errorf("failed to check day state: %w", err)
	}
	if closed {
		return nil, apperrors.ErrDayClosed
	}

	txn := domain.Transaction{
		BusinessDate:  businessDate,
		Type:          txnType,
		CurrencyCode:  code,
		ForeignAmount: req.ForeignAmount,
		Rate:          rate,
		MMKAmount:     domain.LocalAmount(req.ForeignAmount, rate),
		CustomerName:  req.CustomerName,
	}
	if createdBy != "" {
		txn.CreatedBy = &createdBy
	}

	if err := s.txnRepo.SaveTransaction(ctx, &txn); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}
	return &txn, nil
}

func (s *TransactionService) GetTransaction(ctx context.Context, id int64) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: transaction %d", apperrors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return txn, nil
}

func (s *TransactionService) ListTransactions(ctx context.Context, date *time.Time) ([]domain.Transaction, error) {
	var (
		txns []domain.Transaction
		err  error
	)
	if date != nil {
		txns, err = s.txnRepo.ListTransactionsByDate(ctx, *date)
	} else {
		txns, err = s.txnRepo.ListRecentTransactions(ctx, recentTransactionsLimit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return txns, nil
}

func (s *TransactionService) UpdateTransaction(ctx context.Context, id int64, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: transaction %d", apperrors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to find transaction for update: %w", err)
	}

	if err := s.guardDayOpen(ctx, txn.BusinessDate); err != nil {
		return nil, err
	}

	if req.Type != nil {
		txnType := domain.TransactionType(strings.ToUpper(*req.Type))
		if !txnType.IsValid() {
			return nil, fmt.Errorf("%w: type must be BUY or SELL", apperrors.ErrValidation)
		}
		txn.Type = txnType
	}
	if req.CurrencyCode != nil {
		code := strings.ToUpper(*req.CurrencyCode)
		if _, err := s.currencyRepo.FindCurrencyByCode(ctx, code); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownCurrency, code)
			}
			return nil, fmt.Errorf("failed to look up currency: %w", err)
		}
		txn.CurrencyCode = code
	}
	if req.ForeignAmount != nil {
		if !req.ForeignAmount.IsPositive() {
			return nil, fmt.Errorf("%w: foreignAmount must be positive", apperrors.ErrValidation)
		}
		txn.ForeignAmount = *req.ForeignAmount
	}
	if req.Rate != nil {
		if !req.Rate.IsPositive() {
			return nil, fmt.Errorf("%w: rate must be positive", apperrors.ErrValidation)
		}
		txn.Rate = *req.Rate
	}
	if req.CustomerName != nil {
		txn.CustomerName = req.CustomerName
	}
	// The local amount is derived, never patched directly.
	txn.MMKAmount = domain.LocalAmount(txn.ForeignAmount, txn.Rate)

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	return txn, nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, id int64) error {
	txn, err := s.txnRepo.FindTransactionByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: transaction %d", apperrors.ErrNotFound, id)
		}
		return fmt.Errorf("failed to find transaction for delete: %w", err)
	}

	if err := s.guardDayOpen(ctx, txn.BusinessDate); err != nil {
		return err
	}

	if err := s.txnRepo.DeleteTransaction(ctx, id); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}

func (s *TransactionService) guardDayOpen(ctx context.Context, date time.Time) error {
	closed, err := s.balanceSvc.IsDayClosed(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to check day state: %w", err)
	}
	if closed {
		return apperrors.ErrDayClosed
	}
	return nil
}
