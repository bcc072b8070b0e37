package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shwefx/money_changer_app/internal/apperrors"
	"github.com/shwefx/money_changer_app/internal/core/domain"
	portsrepo "github.com/shwefx/money_changer_app/internal/core/ports/repositories"
	"github.com/shwefx/money_changer_app/internal/dto"
)

// CurrencyService implements the currency registry operations.
type CurrencyService struct {
	currencyRepo portsrepo.CurrencyRepository
}

func NewCurrencyService(currencyRepo portsrepo.CurrencyRepository) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo}
}

func (s *CurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	if req.BuyRate.IsNegative() || req.SellRate.IsNegative() {
		return nil, fmt.Errorf("%w: rates must not be negative", apperrors.ErrValidation)
	}

	currency := domain.Currency{
		Code:     strings.ToUpper(req.Code),
		Name:     req.Name,
		BuyRate:  req.BuyRate,
		SellRate: req.SellRate,
		IsActive: true,
	}
	if req.IsActive != nil {
		currency.IsActive = *req.IsActive
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, fmt.Errorf("%w: currency %s already exists", apperrors.ErrConflict, currency.Code)
		}
		return nil, fmt.Errorf("failed to create currency: %w", err)
	}
	return &currency, nil
}

func (s *CurrencyService) UpdateCurrency(ctx context.Context, code string, req dto.UpdateCurrencyRequest) (*domain.Currency, error) {
	code = strings.ToUpper(code)
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: currency %s", apperrors.ErrNotFound, code)
		}
		return nil, fmt.Errorf("failed to find currency for update: %w", err)
	}

	if req.Name != nil {
		currency.Name = *req.Name
	}
	if req.BuyRate != nil {
		currency.BuyRate = *req.BuyRate
	}
	if req.SellRate != nil {
		currency.SellRate = *req.SellRate
	}
	if req.IsActive != nil {
		currency.IsActive = *req.IsActive
	}
	if currency.BuyRate.IsNegative() || currency.SellRate.IsNegative() {
		return nil, fmt.Errorf("%w: rates must not be negative", apperrors.ErrValidation)
	}

	if err := s.currencyRepo.UpdateCurrency(ctx, *currency); err != nil {
		return nil, fmt.Errorf("failed to update currency: %w", err)
	}
	return currency, nil
}

func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, strings.ToUpper(code))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: currency %s", apperrors.ErrNotFound, strings.ToUpper(code))
		}
		return nil, fmt.Errorf("failed to get currency: %w", err)
	}
	return currency, nil
}

func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		currencies = []domain.Currency{}
	}
	return currencies, nil
}

func (s *CurrencyService) DeleteCurrency(ctx context.Context, code string) error {
	code = strings.ToUpper(code)
	referenced, err := s.currencyRepo.IsCurrencyReferenced(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to check currency references: %w", err)
	}
	if referenced {
		return fmt.Errorf("%w: currency %s is referenced by transactions", apperrors.ErrConflict, code)
	}
	if err := s.currencyRepo.DeleteCurrency(ctx, code); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: currency %s", apperrors.ErrNotFound, code)
		}
		return fmt.Errorf("failed to delete currency: %w", err)
	}
	return nil
}
