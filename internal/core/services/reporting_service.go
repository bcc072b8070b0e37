package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shwefx/money_changer_app/internal/apperrors"
	"github.com/shwefx/money_changer_app/internal/core/domain"
	portsrepo "github.com/shwefx/money_changer_app/internal/core/ports/repositories"
)

// ReportingService assembles ledger aggregates and closed-day profit/loss
// into report rows. Transaction totals and profit/loss come from separate
// grouped queries; the service merges them per period bucket so a period
// with activity on only one side still appears, zero-filled on the other.
type ReportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

func NewReportingService(reportingRepo portsrepo.ReportingRepository) *ReportingService {
	return &ReportingService{reportingRepo: reportingRepo}
}

func (s *ReportingService) DailyReport(ctx context.Context, date time.Time) (*domain.DailyReport, error) {
	report, err := s.reportingRepo.GetDailyTotals(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to build daily report: %w", err)
	}
	return report, nil
}

func (s *ReportingService) RangeReport(ctx context.Context, start, end time.Time) (*domain.RangeReport, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date precedes start date", apperrors.ErrValidation)
	}

	totals, err := s.reportingRepo.GetRangeTotals(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load range totals: %w", err)
	}
	profitLoss, err := s.reportingRepo.GetRangeProfitLoss(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load range profit/loss: %w", err)
	}

	return &domain.RangeReport{
		Start:             start,
		End:               end,
		TotalTransactions: totals.TotalTransactions,
		TotalMMKPaidOut:   totals.TotalMMKPaidOut,
		TotalMMKReceived:  totals.TotalMMKReceived,
		ProfitLossMMK:     profitLoss,
	}, nil
}

func (s *ReportingService) MonthlyReport(ctx context.Context, year int) ([]domain.PeriodSummary, error) {
	if year < 1970 || year > 9999 {
		return nil, fmt.Errorf("%w: year out of range", apperrors.ErrValidation)
	}

	txTotals, err := s.reportingRepo.GetMonthlyTxTotals(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly totals: %w", err)
	}
	profitLoss, err := s.reportingRepo.GetMonthlyProfitLoss(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly profit/loss: %w", err)
	}

	return mergePeriods(txTotals, profitLoss), nil
}

func (s *ReportingService) YearlyReport(ctx context.Context) ([]domain.PeriodSummary, error) {
	txTotals, err := s.reportingRepo.GetYearlyTxTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load yearly totals: %w", err)
	}
	profitLoss, err := s.reportingRepo.GetYearlyProfitLoss(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load yearly profit/loss: %w", err)
	}

	return mergePeriods(txTotals, profitLoss), nil
}

// mergePeriods joins the two grouped aggregates over the union of their
// period labels, newest first.
func mergePeriods(txTotals map[string]domain.PeriodTotals, profitLoss map[string]decimal.Decimal) []domain.PeriodSummary {
	labels := make(map[string]struct{}, len(txTotals)+len(profitLoss))
	for label := range txTotals {
		labels[label] = struct{}{}
	}
	for label := range profitLoss {
		labels[label] = struct{}{}
	}

	summaries := make([]domain.PeriodSummary, 0, len(labels))
	for label := range labels {
		totals := txTotals[label]
		summaries = append(summaries, domain.PeriodSummary{
			Period:            label,
			TotalTransactions: totals.TotalTransactions,
			TotalMMKPaidOut:   totals.TotalMMKPaidOut,
			TotalMMKReceived:  totals.TotalMMKReceived,
			ProfitLossMMK:     profitLoss[label],
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Period > summaries[j].Period })
	return summaries
}
