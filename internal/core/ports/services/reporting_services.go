package services

import (
	"context"
	"time"

	"github.com/shwefx/money_changer_app/internal/core/domain"
)

// ReportingSvcFacade exposes the reporting aggregator.
type ReportingSvcFacade interface {
	DailyReport(ctx context.Context, date time.Time) (*domain.DailyReport, error)
	RangeReport(ctx context.Context, start, end time.Time) (*domain.RangeReport, error)
	MonthlyReport(ctx context.Context, year int) ([]domain.PeriodSummary, error)
	YearlyReport(ctx context.Context) ([]domain.PeriodSummary, error)
}
