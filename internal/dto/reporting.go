package dto

import (
	"github.com/shopspring/decimal"
	"github.com/shwefx/money_changer_app/internal/core/domain"
)

// DailyReportResponse is the transaction summary for one date.
type DailyReportResponse struct {
	Date              string          `json:"date"`
	TotalTransactions int             `json:"totalTransactions"`
	TotalMMKPaidOut   decimal.Decimal `json:"totalMMKPaidOut"`
	TotalMMKReceived  decimal.Decimal `json:"totalMMKReceived"`
}

// RangeReportResponse is the summary over an inclusive date range.
type RangeReportResponse struct {
	Start             string          `json:"start"`
	End               string          `json:"end"`
	TotalTransactions int             `json:"totalTransactions"`
	TotalMMKPaidOut   decimal.Decimal `json:"totalMMKPaidOut"`
	TotalMMKReceived  decimal.Decimal `json:"totalMMKReceived"`
	ProfitLossMMK     decimal.Decimal `json:"profitLossMMK"`
}

// PeriodSummaryResponse is one row of the monthly or yearly report.
type PeriodSummaryResponse struct {
	Period            string          `json:"period"`
	TotalTransactions int             `json:"totalTransactions"`
	TotalMMKPaidOut   decimal.Decimal `json:"totalMMKPaidOut"`
	TotalMMKReceived  decimal.Decimal `json:"totalMMKReceived"`
	ProfitLossMMK     decimal.Decimal `json:"profitLossMMK"`
}

// ToDailyReportResponse converts a domain.DailyReport to its response DTO.
func ToDailyReportResponse(r *domain.DailyReport) DailyReportResponse {
	return DailyReportResponse{
		Date:              r.Date.Format("2006-01-02"),
		TotalTransactions: r.TotalTransactions,
		TotalMMKPaidOut:   r.TotalMMKPaidOut,
		TotalMMKReceived:  r.TotalMMKReceived,
	}
}

// ToRangeReportResponse converts a domain.RangeReport to its response DTO.
func ToRangeReportResponse(r *domain.RangeReport) RangeReportResponse {
	return RangeReportResponse{
		Start:             r.Start.Format("2006-01-02"),
		End:               r.End.Format("2006-01-02"),
		TotalTransactions: r.TotalTransactions,
		TotalMMKPaidOut:   r.TotalMMKPaidOut,
		TotalMMKReceived:  r.TotalMMKReceived,
		ProfitLossMMK:     r.ProfitLossMMK,
	}
}

// ToPeriodSummaryResponses converts a slice of domain period summaries.
func ToPeriodSummaryResponses(rows []domain.PeriodSummary) []PeriodSummaryResponse {
	res := make([]PeriodSummaryResponse, len(rows))
	for i, r := range rows {
		res[i] = PeriodSummaryResponse{
			Period:            r.Period,
			TotalTransactions: r.TotalTransactions,
			TotalMMKPaidOut:   r.TotalMMKPaidOut,
			TotalMMKReceived:  r.TotalMMKReceived,
			ProfitLossMMK:     r.ProfitLossMMK,
		}
	}
	return res
}
