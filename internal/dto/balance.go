package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/shwefx/money_changer_app/internal/core/domain"
)

// OpenBalanceRequest sets (or overwrites) the local-currency opening balance
// for a business date.
type OpenBalanceRequest struct {
	Date string `json:"date" binding:"required,datetime=2006-01-02"`
	// Pointer so an omitted amount fails binding instead of defaulting to zero.
	OpeningBalanceMMK *decimal.Decimal `json:"openingBalanceMMK" binding:"required"`
}

// CloseBalanceRequest closes a business date with an explicit closing balance.
type CloseBalanceRequest struct {
	Date              string           `json:"date" binding:"required,datetime=2006-01-02"`
	ClosingBalanceMMK *decimal.Decimal `json:"closingBalanceMMK" binding:"required"`
}

// ReopenBalanceRequest re-opens a previously closed business date.
type ReopenBalanceRequest struct {
	Date string `json:"date" binding:"required,datetime=2006-01-02"`
}

// OpenFxRequest sets the opening amount of one foreign-currency till.
type OpenFxRequest struct {
	Date          string           `json:"date" binding:"required,datetime=2006-01-02"`
	Currency      string           `json:"currency" binding:"required"`
	OpeningAmount *decimal.Decimal `json:"openingAmount" binding:"required"`
}

// CloseFxRequest sets the closing amount of one foreign-currency till.
type CloseFxRequest struct {
	Date          string           `json:"date" binding:"required,datetime=2006-01-02"`
	Currency      string           `json:"currency" binding:"required"`
	ClosingAmount *decimal.Decimal `json:"closingAmount" binding:"required"`
}

// DailyBalanceResponse is the stored daily balance row.
type DailyBalanceResponse struct {
	BusinessDate      string           `json:"businessDate"`
	OpeningBalanceMMK decimal.Decimal  `json:"openingBalanceMMK"`
	ClosingBalanceMMK *decimal.Decimal `json:"closingBalanceMMK"`
	OpenedAt          time.Time        `json:"openedAt"`
	ClosedAt          *time.Time       `json:"closedAt"`
}

// FxBalanceResponse is the stored FX row returned by the FX mutations.
type FxBalanceResponse struct {
	Currency      string           `json:"currency"`
	OpeningAmount decimal.Decimal  `json:"openingAmount"`
	ClosingAmount *decimal.Decimal `json:"closingAmount"`
}

// FxBalanceLineResponse is one row of the computed reconciliation view.
type FxBalanceLineResponse struct {
	Currency               string           `json:"currency"`
	OpeningAmount          *decimal.Decimal `json:"openingAmount"`
	ClosingAmount          *decimal.Decimal `json:"closingAmount"`
	ForeignIn              decimal.Decimal  `json:"foreignIn"`
	ForeignOut             decimal.Decimal  `json:"foreignOut"`
	NetForeign             decimal.Decimal  `json:"netForeign"`
	SuggestedClosingAmount *decimal.Decimal `json:"suggestedClosingAmount"`
	DiffAmount             *decimal.Decimal `json:"diffAmount"`
}

// BalanceTotalsResponse are the day's local-currency transaction flows.
type BalanceTotalsResponse struct {
	TotalMMKReceived decimal.Decimal `json:"totalMMKReceived"`
	TotalMMKPaidOut  decimal.Decimal `json:"totalMMKPaidOut"`
}

// BalanceSnapshotResponse is the full reconciliation view for one date.
type BalanceSnapshotResponse struct {
	Date                string                  `json:"date"`
	OpeningBalanceMMK   *decimal.Decimal        `json:"openingBalanceMMK"`
	ClosingBalanceMMK   *decimal.Decimal        `json:"closingBalanceMMK"`
	IsClosed            bool                    `json:"isClosed"`
	Totals              BalanceTotalsResponse   `json:"totals"`
	SuggestedClosingMMK *decimal.Decimal        `json:"suggestedClosingMMK"`
	FxBalances          []FxBalanceLineResponse `json:"fxBalances"`
}

// ToDailyBalanceResponse converts a domain.DailyBalance to its response DTO.
func ToDailyBalanceResponse(b *domain.DailyBalance) DailyBalanceResponse {
	return DailyBalanceResponse{
		BusinessDate:      b.BusinessDate.Format("2006-01-02"),
		OpeningBalanceMMK: b.OpeningBalanceMMK,
		ClosingBalanceMMK: b.ClosingBalanceMMK,
		OpenedAt:          b.OpenedAt,
		ClosedAt:          b.ClosedAt,
	}
}

// ToFxBalanceResponse converts a domain.FxBalance to its response DTO.
func ToFxBalanceResponse(fx *domain.FxBalance) FxBalanceResponse {
	return FxBalanceResponse{
		Currency:      fx.CurrencyCode,
		OpeningAmount: fx.OpeningAmount,
		ClosingAmount: fx.ClosingAmount,
	}
}

// ToBalanceSnapshotResponse converts a domain.BalanceSnapshot to its response DTO.
func ToBalanceSnapshotResponse(s *domain.BalanceSnapshot) BalanceSnapshotResponse {
	resp := BalanceSnapshotResponse{
		Date:     s.Date.Format("2006-01-02"),
		IsClosed: s.IsClosed(),
		Totals: BalanceTotalsResponse{
			TotalMMKReceived: s.Totals.Received,
			TotalMMKPaidOut:  s.Totals.PaidOut,
		},
		SuggestedClosingMMK: s.SuggestedClosingMMK,
		FxBalances:          make([]FxBalanceLineResponse, len(s.FxBalances)),
	}
	if s.Balance != nil {
		opening := s.Balance.OpeningBalanceMMK
		resp.OpeningBalanceMMK = &opening
		resp.ClosingBalanceMMK = s.Balance.ClosingBalanceMMK
	}
	for i, line := range s.FxBalances {
		resp.FxBalances[i] = FxBalanceLineResponse{
			Currency:               line.Currency,
			OpeningAmount:          line.OpeningAmount,
			ClosingAmount:          line.ClosingAmount,
			ForeignIn:              line.ForeignIn,
			ForeignOut:             line.ForeignOut,
			NetForeign:             line.NetForeign,
			SuggestedClosingAmount: line.SuggestedClosingAmount,
			DiffAmount:             line.DiffAmount,
		}
	}
	return resp
}
