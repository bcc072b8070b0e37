package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyReport is the transaction summary for one date. It is a pure ledger
// aggregate, independent of the balance engine.
type DailyReport struct {
	Date              time.Time
	TotalTransactions int
	TotalMMKPaidOut   decimal.Decimal
	TotalMMKReceived  decimal.Decimal
}

// RangeReport combines ledger totals over an inclusive date range with the
// profit/loss accumulated from closed daily balances in the same range.
type RangeReport struct {
	Start             time.Time
	End               time.Time
	TotalTransactions int
	TotalMMKPaidOut   decimal.Decimal
	TotalMMKReceived  decimal.Decimal
	ProfitLossMMK     decimal.Decimal
}

// PeriodTotals are the grouped ledger aggregates of one period bucket
// (a month or a year).
type PeriodTotals struct {
	TotalTransactions int
	TotalMMKPaidOut   decimal.Decimal
	TotalMMKReceived  decimal.Decimal
}

// PeriodSummary is one monthly or yearly report row. Period is the bucket
// label ("2025-03" or "2025"). A period appears when either side (ledger
// activity or closed-day profit/loss) has data; the missing side is zero.
type PeriodSummary struct {
	Period            string
	TotalTransactions int
	TotalMMKPaidOut   decimal.Decimal
	TotalMMKReceived  decimal.Decimal
	ProfitLossMMK     decimal.Decimal
}
