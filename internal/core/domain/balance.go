package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayState is the lifecycle state of a business date's balance record.
type DayState string

const (
	DayNoRecord DayState = "NO_RECORD"
	DayOpen     DayState = "OPEN"
	DayClosed   DayState = "CLOSED"
)

// DailyBalance is the local-currency till record for one business date.
// ClosedAt null means the day is still open for ledger mutation.
type DailyBalance struct {
	ID                int64            `json:"-"`
	BusinessDate      time.Time        `json:"businessDate"`
	OpeningBalanceMMK decimal.Decimal  `json:"openingBalanceMMK"`
	ClosingBalanceMMK *decimal.Decimal `json:"closingBalanceMMK"`
	OpenedAt          time.Time        `json:"openedAt"`
	ClosedAt          *time.Time       `json:"closedAt"`
}

// IsClosed reports whether the day has been closed.
func (b DailyBalance) IsClosed() bool {
	return b.ClosedAt != nil
}

// State returns the day's position in the open/close state machine.
func (b DailyBalance) State() DayState {
	if b.IsClosed() {
		return DayClosed
	}
	return DayOpen
}

// FxBalance is the per-currency till sub-record nested under a DailyBalance.
type FxBalance struct {
	ID             int64            `json:"-"`
	DailyBalanceID int64            `json:"-"`
	CurrencyCode   string           `json:"currency"`
	OpeningAmount  decimal.Decimal  `json:"openingAmount"`
	ClosingAmount  *decimal.Decimal `json:"closingAmount"`
	UpdatedAt      time.Time        `json:"-"`
}

// DayTotals are the local-currency transaction flows of a single date.
type DayTotals struct {
	PaidOut  decimal.Decimal `json:"totalMMKPaidOut"`  // Σ mmk_amount of BUY rows
	Received decimal.Decimal `json:"totalMMKReceived"` // Σ mmk_amount of SELL rows
}

// FxFlow is the foreign-currency transaction flow of one currency on one date.
type FxFlow struct {
	ForeignIn  decimal.Decimal // Σ foreign_amount of BUY rows
	ForeignOut decimal.Decimal // Σ foreign_amount of SELL rows
}

// FxBalanceLine is one row of the computed per-currency reconciliation view.
// Suggested and diff values are derived on read and never persisted.
type FxBalanceLine struct {
	Currency               string
	OpeningAmount          *decimal.Decimal
	ClosingAmount          *decimal.Decimal
	ForeignIn              decimal.Decimal
	ForeignOut             decimal.Decimal
	NetForeign             decimal.Decimal
	SuggestedClosingAmount *decimal.Decimal
	DiffAmount             *decimal.Decimal
}

// BalanceSnapshot is the full reconciliation view of a business date:
// the stored balance record (nil when none exists) plus the stateless
// suggested-closing computation over the day's ledger.
type BalanceSnapshot struct {
	Date                time.Time
	Balance             *DailyBalance
	Totals              DayTotals
	SuggestedClosingMMK *decimal.Decimal
	FxBalances          []FxBalanceLine
}

// IsClosed reports whether the snapshot's day is closed; a date with no
// balance record is never closed.
func (s BalanceSnapshot) IsClosed() bool {
	return s.Balance != nil && s.Balance.IsClosed()
}
