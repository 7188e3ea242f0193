// Package report turns a normalized transaction log into P&L
// analytics: summary totals, equity curve, and daily/monthly ledgers,
// in both the settlement asset and an estimated fiat value.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pnlfolio/pnlfolio/internal/model"
)

// Options configures the pipeline. The exclusion set and trade label
// are configuration, not literals, so variant log formats can be
// supported without code changes.
type Options struct {
	// ExcludedTypes are record types dropped before any P&L math,
	// compared case-insensitively.
	ExcludedTypes []string
	// TradeType is the label counted as a trade in the summary,
	// compared exactly.
	TradeType string
}

// DefaultOptions returns the standard Deribit-log settings.
func DefaultOptions() Options {
	return Options{
		ExcludedTypes: []string{"transfer", "deposit", "withdrawal"},
		TradeType:     "trade",
	}
}

// LedgerEntry is one calendar bucket (day or month) of summed P&L.
// Cumulative fields are running sums of bucket totals in ascending
// bucket order; fiat fields are the asset fields multiplied by the
// report's single price reference.
type LedgerEntry struct {
	Period time.Time `json:"period"` // bucket start
	Label  string    `json:"label"`

	GrossPnL decimal.Decimal `json:"gross_pnl"`
	Fee      decimal.Decimal `json:"fee"`
	NetPnL   decimal.Decimal `json:"net_pnl"`

	CumulativeGross decimal.Decimal `json:"cumulative_gross"`
	CumulativeNet   decimal.Decimal `json:"cumulative_net"`

	GrossPnLFiat        decimal.Decimal `json:"gross_pnl_fiat"`
	FeeFiat             decimal.Decimal `json:"fee_fiat"`
	NetPnLFiat          decimal.Decimal `json:"net_pnl_fiat"`
	CumulativeGrossFiat decimal.Decimal `json:"cumulative_gross_fiat"`
	CumulativeNetFiat   decimal.Decimal `json:"cumulative_net_fiat"`
}

// Ledger is a chronologically ascending sequence of bucket entries.
type Ledger []LedgerEntry

// SortedAscending returns the ledger oldest-first.
func (l Ledger) SortedAscending() Ledger {
	out := make(Ledger, len(l))
	copy(out, l)
	return out
}

// SortedDescending returns the ledger most-recent-first.
func (l Ledger) SortedDescending() Ledger {
	out := make(Ledger, len(l))
	for i, e := range l {
		out[len(l)-1-i] = e
	}
	return out
}

// EquityPoint is one point of the cumulative-P&L series, derived from
// daily bucket totals rather than individual fills.
type EquityPoint struct {
	Date            time.Time       `json:"date"`
	CumulativeNet   decimal.Decimal `json:"cumulative_net"`
	CumulativeGross decimal.Decimal `json:"cumulative_gross"`
}

// Summary holds the headline figures of a report.
type Summary struct {
	TotalGross decimal.Decimal `json:"total_gross"`
	TotalNet   decimal.Decimal `json:"total_net"`
	TotalFees  decimal.Decimal `json:"total_fees"`

	TotalGrossFiat decimal.Decimal `json:"total_gross_fiat"`
	TotalNetFiat   decimal.Decimal `json:"total_net_fiat"`
	TotalFeesFiat  decimal.Decimal `json:"total_fees_fiat"`

	// TotalTrades counts filtered records whose type exactly matches
	// the configured trade label.
	TotalTrades int `json:"total_trades"`
	// WinRate is the share of daily buckets with positive net P&L,
	// in percent. Zero when there are no buckets.
	WinRate float64 `json:"win_rate"`
	// PriceReference is the last observed non-zero index price, used
	// for every fiat conversion in the report.
	PriceReference decimal.Decimal `json:"price_reference"`
}

// Report is the full output of one pipeline run.
type Report struct {
	Summary     Summary         `json:"summary"`
	EquityCurve []EquityPoint   `json:"equity_curve"`
	Daily       Ledger          `json:"daily"`
	Monthly     Ledger          `json:"monthly"`
	Warnings    []model.Warning `json:"warnings,omitempty"`
}
