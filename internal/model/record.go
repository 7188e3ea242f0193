package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionRecord represents one normalized row of an exchange
// transaction log. Records are immutable once parsed; derived P&L
// values are pure functions of the stored fields.
type TransactionRecord struct {
	Timestamp  time.Time
	Type       string          // exchange event type (trade, settlement, delivery, ...)
	CashFlow   decimal.Decimal // signed settlement-asset change, before fees
	Fee        decimal.Decimal // non-negative fee charged for this event
	IndexPrice decimal.Decimal // fiat index price at record time; zero = not observed
}

// GrossPnL returns the gross value change of the record (cash flow
// before fees).
func (r TransactionRecord) GrossPnL() decimal.Decimal {
	return r.CashFlow
}

// NetPnL returns the value change after fees.
func (r TransactionRecord) NetPnL() decimal.Decimal {
	return r.CashFlow.Sub(r.Fee)
}

// TransactionLog is a parsed export: records sorted ascending by
// timestamp, plus which optional columns the source file carried.
// Column presence drives the degrade-gracefully paths downstream
// (no filtering without a Type column, zero price reference without
// an Index Price column).
type TransactionLog struct {
	Records        []TransactionRecord
	HasTypeColumn  bool
	HasPriceColumn bool
}
