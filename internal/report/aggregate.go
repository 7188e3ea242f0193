package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pnlfolio/pnlfolio/internal/model"
)

// Bucket label formats. The monthly label matches the account
// statement convention ("December 2025").
const (
	dailyLabelFormat   = "2006-01-02"
	monthlyLabelFormat = "January 2006"
)

// AggregateDaily sums P&L per calendar day and fills in cumulative
// and fiat columns. Buckets exist only for days with at least one
// record; there is no zero-filling of gap days.
func AggregateDaily(records []model.TransactionRecord, priceRef decimal.Decimal) Ledger {
	return aggregate(records, priceRef, dayStart, dailyLabelFormat)
}

// AggregateMonthly sums P&L per calendar month, with the same
// cumulative and fiat columns as the daily ledger.
func AggregateMonthly(records []model.TransactionRecord, priceRef decimal.Decimal) Ledger {
	return aggregate(records, priceRef, monthStart, monthlyLabelFormat)
}

// dayStart truncates a timestamp to its calendar date. The wall-clock
// date is taken as encoded in the source data, with no timezone
// conversion; an export mixing timezones can misassign boundary rows.
// The key is anchored in UTC so records from different offsets sharing
// a wall-clock date land in one bucket.
func dayStart(ts time.Time) time.Time {
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
}

func monthStart(ts time.Time) time.Time {
	return time.Date(ts.Year(), ts.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// aggregate groups records by bucket key, sums per bucket, then runs
// a single cumulative pass over bucket totals in ascending order.
// Cumulative values are computed from the already-summed bucket
// totals, not from per-record running sums, so the equity curve is
// free of intraday noise. Records must arrive sorted ascending.
func aggregate(records []model.TransactionRecord, priceRef decimal.Decimal, keyFn func(time.Time) time.Time, labelFormat string) Ledger {
	index := make(map[time.Time]int)
	var ledger Ledger

	for _, rec := range records {
		key := keyFn(rec.Timestamp)
		i, ok := index[key]
		if !ok {
			i = len(ledger)
			index[key] = i
			ledger = append(ledger, LedgerEntry{
				Period:   key,
				Label:    key.Format(labelFormat),
				GrossPnL: decimal.Zero,
				Fee:      decimal.Zero,
				NetPnL:   decimal.Zero,
			})
		}
		ledger[i].GrossPnL = ledger[i].GrossPnL.Add(rec.GrossPnL())
		ledger[i].Fee = ledger[i].Fee.Add(rec.Fee)
		ledger[i].NetPnL = ledger[i].NetPnL.Add(rec.NetPnL())
	}

	cumGross := decimal.Zero
	cumNet := decimal.Zero
	for i := range ledger {
		cumGross = cumGross.Add(ledger[i].GrossPnL)
		cumNet = cumNet.Add(ledger[i].NetPnL)
		ledger[i].CumulativeGross = cumGross
		ledger[i].CumulativeNet = cumNet

		ledger[i].GrossPnLFiat = ledger[i].GrossPnL.Mul(priceRef)
		ledger[i].FeeFiat = ledger[i].Fee.Mul(priceRef)
		ledger[i].NetPnLFiat = ledger[i].NetPnL.Mul(priceRef)
		ledger[i].CumulativeGrossFiat = cumGross.Mul(priceRef)
		ledger[i].CumulativeNetFiat = cumNet.Mul(priceRef)
	}

	return ledger
}
