package report

import (
	"github.com/shopspring/decimal"

	"github.com/pnlfolio/pnlfolio/internal/model"
)

// assemble bundles computed pieces into a Report. No further math
// happens here beyond summing bucket totals into the headline
// figures, so any numeric discrepancy traces back to the filter,
// price estimator, or aggregator.
func assemble(records []model.TransactionRecord, daily, monthly Ledger, priceRef decimal.Decimal, opts Options) *Report {
	sum := Summary{
		TotalGross:     decimal.Zero,
		TotalNet:       decimal.Zero,
		TotalFees:      decimal.Zero,
		PriceReference: priceRef,
	}

	winning := 0
	for _, e := range daily {
		sum.TotalGross = sum.TotalGross.Add(e.GrossPnL)
		sum.TotalNet = sum.TotalNet.Add(e.NetPnL)
		sum.TotalFees = sum.TotalFees.Add(e.Fee)
		if e.NetPnL.IsPositive() {
			winning++
		}
	}
	if len(daily) > 0 {
		sum.WinRate = float64(winning) / float64(len(daily)) * 100
	}

	for _, rec := range records {
		if rec.Type == opts.TradeType {
			sum.TotalTrades++
		}
	}

	sum.TotalGrossFiat = sum.TotalGross.Mul(priceRef)
	sum.TotalNetFiat = sum.TotalNet.Mul(priceRef)
	sum.TotalFeesFiat = sum.TotalFees.Mul(priceRef)

	curve := make([]EquityPoint, len(daily))
	for i, e := range daily {
		curve[i] = EquityPoint{
			Date:            e.Period,
			CumulativeNet:   e.CumulativeNet,
			CumulativeGross: e.CumulativeGross,
		}
	}

	return &Report{
		Summary:     sum,
		EquityCurve: curve,
		Daily:       daily,
		Monthly:     monthly,
	}
}
