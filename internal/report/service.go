package report

import "github.com/pnlfolio/pnlfolio/internal/model"

// Generate runs the full pipeline over a parsed log: filter, price
// estimation, aggregation, assembly. It is a pure function of its
// input; all fatal failure modes live in the parser, so a parsed log
// always yields a complete report. A log that filters down to nothing
// produces the all-zero report, not an error.
func Generate(log *model.TransactionLog, opts Options) *Report {
	records := Filter(log, opts.ExcludedTypes)
	priceRef := PriceReference(records)

	daily := AggregateDaily(records, priceRef)
	monthly := AggregateMonthly(records, priceRef)

	rep := assemble(records, daily, monthly, priceRef, opts)

	if !log.HasTypeColumn {
		rep.Warnings = append(rep.Warnings, model.Warning{
			Code:    model.WarnMissingTypeColumn,
			Message: "export has no Type column; deposits, withdrawals and transfers were not filtered out",
		})
	}
	switch {
	case !log.HasPriceColumn:
		rep.Warnings = append(rep.Warnings, model.Warning{
			Code:    model.WarnMissingPriceColumn,
			Message: "export has no Index Price column; all fiat figures are zero",
		})
	case priceRef.IsZero() && len(records) > 0:
		rep.Warnings = append(rep.Warnings, model.Warning{
			Code:    model.WarnNoPriceObserved,
			Message: "no non-zero index price observed; all fiat figures are zero",
		})
	}

	return rep
}
