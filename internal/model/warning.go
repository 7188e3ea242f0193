package model

import "fmt"

// WarningCode identifies a recoverable degraded-mode condition.
type WarningCode string

const (
	// WarnMissingTypeColumn: the export has no Type column, so no
	// transfer/deposit/withdrawal filtering was applied.
	WarnMissingTypeColumn WarningCode = "missing_type_column"
	// WarnMissingPriceColumn: the export has no Index Price column;
	// the price reference is zero and all fiat figures are zero.
	WarnMissingPriceColumn WarningCode = "missing_price_column"
	// WarnNoPriceObserved: an Index Price column exists but never
	// carries a non-zero value; same fiat degradation as above.
	WarnNoPriceObserved WarningCode = "no_price_observed"
)

// Warning is a recoverable condition surfaced alongside a fully
// computed (degraded) report. Warnings are never silently dropped:
// a zero fiat column must always be traceable to one of these.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}
