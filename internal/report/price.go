package report

import (
	"github.com/shopspring/decimal"

	"github.com/pnlfolio/pnlfolio/internal/model"
)

// PriceReference derives the single fiat conversion price for a
// report: the last non-zero index price in chronological order.
// A zero index price means "not observed at this instant", not a real
// zero, so known values are carried forward across such gaps. Returns
// zero when no record ever carries a usable price; callers must
// surface that as a degraded-mode warning, never a silent zero.
func PriceReference(records []model.TransactionRecord) decimal.Decimal {
	last := decimal.Zero
	for _, rec := range records {
		if !rec.IndexPrice.IsZero() {
			last = rec.IndexPrice
		}
	}
	return last
}
