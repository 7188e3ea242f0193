package report

import (
	"strings"

	"github.com/pnlfolio/pnlfolio/internal/model"
)

// Filter drops records whose type is in the exclusion set
// (case-insensitive). Non-trading movements like deposits and
// withdrawals would otherwise distort P&L. If the source export had
// no Type column at all, every record passes through unchanged.
// Ordering is preserved.
func Filter(log *model.TransactionLog, excluded []string) []model.TransactionRecord {
	if !log.HasTypeColumn {
		out := make([]model.TransactionRecord, len(log.Records))
		copy(out, log.Records)
		return out
	}

	drop := make(map[string]bool, len(excluded))
	for _, t := range excluded {
		drop[strings.ToLower(t)] = true
	}

	out := make([]model.TransactionRecord, 0, len(log.Records))
	for _, rec := range log.Records {
		if drop[strings.ToLower(rec.Type)] {
			continue
		}
		out = append(out, rec)
	}
	return out
}
