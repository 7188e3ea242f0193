package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/pnlfolio/pnlfolio/internal/report"
)

// LedgerHeader is the CSV header for exported ledger tables.
const LedgerHeader = "period,gross_pnl,fee,net_pnl,cumulative_gross,cumulative_net,gross_pnl_fiat,fee_fiat,net_pnl_fiat,cumulative_gross_fiat,cumulative_net_fiat"

const numLedgerFields = 11

// MarshalLedgerEntry converts a ledger entry to a CSV row.
func MarshalLedgerEntry(e report.LedgerEntry) []string {
	row := make([]string, numLedgerFields)
	row[0] = e.Label
	row[1] = e.GrossPnL.String()
	row[2] = e.Fee.String()
	row[3] = e.NetPnL.String()
	row[4] = e.CumulativeGross.String()
	row[5] = e.CumulativeNet.String()
	row[6] = e.GrossPnLFiat.String()
	row[7] = e.FeeFiat.String()
	row[8] = e.NetPnLFiat.String()
	row[9] = e.CumulativeGrossFiat.String()
	row[10] = e.CumulativeNetFiat.String()
	return row
}

// WriteLedgerCSV writes a ledger table (including header) to w.
func WriteLedgerCSV(w io.Writer, ledger report.Ledger) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(LedgerHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, e := range ledger {
		if err := cw.Write(MarshalLedgerEntry(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
