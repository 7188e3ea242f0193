// Package export renders a finished report as static files (XLSX,
// PDF, CSV) for consumers that want the dashboard tables without the
// dashboard.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/pnlfolio/pnlfolio/internal/report"
)

// BuildXLSX renders a report as a workbook with summary, daily and
// monthly sheets.
func BuildXLSX(rep *report.Report) ([]byte, error) {
	f := excelize.NewFile()
	summarySheet := "summary"
	dailySheet := "daily"
	monthlySheet := "monthly"
	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(dailySheet); err != nil {
		return nil, fmt.Errorf("creating daily sheet: %w", err)
	}
	if _, err := f.NewSheet(monthlySheet); err != nil {
		return nil, fmt.Errorf("creating monthly sheet: %w", err)
	}

	sum := rep.Summary
	summaryRows := map[string][]any{
		"A1": {"P&L Report"},
		"A3": {"Net Profit", sum.TotalNet.InexactFloat64()},
		"A4": {"Gross Profit", sum.TotalGross.InexactFloat64()},
		"A5": {"Total Fees", sum.TotalFees.InexactFloat64()},
		"A6": {"Net Profit (fiat)", sum.TotalNetFiat.InexactFloat64()},
		"A7": {"Total Trades", sum.TotalTrades},
		"A8": {"Win Rate (%)", sum.WinRate},
		"A9": {"Price Reference", sum.PriceReference.InexactFloat64()},
	}
	for i, w := range rep.Warnings {
		summaryRows[fmt.Sprintf("A%d", 11+i)] = []any{"Warning", w.String()}
	}
	for cellRef, row := range summaryRows {
		if err := f.SetSheetRow(summarySheet, cellRef, &row); err != nil {
			return nil, fmt.Errorf("writing summary row %s: %w", cellRef, err)
		}
	}

	if err := writeLedgerSheet(f, dailySheet, rep.Daily); err != nil {
		return nil, err
	}
	if err := writeLedgerSheet(f, monthlySheet, rep.Monthly); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeLedgerSheet(f *excelize.File, sheet string, ledger report.Ledger) error {
	header := []any{"Period", "Gross P&L", "Fee", "Net P&L", "Cumulative Net", "Net P&L (fiat)", "Cumulative Net (fiat)"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing %s header: %w", sheet, err)
	}
	for i, e := range ledger {
		row := []any{
			e.Label,
			e.GrossPnL.InexactFloat64(),
			e.Fee.InexactFloat64(),
			e.NetPnL.InexactFloat64(),
			e.CumulativeNet.InexactFloat64(),
			e.NetPnLFiat.InexactFloat64(),
			e.CumulativeNetFiat.InexactFloat64(),
		}
		cellRef := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cellRef, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}
