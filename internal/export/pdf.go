package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/pnlfolio/pnlfolio/internal/report"
)

// BuildPDF renders a one-page summary: headline figures plus the
// monthly breakdown table.
func BuildPDF(rep *report.Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "P&L Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)

	sum := rep.Summary
	pdf.Cell(0, 6, fmt.Sprintf("Net Profit: %s", sum.TotalNet.String()))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Gross Profit: %s", sum.TotalGross.String()))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Total Fees: %s", sum.TotalFees.String()))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Net Profit (fiat): %s", sum.TotalNetFiat.StringFixed(2)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Total Trades: %d", sum.TotalTrades))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Win Rate: %.1f%%", sum.WinRate))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Price Reference: %s", sum.PriceReference.String()))
	pdf.Ln(8)

	for _, w := range rep.Warnings {
		pdf.Cell(0, 6, fmt.Sprintf("Warning: %s", w.String()))
		pdf.Ln(5)
	}
	if len(rep.Warnings) > 0 {
		pdf.Ln(3)
	}

	// Monthly breakdown table
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(50, 6, "Month", "1", 0, "C", false, 0, "")
	pdf.CellFormat(45, 6, "Net P&L", "1", 0, "C", false, 0, "")
	pdf.CellFormat(45, 6, "Fees", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, e := range rep.Monthly {
		pdf.CellFormat(50, 6, e.Label, "1", 0, "C", false, 0, "")
		pdf.CellFormat(45, 6, e.NetPnL.String(), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 6, e.Fee.String(), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
