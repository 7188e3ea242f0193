package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pnlfolio/pnlfolio/internal/export"
	"github.com/pnlfolio/pnlfolio/internal/report"
)

func newExportCommand() *cobra.Command {
	var (
		format  string
		outPath string
		ledger  string
	)

	cmd := &cobra.Command{
		Use:   "export <transaction-log.csv>",
		Short: "Export a report as XLSX, PDF, or CSV",
		Long: `Export computes the report and writes it to a file. The output
format is chosen by the -o extension: .xlsx (full workbook), .pdf
(summary page), or .csv (one ledger table, chosen with --ledger).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			rep, err := generate(args[0], format, cfg.Options(), cfg.Report.DateLayouts)
			if err != nil {
				return err
			}

			data, err := render(rep, outPath, ledger)
			if err != nil {
				return err
			}

			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}
			log.Info().Str("path", outPath).Msg("report exported")
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "deribit", "transaction log format")
	cmd.Flags().StringVarP(&outPath, "out", "o", "report.xlsx", "output file (.xlsx, .pdf, or .csv)")
	cmd.Flags().StringVar(&ledger, "ledger", "daily", "ledger table for CSV output (daily or monthly)")

	return cmd
}

func render(rep *report.Report, outPath, ledger string) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(outPath)) {
	case ".xlsx":
		return export.BuildXLSX(rep)
	case ".pdf":
		return export.BuildPDF(rep)
	case ".csv":
		var table report.Ledger
		switch ledger {
		case "daily":
			table = rep.Daily
		case "monthly":
			table = rep.Monthly
		default:
			return nil, fmt.Errorf("unknown ledger %q (want daily or monthly)", ledger)
		}
		var sb strings.Builder
		if err := export.WriteLedgerCSV(&sb, table); err != nil {
			return nil, err
		}
		return []byte(sb.String()), nil
	default:
		return nil, fmt.Errorf("unsupported output extension on %q (want .xlsx, .pdf, or .csv)", outPath)
	}
}
