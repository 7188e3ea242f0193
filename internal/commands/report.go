package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pnlfolio/pnlfolio/internal/importer"
	"github.com/pnlfolio/pnlfolio/internal/report"
)

func newReportCommand() *cobra.Command {
	var (
		format  string
		asJSON  bool
		descend bool
	)

	cmd := &cobra.Command{
		Use:   "report <transaction-log.csv>",
		Short: "Compute P&L analytics from a transaction log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			rep, err := generate(args[0], format, cfg.Options(), cfg.Report.DateLayouts)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rep)
			}

			printReport(cmd, rep, descend)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "deribit", "transaction log format")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the full report as JSON")
	cmd.Flags().BoolVar(&descend, "desc", false, "print ledgers most-recent-first")

	return cmd
}

// generate runs parse + pipeline for one file. Warnings are logged
// here so every surface reports degraded modes the same way.
func generate(path, format string, opts report.Options, dateLayouts []string) (*report.Report, error) {
	parser := importer.DefaultRegistry().Get(format)
	if parser == nil {
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	if dp, ok := parser.(*importer.DeribitParser); ok && len(dateLayouts) > 0 {
		dp.DateLayouts = dateLayouts
	}

	txlog, err := importer.ParseFile(parser, path)
	if err != nil {
		return nil, err
	}

	rep := report.Generate(txlog, opts)
	for _, w := range rep.Warnings {
		log.Warn().Str("code", string(w.Code)).Msg(w.Message)
	}
	return rep, nil
}

func printReport(cmd *cobra.Command, rep *report.Report, descend bool) {
	out := cmd.OutOrStdout()
	sum := rep.Summary

	fmt.Fprintf(out, "Net Profit:      %s (%s fiat)\n", sum.TotalNet.String(), sum.TotalNetFiat.StringFixed(2))
	fmt.Fprintf(out, "Gross Profit:    %s (%s fiat)\n", sum.TotalGross.String(), sum.TotalGrossFiat.StringFixed(2))
	fmt.Fprintf(out, "Total Fees:      %s (%s fiat)\n", sum.TotalFees.String(), sum.TotalFeesFiat.StringFixed(2))
	fmt.Fprintf(out, "Total Trades:    %d\n", sum.TotalTrades)
	fmt.Fprintf(out, "Win Rate:        %.1f%%\n", sum.WinRate)
	fmt.Fprintf(out, "Price Reference: %s\n", sum.PriceReference.String())

	daily := rep.Daily.SortedAscending()
	monthly := rep.Monthly.SortedAscending()
	if descend {
		daily = rep.Daily.SortedDescending()
		monthly = rep.Monthly.SortedDescending()
	}

	printLedger(out, "Daily P&L", daily)
	printLedger(out, "Monthly Breakdown", monthly)

	if len(rep.Warnings) > 0 {
		fmt.Fprintln(out)
		for _, w := range rep.Warnings {
			fmt.Fprintf(out, "warning: %s\n", w.String())
		}
	}
}

func printLedger(out io.Writer, title string, ledger report.Ledger) {
	fmt.Fprintf(out, "\n%s\n", title)
	tw := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PERIOD\tGROSS\tFEE\tNET\tCUM NET\tCUM NET (FIAT)")
	for _, e := range ledger {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.Label, e.GrossPnL.String(), e.Fee.String(), e.NetPnL.String(),
			e.CumulativeNet.String(), e.CumulativeNetFiat.StringFixed(2))
	}
	tw.Flush()
}
