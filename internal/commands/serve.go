package commands

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pnlfolio/pnlfolio/internal/importer"
	"github.com/pnlfolio/pnlfolio/internal/server"
)

func newServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve report generation over HTTP",
		Long: `Serve runs an HTTP API: POST a transaction-log CSV to /api/report
and receive the report tables as JSON. Prometheus metrics are exposed
on /metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			// Precedence: flag, then environment, then config.
			if addr == "" {
				addr = os.Getenv("PNLFOLIO_ADDR")
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}

			srv := server.New(importer.DefaultRegistry(), cfg.Options(), log.Logger)
			return srv.ListenAndServe(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")

	return cmd
}
