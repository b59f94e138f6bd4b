package commands

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/rentbook/internal/importer"
	"github.com/cleared-dev/rentbook/internal/server"
)

func newServeCommand(a *app) *cobra.Command {
	var src sources
	var addr string

	cmd := &cobra.Command{
		Use:   "serve [file...]",
		Short: "Serve the ledger over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := a.loadStore(src, args)
			if err != nil {
				return err
			}
			reader, err := a.reader()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			adv, closeFn, err := a.advisor(ctx)
			switch {
			case errors.Is(err, errInsightDisabled):
				a.log.Info("Insight disabled")
			case err != nil:
				return err
			default:
				defer closeFn()
			}

			if addr == "" {
				addr = a.cfg.Server.Addr
			}
			srv := server.New(server.Options{
				Store:        store,
				Chart:        a.chart,
				Parsers:      importer.DefaultRegistry(reader, a.log),
				Advisor:      adv,
				ManualContra: a.cfg.Manual.ContraAccount,
				Log:          a.log,
			})
			return srv.Run(ctx, addr)
		},
	}

	src.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from rentbook.yaml)")

	return cmd
}
