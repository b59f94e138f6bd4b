package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/rentbook/internal/insight"
	"github.com/cleared-dev/rentbook/internal/ledger"
)

var errInsightDisabled = errors.New("insight is not configured: set insight.enabled in rentbook.yaml and the API key variable")

func newInsightCommand(a *app) *cobra.Command {
	var src sources
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "insight [file...]",
		Short: "Ask the AI advisor for a short comment on the current figures",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := a.loadStore(src, args)
			if err != nil {
				return err
			}
			advisor, closeFn, err := a.advisor(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			txns := store.Snapshot()
			l := ledger.BuildWith(txns, a.chart)
			fmt.Fprintln(cmd.OutOrStdout(), advisor.Advise(ctx, insight.Summarize(l.Report, len(txns))))
			return nil
		},
	}

	src.register(cmd)
	cmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "request timeout")

	return cmd
}

// advisor builds the Gemini-backed advisor, or errInsightDisabled.
func (a *app) advisor(ctx context.Context) (*insight.Advisor, func(), error) {
	if !a.cfg.InsightReady() {
		return nil, nil, errInsightDisabled
	}
	gen, err := insight.NewGeminiGenerator(ctx, a.cfg.APIKey())
	if err != nil {
		return nil, nil, err
	}
	adv := &insight.Advisor{
		Gen:      gen,
		Model:    a.cfg.Insight.Model,
		Business: a.cfg.Business.Name,
		Log:      a.log,
	}
	return adv, func() { _ = gen.Close() }, nil
}
