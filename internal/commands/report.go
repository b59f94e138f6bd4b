package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/rentbook/internal/amount"
	"github.com/cleared-dev/rentbook/internal/ledger"
	"github.com/cleared-dev/rentbook/internal/statement"
)

func newReportCommand(a *app) *cobra.Command {
	var src sources
	var output string

	cmd := &cobra.Command{
		Use:   "report [file...]",
		Short: "Print the income statement and balance sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := a.loadStore(src, args)
			if err != nil {
				return err
			}
			l := ledger.BuildWith(store.Snapshot(), a.chart)
			a.reportProblems(l)
			return writeReport(cmd.OutOrStdout(), a.cfg.Business.Name, l.Report, output)
		},
	}

	src.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format (text, json)")

	return cmd
}

func writeReport(w io.Writer, business string, r statement.Report, output string) error {
	switch output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"incomeStatement": r.Income,
			"balanceSheet":    r.Balance,
			"imbalance":       r.Imbalance,
			"balanced":        r.Balanced(),
		})
	case "text":
	default:
		return fmt.Errorf("unknown output format %q", output)
	}

	if business != "" {
		fmt.Fprintf(w, "%s\n\n", business)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "INCOME STATEMENT\t\t")
	fmt.Fprintf(tw, "Revenue\t%s\t\n", amount.Format(r.Income.Revenue))
	fmt.Fprintf(tw, "Expenses\t%s\t\n", amount.Format(r.Income.Expenses))
	fmt.Fprintf(tw, "Net income\t%s\t\n", amount.Format(r.Income.NetIncome))
	fmt.Fprintln(tw, "\t\t")
	fmt.Fprintln(tw, "BALANCE SHEET\t\t")
	fmt.Fprintf(tw, "Assets\t%s\t\n", amount.Format(r.Balance.Assets))
	fmt.Fprintf(tw, "Liabilities\t%s\t\n", amount.Format(r.Balance.Liabilities))
	fmt.Fprintf(tw, "Equity\t%s\t\n", amount.Format(r.Balance.Equity))
	if err := tw.Flush(); err != nil {
		return err
	}

	if !r.Balanced() {
		fmt.Fprintf(w, "\nWARNING: balance sheet is off by %s\n", amount.Format(r.Imbalance))
	}
	return nil
}
