package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/rentbook/internal/model"
)

func newAccountsCommand(a *app) *cobra.Command {
	var accountType string

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List the chart of accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			accts := a.chart.All()
			if accountType != "" {
				accts = a.chart.ByType(model.AccountType(accountType))
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tNAME\tTYPE")
			for _, acct := range accts {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", acct.Code, acct.Name, acct.Type)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&accountType, "type", "", "only accounts of this type (asset, liability, equity, revenue, expense)")

	return cmd
}
