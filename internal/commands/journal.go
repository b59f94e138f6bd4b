package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/rentbook/internal/amount"
	"github.com/cleared-dev/rentbook/internal/journal"
	"github.com/cleared-dev/rentbook/internal/ledger"
	"github.com/cleared-dev/rentbook/internal/logging"
)

func newJournalCommand(a *app) *cobra.Command {
	var src sources
	var output, outFile string

	cmd := &cobra.Command{
		Use:   "journal [file...]",
		Short: "Print the general journal",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := a.loadStore(src, args)
			if err != nil {
				return err
			}
			l := ledger.BuildWith(store.Snapshot(), a.chart)
			a.reportProblems(l)

			w := cmd.OutOrStdout()
			if outFile != "" {
				f, err := os.Create(outFile)
				if err != nil {
					return fmt.Errorf("creating %s: %w", outFile, err)
				}
				defer f.Close()
				w = f
				output = "csv"
			}
			return writeJournal(w, l, output)
		},
	}

	src.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format (table, csv, json)")
	cmd.Flags().StringVar(&outFile, "out", "", "write the journal as CSV to this file")

	return cmd
}

// reportProblems logs unmapped transactions and invariant violations.
func (a *app) reportProblems(l ledger.Ledger) {
	for _, f := range l.Failures {
		a.log.WithField(logging.FieldTransactionID, f.TransactionID).
			WithField(logging.FieldCategory, f.Category).
			Warn("no posting rule for category; transaction left out of the journal")
	}
	for _, v := range l.Violations {
		a.log.Error(v.Error())
	}
}

func writeJournal(w io.Writer, l ledger.Ledger, output string) error {
	switch output {
	case "csv":
		return journal.WriteEntries(w, l.Entries)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(l.Entries)
	case "table":
	default:
		return fmt.Errorf("unknown output format %q", output)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tREF\tACCOUNT\tNAME\tDEBIT\tCREDIT\t")
	for _, e := range l.Entries {
		for _, line := range e.Lines {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
				e.Date, e.Reference, line.AccountID, line.AccountName, side(line.Debit), side(line.Credit))
		}
	}
	return tw.Flush()
}

// side renders one side of a journal line, blank when zero.
func side(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return amount.Format(d)
}
