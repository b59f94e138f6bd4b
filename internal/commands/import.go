package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/rentbook/internal/amount"
	"github.com/cleared-dev/rentbook/internal/importer"
	"github.com/cleared-dev/rentbook/internal/importlog"
	"github.com/cleared-dev/rentbook/internal/model"
)

func newImportCommand(a *app) *cobra.Command {
	var src sources
	var markProcessed bool
	var output string

	cmd := &cobra.Command{
		Use:   "import [file...]",
		Short: "Parse bank exports and show the transactions they contain",
		RunE: func(cmd *cobra.Command, args []string) error {
			if markProcessed && !src.inbox {
				return errors.New("--mark-processed requires --inbox")
			}
			if len(args) == 0 && len(src.files) == 0 && !src.inbox {
				return errors.New("nothing to import: pass files or --inbox")
			}
			return runImport(cmd.OutOrStdout(), a, src, args, markProcessed, output)
		},
	}

	src.register(cmd)
	cmd.Flags().BoolVar(&markProcessed, "mark-processed", false, "move imported inbox files to processed/")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format (table, json)")

	return cmd
}

func runImport(w io.Writer, a *app, src sources, files []string, markProcessed bool, output string) error {
	store, results, err := a.loadStore(src, files)
	if err != nil {
		return err
	}

	now := time.Now()
	var logEntries []importlog.Entry
	for _, r := range results {
		entry := importlog.Entry{
			Timestamp: now,
			File:      filepath.Base(r.Path),
			Format:    src.format,
			Imported:  len(r.Result.Transactions),
			Skipped:   r.Result.Skipped,
		}
		if markProcessed && r.Err == nil && filepath.Dir(r.Path) == a.inboxDir() {
			if err := importer.MarkProcessed(filepath.Dir(r.Path), filepath.Base(r.Path)); err != nil {
				return err
			}
			entry.Processed = true
		}
		logEntries = append(logEntries, entry)
	}
	if a.initialized {
		if err := importlog.Append(a.dir, logEntries); err != nil {
			a.log.WithError(err).Warn("writing import log")
		}
	}

	txns := store.Snapshot()
	if output == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(txns)
	}

	for _, r := range results {
		name := filepath.Base(r.Path)
		if r.Err != nil {
			fmt.Fprintf(w, "%s: %v (skipped %d)\n", name, r.Err, r.Result.Skipped)
		} else {
			fmt.Fprintf(w, "%s: imported %d, skipped %d\n", name, len(r.Result.Transactions), r.Result.Skipped)
		}
		for _, e := range r.Result.Errors {
			fmt.Fprintf(w, "  %v\n", e)
		}
	}
	fmt.Fprintln(w)
	return writeTransactions(w, txns)
}

func writeTransactions(w io.Writer, txns []model.Transaction) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tCATEGORY\tAMOUNT\tREFERENCE\tCONTRA\tDESCRIPTION")
	for _, t := range txns {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Date, t.Category, amount.Format(t.Amount), t.Reference, t.ContraAccount, t.Description)
	}
	return tw.Flush()
}
