package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/rentbook/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "rentbook",
		Short:   "Double-entry books for a small rental business",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.dir, "dir", ".", "project directory")
	pf.StringVar(&a.cfgPath, "config", "", "config file (default <dir>/rentbook.yaml)")
	pf.StringVar(&a.logLevel, "log-level", "", "override the configured log level")
	pf.BoolVar(&a.seed, "seed", false, "start from the sample transactions")

	rootCmd.AddCommand(
		newInitCommand(),
		newImportCommand(a),
		newJournalCommand(a),
		newReportCommand(a),
		newAccountsCommand(a),
		newInsightCommand(a),
		newServeCommand(a),
	)

	return rootCmd
}
