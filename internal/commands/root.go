package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moneytrail-dev/moneytrail/internal/buildinfo"
)

// rootOptions holds the flags shared by every subcommand.
type rootOptions struct {
	dir     string
	verbose bool
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "moneytrail",
		Short:   "Personal income and expense tracking",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.dir, "dir", ".", "workspace directory")
	rootCmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(
		newInitCommand(opts),
		newAddCommand(opts),
		newEditCommand(opts),
		newRemoveCommand(opts),
		newParseCommand(opts),
		newImportCommand(opts),
		newExportCommand(opts),
		newReportCommand(opts),
		newCalendarCommand(opts),
		newListCommand(opts),
		newBudgetCommand(opts),
		newCategoryCommand(opts),
		newPaymodeCommand(opts),
		newSettingsCommand(opts),
		newActivityCommand(opts),
	)

	return rootCmd
}
