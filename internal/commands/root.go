package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saldo-dev/saldo/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "saldo",
		Short:   "Bank statement aggregation and categorization",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAggregateCommand())
	rootCmd.AddCommand(newClassifyCommand())

	return rootCmd
}
