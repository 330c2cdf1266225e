package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saldo-dev/saldo/internal/classify"
	"github.com/saldo-dev/saldo/internal/normalize"
)

func newClassifyCommand() *cobra.Command {
	var rulesFile string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "classify <title>",
		Short: "Classify a single statement title (rule debugging)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cls := classify.Default()
			if rulesFile != "" {
				var err error
				if cls, err = classify.LoadFile(rulesFile); err != nil {
					return err
				}
			}

			if verbose {
				fmt.Fprintf(cmd.OutOrStdout(), "normalized: %s\n", normalize.Title(args[0]))
			}
			fmt.Fprintln(cmd.OutOrStdout(), cls.Classify(args[0]))
			return nil
		},
	}

	cmd.Flags().StringVar(&rulesFile, "rules", "", "rule file (default: embedded rules)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print the normalized title too")

	return cmd
}
