package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saldo-dev/saldo/internal/aggregate"
	"github.com/saldo-dev/saldo/internal/classify"
	"github.com/saldo-dev/saldo/internal/config"
	"github.com/saldo-dev/saldo/internal/export"
	"github.com/saldo-dev/saldo/internal/logging"
	"github.com/saldo-dev/saldo/internal/model"
	"github.com/saldo-dev/saldo/internal/reader"
)

func newAggregateCommand() *cobra.Command {
	var configPath string
	var dir string
	var rulesFile string
	var format string

	cmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Merge, deduplicate and sort all configured statements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir != "" {
				return runAggregateDir(cmd, dir, rulesFile, format)
			}
			return runAggregate(cmd, configPath, format)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "saldo.yaml", "config file")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "scan a statements directory instead of using the config file")
	cmd.Flags().StringVar(&rulesFile, "rules", "", "rule file for --dir mode (default: embedded rules)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: csv or json")

	return cmd
}

func runAggregate(cmd *cobra.Command, configPath, format string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	cls := classify.Default()
	if cfg.RulesFile != "" {
		if cls, err = classify.LoadFile(cfg.RulesFile); err != nil {
			return err
		}
	}

	log := logging.New()
	registry := reader.DefaultRegistry()

	var readers []reader.Reader
	for _, src := range cfg.Sources {
		factory := registry.Get(src.Bank)
		if factory == nil {
			return fmt.Errorf("unknown bank dialect %q", src.Bank)
		}
		readers = append(readers, factory(reader.FileSource(src.Path), cls, log))
	}

	if format == "" {
		format = cfg.Output.Format
	}
	return render(cmd, aggregate.New(readers, log).Aggregate(), format)
}

// runAggregateDir scans dir for statement CSVs and infers each file's
// dialect from its name prefix (mbank.csv, pkosa_2024-05.csv, ...).
func runAggregateDir(cmd *cobra.Command, dir, rulesFile, format string) error {
	cls := classify.Default()
	if rulesFile != "" {
		var err error
		if cls, err = classify.LoadFile(rulesFile); err != nil {
			return err
		}
	}

	files, err := reader.Scan(dir)
	if err != nil {
		return err
	}

	log := logging.New()
	registry := reader.DefaultRegistry()

	var readers []reader.Reader
	for _, f := range files {
		factory := registry.Get(dialectFor(f.Name))
		if factory == nil {
			log.Warn().Str("file", f.Name).Msg("no reader for statement file, skipped")
			continue
		}
		readers = append(readers, factory(reader.FileSource(f.Path), cls, log))
	}

	return render(cmd, aggregate.New(readers, log).Aggregate(), format)
}

// dialectFor extracts the dialect token from a statement file name:
// everything before the first separator, lowercased.
func dialectFor(name string) string {
	base := strings.ToLower(name)
	if i := strings.IndexAny(base, "_-."); i >= 0 {
		base = base[:i]
	}
	return base
}

func render(cmd *cobra.Command, txns []model.Transaction, format string) error {
	switch format {
	case "json":
		return export.WriteJSON(cmd.OutOrStdout(), txns)
	case "csv", "":
		return export.WriteCSV(cmd.OutOrStdout(), txns)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
