package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/mamdani"
	"github.com/aretw0/mamdani/internal/cli"
	"github.com/aretw0/mamdani/internal/logging"
)

var opts cli.Options

var rootCmd = &cobra.Command{
	Use:   "mamdani",
	Short: "Mamdani is a fuzzy inference engine",
	Long: `Mamdani evaluates chains of two-input fuzzy rule controllers declared in a
YAML, JSON or TOML document. Inputs are fuzzified into linguistic categories,
combined with max-min inference and defuzzified back into crisp values.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", cli.DefaultConfigPath(), "Pipeline document (yaml, json or toml)")
	pf.StringVar(&opts.LogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.StringVar(&opts.LogFormat, "log-format", "text", "Log format: text or json")
	pf.BoolVar(&opts.JSON, "json", false, "Print results as JSON")
	pf.IntVar(&opts.Concurrency, "concurrency", 0, "Maximum stages evaluated in parallel (0 = unbounded)")
}

// setup builds the logger and engine for commands that need a compiled document.
func setup(extra ...mamdani.Option) (*mamdani.Engine, *slog.Logger, error) {
	logger, err := logging.Setup(opts.LogLevel, opts.LogFormat)
	if err != nil {
		return nil, nil, err
	}
	engine, err := cli.CreateEngine(opts, logger, extra...)
	if err != nil {
		return nil, nil, err
	}
	return engine, logger, nil
}

func printer(cmd *cobra.Command) *cli.Printer {
	return cli.NewPrinter(cmd.OutOrStdout(), opts.JSON)
}
