package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/mamdani/internal/cli"
	"github.com/aretw0/mamdani/internal/presentation/tui"
)

var evalInputs []string

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate the pipeline for a set of crisp inputs",
	Example: `  mamdani eval -c irrigation.yaml --input humidity=65 --input temperature=33 \
    --input nappe=1.75 --input sensibility=10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		inputs, err := cli.ParseInputs(evalInputs)
		if err != nil {
			return err
		}
		engine, _, err := setup()
		if err != nil {
			return err
		}
		rec, err := engine.Evaluate(cmd.Context(), inputs)
		if err != nil {
			return err
		}
		return printer(cmd).Print(tui.RecordReport(rec), rec)
	},
}

func init() {
	evalCmd.Flags().StringSliceVarP(&evalInputs, "input", "i", nil, "Crisp input as name=value (repeatable)")
	evalCmd.Flags().StringVar(&opts.RecordsDir, "records", "", "Directory where evaluation records are saved")
	rootCmd.AddCommand(evalCmd)
}
