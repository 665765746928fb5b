package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/mamdani/internal/cli"
	"github.com/aretw0/mamdani/internal/presentation/tui"
)

var (
	sweepInputs []string
	sweepVary   string
	sweepValues string
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Evaluate the pipeline across a range of values for one input",
	Example: `  mamdani sweep -c irrigation.yaml --input humidity=65,temperature=33,nappe=1.75 \
    --vary sensibility --values 10,20,30,50,100`,
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := cli.ParseInputs(sweepInputs)
		if err != nil {
			return err
		}
		values, err := cli.ParseValues(sweepValues)
		if err != nil {
			return err
		}
		engine, _, err := setup()
		if err != nil {
			return err
		}
		points, err := engine.Sweep(cmd.Context(), base, sweepVary, values)
		if err != nil {
			return err
		}
		return printer(cmd).Print(tui.SweepReport(sweepVary, points), points)
	},
}

func init() {
	f := sweepCmd.Flags()
	f.StringSliceVarP(&sweepInputs, "input", "i", nil, "Fixed inputs as name=value (repeatable)")
	f.StringVar(&sweepVary, "vary", "", "Input to vary")
	f.StringVar(&sweepValues, "values", "", "Values as a list (10,20,30) or range (start:end:step)")
	_ = sweepCmd.MarkFlagRequired("vary")
	_ = sweepCmd.MarkFlagRequired("values")
	rootCmd.AddCommand(sweepCmd)
}
