package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aretw0/mamdani/internal/cli"
	"github.com/aretw0/mamdani/internal/presentation/tui"
)

var fuzzifyCmd = &cobra.Command{
	Use:   "fuzzify <variable> <value>",
	Short: "Show the membership degrees of a crisp value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid value: %w", err)
		}
		engine, _, err := setup()
		if err != nil {
			return err
		}
		m, err := engine.Fuzzify(cmd.Context(), args[0], value)
		if err != nil {
			return err
		}
		title := fmt.Sprintf("%s = %g", args[0], value)
		return printer(cmd).Print(tui.MembershipTable(title, m), m)
	},
}

var defuzzifyInterval float64

var defuzzifyCmd = &cobra.Command{
	Use:     "defuzzify <variable> <category=degree>...",
	Short:   "Compute the centroid of a set of category degrees",
	Example: `  mamdani defuzzify spray Moyenne=0.625 Longue=0.375`,
	Args:    cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		degrees, err := cli.ParseMembership(args[1:])
		if err != nil {
			return err
		}
		engine, _, err := setup()
		if err != nil {
			return err
		}
		crisp, err := engine.Defuzzify(cmd.Context(), args[0], degrees, defuzzifyInterval)
		if err != nil {
			return err
		}
		md := fmt.Sprintf("**%s** = `%.4f`\n", args[0], crisp)
		return printer(cmd).Print(md, map[string]float64{args[0]: crisp})
	},
}

func init() {
	defuzzifyCmd.Flags().Float64Var(&defuzzifyInterval, "interval", 0, "Sampling step (0 uses the default)")
	rootCmd.AddCommand(fuzzifyCmd, defuzzifyCmd)
}
