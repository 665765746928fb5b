package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/mamdani/internal/presentation/tui"
)

var inferExplain bool

var inferCmd = &cobra.Command{
	Use:   "infer <controller> <a> <b>",
	Short: "Run a single controller on a pair of crisp values",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid value a: %w", err)
		}
		b, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid value b: %w", err)
		}
		engine, _, err := setup()
		if err != nil {
			return err
		}

		m, err := engine.Infer(cmd.Context(), args[0], a, b)
		if err != nil {
			return err
		}
		if !inferExplain {
			return printer(cmd).Print(tui.MembershipTable(args[0], m), m)
		}

		acts, err := engine.Explain(cmd.Context(), args[0], a, b)
		if err != nil {
			return err
		}
		var sb strings.Builder
		sb.WriteString(tui.MembershipTable(args[0], m))
		sb.WriteString("\n")
		sb.WriteString(tui.ActivationTable(acts))
		return printer(cmd).Print(sb.String(), map[string]any{
			"membership":  m,
			"activations": acts,
		})
	},
}

func init() {
	inferCmd.Flags().BoolVar(&inferExplain, "explain", false, "Also list the firing strength of every rule")
	rootCmd.AddCommand(inferCmd)
}
