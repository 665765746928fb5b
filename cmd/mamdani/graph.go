package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/mamdani/internal/cli"
	"github.com/aretw0/mamdani/internal/presentation/graph"
)

var graphInputs []string

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the pipeline graph visualization",
	Long: `Outputs a Mermaid diagram (graph LR) of the pipeline stages. When inputs are
given, the pipeline is evaluated and every node is annotated with its crisp value.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _, err := setup()
		if err != nil {
			return err
		}

		var overlay *graph.Overlay
		if len(graphInputs) > 0 {
			inputs, err := cli.ParseInputs(graphInputs)
			if err != nil {
				return err
			}
			overlay = &graph.Overlay{Values: inputs}
			rec, err := engine.Evaluate(cmd.Context(), inputs)
			if err != nil {
				var failed string
				if name, ok := cli.FailedStage(err); ok {
					failed = name
				}
				overlay.Failed = failed
			} else {
				for _, s := range rec.Stages {
					overlay.Values[s.Stage] = s.Crisp
				}
			}
		}

		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(engine.Document(), overlay))
		return nil
	},
}

func init() {
	graphCmd.Flags().StringSliceVarP(&graphInputs, "input", "i", nil, "Evaluate with name=value inputs and annotate the graph")
	rootCmd.AddCommand(graphCmd)
}
