package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/mamdani/pkg/schema"
)

var validateFormat string

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a pipeline document",
	Long: `Decodes the document and checks variables, controllers and stages without evaluating anything.
With --format, a valid document is printed in that encoding instead (yaml, json or toml).`,
	Example: `  mamdani validate irrigation.yaml
  mamdani validate irrigation.yaml --format toml > irrigation.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := opts.ConfigPath
		if len(args) > 0 {
			path = args[0]
		}

		var format schema.Format
		if validateFormat != "" {
			f, err := schema.ParseFormat(validateFormat)
			if err != nil {
				return err
			}
			format = f
		}

		out := cmd.OutOrStdout()
		doc, err := schema.DecodeFile(path)
		if err == nil {
			err = schema.Validate(doc)
		}
		if err != nil {
			fmt.Fprintf(out, "❌ %s is invalid:\n", path)
			errs := schema.ValidationErrors(err)
			if len(errs) == 0 {
				errs = []error{err}
			}
			for _, e := range errs {
				fmt.Fprintf(out, "  - %v\n", e)
			}
			return fmt.Errorf("validation failed")
		}

		if format != "" {
			data, err := schema.Encode(doc, format)
			if err != nil {
				return fmt.Errorf("failed to encode document: %w", err)
			}
			_, err = out.Write(data)
			return err
		}

		fmt.Fprintf(out, "✅ %s is valid (%d variables, %d controllers, %d stages)\n",
			path, len(doc.Variables), len(doc.Controllers), len(doc.Stages))
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVarP(&validateFormat, "format", "f", "", "Print the valid document as yaml, json or toml")
	rootCmd.AddCommand(validateCmd)
}
