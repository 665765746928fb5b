package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/mamdani"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Mamdani",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "Mamdani v%s\n", mamdani.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
