package main

import (
	"fmt"

	"github.com/aretw0/stepline"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of stepline",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "stepline version %s\n", stepline.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
