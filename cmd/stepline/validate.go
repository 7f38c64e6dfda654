package main

import (
	"os"

	"github.com/aretw0/stepline/internal/cli"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var validateCmd = &cobra.Command{
	Use:   "validate <scene.yaml>",
	Short: "Check a scene and print a summary of its units",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		width := 80
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
		}
		return cli.Validate(args[0], cmd.OutOrStdout(), width)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
