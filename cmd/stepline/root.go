package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/stepline/internal/config"
	"github.com/aretw0/stepline/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stepline",
	Short: "stepline plays stepped drawing timelines in the terminal",
	Long: `stepline animates scenes described in YAML: figures are drawn one step at a time,
with groups, animators, checkpoints and a helper queue for rehearsing sections.`,
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
	rootCmd.PersistentFlags().String("config", "", "Path to a stepline.yaml configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
}

// loadConfig reads the configuration file and applies the persistent flags.
func loadConfig(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, nil, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, logging.New(level), nil
}
