package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/stepline/internal/cli"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play <scene.yaml>",
	Short: "Play a scene in the terminal",
	Long: `Plays the scene on the terminal. Keys control playback while it runs:
  ` + cli.KeyHelp + `

The HTTP control API, Prometheus metrics and Redis/MQTT event publishing are
enabled by their flags or by the configuration file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("fps") {
			cfg.FPS, _ = flags.GetInt("fps")
		}
		if flags.Changed("interval") {
			cfg.StepInterval, _ = flags.GetInt("interval")
		}
		if flags.Changed("speed") {
			cfg.Speed, _ = flags.GetFloat64("speed")
		}
		if flags.Changed("http") {
			cfg.HTTP.Addr, _ = flags.GetString("http")
		}
		if flags.Changed("metrics") {
			cfg.Metrics.Addr, _ = flags.GetString("metrics")
		}
		if flags.Changed("redis") {
			cfg.Events.Redis.Addr, _ = flags.GetString("redis")
		}
		if flags.Changed("mqtt") {
			cfg.Events.MQTT.Broker, _ = flags.GetString("mqtt")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		headless, _ := flags.GetBool("headless")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return cli.Play(ctx, cli.PlayOptions{
			ScenePath: args[0],
			Config:    cfg,
			Headless:  headless,
		}, logger)
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().Int("fps", 30, "Frames per second")
	playCmd.Flags().Int("interval", 12, "Frames between two steps at speed 1")
	playCmd.Flags().Float64("speed", 1, "Speed multiplier")
	playCmd.Flags().String("http", "", "Serve the control API on this address (e.g. :8080)")
	playCmd.Flags().String("metrics", "", "Serve Prometheus metrics on this address (e.g. :2112)")
	playCmd.Flags().String("redis", "", "Publish events to this Redis server")
	playCmd.Flags().String("mqtt", "", "Publish events to this MQTT broker (e.g. tcp://localhost:1883)")
	playCmd.Flags().Bool("headless", false, "Disable keyboard controls and the banner")
}
