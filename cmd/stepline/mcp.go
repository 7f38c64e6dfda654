package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/stepline"
	"github.com/aretw0/stepline/internal/cli"
	"github.com/aretw0/stepline/pkg/adapters/mcp"
	"github.com/aretw0/stepline/pkg/adapters/memory"
	"github.com/aretw0/stepline/pkg/scene"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp <scene.yaml>",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Plays the scene off-screen and exposes its playback controls as MCP tools.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		sc, err := scene.Load(args[0])
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		engine, err := stepline.FromScene(ctx, sc, memory.NewRenderer(),
			stepline.WithLogger(logger),
			stepline.WithFPS(cfg.FPS),
			stepline.WithStepInterval(cfg.StepInterval),
			stepline.WithEffects(cli.DefaultEffects(os.Stderr, logger)),
		)
		if err != nil {
			return err
		}
		srv := mcp.NewServer(engine, logger)

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error { return engine.Run(ctx, nil) })

		switch transport {
		case "stdio":
			// Logs go to Stderr so they don't corrupt JSON-RPC on Stdout.
			logger.Info("Starting stepline MCP Server (Stdio)...")
			g.Go(func() error {
				defer stop()
				return srv.ServeStdio()
			})
		case "sse":
			addr := fmt.Sprintf(":%d", port)
			g.Go(func() error {
				return srv.ServeSSE(ctx, addr, fmt.Sprintf("http://localhost:%d", port))
			})
		default:
			return fmt.Errorf("unknown transport %q (want stdio or sse)", transport)
		}
		return g.Wait()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().StringP("transport", "t", "stdio", "Transport: stdio or sse")
	mcpCmd.Flags().IntP("port", "p", 8080, "Port for the sse transport")
}
