package main

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/stepline"
	"github.com/aretw0/stepline/internal/cli"
	"github.com/aretw0/stepline/internal/logging"
	"github.com/aretw0/stepline/internal/presentation/graph"
	"github.com/aretw0/stepline/pkg/adapters/memory"
	"github.com/aretw0/stepline/pkg/scene"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <scene.yaml>",
	Short: "Export the scene timeline as a Mermaid diagram",
	Long: `Outputs a Mermaid diagram (graph TD) of the scene's play order.
With --frames, the scene is played off-screen for that many frames first and
committed and travelling figures are highlighted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := scene.Load(args[0])
		if err != nil {
			return err
		}

		frames, _ := cmd.Flags().GetInt("frames")
		var overlay *graph.GraphOverlay
		if frames > 0 {
			ctx := context.Background()
			engine, err := stepline.FromScene(ctx, sc, memory.NewRenderer(),
				stepline.WithEffects(cli.DefaultEffects(io.Discard, logging.NewNop())))
			if err != nil {
				return err
			}
			for range frames {
				engine.Tick(ctx)
			}
			in, _ := engine.Inspect(ctx)
			overlay = graph.OverlayFrom(in)
		}

		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(sc, overlay))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().Int("frames", 0, "Play this many frames and highlight the result")
}
