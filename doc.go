/*
Package stepline is a stepped timeline playback engine for drawing on a frame-based surface.

A timeline is a sequence of units: figures (one shape each), groups (figures drawn together) and animators (an ordered run of figures and groups that repaints the surface as it goes). Units are played one at a time at a configurable pace, may travel (move, grow, fade) before they settle, and can be stepped forward and back, paused, sped up, or rewound to checkpoints.

# Concept

The engine keeps three tiers of queues. The steps tier holds the authored timeline, the instant tier holds units drawn right away, and the helper tier replays a run starting at a checkpoint without disturbing the main timeline. Everything committed so far is kept in a snapshot log, so that stepping back or reloading a checkpoint restores the exact drawing.

The engine draws through a ports.Renderer, which makes it embeddable in any surface: a terminal, an in-memory recorder for tests, or a remote display fed by events.

# Key Features

  - Deterministic playback: the same timeline and frame count always produce the same drawing.
  - Checkpoints: seek to the next or previous checkpoint, or replay one on the helper queue.
  - Travels: eased moves, growth and color fades, composable with shapes.Together.
  - Remote control: HTTP, MCP and keyboard surfaces share one lock-guarded Engine.
  - Events: every draw and playback change is published to Redis, MQTT, Prometheus or SSE.

# Usage

	package main

	import (
		"context"
		"os"

		"github.com/aretw0/stepline"
		"github.com/aretw0/stepline/pkg/adapters/terminal"
		"github.com/aretw0/stepline/pkg/scene"
	)

	func main() {
		sc, err := scene.Load("intro.yaml")
		if err != nil {
			panic(err)
		}

		ctx := context.Background()
		eng, err := stepline.FromScene(ctx, sc, terminal.New(os.Stdout, 80, 24))
		if err != nil {
			panic(err)
		}

		// Run ticks at the configured frame rate until ctx is done.
		_ = eng.Run(ctx, nil)
	}
*/
package stepline
