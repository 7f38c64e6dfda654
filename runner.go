package stepline

import (
	"context"
	"time"
)

// Run drives the timeline at the configured frame rate until ctx is done.
// Resize events, if any, are applied between frames.
func (e *Engine) Run(ctx context.Context, resizes <-chan [2]int) error {
	ticker := time.NewTicker(time.Second / time.Duration(e.fps))
	defer ticker.Stop()

	e.logger.InfoContext(ctx, "playback started", "fps", e.fps)
	for {
		select {
		case <-ctx.Done():
			e.logger.InfoContext(ctx, "playback stopped")
			return nil
		case size, ok := <-resizes:
			if !ok {
				resizes = nil
				continue
			}
			e.Resize(size[0], size[1])
		case <-ticker.C:
			e.Tick(ctx)
		}
	}
}
