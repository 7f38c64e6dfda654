package ports

import (
	"context"

	"github.com/aretw0/stepline/pkg/domain"
)

// Controller is the playback control API exposed to remote surfaces (HTTP, MCP).
// Implementations must be safe for concurrent use.
type Controller interface {
	SetPaused(ctx context.Context, paused bool) error
	TogglePause(ctx context.Context) (bool, error)
	UpdateSpeed(ctx context.Context, multiplier float64) error
	Reset(ctx context.Context) error
	StepNext(ctx context.Context) error
	StepBack(ctx context.Context) error
	LoadNextCheckpoint(ctx context.Context) (string, bool, error)
	LoadPreviousCheckpoint(ctx context.Context) (string, bool, error)
	SetUsingHelperQueue(ctx context.Context, enabled bool) error
	LoadCheckpointToHelper(ctx context.Context, id string) error
	ReDrawAll(ctx context.Context) error
	Inspect(ctx context.Context) (domain.Inspection, error)
}
