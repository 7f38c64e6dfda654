package ports

import "github.com/aretw0/stepline/pkg/domain"

// Renderer is the drawing surface driven by the engine.
// Implementations are called from a single goroutine and need no locking.
type Renderer interface {
	// Draw paints the figure's current geometry.
	Draw(f *domain.Figure)

	// BeginFrame and EndFrame bracket every tick. BeginFrame advances FrameCount.
	BeginFrame()
	EndFrame()

	// FrameCount is the number of frames begun so far; used for pacing.
	FrameCount() int

	// Pause and Resume stop and re-arm the frame loop.
	Pause()
	Resume()
	Paused() bool

	// Clear wipes the surface.
	Clear()

	// Resize changes the surface dimensions. Pixels are not preserved.
	Resize(width, height int)
}
