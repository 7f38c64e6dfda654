package runtime

import (
	"context"
	"log/slog"
	"math"

	"github.com/aretw0/stepline/internal/logging"
	"github.com/aretw0/stepline/pkg/domain"
	"github.com/aretw0/stepline/pkg/ports"
)

// DefaultStepInterval is the number of frames between two paced steps at speed 1.
const DefaultStepInterval = 12

// Engine is the timeline orchestrator.
//
// It owns the tiered queues, the snapshot log and the in-flight traveller.
// The engine holds no locks: it must be driven from a single goroutine, and
// the runner is never re-entered from inside a tick.
type Engine struct {
	name     string
	renderer ports.Renderer
	bus      ports.EventBus
	logger   *slog.Logger

	steps    *tier
	instant  *tier
	helper   *tier
	snapshot *snapshotLog

	traveller   *traveller
	usingHelper bool

	baseInterval int
	stepInterval int
	speed        float64

	known map[string]struct{}
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithEventBus sets the sink for commit and playback events.
func WithEventBus(bus ports.EventBus) EngineOption {
	return func(e *Engine) {
		e.bus = bus
	}
}

// WithName labels the timeline in events and logs.
func WithName(name string) EngineOption {
	return func(e *Engine) {
		e.name = name
	}
}

// WithStepInterval sets how many frames separate two paced steps at speed 1.
func WithStepInterval(frames int) EngineOption {
	return func(e *Engine) {
		if frames > 0 {
			e.baseInterval = frames
		}
	}
}

// NewEngine creates an engine drawing on the given renderer.
// Several engines may share a process; there is no global instance.
func NewEngine(renderer ports.Renderer, opts ...EngineOption) *Engine {
	e := &Engine{
		renderer:     renderer,
		logger:       logging.NewNop(),
		steps:        newTier(),
		instant:      newTier(),
		helper:       newTier(),
		snapshot:     newSnapshotLog(),
		baseInterval: DefaultStepInterval,
		speed:        1,
		known:        make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.name != "" {
		e.logger = e.logger.With("timeline", e.name)
	}
	e.stepInterval = e.baseInterval
	return e
}

// Name returns the timeline label.
func (e *Engine) Name() string { return e.name }

// Tick runs one frame: drains the instant tier, advances an in-flight travel
// or, when the pacing modulus is hit, dequeues one step from the active tier.
func (e *Engine) Tick(ctx context.Context) {
	if e.renderer.Paused() {
		return
	}
	e.renderer.BeginFrame()
	defer e.renderer.EndFrame()

	e.drainInstant(ctx)

	if e.traveller != nil {
		e.advanceTravel()
		return
	}
	if e.renderer.FrameCount()%e.stepInterval != 0 {
		return
	}
	e.runner(ctx, e.activeTier(), pass{})
}

// UpdateSpeed scales both the step pacing and the travel increments.
func (e *Engine) UpdateSpeed(ctx context.Context, multiplier float64) error {
	if multiplier <= 0 || math.IsNaN(multiplier) || math.IsInf(multiplier, 0) {
		return domain.ErrInvalidSpeed
	}
	e.speed = multiplier
	e.stepInterval = max(1, int(math.Round(float64(e.baseInterval)/multiplier)))
	e.logger.DebugContext(ctx, "speed updated", "multiplier", multiplier, "step_interval", e.stepInterval)
	return nil
}

// TogglePause flips the pause state and returns the new value.
func (e *Engine) TogglePause(ctx context.Context) bool {
	e.SetPaused(ctx, !e.renderer.Paused())
	return e.renderer.Paused()
}

// SetPaused pauses or resumes the render loop.
func (e *Engine) SetPaused(ctx context.Context, paused bool) {
	if paused {
		e.pause(ctx)
		return
	}
	e.resume(ctx)
}

func (e *Engine) pause(ctx context.Context) {
	if e.renderer.Paused() {
		return
	}
	e.renderer.Pause()
	e.publish(ctx, domain.NewEvent(domain.EventNoLoop, ""))
}

func (e *Engine) resume(ctx context.Context) {
	if !e.renderer.Paused() {
		return
	}
	e.renderer.Resume()
	e.publish(ctx, domain.NewEvent(domain.EventLoop, ""))
}

// ReDrawAll clears the surface and replays the snapshot, plus any in-flight travel.
func (e *Engine) ReDrawAll() {
	e.renderer.Clear()
	e.drawSnapshot()
	if e.traveller != nil {
		for _, f := range e.traveller.figures() {
			e.renderer.Draw(f)
		}
	}
}

// Resize force-completes travel and repaints, since surface pixels are lost.
func (e *Engine) Resize(width, height int) {
	e.completeTravel(true)
	e.renderer.Resize(width, height)
	e.ReDrawAll()
}

func (e *Engine) drawSnapshot() {
	for _, f := range e.snapshot.figures {
		e.renderer.Draw(f)
	}
}

func (e *Engine) activeTier() *tier {
	if e.usingHelper {
		return e.helper
	}
	return e.steps
}

func (e *Engine) drainInstant(ctx context.Context) {
	for !e.instant.empty() {
		e.runner(ctx, e.instant, pass{forced: true})
	}
}

func (e *Engine) publish(ctx context.Context, event domain.Event) {
	if e.bus == nil {
		return
	}
	event.Timeline = e.name
	if err := e.bus.Publish(ctx, event); err != nil {
		e.logger.WarnContext(ctx, "event publish failed", "type", event.Type, "unit_id", event.UnitID, "err", err)
	}
}

// Inspect returns a read-only view of the queues and playback state.
func (e *Engine) Inspect() domain.Inspection {
	in := domain.Inspection{
		Name:         e.name,
		Steps:        e.steps.lanes(),
		Instant:      e.instant.lanes(),
		Helper:       e.helper.lanes(),
		Snapshot:     e.snapshot.lanes(),
		Checkpoints:  append([]string{}, e.snapshot.checkpoints...),
		UsingHelper:  e.usingHelper,
		Paused:       e.renderer.Paused(),
		Speed:        e.speed,
		StepInterval: e.stepInterval,
		Frame:        e.renderer.FrameCount(),
	}
	if e.traveller != nil {
		for _, f := range e.traveller.figures() {
			in.Travelling = append(in.Travelling, f.ID())
		}
	}
	return in
}
