package stepline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aretw0/stepline/internal/logging"
	"github.com/aretw0/stepline/internal/runtime"
	"github.com/aretw0/stepline/pkg/domain"
	"github.com/aretw0/stepline/pkg/ports"
	"github.com/aretw0/stepline/pkg/registry"
	"github.com/aretw0/stepline/pkg/scene"
)

// DefaultFPS is the frame rate used by Run when none is configured.
const DefaultFPS = 30

// Engine is the high-level entry point for the stepline library.
// It wraps the internal runtime with a lock so that the render loop and the
// remote control surfaces (HTTP, MCP) can share one timeline.
type Engine struct {
	mu      sync.Mutex
	runtime *runtime.Engine

	logger       *slog.Logger
	bus          ports.EventBus
	effects      *registry.Registry
	stepInterval int
	fps          int
	Name         string
}

var (
	_ ports.Controller = (*Engine)(nil)
	_ scene.Builder    = (*Engine)(nil)
)

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithEventBus registers the sink for draw and playback events.
// Use ports.Fanout to publish to several buses.
func WithEventBus(bus ports.EventBus) Option {
	return func(e *Engine) {
		e.bus = bus
	}
}

// WithEffects resolves the effect names of scenes loaded with FromScene.
func WithEffects(r *registry.Registry) Option {
	return func(e *Engine) {
		e.effects = r
	}
}

// WithName labels the timeline in events and logs.
func WithName(name string) Option {
	return func(e *Engine) {
		e.Name = name
	}
}

// WithStepInterval sets the frames between two paced steps at speed 1.
func WithStepInterval(frames int) Option {
	return func(e *Engine) {
		e.stepInterval = frames
	}
}

// WithFPS sets the frame rate of Run.
func WithFPS(fps int) Option {
	return func(e *Engine) {
		if fps > 0 {
			e.fps = fps
		}
	}
}

// New creates an engine drawing on the given renderer.
func New(renderer ports.Renderer, opts ...Option) *Engine {
	eng := &Engine{fps: DefaultFPS}
	for _, opt := range opts {
		opt(eng)
	}

	// Ensure logger is initialized (so we don't pass nil to runtime)
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}

	runtimeOpts := []runtime.EngineOption{
		runtime.WithLogger(eng.logger),
		runtime.WithName(eng.Name),
		runtime.WithStepInterval(eng.stepInterval),
	}
	if eng.bus != nil {
		runtimeOpts = append(runtimeOpts, runtime.WithEventBus(eng.bus))
	}
	eng.runtime = runtime.NewEngine(renderer, runtimeOpts...)
	return eng
}

// FromScene creates an engine and adds every unit of the scene to it.
// The scene name becomes the timeline name unless WithName is given.
func FromScene(ctx context.Context, sc *scene.Scene, renderer ports.Renderer, opts ...Option) (*Engine, error) {
	if sc.Name != "" {
		opts = append([]Option{WithName(sc.Name)}, opts...)
	}
	eng := New(renderer, opts...)
	var applyOpts []scene.ApplyOption
	if eng.effects != nil {
		applyOpts = append(applyOpts, scene.WithEffects(eng.effects))
	}
	if err := sc.Apply(ctx, eng, applyOpts...); err != nil {
		return nil, fmt.Errorf("failed to apply scene %s: %w", sc.Name, err)
	}
	return eng, nil
}

// FPS returns the frame rate used by Run.
func (e *Engine) FPS() int { return e.fps }

// Tick advances the timeline by one frame.
func (e *Engine) Tick(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.runtime.Tick(ctx)
}

// AddFigure queues a figure on the steps tier, or the instant tier when requested.
func (e *Engine) AddFigure(ctx context.Context, f *domain.Figure, opts domain.AddOptions) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.runtime.AddFigure(ctx, f, opts)
}

// AddGroup queues a group whose members are drawn together.
func (e *Engine) AddGroup(ctx context.Context, g *domain.Group, opts domain.AddOptions) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.runtime.AddGroup(ctx, g, opts)
}

// AddAnimator queues an animator whose steps are drawn one per pacing slot.
func (e *Engine) AddAnimator(ctx context.Context, a *domain.Animator, opts domain.AddOptions) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.runtime.AddAnimator(ctx, a, opts)
}

// RemoveFigure removes a figure from every lane.
func (e *Engine) RemoveFigure(ctx context.Context, f *domain.Figure) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.runtime.RemoveFigure(ctx, f)
}

// RemoveGroup removes a group and its members.
func (e *Engine) RemoveGroup(ctx context.Context, g *domain.Group) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.runtime.RemoveGroup(ctx, g)
}

// RemoveAnimator removes an animator and everything it holds.
func (e *Engine) RemoveAnimator(ctx context.Context, a *domain.Animator) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.runtime.RemoveAnimator(ctx, a)
}

// SetPaused pauses or resumes playback.
func (e *Engine) SetPaused(ctx context.Context, paused bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.runtime.SetPaused(ctx, paused)
	return nil
}

// TogglePause flips playback and reports whether it is now paused.
func (e *Engine) TogglePause(ctx context.Context) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.runtime.TogglePause(ctx), nil
}

// UpdateSpeed scales pacing and travel speed.
func (e *Engine) UpdateSpeed(ctx context.Context, multiplier float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.runtime.UpdateSpeed(ctx, multiplier)
}

// Reset rebuilds the timeline in authoring order.
func (e *Engine) Reset(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.runtime.Reset(ctx)
	return nil
}

// StepNext pauses and draws exactly one more unit.
func (e *Engine) StepNext(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.runtime.StepNext(ctx)
	return nil
}

// StepBack pauses and undraws the last committed unit.
func (e *Engine) StepBack(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.runtime.StepBack(ctx)
	return nil
}

// LoadNextCheckpoint jumps forward to the next checkpoint.
func (e *Engine) LoadNextCheckpoint(ctx context.Context) (string, bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	id, ok := e.runtime.LoadNextCheckpoint(ctx)
	return id, ok, nil
}

// LoadPreviousCheckpoint rewinds to the most recent committed checkpoint.
func (e *Engine) LoadPreviousCheckpoint(ctx context.Context) (string, bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	id, ok := e.runtime.LoadPreviousCheckpoint(ctx)
	return id, ok, nil
}

// SetUsingHelperQueue switches playback to or from the helper tier.
func (e *Engine) SetUsingHelperQueue(ctx context.Context, enabled bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.runtime.SetUsingHelperQueue(ctx, enabled)
	return nil
}

// LoadCheckpointToHelper plays the run starting at checkpoint id on the helper tier.
func (e *Engine) LoadCheckpointToHelper(ctx context.Context, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.runtime.LoadCheckpointToHelper(ctx, id)
}

// ReDrawAll repaints the committed snapshot.
func (e *Engine) ReDrawAll(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.runtime.ReDrawAll()
	return nil
}

// Resize changes the surface dimensions and repaints.
func (e *Engine) Resize(width, height int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.runtime.Resize(width, height)
}

// Inspect returns a read-only view of the queues.
func (e *Engine) Inspect(ctx context.Context) (domain.Inspection, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.runtime.Inspect(), nil
}
