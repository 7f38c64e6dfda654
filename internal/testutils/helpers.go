package testutils

import (
	"context"
	"testing"

	"github.com/aretw0/stepline/internal/runtime"
	"github.com/aretw0/stepline/pkg/adapters/memory"
	"github.com/aretw0/stepline/pkg/domain"
	"github.com/stretchr/testify/require"
)

// StubTravel is a Travelable that reports completion on its DoneAfter-th Step call.
type StubTravel struct {
	DoneAfter int
	Calls     int
	Resets    int
	Completed bool
}

// Step counts the call.
func (s *StubTravel) Step(speed float64) bool {
	s.Calls++
	return s.Calls >= s.DoneAfter
}

// Reset rewinds the call counter.
func (s *StubTravel) Reset() {
	s.Calls = 0
	s.Completed = false
	s.Resets++
}

// Complete marks the travel as force-finished.
func (s *StubTravel) Complete() {
	s.Completed = true
}

// Harness bundles an engine with its recording collaborators.
type Harness struct {
	Engine   *runtime.Engine
	Renderer *memory.Renderer
	Bus      *memory.Bus
}

// NewHarness creates an engine that steps on every frame.
func NewHarness(t *testing.T, opts ...runtime.EngineOption) *Harness {
	t.Helper()
	r := memory.NewRenderer()
	bus := memory.NewBus()
	base := []runtime.EngineOption{runtime.WithEventBus(bus), runtime.WithStepInterval(1)}
	return &Harness{
		Engine:   runtime.NewEngine(r, append(base, opts...)...),
		Renderer: r,
		Bus:      bus,
	}
}

// Ticks runs n frames.
func (h *Harness) Ticks(ctx context.Context, n int) {
	for i := 0; i < n; i++ {
		h.Engine.Tick(ctx)
	}
}

// Drain ticks until nothing is queued or travelling, failing after limit frames.
func (h *Harness) Drain(t *testing.T, ctx context.Context, limit int) int {
	t.Helper()
	for i := 1; i <= limit; i++ {
		h.Engine.Tick(ctx)
		in := h.Engine.Inspect()
		active := in.Steps
		if in.UsingHelper {
			active = in.Helper
		}
		if len(active.Figures) == 0 && len(in.Travelling) == 0 && len(in.Instant.Figures) == 0 {
			return i
		}
	}
	require.FailNow(t, "timeline did not drain", "limit %d", limit)
	return limit
}

// Scenario is the reference timeline: f1 (checkpoint), g1[f2 f3], a1[f4, g2[f5 f6]].
type Scenario struct {
	F1, F2, F3, F4, F5, F6 *domain.Figure
	G1, G2                 *domain.Group
	A1                     *domain.Animator
}

// NewScenario builds and enqueues the reference timeline.
func NewScenario(t *testing.T, ctx context.Context, e *runtime.Engine) *Scenario {
	t.Helper()
	s := &Scenario{}
	s.F1 = domain.NewFigure("f1", nil)
	s.F2 = domain.NewFigure("f2", nil)
	s.F3 = domain.NewFigure("f3", nil)
	s.G1 = domain.NewGroup("g1", s.F2, s.F3)
	s.F4 = domain.NewFigure("f4", nil)
	s.F5 = domain.NewFigure("f5", nil)
	s.F6 = domain.NewFigure("f6", nil)
	s.G2 = domain.NewGroup("g2", s.F5, s.F6)
	s.A1 = domain.NewAnimator("a1", s.F4, s.G2)

	require.NoError(t, e.AddFigure(ctx, s.F1, domain.AddOptions{Checkpoint: true}))
	require.NoError(t, e.AddGroup(ctx, s.G1, domain.AddOptions{}))
	require.NoError(t, e.AddAnimator(ctx, s.A1, domain.AddOptions{}))
	return s
}
