package runtime_test

import (
	"context"
	"testing"

	"github.com/aretw0/stepline/internal/runtime"
	"github.com/aretw0/stepline/internal/testutils"
	"github.com/aretw0/stepline/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeek_PreviousCheckpointRewindsEverything(t *testing.T) {
	ctx := context.Background()
	h := testutils.NewHarness(t)
	s := testutils.NewScenario(t, ctx, h.Engine)
	h.Drain(t, ctx, 20)

	id, ok := h.Engine.LoadPreviousCheckpoint(ctx)
	require.True(t, ok)
	assert.Equal(t, "f1", id)

	in := h.Engine.Inspect()
	assert.Empty(t, in.Snapshot.Figures)
	assert.Empty(t, in.Snapshot.Groups)
	assert.Empty(t, in.Snapshot.Animators)
	assert.Empty(t, in.Checkpoints)
	assert.Equal(t, []string{"f1", "f2", "f3", "f4", "f5", "f6"}, in.Steps.Figures)
	assert.Equal(t, []string{"g1", "g2"}, in.Steps.Groups)
	assert.Equal(t, []string{"a1"}, in.Steps.Animators)
	assert.False(t, in.Paused, "seek resumes playback")
	assert.Equal(t, domain.AnimatorPending, s.A1.State())
	assert.False(t, s.G1.Committed)
	assert.Empty(t, h.Renderer.Visible())
}

func TestSeek_CheckpointRoundTrip(t *testing.T) {
	ctx := context.Background()
	h := testutils.NewHarness(t)
	testutils.NewScenario(t, ctx, h.Engine)
	h.Drain(t, ctx, 20)

	_, ok := h.Engine.LoadPreviousCheckpoint(ctx)
	require.True(t, ok)
	assert.Equal(t, 4, h.Drain(t, ctx, 20))

	in := h.Engine.Inspect()
	assert.Equal(t, []string{"f1", "f2", "f3", "f4", "f5", "f6"}, in.Snapshot.Figures)
	assert.Equal(t, []string{"f1"}, in.Checkpoints, "replayed checkpoint is recorded once")
	assert.Equal(t, []string{"a1", "a1"}, h.Bus.Of(domain.EventAnimatorDraw))
}

func TestSeek_PreviousWithoutCheckpoint(t *testing.T) {
	ctx := context.Background()
	h := testutils.NewHarness(t)
	require.NoError(t, h.Engine.AddFigure(ctx, domain.NewFigure("f1", nil), domain.AddOptions{}))
	h.Ticks(ctx, 1)

	id, ok := h.Engine.LoadPreviousCheckpoint(ctx)
	assert.False(t, ok)
	assert.Empty(t, id)
	assert.Equal(t, []string{"f1"}, h.Engine.Inspect().Snapshot.Figures)
	assert.Empty(t, h.Bus.Of(domain.EventNoLoop), "nothing to do: playback untouched")
}

func TestSeek_PreviousStepsBackOneCheckpointAtATime(t *testing.T) {
	ctx := context.Background()
	h := testutils.NewHarness(t)
	for _, id := range []string{"c1", "x", "c2", "y"} {
		opts := domain.AddOptions{Checkpoint: id[0] == 'c'}
		require.NoError(t, h.Engine.AddFigure(ctx, domain.NewFigure(id, nil), opts))
	}
	h.Drain(t, ctx, 10)

	id, ok := h.Engine.LoadPreviousCheckpoint(ctx)
	require.True(t, ok)
	assert.Equal(t, "c2", id)
	assert.Equal(t, []string{"c1", "x"}, h.Engine.Inspect().Snapshot.Figures)
	assert.Equal(t, []string{"c1"}, h.Engine.Inspect().Checkpoints)

	id, ok = h.Engine.LoadPreviousCheckpoint(ctx)
	require.True(t, ok)
	assert.Equal(t, "c1", id)
	assert.Equal(t, []string{"c1", "x", "c2", "y"}, h.Engine.Inspect().Steps.Figures)
}

func TestSeek_PreviousRollsBackPartialAnimator(t *testing.T) {
	ctx := context.Background()
	h := testutils.NewHarness(t)

	f1 := domain.NewFigure("f1", nil)
	x1, x2, x3 := domain.NewFigure("x1", nil), domain.NewFigure("x2", nil), domain.NewFigure("x3", nil)
	x2.Checkpoint = true
	a := domain.NewAnimator("a", x1, x2, x3)
	require.NoError(t, h.Engine.AddFigure(ctx, f1, domain.AddOptions{Checkpoint: true}))
	require.NoError(t, h.Engine.AddAnimator(ctx, a, domain.AddOptions{}))

	h.Ticks(ctx, 3)
	require.Equal(t, []string{"f1", "x1", "x2"}, h.Engine.Inspect().Snapshot.Figures)
	require.Equal(t, []string{"f1", "x2"}, h.Engine.Inspect().Checkpoints)

	id, ok := h.Engine.LoadPreviousCheckpoint(ctx)
	require.True(t, ok)
	assert.Equal(t, "f1", id, "checkpoint inside a running animator is skipped")

	in := h.Engine.Inspect()
	assert.Empty(t, in.Snapshot.Figures)
	assert.Equal(t, []string{"f1", "x1", "x2", "x3"}, in.Steps.Figures)
	assert.Equal(t, []string{"a"}, in.Steps.Animators)
	assert.Equal(t, domain.AnimatorPending, a.State())

	assert.Equal(t, 4, h.Drain(t, ctx, 10))
	assert.True(t, a.Committed)
}

func TestSeek_PreviousIntoGroupPullsWholeGroup(t *testing.T) {
	ctx := context.Background()
	h := testutils.NewHarness(t)

	m1, m2 := domain.NewFigure("m1", nil), domain.NewFigure("m2", nil)
	m2.Checkpoint = true
	g := domain.NewGroup("g", m1, m2)
	require.NoError(t, h.Engine.AddGroup(ctx, g, domain.AddOptions{}))
	require.NoError(t, h.Engine.AddFigure(ctx, domain.NewFigure("after", nil), domain.AddOptions{}))
	h.Drain(t, ctx, 10)

	id, ok := h.Engine.LoadPreviousCheckpoint(ctx)
	require.True(t, ok)
	assert.Equal(t, "m2", id)

	in := h.Engine.Inspect()
	assert.Empty(t, in.Snapshot.Figures)
	assert.Equal(t, []string{"m1", "m2", "after"}, in.Steps.Figures)
	assert.Equal(t, []string{"g"}, in.Steps.Groups)
	assert.False(t, g.Committed)
}

func TestSeek_PreviousInsideCommittedAnimator(t *testing.T) {
	ctx := context.Background()
	h := testutils.NewHarness(t)

	x1, x2, x3 := domain.NewFigure("x1", nil), domain.NewFigure("x2", nil), domain.NewFigure("x3", nil)
	x2.Checkpoint = true
	a := domain.NewAnimator("a", x1, x2, x3)
	require.NoError(t, h.Engine.AddAnimator(ctx, a, domain.AddOptions{}))
	h.Drain(t, ctx, 10)
	require.True(t, a.Committed)

	id, ok := h.Engine.LoadPreviousCheckpoint(ctx)
	require.True(t, ok)
	assert.Equal(t, "x2", id)

	in := h.Engine.Inspect()
	assert.Equal(t, []string{"x1"}, in.Snapshot.Figures)
	assert.Equal(t, []string{"x2", "x3"}, in.Steps.Figures)
	assert.Equal(t, []string{"a"}, in.Steps.Animators)
	assert.False(t, a.Committed)
	assert.Equal(t, 1, a.Cursor(), "cursor sits on the restored step")

	assert.Equal(t, 2, h.Drain(t, ctx, 10))
	assert.Equal(t, []string{"x1", "x2", "x3"}, h.Engine.Inspect().Snapshot.Figures)
}

func TestSeek_PreviousRearmsInFlightTravel(t *testing.T) {
	ctx := context.Background()
	h := testutils.NewHarness(t)
	stub := &testutils.StubTravel{DoneAfter: 5}
	mover := domain.NewFigure("mover", nil).WithTravel(stub)
	require.NoError(t, h.Engine.AddFigure(ctx, domain.NewFigure("f1", nil), domain.AddOptions{Checkpoint: true}))
	require.NoError(t, h.Engine.AddFigure(ctx, mover, domain.AddOptions{}))

	h.Ticks(ctx, 2)
	require.Equal(t, []string{"mover"}, h.Engine.Inspect().Travelling)

	_, ok := h.Engine.LoadPreviousCheckpoint(ctx)
	require.True(t, ok)
	assert.Empty(t, h.Engine.Inspect().Travelling)
	assert.Equal(t, []string{"f1", "mover"}, h.Engine.Inspect().Steps.Figures)
	assert.True(t, mover.ShouldTravel)
	assert.Equal(t, 1, stub.Resets)
}

func TestSeek_NextCheckpoint(t *testing.T) {
	ctx := context.Background()
	h := testutils.NewHarness(t)

	f1 := domain.NewFigure("f1", nil)
	g1 := domain.NewGroup("g1", domain.NewFigure("f2", nil), domain.NewFigure("f3", nil))
	a1 := domain.NewAnimator("a1", domain.NewFigure("f4", nil), domain.NewFigure("f5", nil))
	require.NoError(t, h.Engine.AddFigure(ctx, f1, domain.AddOptions{Checkpoint: true}))
	require.NoError(t, h.Engine.AddGroup(ctx, g1, domain.AddOptions{}))
	require.NoError(t, h.Engine.AddAnimator(ctx, a1, domain.AddOptions{Checkpoint: true}))

	draws := h.Renderer.Draws()
	id, ok := h.Engine.LoadNextCheckpoint(ctx)
	require.True(t, ok)
	assert.Equal(t, "f4", id)

	in := h.Engine.Inspect()
	assert.Equal(t, []string{"f1", "f2", "f3"}, in.Snapshot.Figures)
	assert.Equal(t, []string{"f4", "f5"}, in.Steps.Figures)
	assert.False(t, in.Paused)
	assert.Equal(t, []string{"f1", "f2", "f3"}, h.Renderer.Visible())
	assert.Equal(t, draws+3, h.Renderer.Draws(), "skipped steps are painted once by the final redraw")

	id, ok = h.Engine.LoadNextCheckpoint(ctx)
	assert.False(t, ok, "no checkpoint after the head")
	assert.Empty(t, id)
	assert.Equal(t, []string{"f4", "f5"}, h.Engine.Inspect().Steps.Figures)
}

func TestSeek_PreviousRewindsQueuedAnimatorPastInstantUnit(t *testing.T) {
	ctx := context.Background()
	h := testutils.NewHarness(t, runtime.WithStepInterval(2))
	f0 := domain.NewFigure("f0", nil)
	f1, f2, f3 := domain.NewFigure("f1", nil), domain.NewFigure("f2", nil), domain.NewFigure("f3", nil)
	a1 := domain.NewAnimator("a1", f1, f2, f3)
	require.NoError(t, h.Engine.AddFigure(ctx, f0, domain.AddOptions{Checkpoint: true}))
	require.NoError(t, h.Engine.AddAnimator(ctx, a1, domain.AddOptions{}))

	h.Ticks(ctx, 4)
	require.Equal(t, []string{"f0", "f1"}, h.Engine.Inspect().Snapshot.Figures)
	require.NoError(t, h.Engine.AddFigure(ctx, domain.NewFigure("x", nil), domain.AddOptions{Instant: true}))
	h.Ticks(ctx, 1)
	require.Equal(t, []string{"f0", "f1", "x"}, h.Engine.Inspect().Snapshot.Figures)
	require.Equal(t, domain.AnimatorRunning, a1.State())

	id, ok := h.Engine.LoadPreviousCheckpoint(ctx)
	require.True(t, ok)
	assert.Equal(t, "f0", id)

	in := h.Engine.Inspect()
	assert.Empty(t, in.Snapshot.Figures)
	assert.Equal(t, []string{"f0", "f1", "x", "f2", "f3"}, in.Steps.Figures)
	assert.Equal(t, []string{"a1"}, in.Steps.Animators)
	assert.Equal(t, 0, a1.Cursor(), "cursor is back on the first restored step")
	assert.Equal(t, domain.AnimatorPending, a1.State())

	h.Drain(t, ctx, 30)
	assert.Equal(t, []string{"f0", "f1", "x", "f2", "f3"}, h.Engine.Inspect().Snapshot.Figures)
	assert.Equal(t, domain.AnimatorDone, a1.State())
	assert.Equal(t, []string{"a1"}, h.Bus.Of(domain.EventAnimatorDraw))
}

func TestSeek_NextCheckpointCommitsInstantWithoutTarget(t *testing.T) {
	ctx := context.Background()
	h := testutils.NewHarness(t)
	require.NoError(t, h.Engine.AddFigure(ctx, domain.NewFigure("f1", nil), domain.AddOptions{Checkpoint: true}))
	require.NoError(t, h.Engine.AddFigure(ctx, domain.NewFigure("f2", nil), domain.AddOptions{}))
	require.NoError(t, h.Engine.AddFigure(ctx, domain.NewFigure("x", nil), domain.AddOptions{Instant: true}))
	require.Empty(t, h.Engine.Inspect().Snapshot.Figures)

	id, ok := h.Engine.LoadNextCheckpoint(ctx)
	assert.False(t, ok)
	assert.Empty(t, id)

	in := h.Engine.Inspect()
	assert.Equal(t, []string{"x"}, in.Snapshot.Figures)
	assert.Empty(t, in.Instant.Figures)
	assert.Equal(t, []string{"f1", "f2"}, in.Steps.Figures)
}
