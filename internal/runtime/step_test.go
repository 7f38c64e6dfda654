package runtime_test

import (
	"context"
	"testing"

	"github.com/aretw0/stepline/internal/testutils"
	"github.com/aretw0/stepline/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStep_NextAndBack(t *testing.T) {
	ctx := context.Background()
	h := testutils.NewHarness(t)
	addAll(t, h, "f1", "f2")

	h.Engine.StepNext(ctx)
	in := h.Engine.Inspect()
	assert.True(t, in.Paused)
	assert.Equal(t, []string{"f1"}, in.Snapshot.Figures)

	h.Ticks(ctx, 5)
	assert.Equal(t, []string{"f1"}, h.Engine.Inspect().Snapshot.Figures, "stepping leaves playback paused")

	h.Engine.StepBack(ctx)
	in = h.Engine.Inspect()
	assert.Empty(t, in.Snapshot.Figures)
	assert.Equal(t, []string{"f1", "f2"}, in.Steps.Figures)
	assert.Empty(t, h.Renderer.Visible())
}

func TestStep_BackOnEmptySnapshot(t *testing.T) {
	ctx := context.Background()
	h := testutils.NewHarness(t)
	addAll(t, h, "f1")

	assert.NotPanics(t, func() { h.Engine.StepBack(ctx) })
	assert.Equal(t, []string{"f1"}, h.Engine.Inspect().Steps.Figures)
}

func TestStep_BackRestoresWholeGroup(t *testing.T) {
	ctx := context.Background()
	h := testutils.NewHarness(t)
	g := domain.NewGroup("g", domain.NewFigure("m1", nil), domain.NewFigure("m2", nil))
	require.NoError(t, h.Engine.AddGroup(ctx, g, domain.AddOptions{}))
	addAll(t, h, "f3")

	h.Engine.StepNext(ctx)
	h.Engine.StepNext(ctx)
	require.Equal(t, []string{"m1", "m2", "f3"}, h.Engine.Inspect().Snapshot.Figures)

	h.Engine.StepBack(ctx)
	assert.Equal(t, []string{"f3"}, h.Engine.Inspect().Steps.Figures)

	h.Engine.StepBack(ctx)
	in := h.Engine.Inspect()
	assert.Equal(t, []string{"m1", "m2", "f3"}, in.Steps.Figures)
	assert.Equal(t, []string{"g"}, in.Steps.Groups)
	assert.Empty(t, in.Snapshot.Groups)
	assert.False(t, g.Committed)
}

func TestStep_BackInsideAnimator(t *testing.T) {
	ctx := context.Background()
	h := testutils.NewHarness(t)
	x1, x2, x3 := domain.NewFigure("x1", nil), domain.NewFigure("x2", nil), domain.NewFigure("x3", nil)
	a := domain.NewAnimator("a", x1, x2, x3)
	require.NoError(t, h.Engine.AddAnimator(ctx, a, domain.AddOptions{}))

	h.Engine.StepNext(ctx)
	h.Engine.StepNext(ctx)
	require.Equal(t, 2, a.Cursor())

	h.Engine.StepBack(ctx)
	assert.Equal(t, 1, a.Cursor())
	assert.Equal(t, []string{"x2", "x3"}, h.Engine.Inspect().Steps.Figures)

	h.Engine.StepNext(ctx)
	h.Engine.StepNext(ctx)
	require.True(t, a.Committed)

	h.Engine.StepBack(ctx)
	in := h.Engine.Inspect()
	assert.False(t, a.Committed, "finished animator reopens")
	assert.Equal(t, 2, a.Cursor())
	assert.Equal(t, []string{"a"}, in.Steps.Animators)
	assert.Empty(t, in.Snapshot.Animators)

	h.Engine.StepNext(ctx)
	assert.True(t, a.Committed)
	assert.Equal(t, []string{"a", "a"}, h.Bus.Of(domain.EventAnimatorDraw))
}

func TestStep_NextRepaintsOnAnimatorBoundary(t *testing.T) {
	ctx := context.Background()
	h := testutils.NewHarness(t)
	addAll(t, h, "plain")
	a := domain.NewAnimator("a", domain.NewFigure("x1", nil), domain.NewFigure("x2", nil))
	require.NoError(t, h.Engine.AddAnimator(ctx, a, domain.AddOptions{}))

	h.Engine.StepNext(ctx)
	assert.Equal(t, []string{"plain"}, h.Renderer.Visible())

	h.Engine.StepNext(ctx)
	assert.Equal(t, []string{"x1"}, h.Renderer.Visible(), "only the upcoming animator's figures stay on screen")
}

func TestStep_UsesHelperTier(t *testing.T) {
	ctx := context.Background()
	h := testutils.NewHarness(t)
	addAll(t, h, "cp1", "f2", "cp3", "f4")
	require.NoError(t, h.Engine.LoadCheckpointToHelper(ctx, "cp3"))

	h.Engine.StepNext(ctx)
	in := h.Engine.Inspect()
	assert.Equal(t, []string{"f4"}, in.Helper.Figures)
	assert.Empty(t, in.Steps.Figures)

	h.Engine.StepBack(ctx)
	assert.Equal(t, []string{"cp3", "f4"}, h.Engine.Inspect().Helper.Figures)
}
