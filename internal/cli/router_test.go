package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/aretw0/stepline/internal/logging"
	"github.com/aretw0/stepline/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingController struct {
	calls  []string
	speed  float64
	helper bool
}

func (c *recordingController) add(s string) { c.calls = append(c.calls, s) }

func (c *recordingController) SetPaused(context.Context, bool) error { c.add("pause"); return nil }
func (c *recordingController) TogglePause(context.Context) (bool, error) {
	c.add("toggle")
	return true, nil
}
func (c *recordingController) UpdateSpeed(_ context.Context, m float64) error {
	c.add("speed")
	c.speed = m
	return nil
}
func (c *recordingController) Reset(context.Context) error     { c.add("reset"); return nil }
func (c *recordingController) StepNext(context.Context) error  { c.add("next"); return nil }
func (c *recordingController) StepBack(context.Context) error  { c.add("back"); return nil }
func (c *recordingController) ReDrawAll(context.Context) error { c.add("redraw"); return nil }
func (c *recordingController) LoadNextCheckpoint(context.Context) (string, bool, error) {
	c.add("cp-next")
	return "", false, nil
}
func (c *recordingController) LoadPreviousCheckpoint(context.Context) (string, bool, error) {
	c.add("cp-prev")
	return "", false, nil
}
func (c *recordingController) SetUsingHelperQueue(_ context.Context, on bool) error {
	c.add("helper")
	c.helper = on
	return nil
}
func (c *recordingController) LoadCheckpointToHelper(context.Context, string) error { return nil }
func (c *recordingController) Inspect(context.Context) (domain.Inspection, error) {
	return domain.Inspection{Speed: c.speed, UsingHelper: c.helper}, nil
}

func TestRouteKey(t *testing.T) {
	ctx := context.Background()
	c := &recordingController{speed: 1}

	for _, k := range []byte(" nb][r.x") {
		require.NoError(t, routeKey(ctx, c, k))
	}
	assert.Equal(t, []string{"toggle", "next", "back", "cp-next", "cp-prev", "reset", "redraw"}, c.calls)

	require.NoError(t, routeKey(ctx, c, '+'))
	assert.Equal(t, 2.0, c.speed)
	require.NoError(t, routeKey(ctx, c, '-'))
	require.NoError(t, routeKey(ctx, c, '-'))
	assert.Equal(t, 0.5, c.speed)

	require.NoError(t, routeKey(ctx, c, 'h'))
	assert.True(t, c.helper)
	require.NoError(t, routeKey(ctx, c, 'h'))
	assert.False(t, c.helper, "h toggles the helper queue")

	assert.ErrorIs(t, routeKey(ctx, c, 'q'), errQuit)
}

func TestReadKeys(t *testing.T) {
	c := &recordingController{speed: 1}
	stopped := false

	readKeys(context.Background(), strings.NewReader("nnqb"), c, func() { stopped = true }, logging.NewNop())

	assert.True(t, stopped)
	assert.Equal(t, []string{"next", "next"}, c.calls, "keys after q are not read")
}

func TestReadKeys_EOF(t *testing.T) {
	c := &recordingController{speed: 1}
	stopped := false

	readKeys(context.Background(), strings.NewReader("b"), c, func() { stopped = true }, logging.NewNop())

	assert.True(t, stopped, "EOF stops playback")
	assert.Equal(t, []string{"back"}, c.calls)
}
