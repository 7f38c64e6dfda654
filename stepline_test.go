package stepline_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aretw0/stepline"
	"github.com/aretw0/stepline/pkg/adapters/memory"
	"github.com/aretw0/stepline/pkg/domain"
	"github.com/aretw0/stepline/pkg/scene"
	"github.com/aretw0/stepline/pkg/shapes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dot(id string, x, y float64) *domain.Figure {
	return domain.NewFigure(id, &shapes.Dot{At: shapes.Point{X: x, Y: y}})
}

func TestEngine_Controller(t *testing.T) {
	ctx := context.Background()
	bus := memory.NewBus()
	eng := stepline.New(memory.NewRenderer(), stepline.WithEventBus(bus), stepline.WithName("demo"))

	require.NoError(t, eng.AddFigure(ctx, dot("a", 1, 1), domain.AddOptions{Checkpoint: true}))
	require.NoError(t, eng.AddFigure(ctx, dot("b", 2, 2), domain.AddOptions{}))
	require.NoError(t, eng.AddFigure(ctx, dot("c", 3, 3), domain.AddOptions{Checkpoint: true}))

	require.NoError(t, eng.StepNext(ctx))
	in, err := eng.Inspect(ctx)
	require.NoError(t, err)
	assert.Equal(t, "demo", in.Name)
	assert.True(t, in.Paused, "stepping pauses playback")
	assert.Equal(t, []string{"a"}, in.Snapshot.Figures)

	id, ok, err := eng.LoadNextCheckpoint(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "c", id)

	id, ok, err = eng.LoadPreviousCheckpoint(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "a", id)

	paused, err := eng.TogglePause(ctx)
	require.NoError(t, err)
	assert.True(t, paused, "seeking resumes, so toggling pauses again")

	assert.ErrorIs(t, eng.UpdateSpeed(ctx, 0), domain.ErrInvalidSpeed)
	assert.ErrorIs(t, eng.LoadCheckpointToHelper(ctx, "b"), domain.ErrCheckpointNotFound)
	assert.Equal(t, []string{"a"}, bus.Of(domain.EventFigureDraw)[:1])
}

func TestEngine_Run(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	eng := stepline.New(memory.NewRenderer(), stepline.WithFPS(200), stepline.WithStepInterval(1))
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, eng.AddFigure(ctx, dot(id, 0, 0), domain.AddOptions{}))
	}

	resizes := make(chan [2]int, 1)
	done := make(chan error, 1)
	go func() { done <- eng.Run(ctx, resizes) }()
	resizes <- [2]int{40, 10}

	require.Eventually(t, func() bool {
		in, _ := eng.Inspect(ctx)
		return len(in.Snapshot.Figures) == 3
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestEngine_ConcurrentControl(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	eng := stepline.New(memory.NewRenderer(), stepline.WithFPS(500), stepline.WithStepInterval(1))
	for i := 0; i < 20; i++ {
		require.NoError(t, eng.AddFigure(ctx, dot(string(rune('a'+i)), 0, 0), domain.AddOptions{Checkpoint: i%5 == 0}))
	}
	go eng.Run(ctx, nil)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				switch (i + j) % 4 {
				case 0:
					_ = eng.StepNext(ctx)
				case 1:
					_ = eng.StepBack(ctx)
				case 2:
					_, _, _ = eng.LoadPreviousCheckpoint(ctx)
				default:
					_ = eng.SetPaused(ctx, false)
				}
			}
		}(i)
	}
	wg.Wait()

	in, err := eng.Inspect(ctx)
	require.NoError(t, err)
	total := len(in.Snapshot.Figures) + len(in.Steps.Figures) + len(in.Travelling)
	assert.Equal(t, 20, total, "no figure is lost or duplicated")
}

func TestFromScene(t *testing.T) {
	ctx := context.Background()
	sc, err := scene.Load("pkg/scene/testdata/intro.yaml")
	require.NoError(t, err)

	eng, err := stepline.FromScene(ctx, sc, memory.NewRenderer())
	require.NoError(t, err)
	assert.Equal(t, "intro", eng.Name)

	in, err := eng.Inspect(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"note"}, in.Instant.Figures)
	assert.Equal(t, []string{"axes"}, in.Steps.Groups)
	assert.Equal(t, []string{"points"}, in.Steps.Animators)

	_, err = stepline.FromScene(ctx, sc, memory.NewRenderer(), stepline.WithName("again"))
	require.NoError(t, err, "a scene can be applied more than once")
}
