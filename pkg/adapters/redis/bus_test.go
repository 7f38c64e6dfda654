package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/stepline/pkg/adapters/redis"
	"github.com/aretw0/stepline/pkg/domain"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, opts ...redis.Option) (*miniredis.Miniredis, *redis.Bus) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	bus := redis.NewFromClient(client, opts...)
	t.Cleanup(func() { bus.Close() })
	return mr, bus
}

func TestRedisBus_PublishKeepsCappedList(t *testing.T) {
	ctx := context.Background()
	mr, bus := setup(t, redis.WithList("events", 2))

	for _, id := range []string{"f1", "f2", "f3"} {
		require.NoError(t, bus.Publish(ctx, domain.NewEvent(domain.EventFigureDraw, id)))
	}

	stored, err := mr.List("events")
	require.NoError(t, err)
	assert.Len(t, stored, 2)

	recent, err := bus.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "f3", recent[0].UnitID)
	assert.Equal(t, "f2", recent[1].UnitID)
	assert.Equal(t, domain.EventFigureDraw, recent[0].Type)
}

func TestRedisBus_ListDisabled(t *testing.T) {
	ctx := context.Background()
	mr, bus := setup(t, redis.WithList("", 0))

	require.NoError(t, bus.Publish(ctx, domain.NewEvent(domain.EventLoop, "")))
	assert.False(t, mr.Exists("stepline:events:log"))

	recent, err := bus.Recent(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestRedisBus_Subscribe(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	_, bus := setup(t, redis.WithChannel("timeline"))

	events, err := bus.Subscribe(ctx)
	require.NoError(t, err)

	require.NoError(t, bus.Publish(ctx, domain.NewEvent(domain.EventGroupDraw, "g1")))

	select {
	case ev := <-events:
		assert.Equal(t, domain.EventGroupDraw, ev.Type)
		assert.Equal(t, "g1", ev.UnitID)
	case <-time.After(2 * time.Second):
		t.Fatal("event not delivered")
	}

	cancel()
	assert.Eventually(t, func() bool {
		select {
		case _, ok := <-events:
			return !ok
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)
}

func TestRedisBus_PublishFailsWhenServerDown(t *testing.T) {
	mr, bus := setup(t)
	mr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	assert.Error(t, bus.Publish(ctx, domain.NewEvent(domain.EventLoop, "")))
}
