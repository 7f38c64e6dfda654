package mqtt_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aretw0/stepline/pkg/adapters/mqtt"
	"github.com/aretw0/stepline/pkg/domain"
	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeToken struct {
	done chan struct{}
	err  error
}

func newToken(err error, complete bool) *fakeToken {
	t := &fakeToken{done: make(chan struct{}), err: err}
	if complete {
		close(t.done)
	}
	return t
}

func (t *fakeToken) Wait() bool                     { <-t.done; return true }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t *fakeToken) Done() <-chan struct{}          { return t.done }
func (t *fakeToken) Error() error                   { return t.err }

type published struct {
	topic   string
	qos     byte
	payload []byte
}

type fakeClient struct {
	sent  []published
	token func() paho.Token
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token {
	c.sent = append(c.sent, published{topic: topic, qos: qos, payload: payload.([]byte)})
	if c.token != nil {
		return c.token()
	}
	return newToken(nil, true)
}

func TestBus_Publish(t *testing.T) {
	client := &fakeClient{}
	bus := mqtt.NewBus(client, mqtt.WithTopic("demo"), mqtt.WithQoS(1))

	ev := domain.NewEvent(domain.EventAnimatorDraw, "a1")
	ev.Timeline = "intro"
	require.NoError(t, bus.Publish(context.Background(), ev))

	require.Len(t, client.sent, 1)
	assert.Equal(t, "demo/animatorDraw", client.sent[0].topic)
	assert.Equal(t, byte(1), client.sent[0].qos)

	var got domain.Event
	require.NoError(t, json.Unmarshal(client.sent[0].payload, &got))
	assert.Equal(t, "a1", got.UnitID)
	assert.Equal(t, "intro", got.Timeline)
}

func TestBus_PublishError(t *testing.T) {
	client := &fakeClient{token: func() paho.Token { return newToken(errors.New("not connected"), true) }}
	bus := mqtt.NewBus(client)

	err := bus.Publish(context.Background(), domain.NewEvent(domain.EventLoop, ""))
	assert.ErrorContains(t, err, "not connected")
}

func TestBus_PublishTimeout(t *testing.T) {
	client := &fakeClient{token: func() paho.Token { return newToken(nil, false) }}
	bus := mqtt.NewBus(client, mqtt.WithTimeout(20*time.Millisecond))

	err := bus.Publish(context.Background(), domain.NewEvent(domain.EventLoop, ""))
	assert.ErrorContains(t, err, "timed out")
}

func TestBus_PublishCanceled(t *testing.T) {
	client := &fakeClient{token: func() paho.Token { return newToken(nil, false) }}
	bus := mqtt.NewBus(client, mqtt.WithTimeout(time.Minute))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, bus.Publish(ctx, domain.NewEvent(domain.EventLoop, "")), context.Canceled)
}
