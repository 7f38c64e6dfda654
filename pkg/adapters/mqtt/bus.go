// Package mqtt publishes stepline events to an MQTT broker.
package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aretw0/stepline/pkg/domain"
	paho "github.com/eclipse/paho.mqtt.golang"
)

// Publisher is the part of paho's mqtt.Client the bus needs.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
}

// Bus implements ports.EventBus over MQTT.
// Events go to "<topic>/<event type>".
type Bus struct {
	client  Publisher
	topic   string
	qos     byte
	timeout time.Duration
}

type Option func(*Bus)

// WithTopic sets the topic prefix.
func WithTopic(topic string) Option {
	return func(b *Bus) {
		b.topic = topic
	}
}

// WithQoS sets the delivery guarantee (0, 1 or 2).
func WithQoS(qos byte) Option {
	return func(b *Bus) {
		b.qos = qos
	}
}

// WithTimeout bounds how long Publish waits for the broker.
func WithTimeout(d time.Duration) Option {
	return func(b *Bus) {
		b.timeout = d
	}
}

// NewBus wraps a connected client.
func NewBus(client Publisher, opts ...Option) *Bus {
	b := &Bus{
		client:  client,
		topic:   "stepline/events",
		timeout: 2 * time.Second,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Connect dials the broker with the usual keep-alive settings.
func Connect(broker, clientID string) (paho.Client, error) {
	options := paho.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetAutoReconnect(true)
	client := paho.NewClient(options)

	if token := client.Connect(); token.WaitTimeout(10*time.Second) && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", broker, token.Error())
	} else if !client.IsConnected() && !client.IsConnectionOpen() {
		return nil, fmt.Errorf("failed to connect to %s: timed out", broker)
	}
	return client, nil
}

// Topic returns the topic an event is published on.
func (b *Bus) Topic(t domain.EventType) string {
	return b.topic + "/" + string(t)
}

// Publish sends the event as JSON and waits for the broker acknowledgement.
func (b *Bus) Publish(ctx context.Context, event domain.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	token := b.client.Publish(b.Topic(event.Type), b.qos, false, data)

	timer := time.NewTimer(b.timeout)
	defer timer.Stop()
	select {
	case <-token.Done():
		if err := token.Error(); err != nil {
			return fmt.Errorf("failed to publish to mqtt: %w", err)
		}
		return nil
	case <-timer.C:
		return fmt.Errorf("mqtt publish to %s timed out after %s", b.Topic(event.Type), b.timeout)
	case <-ctx.Done():
		return ctx.Err()
	}
}
