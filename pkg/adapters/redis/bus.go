package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aretw0/stepline/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// Bus implements ports.EventBus using Redis.
// Every event is PUBLISHed on a channel and, when a list key is set, pushed
// onto a capped list holding the most recent events.
type Bus struct {
	client   *backend.Client
	channel  string
	listKey  string
	listSize int64
}

type Option func(*Bus)

// WithChannel sets the pub/sub channel.
func WithChannel(channel string) Option {
	return func(b *Bus) {
		b.channel = channel
	}
}

// WithList keeps the last size events under key. An empty key disables the list.
func WithList(key string, size int64) Option {
	return func(b *Bus) {
		b.listKey = key
		b.listSize = size
	}
}

// New creates a new Redis bus with options.
func New(address, password string, db int, opts ...Option) *Bus {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis bus from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Bus {
	bus := &Bus{
		client:   client,
		channel:  "stepline:events",
		listKey:  "stepline:events:log",
		listSize: 1000,
	}

	for _, opt := range opts {
		opt(bus)
	}

	return bus
}

// Publish sends the event in one pipeline.
func (b *Bus) Publish(ctx context.Context, event domain.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	pipe := b.client.Pipeline()
	pipe.Publish(ctx, b.channel, data)
	if b.listKey != "" && b.listSize > 0 {
		pipe.LPush(ctx, b.listKey, data)
		pipe.LTrim(ctx, b.listKey, 0, b.listSize-1)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to publish to redis: %w", err)
	}
	return nil
}

// Recent returns up to n stored events, newest first.
func (b *Bus) Recent(ctx context.Context, n int64) ([]domain.Event, error) {
	if b.listKey == "" || n <= 0 {
		return nil, nil
	}
	vals, err := b.client.LRange(ctx, b.listKey, 0, n-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read events from redis: %w", err)
	}

	events := make([]domain.Event, 0, len(vals))
	for _, v := range vals {
		var ev domain.Event
		if err := json.Unmarshal([]byte(v), &ev); err != nil {
			return nil, fmt.Errorf("failed to unmarshal event: %w", err)
		}
		events = append(events, ev)
	}
	return events, nil
}

// Subscribe listens on the channel until ctx is done. Malformed payloads are skipped.
// The subscription is confirmed before Subscribe returns.
func (b *Bus) Subscribe(ctx context.Context) (<-chan domain.Event, error) {
	ps := b.client.Subscribe(ctx, b.channel)
	if _, err := ps.Receive(ctx); err != nil {
		ps.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", b.channel, err)
	}

	out := make(chan domain.Event, 16)
	go func() {
		defer close(out)
		defer ps.Close()
		msgs := ps.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var ev domain.Event
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					continue
				}
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

// Close releases the client.
func (b *Bus) Close() error {
	return b.client.Close()
}
