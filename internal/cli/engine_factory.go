package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/stepline"
	"github.com/aretw0/stepline/internal/config"
	"github.com/aretw0/stepline/pkg/adapters/mqtt"
	"github.com/aretw0/stepline/pkg/adapters/redis"
	"github.com/aretw0/stepline/pkg/observability"
	"github.com/aretw0/stepline/pkg/ports"
	"github.com/aretw0/stepline/pkg/registry"
	"github.com/aretw0/stepline/pkg/scene"
	"github.com/prometheus/client_golang/prometheus"
)

// createEngine initializes a stepline engine for the scene with standard CLI conventions.
func createEngine(ctx context.Context, sc *scene.Scene, r ports.Renderer, cfg config.Config, bus ports.EventBus, effects *registry.Registry, logger *slog.Logger) (*stepline.Engine, error) {
	engineOpts := []stepline.Option{
		stepline.WithLogger(logger),
		stepline.WithFPS(cfg.FPS),
		stepline.WithStepInterval(cfg.StepInterval),
		stepline.WithEffects(effects),
	}
	if bus != nil {
		engineOpts = append(engineOpts, stepline.WithEventBus(bus))
	}

	engine, err := stepline.FromScene(ctx, sc, r, engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	if cfg.Speed != 1 {
		if err := engine.UpdateSpeed(ctx, cfg.Speed); err != nil {
			return nil, err
		}
	}
	return engine, nil
}

// eventSinks are the buses wired from configuration, plus their teardown.
type eventSinks struct {
	buses   []ports.EventBus
	closers []func() error
}

func (s *eventSinks) add(bus ports.EventBus, closer func() error) {
	s.buses = append(s.buses, bus)
	if closer != nil {
		s.closers = append(s.closers, closer)
	}
}

// Bus returns the fan-out of every sink, or nil when there is none.
func (s *eventSinks) Bus() ports.EventBus {
	if len(s.buses) == 0 {
		return nil
	}
	return ports.Fanout(s.buses...)
}

// Close releases every sink connection.
func (s *eventSinks) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

// createSinks connects the event buses enabled in cfg. A nil registry skips metrics.
func createSinks(cfg config.Config, reg prometheus.Registerer, logger *slog.Logger) (*eventSinks, error) {
	sinks := &eventSinks{}

	if reg != nil {
		m, err := observability.NewMetrics(reg)
		if err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		sinks.add(m, nil)
	}

	if rc := cfg.Events.Redis; rc.Addr != "" {
		bus := redis.New(rc.Addr, rc.Password, rc.DB,
			redis.WithChannel(rc.Channel),
			redis.WithList(rc.ListKey, rc.ListSize),
		)
		sinks.add(bus, bus.Close)
		logger.Info("publishing events to redis", "addr", rc.Addr, "channel", rc.Channel)
	}

	if mc := cfg.Events.MQTT; mc.Broker != "" {
		client, err := mqtt.Connect(mc.Broker, mc.ClientID)
		if err != nil {
			_ = sinks.Close()
			return nil, err
		}
		bus := mqtt.NewBus(client, mqtt.WithTopic(mc.Topic), mqtt.WithQoS(mc.QoS))
		sinks.add(bus, func() error {
			client.Disconnect(250)
			return nil
		})
		logger.Info("publishing events to mqtt", "broker", mc.Broker, "topic", mc.Topic)
	}

	return sinks, nil
}
