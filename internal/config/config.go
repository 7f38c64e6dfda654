// Package config loads the stepline player configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds player settings. Flags in cmd/stepline override file values.
type Config struct {
	FPS          int     `yaml:"fps"`
	StepInterval int     `yaml:"step_interval"`
	Speed        float64 `yaml:"speed"`
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	LogLevel     string  `yaml:"log_level"`

	HTTP    HTTPConfig    `yaml:"http"`
	Metrics MetricsConfig `yaml:"metrics"`
	Events  EventsConfig  `yaml:"events"`
}

// HTTPConfig enables the control API when Addr is set.
type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

// MetricsConfig enables the Prometheus endpoint when Addr is set.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// EventsConfig lists the optional external event sinks.
type EventsConfig struct {
	Redis RedisConfig `yaml:"redis"`
	MQTT  MQTTConfig  `yaml:"mqtt"`
}

// RedisConfig enables the Redis event bus when Addr is set.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Channel  string `yaml:"channel"`
	ListKey  string `yaml:"list_key"`
	ListSize int64  `yaml:"list_size"`
}

// MQTTConfig enables the MQTT event bus when Broker is set.
type MQTTConfig struct {
	Broker   string `yaml:"broker"`
	ClientID string `yaml:"client_id"`
	Topic    string `yaml:"topic"`
	QoS      byte   `yaml:"qos"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		FPS:          30,
		StepInterval: 12,
		Speed:        1,
		Width:        80,
		Height:       24,
		LogLevel:     "info",
		Events: EventsConfig{
			Redis: RedisConfig{
				Channel:  "stepline:events",
				ListKey:  "stepline:events:log",
				ListSize: 1000,
			},
			MQTT: MQTTConfig{
				ClientID: "stepline",
				Topic:    "stepline/events",
			},
		},
	}
}

// Load reads a YAML file over the defaults. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks the numeric settings.
func (c Config) Validate() error {
	var errs []error
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", c.FPS))
	}
	if c.StepInterval <= 0 {
		errs = append(errs, fmt.Errorf("step_interval must be positive, got %d", c.StepInterval))
	}
	if c.Speed <= 0 {
		errs = append(errs, fmt.Errorf("speed must be positive, got %v", c.Speed))
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("surface must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.Events.MQTT.QoS > 2 {
		errs = append(errs, fmt.Errorf("mqtt qos must be 0, 1 or 2, got %d", c.Events.MQTT.QoS))
	}
	return errors.Join(errs...)
}
