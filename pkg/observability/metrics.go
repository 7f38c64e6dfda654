package observability

import (
	"context"
	"net/http"

	"github.com/aretw0/stepline/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics counts engine events. It implements ports.EventBus.
type Metrics struct {
	events *prometheus.CounterVec
}

// NewMetrics registers the event counter on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "stepline",
				Name:      "events_total",
				Help:      "Draw and playback events published by the engine.",
			},
			[]string{"timeline", "type"},
		),
	}
	if err := reg.Register(m.events); err != nil {
		return nil, err
	}
	return m, nil
}

// Publish records the event.
func (m *Metrics) Publish(_ context.Context, event domain.Event) error {
	m.events.WithLabelValues(event.Timeline, string(event.Type)).Inc()
	return nil
}

// Handler serves the metrics gathered by g in the text exposition format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
