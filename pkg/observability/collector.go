package observability

import (
	"context"
	"time"

	"github.com/aretw0/stepline/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Inspector is anything that can report its queues, such as *stepline.Engine.
type Inspector interface {
	Inspect(ctx context.Context) (domain.Inspection, error)
}

// QueueCollector is a prometheus.Collector reading an Inspection per scrape.
type QueueCollector struct {
	source Inspector

	figures     *prometheus.Desc
	checkpoints *prometheus.Desc
	travelling  *prometheus.Desc
	paused      *prometheus.Desc
	helper      *prometheus.Desc
	speed       *prometheus.Desc
	frame       *prometheus.Desc
}

// NewQueueCollector creates a collector over source.
func NewQueueCollector(source Inspector) *QueueCollector {
	labels := []string{"timeline"}
	return &QueueCollector{
		source:      source,
		figures:     prometheus.NewDesc("stepline_queue_figures", "Figures held by each tier.", []string{"timeline", "tier"}, nil),
		checkpoints: prometheus.NewDesc("stepline_checkpoints", "Committed checkpoints available for rewind.", labels, nil),
		travelling:  prometheus.NewDesc("stepline_travelling_figures", "Figures with an in-flight travel.", labels, nil),
		paused:      prometheus.NewDesc("stepline_paused", "1 when playback is paused.", labels, nil),
		helper:      prometheus.NewDesc("stepline_helper_active", "1 when playback reads from the helper tier.", labels, nil),
		speed:       prometheus.NewDesc("stepline_speed", "Current speed multiplier.", labels, nil),
		frame:       prometheus.NewDesc("stepline_frame", "Frames begun by the renderer.", labels, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *QueueCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.figures
	ch <- c.checkpoints
	ch <- c.travelling
	ch <- c.paused
	ch <- c.helper
	ch <- c.speed
	ch <- c.frame
}

// Collect implements prometheus.Collector.
func (c *QueueCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	in, err := c.source.Inspect(ctx)
	if err != nil {
		ch <- prometheus.NewInvalidMetric(c.figures, err)
		return
	}

	name := in.Name
	for tier, lanes := range map[string]domain.Lanes{
		"steps":    in.Steps,
		"instant":  in.Instant,
		"helper":   in.Helper,
		"snapshot": in.Snapshot,
	} {
		ch <- prometheus.MustNewConstMetric(c.figures, prometheus.GaugeValue, float64(len(lanes.Figures)), name, tier)
	}
	ch <- prometheus.MustNewConstMetric(c.checkpoints, prometheus.GaugeValue, float64(len(in.Checkpoints)), name)
	ch <- prometheus.MustNewConstMetric(c.travelling, prometheus.GaugeValue, float64(len(in.Travelling)), name)
	ch <- prometheus.MustNewConstMetric(c.paused, prometheus.GaugeValue, boolValue(in.Paused), name)
	ch <- prometheus.MustNewConstMetric(c.helper, prometheus.GaugeValue, boolValue(in.UsingHelper), name)
	ch <- prometheus.MustNewConstMetric(c.speed, prometheus.GaugeValue, in.Speed, name)
	ch <- prometheus.MustNewConstMetric(c.frame, prometheus.CounterValue, float64(in.Frame), name)
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
