package telemetry

import (
	"context"
	"time"

	"github.com/andromeda/ordersync/internal/domain/delivery"
	"go.opentelemetry.io/otel/metric"
)

// DeliveryMetrics counts handled partner webhook events and their latency
type DeliveryMetrics struct {
	events   *Counter
	duration *Histogram
}

// NewDeliveryMetrics creates the webhook event instruments on meter
func NewDeliveryMetrics(meter metric.Meter) (*DeliveryMetrics, error) {
	events, err := NewCounter(meter,
		"delivery_webhook_events_total",
		"Partner webhook events handled, by kind and result",
		"{event}",
	)
	if err != nil {
		return nil, err
	}

	duration, err := NewHistogram(meter, HistogramOpts{
		Name:        "delivery_webhook_event_duration_seconds",
		Description: "Time spent handling a partner webhook event",
		Unit:        "s",
		Boundaries:  EventDurationBuckets,
	})
	if err != nil {
		return nil, err
	}

	return &DeliveryMetrics{events: events, duration: duration}, nil
}

// RecordEvent records one handled event
func (m *DeliveryMetrics) RecordEvent(ctx context.Context, kind delivery.EventKind, result string, elapsed time.Duration) {
	m.events.Inc(ctx, AttrEventKind.String(kind.String()), AttrEventResult.String(result))
	m.duration.RecordDuration(ctx, elapsed, AttrEventKind.String(kind.String()))
}
