package registry

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// otelMetrics holds the metric instruments for the registry. They are
// created once in New and reused for all operations.
type otelMetrics struct {
	// registrations increments for each successful registration
	registrations metric.Int64Counter

	// lookups increments for each schema lookup
	lookups metric.Int64Counter
}

// newOTelMetrics creates the registry's metric instruments.
func newOTelMetrics(meter metric.Meter) (*otelMetrics, error) {
	metrics := &otelMetrics{}
	var err error

	metrics.registrations, err = meter.Int64Counter(
		"funcschema.registry.registrations",
		metric.WithDescription("Number of functions registered"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create registrations counter: %w", err)
	}

	metrics.lookups, err = meter.Int64Counter(
		"funcschema.registry.lookups",
		metric.WithDescription("Number of schema lookups"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create lookups counter: %w", err)
	}

	return metrics, nil
}
