package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// BusinessMetrics records order status operations.
type BusinessMetrics interface {
	// RecordOperation counts an operation such as "change_payment_status" by outcome.
	RecordOperation(ctx context.Context, operation, status string)

	// RecordDuration records the operation duration in seconds.
	RecordDuration(ctx context.Context, operation string, duration time.Duration, status string)

	// RecordResolution counts the composite order status an operation resolved to.
	RecordResolution(ctx context.Context, operation, orderStatus string)
}

type businessMetrics struct {
	operationCounter  metric.Int64Counter
	durationHisto     metric.Float64Histogram
	resolutionCounter metric.Int64Counter
}

// NewBusinessMetrics creates meters prefixed with namespace, e.g. "shop_operations_total".
func NewBusinessMetrics(meterProvider metric.MeterProvider, namespace string) (BusinessMetrics, error) {
	meter := meterProvider.Meter(namespace)

	operationCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_operations_total", namespace),
		metric.WithDescription("Total number of order status operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	durationHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_operation_duration_seconds", namespace),
		metric.WithDescription("Duration of order status operations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	resolutionCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_order_status_resolutions_total", namespace),
		metric.WithDescription("Composite order statuses produced by status changes"),
		metric.WithUnit("{resolution}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resolution counter: %w", err)
	}

	return &businessMetrics{
		operationCounter:  operationCounter,
		durationHisto:     durationHisto,
		resolutionCounter: resolutionCounter,
	}, nil
}

func (b *businessMetrics) RecordOperation(ctx context.Context, operation, status string) {
	b.operationCounter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("status", status),
		),
	)
}

func (b *businessMetrics) RecordDuration(ctx context.Context, operation string, duration time.Duration, status string) {
	b.durationHisto.Record(ctx, duration.Seconds(),
		metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("status", status),
		),
	)
}

func (b *businessMetrics) RecordResolution(ctx context.Context, operation, orderStatus string) {
	b.resolutionCounter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("order_status", orderStatus),
		),
	)
}

// NoOpBusinessMetrics is used when metrics are disabled and in tests.
type NoOpBusinessMetrics struct{}

func NewNoOpBusinessMetrics() BusinessMetrics {
	return &NoOpBusinessMetrics{}
}

func (n *NoOpBusinessMetrics) RecordOperation(context.Context, string, string) {}

func (n *NoOpBusinessMetrics) RecordDuration(context.Context, string, time.Duration, string) {}

func (n *NoOpBusinessMetrics) RecordResolution(context.Context, string, string) {}
