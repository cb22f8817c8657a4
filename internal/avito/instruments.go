package avito

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// instruments are the OpenTelemetry counterparts of the Prometheus
// collectors, exported when an OTLP meter provider is installed.
type instruments struct {
	requests  metric.Int64Counter
	duration  metric.Float64Histogram
	exchanges metric.Int64Counter
}

func newInstruments(mp metric.MeterProvider) instruments {
	m := mp.Meter(tracerName)

	requests, err := m.Int64Counter("avito.client.requests",
		metric.WithDescription("API requests by operation and outcome."),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		otel.Handle(err)
	}

	duration, err := m.Float64Histogram("avito.client.request.duration",
		metric.WithDescription("API request latency."),
		metric.WithUnit("s"),
	)
	if err != nil {
		otel.Handle(err)
	}

	exchanges, err := m.Int64Counter("avito.client.token_exchanges",
		metric.WithDescription("Token endpoint exchanges by grant and result."),
		metric.WithUnit("{exchange}"),
	)
	if err != nil {
		otel.Handle(err)
	}

	return instruments{requests: requests, duration: duration, exchanges: exchanges}
}

func (i instruments) recordRequest(ctx context.Context, op, outcome string, elapsed time.Duration) {
	opAttr := attribute.String("avito.operation", op)
	i.requests.Add(ctx, 1, metric.WithAttributes(opAttr, attribute.String("avito.outcome", outcome)))
	i.duration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(opAttr))
}

func (i instruments) recordExchange(ctx context.Context, kind, result string) {
	i.exchanges.Add(ctx, 1, metric.WithAttributes(
		attribute.String("avito.token_kind", kind),
		attribute.String("avito.result", result),
	))
}
