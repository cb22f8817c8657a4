package telemetry

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/donaldgifford/avito-client/internal/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSetup_Disabled(t *testing.T) {
	t.Parallel()

	p, err := Setup(t.Context(), &config.TracingConfig{}, discardLogger())
	require.NoError(t, err)

	_, ok := p.Tracer.(tracenoop.TracerProvider)
	assert.True(t, ok, "disabled tracing should yield a noop tracer provider")
	assert.NoError(t, p.Shutdown(t.Context()))
}

func TestSetup_EnabledTracesOnly(t *testing.T) {
	cfg := &config.TracingConfig{
		Enabled:     true,
		Endpoint:    "127.0.0.1:4317",
		Insecure:    true,
		SampleRatio: 1,
		ServiceName: "avito-test",
	}

	p, err := Setup(t.Context(), cfg, discardLogger())
	require.NoError(t, err)

	_, ok := p.Tracer.(*sdktrace.TracerProvider)
	assert.True(t, ok)
	assert.Len(t, p.shutdown, 1)

	ctx, cancel := context.WithTimeout(t.Context(), time.Second)
	defer cancel()
	assert.NoError(t, p.Shutdown(ctx))
}

func TestSampler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ratio float64
		want  string
	}{
		{name: "always", ratio: 1, want: "AlwaysOnSampler"},
		{name: "above one", ratio: 2, want: "AlwaysOnSampler"},
		{name: "never", ratio: 0, want: "AlwaysOffSampler"},
		{name: "ratio", ratio: 0.25, want: "TraceIDRatioBased{0.25}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Contains(t, Sampler(tt.ratio).Description(), tt.want)
		})
	}
}
