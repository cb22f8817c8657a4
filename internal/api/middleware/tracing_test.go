package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func newTracedEcho(t *testing.T) (*echo.Echo, *tracetest.SpanRecorder) {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })

	e := echo.New()
	e.Use(Tracing(tp))
	return e, recorder
}

func TestTracing_ServerSpan(t *testing.T) {
	t.Parallel()

	e, recorder := newTracedEcho(t)

	var handlerSpan trace.SpanContext
	e.POST("/api/v1/webhook/:client_id", func(c echo.Context) error {
		handlerSpan = trace.SpanContextFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhook/client-1", http.NoBody)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	e.ServeHTTP(httptest.NewRecorder(), req)

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	s := spans[0]
	assert.Equal(t, "POST /api/v1/webhook/:client_id", s.Name())
	assert.Equal(t, trace.SpanKindServer, s.SpanKind())
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", s.SpanContext().TraceID().String())
	assert.Equal(t, "00f067aa0ba902b7", s.Parent().SpanID().String())
	assert.Contains(t, s.Attributes(), attribute.Int("http.response.status_code", http.StatusOK))
	assert.Equal(t, s.SpanContext().SpanID(), handlerSpan.SpanID())
}

func TestTracing_ErrorStatus(t *testing.T) {
	t.Parallel()

	e, recorder := newTracedEcho(t)
	e.GET("/api/self", func(_ echo.Context) error {
		return echo.NewHTTPError(http.StatusBadGateway, "upstream failed")
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/self", http.NoBody))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Len(t, spans[0].Events(), 1, "error recorded as span event")
}

func TestTracing_SkipsProbes(t *testing.T) {
	t.Parallel()

	e, recorder := newTracedEcho(t)
	e.GET("/healthz", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody))
	assert.Empty(t, recorder.Ended())
}
