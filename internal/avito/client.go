// Package avito provides a typed client for the Avito REST API: method
// descriptors, a dispatcher that maps them to HTTP calls, and a bearer token
// lifecycle that acquires tokens lazily and refreshes them on rejection.
package avito

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"github.com/donaldgifford/avito-client/internal/metrics"
)

const tracerName = "github.com/donaldgifford/avito-client/internal/avito"

// DefaultBaseURL is the production API root.
const DefaultBaseURL = "https://api.avito.ru"

// Client executes method descriptors against the Avito API. It is safe for
// concurrent use; concurrent calls share one token and one connection pool.
type Client struct {
	baseURL      string
	client       *http.Client
	log          *slog.Logger
	tracer       trace.Tracer
	meters       metric.MeterProvider
	inst         instruments
	rateLimiter  *RateLimiter
	clientID     string
	clientSecret string
	proactive    bool
	nowFunc      func() time.Time

	mu     sync.RWMutex
	token  *Token
	state  TokenState
	flight singleflight.Group

	selfMu sync.Mutex
	self   *UserInfoSelf
	cache  SelfInfoCache
}

// Option configures the Client.
type Option func(*Client)

// WithBaseURL overrides the default API root.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithToken starts the client with an existing access token of unknown
// expiry.
func WithToken(accessToken string) Option {
	return func(c *Client) {
		if accessToken == "" {
			return
		}
		c.token = &Token{AccessToken: accessToken, TokenType: "Bearer"}
		c.state = TokenHeld
	}
}

// WithCredentials sets the client id and secret used for token grants.
func WithCredentials(clientID, clientSecret string) Option {
	return func(c *Client) {
		c.clientID = clientID
		c.clientSecret = clientSecret
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// WithTracerProvider sets the provider spans are created from. The default
// is the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) {
		c.tracer = tp.Tracer(tracerName)
	}
}

// WithMeterProvider sets the provider OpenTelemetry instruments are created
// from. The default is the global provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *Client) {
		c.meters = mp
	}
}

// WithRateLimiter makes every API request wait on r first. Token exchanges
// are not rate limited.
func WithRateLimiter(r *RateLimiter) Option {
	return func(c *Client) {
		c.rateLimiter = r
	}
}

// WithSelfInfoCache injects the store consulted by SelfInfo. Clients that
// share a cache and a client id share self info.
func WithSelfInfoCache(cache SelfInfoCache) Option {
	return func(c *Client) {
		c.cache = cache
	}
}

// WithProactiveRefresh controls whether a token known to be expired is
// renewed before use. It is on by default; when off, expiry is only
// discovered from a rejected call.
func WithProactiveRefresh(enabled bool) Option {
	return func(c *Client) {
		c.proactive = enabled
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) Option {
	return func(c *Client) {
		c.nowFunc = f
	}
}

// New creates a Client. Without WithToken the first call acquires a token
// using the credentials from WithCredentials.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		client:    &http.Client{Timeout: 30 * time.Second},
		log:       slog.New(slog.DiscardHandler),
		tracer:    otel.Tracer(tracerName),
		proactive: true,
		nowFunc:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cache == nil {
		c.cache = NewMemoryCache()
	}
	if c.meters == nil {
		c.meters = otel.GetMeterProvider()
	}
	c.inst = newInstruments(c.meters)
	return c
}

// ClientID returns the configured client id.
func (c *Client) ClientID() string {
	return c.clientID
}

// Call executes m and decodes the response into T. Decoded objects are bound
// to c. When the service rejects the bearer token, Call refreshes it and
// repeats the identical request once; the second outcome is returned as is.
// Token endpoint descriptors are sent without a bearer token and the token
// they return becomes the held one.
func Call[T any](ctx context.Context, c *Client, m Method[T]) (T, error) {
	var zero T

	if g, ok := any(m).(grant); ok {
		return callGrant(ctx, c, m, g.grantKind())
	}

	token, err := c.ensureToken(ctx)
	if err != nil {
		return zero, err
	}

	result, err := callOnce(ctx, c, m, token)
	if err == nil || !isTokenRejection(err) {
		return result, err
	}

	c.log.Warn("token rejected, refreshing and retrying",
		"operation", operationName(m),
		"error", err,
	)
	metrics.AvitoTokenRetriesTotal.Inc()
	c.markStale(token, TokenInvalidated)

	fresh, rerr := c.renew(ctx, token, TokenRefreshing)
	if rerr != nil {
		return zero, rerr
	}

	return callOnce(ctx, c, m, fresh.AccessToken)
}

func callOnce[T any](ctx context.Context, c *Client, m Method[T], token string) (T, error) {
	var out T

	op := operationName(m)
	ctx, span := c.tracer.Start(ctx, "avito."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", m.HTTPMethod()),
			attribute.String("avito.operation", op),
			attribute.String("avito.encoding", m.Encoding().String()),
		),
	)
	defer span.End()

	if _, isGrant := any(m).(grant); !isGrant && c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.AvitoDailyLimitHits.Inc()
			}
			span.SetStatus(codes.Error, "rate limited")
			return out, fmt.Errorf("rate limit: %w", err)
		}
		metrics.AvitoDailyUsage.Set(float64(c.rateLimiter.DailyCount()))
	}

	start := time.Now()
	err := c.roundTrip(ctx, m, token, &out)
	result := outcome(err)
	metrics.AvitoRequestDuration.
		WithLabelValues(op).
		Observe(time.Since(start).Seconds())
	metrics.AvitoAPICallsTotal.
		WithLabelValues(op, result).
		Inc()
	c.inst.recordRequest(ctx, op, result, time.Since(start))
	span.SetAttributes(attribute.String("avito.outcome", result))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, result)
		var zero T
		return zero, err
	}

	bindAll(c, &out)
	return out, nil
}

// roundTrip sends one request for m and decodes the response into out.
// An empty token sends no Authorization header.
func (c *Client) roundTrip(ctx context.Context, m endpoint, token string, out any) error {
	u := c.baseURL + "/" + strings.TrimLeft(m.Path(), "/")

	body, contentType, err := encodeBody(m)
	if err != nil {
		return fmt.Errorf("encoding %s body: %w", m.Encoding(), err)
	}

	req, err := http.NewRequestWithContext(ctx, m.HTTPMethod(), u, body)
	if err != nil {
		return fmt.Errorf("creating HTTP request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug("request",
		"client_id", c.clientID,
		"method", req.Method,
		"url", u,
		"encoding", m.Encoding(),
		"operation", operationName(m),
	)

	resp, err := c.client.Do(req)
	if err != nil {
		return &TransportError{Err: fmt.Errorf("executing request: %w", err)}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("reading response body: %w", err),
		}
	}

	c.log.Debug("response",
		"client_id", c.clientID,
		"status", resp.StatusCode,
		"bytes", len(data),
	)

	return decodeResponse(resp.StatusCode, data, out)
}

func operationName(m any) string {
	name := fmt.Sprintf("%T", m)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}

func outcome(err error) string {
	if err == nil {
		return "success"
	}
	var (
		apiErr       *APIError
		expiredErr   *ExpiredTokenError
		transportErr *TransportError
	)
	switch {
	case errors.As(err, &expiredErr):
		return "expired_token"
	case errors.As(err, &apiErr):
		return "api_error_" + strconv.Itoa(apiErr.StatusCode)
	case errors.As(err, &transportErr):
		return "transport_error"
	default:
		return "error"
	}
}
