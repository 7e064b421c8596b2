// Package maps holds what every Google Maps Platform API package shares: the
// HTTP client, the error type, the request lifecycle and common value types.
package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/mapsplatform/googlemaps/pkg/resilience"
)

const (
	// DefaultBaseURL serves Directions, Distance Matrix and Geocoding.
	DefaultBaseURL = "https://maps.googleapis.com"

	// DefaultRoadsBaseURL serves the Roads API.
	DefaultRoadsBaseURL = "https://roads.googleapis.com"

	// DefaultTimeout bounds a single HTTP attempt.
	DefaultTimeout = 10 * time.Second

	// RequestIDHeader carries the per-request correlation id.
	RequestIDHeader = "X-Request-Id"
)

// HTTPDoer is an interface for executing HTTP requests.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Host selects which Google host an endpoint lives on.
type Host int

const (
	HostMaps Host = iota
	HostRoads
)

// Endpoint is one HTTP GET resource of a Google Maps Platform API.
type Endpoint struct {
	API  API
	Host Host
	Path string
}

// ClientConfig holds configuration for the Google Maps Platform client.
type ClientConfig struct {
	// APIKey is sent as the key query parameter (required by Google).
	APIKey string `envconfig:"API_KEY"`

	// BaseURL is the maps.googleapis.com base URL (optional).
	BaseURL string `envconfig:"BASE_URL"`

	// RoadsBaseURL is the roads.googleapis.com base URL (optional).
	RoadsBaseURL string `envconfig:"ROADS_BASE_URL"`

	// HTTPClient overrides the transport for both hosts (optional).
	// If nil, each host gets a resilience.Transport.
	HTTPClient HTTPDoer `ignored:"true"`

	// Timeout is the per-attempt timeout (optional, defaults to 10s).
	Timeout time.Duration `envconfig:"TIMEOUT"`

	// MaxRetries enables bounded retries of 5xx and 429 replies in the
	// default transport. Zero sends every request once.
	MaxRetries uint64 `envconfig:"MAX_RETRIES"`

	// RequestsPerSecond enables a client-side token bucket when positive.
	RequestsPerSecond float64 `envconfig:"REQUESTS_PER_SECOND"`

	// Burst is the token bucket size (defaults to 1 when throttling).
	Burst int `envconfig:"BURST"`

	// Limiter replaces the limiter built from RequestsPerSecond and Burst.
	Limiter *rate.Limiter `ignored:"true"`

	// Registry receives the default transports for health tracking (optional).
	Registry *resilience.Registry `ignored:"true"`

	// TracerProvider and MeterProvider default to the otel globals.
	TracerProvider trace.TracerProvider `ignored:"true"`
	MeterProvider  metric.MeterProvider `ignored:"true"`

	// Logger for client operations. The zero value logs nothing.
	Logger zerolog.Logger `ignored:"true"`
}

// Client sends requests to Google Maps Platform. It is safe for concurrent
// use; the requests built on top of it are not.
type Client struct {
	apiKey       string
	baseURL      string
	roadsBaseURL string
	mapsHTTP     HTTPDoer
	roadsHTTP    HTTPDoer
	limiter      *rate.Limiter
	tracer       trace.Tracer
	propagator   propagation.TextMapPropagator
	metrics      *clientMetrics
	logger       zerolog.Logger
}

// NewClient creates a new client, filling unset configuration with defaults.
func NewClient(cfg ClientConfig) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	roadsBaseURL := strings.TrimRight(cfg.RoadsBaseURL, "/")
	if roadsBaseURL == "" {
		roadsBaseURL = DefaultRoadsBaseURL
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	mapsHTTP, roadsHTTP := cfg.HTTPClient, cfg.HTTPClient
	if cfg.HTTPClient == nil {
		mapsHTTP = newTransport("maps", timeout, cfg)
		roadsHTTP = newTransport("roads", timeout, cfg)
	}

	limiter := cfg.Limiter
	if limiter == nil && cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	tp := cfg.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	mp := cfg.MeterProvider
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	metrics, err := newClientMetrics(mp)
	if err != nil {
		cfg.Logger.Warn().Err(err).Msg("metric instruments unavailable, recording nothing")
		metrics = noopMetrics()
	}

	return &Client{
		apiKey:       cfg.APIKey,
		baseURL:      baseURL,
		roadsBaseURL: roadsBaseURL,
		mapsHTTP:     mapsHTTP,
		roadsHTTP:    roadsHTTP,
		limiter:      limiter,
		tracer:       tp.Tracer(instrumentationName),
		propagator:   otel.GetTextMapPropagator(),
		metrics:      metrics,
		logger:       cfg.Logger,
	}
}

func newTransport(name string, timeout time.Duration, cfg ClientConfig) *resilience.Transport {
	tc := resilience.DefaultTransportConfig(name)
	tc.Timeout = timeout
	tc.MaxRetries = cfg.MaxRetries
	tc.Registry = cfg.Registry
	return resilience.NewTransport(tc)
}

// APIKey returns the key sent with every request.
func (c *Client) APIKey() string {
	return c.apiKey
}

// Reply is the raw outcome of an HTTP exchange that reached the server.
type Reply struct {
	StatusCode int
	Body       []byte
}

// OK reports a 2xx status.
func (r *Reply) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Fetch sends GET endpoint?query and returns the reply without interpreting
// its status. Errors are always *Error of kind RateLimiterWait or RequestFailed.
func (c *Client) Fetch(ctx context.Context, ep Endpoint, query string) (*Reply, error) {
	requestID := uuid.NewString()
	logger := c.logger.With().
		Str("api", string(ep.API)).
		Str("endpoint", ep.Path).
		Str("request_id", requestID).
		Logger()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			logger.Warn().Err(err).Msg("rate limiter wait abandoned")
			return nil, &Error{API: ep.API, Kind: KindRateLimiterWait, Err: err}
		}
	}

	base, doer := c.baseURL, c.mapsHTTP
	if ep.Host == HostRoads {
		base, doer = c.roadsBaseURL, c.roadsHTTP
	}

	ctx, span := c.tracer.Start(ctx, "GET "+ep.Path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", http.MethodGet),
			attribute.String("server.address", base),
			attribute.String("url.path", ep.Path),
			attribute.String("maps.api", string(ep.API)),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	attrs := []attribute.KeyValue{
		attribute.String("maps.api", string(ep.API)),
		attribute.String("url.path", ep.Path),
	}
	c.metrics.inFlight.Add(ctx, 1, metric.WithAttributes(attrs...))
	defer c.metrics.inFlight.Add(ctx, -1, metric.WithAttributes(attrs...))
	start := time.Now()

	reply, err := c.exchange(ctx, doer, base+ep.Path+"?"+query, requestID)

	outcome := "error"
	if err == nil {
		outcome = "reply"
		attrs = append(attrs, attribute.Int("http.response.status_code", reply.StatusCode))
		span.SetAttributes(
			attribute.Int("http.response.status_code", reply.StatusCode),
			attribute.Int("http.response.body.size", len(reply.Body)),
		)
		if !reply.OK() {
			span.SetStatus(codes.Error, http.StatusText(reply.StatusCode))
		}
	} else {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
	}
	attrs = append(attrs, attribute.String("outcome", outcome))
	c.metrics.requests.Add(ctx, 1, metric.WithAttributes(attrs...))
	c.metrics.duration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(attrs...))

	if err != nil {
		logger.Warn().Err(err).Dur("elapsed", time.Since(start)).Msg("request to google maps failed")
		return nil, &Error{API: ep.API, Kind: KindRequestFailed, Err: err}
	}

	logger.Debug().
		Int("status", reply.StatusCode).
		Int("bytes", len(reply.Body)).
		Dur("elapsed", time.Since(start)).
		Msg("received reply from google maps")
	return reply, nil
}

func (c *Client) exchange(ctx context.Context, doer HTTPDoer, rawURL, requestID string) (*Reply, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	c.propagator.Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := doer.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return &Reply{StatusCode: resp.StatusCode, Body: body}, nil
}

// DecodeJSON unmarshals body into v, reporting failures as a Decode error.
func DecodeJSON(api API, body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return NewDecodeError(api, err)
	}
	return nil
}
