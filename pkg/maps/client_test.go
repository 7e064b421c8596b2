package maps_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"golang.org/x/time/rate"

	"github.com/mapsplatform/googlemaps/pkg/maps"
	"github.com/mapsplatform/googlemaps/pkg/resilience"
)

var directionsEndpoint = maps.Endpoint{API: maps.APIDirections, Host: maps.HostMaps, Path: "/maps/api/directions/json"}

func TestClient_FetchRoutesByHost(t *testing.T) {
	var mapsPath, roadsPath, requestID string
	mapsServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mapsPath = r.URL.Path + "?" + r.URL.RawQuery
		requestID = r.Header.Get(maps.RequestIDHeader)
		_, _ = w.Write([]byte(`{"status":"OK"}`))
	}))
	defer mapsServer.Close()
	roadsServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		roadsPath = r.URL.Path
		w.WriteHeader(http.StatusForbidden)
	}))
	defer roadsServer.Close()

	client := maps.NewClient(maps.ClientConfig{
		APIKey:       "test-key",
		BaseURL:      mapsServer.URL + "/",
		RoadsBaseURL: roadsServer.URL,
		Logger:       zerolog.Nop(),
	})

	reply, err := client.Fetch(context.Background(), directionsEndpoint, "key=test-key&origin=A")
	require.NoError(t, err)
	assert.True(t, reply.OK())
	assert.JSONEq(t, `{"status":"OK"}`, string(reply.Body))
	assert.Equal(t, "/maps/api/directions/json?key=test-key&origin=A", mapsPath)
	assert.Len(t, requestID, 36)

	reply, err = client.Fetch(context.Background(), maps.Endpoint{API: maps.APIRoads, Host: maps.HostRoads, Path: "/v1/nearestRoads"}, "points=1,2")
	require.NoError(t, err)
	assert.False(t, reply.OK())
	assert.Equal(t, http.StatusForbidden, reply.StatusCode)
	assert.Equal(t, "/v1/nearestRoads", roadsPath)
}

func TestClient_FetchConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	client := maps.NewClient(maps.ClientConfig{BaseURL: url, Timeout: time.Second})

	_, err := client.Fetch(context.Background(), directionsEndpoint, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, maps.KindRequestFailed)
	assert.ErrorIs(t, err, maps.ErrTransport)
}

func TestClient_RateLimiterWaitCanceled(t *testing.T) {
	client := maps.NewClient(maps.ClientConfig{
		BaseURL: "http://127.0.0.1:1",
		Limiter: rate.NewLimiter(rate.Every(time.Hour), 1),
	})
	// Drain the only token.
	_, _ = client.Fetch(context.Background(), directionsEndpoint, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Fetch(ctx, directionsEndpoint, "")
	assert.ErrorIs(t, err, maps.KindRateLimiterWait)
}

func TestClient_CustomHTTPClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := maps.NewClient(maps.ClientConfig{BaseURL: server.URL, HTTPClient: server.Client()})

	reply, err := client.Fetch(context.Background(), directionsEndpoint, "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, reply.StatusCode)
}

func TestClient_RegistersTransports(t *testing.T) {
	registry := resilience.NewRegistry()
	_ = maps.NewClient(maps.ClientConfig{Registry: registry})

	assert.Equal(t, 2, registry.Len())
	assert.NotNil(t, registry.Health("maps"))
	assert.NotNil(t, registry.Health("roads"))
}

func TestClient_RecordsSpanAndMetrics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	defer func() { _ = tp.Shutdown(context.Background()) }()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	client := maps.NewClient(maps.ClientConfig{
		BaseURL:        server.URL,
		TracerProvider: tp,
		MeterProvider:  mp,
	})

	_, err := client.Fetch(context.Background(), directionsEndpoint, "origin=A")
	require.NoError(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /maps/api/directions/json", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	names := map[string]bool{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			names[m.Name] = true
			if m.Name == "googlemaps.client.requests" {
				sum, ok := m.Data.(metricdata.Sum[int64])
				require.True(t, ok)
				require.Len(t, sum.DataPoints, 1)
				assert.Equal(t, int64(1), sum.DataPoints[0].Value)
			}
		}
	}
	assert.True(t, names["googlemaps.client.requests"])
	assert.True(t, names["googlemaps.client.request.duration"])
}

func TestDecodeJSON(t *testing.T) {
	var out struct {
		Status string `json:"status"`
	}
	require.NoError(t, maps.DecodeJSON(maps.APIGeocoding, []byte(`{"status":"OK"}`), &out))
	assert.Equal(t, "OK", out.Status)

	err := maps.DecodeJSON(maps.APIGeocoding, []byte(`{"status":`), &out)
	assert.ErrorIs(t, err, maps.ErrDecode)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("GOOGLE_MAPS_API_KEY", "env-key")
	t.Setenv("GOOGLE_MAPS_TIMEOUT", "3s")
	t.Setenv("GOOGLE_MAPS_MAX_RETRIES", "2")
	t.Setenv("GOOGLE_MAPS_REQUESTS_PER_SECOND", "12.5")
	t.Setenv("GOOGLE_MAPS_BURST", "4")

	cfg, err := maps.ConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, uint64(2), cfg.MaxRetries)
	assert.InDelta(t, 12.5, cfg.RequestsPerSecond, 1e-9)
	assert.Equal(t, 4, cfg.Burst)
	assert.Empty(t, cfg.BaseURL)
}

func TestConfigFromEnv_BadValue(t *testing.T) {
	t.Setenv("GOOGLE_MAPS_TIMEOUT", "soon")

	_, err := maps.ConfigFromEnv()
	assert.Error(t, err)
}
