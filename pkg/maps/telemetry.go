package maps

import (
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const instrumentationName = "github.com/mapsplatform/googlemaps/pkg/maps"

type clientMetrics struct {
	requests metric.Int64Counter
	duration metric.Float64Histogram
	inFlight metric.Int64UpDownCounter
}

func newClientMetrics(mp metric.MeterProvider) (*clientMetrics, error) {
	meter := mp.Meter(instrumentationName)

	requests, err := meter.Int64Counter(
		"googlemaps.client.requests",
		metric.WithDescription("Requests sent to Google Maps Platform endpoints"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram(
		"googlemaps.client.request.duration",
		metric.WithDescription("Duration of Google Maps Platform requests in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	inFlight, err := meter.Int64UpDownCounter(
		"googlemaps.client.requests_in_flight",
		metric.WithDescription("Requests currently awaiting a reply"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	return &clientMetrics{requests: requests, duration: duration, inFlight: inFlight}, nil
}

// noopMetrics cannot fail; it backs clients whose meter provider rejected
// the instrument definitions.
func noopMetrics() *clientMetrics {
	m, _ := newClientMetrics(noop.NewMeterProvider())
	return m
}
