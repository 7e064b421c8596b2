package polyline

import (
	"math"
	"testing"

	"github.com/mapsplatform/googlemaps/pkg/maps"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		encoded  string
		expected []maps.LatLng
	}{
		{
			name:     "single point",
			encoded:  "_p~iF~ps|U",
			expected: []maps.LatLng{{Lat: 38.5, Lng: -120.2}},
		},
		{
			name:    "reference example",
			encoded: "_p~iF~ps|U_ulLnnqC_mqNvxq`@",
			expected: []maps.LatLng{
				{Lat: 38.5, Lng: -120.2},
				{Lat: 40.7, Lng: -120.95},
				{Lat: 43.252, Lng: -126.453},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.encoded)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %d points, got %d", len(tt.expected), len(got))
			}
			for i := range got {
				if !near(got[i], tt.expected[i], 1e-6) {
					t.Errorf("point %d: expected %+v, got %+v", i, tt.expected[i], got[i])
				}
			}
		})
	}
}

func TestDecode_Empty(t *testing.T) {
	got, err := Decode("")
	if err != nil || got != nil {
		t.Errorf("expected nil, nil; got %v, %v", got, err)
	}
}

func TestDecode_Malformed(t *testing.T) {
	// Latitude without longitude, truncated longitude, byte below the alphabet.
	for _, in := range []string{"_p~iF", "_p~iF~ps|", "_p~iF~ps|U\x01"} {
		if _, err := Decode(in); err != ErrMalformed {
			t.Errorf("Decode(%q): expected ErrMalformed, got %v", in, err)
		}
	}
}

func TestEncode(t *testing.T) {
	points := []maps.LatLng{
		{Lat: 38.5, Lng: -120.2},
		{Lat: 40.7, Lng: -120.95},
		{Lat: 43.252, Lng: -126.453},
	}
	if got := Encode(points); got != "_p~iF~ps|U_ulLnnqC_mqNvxq`@" {
		t.Errorf("unexpected encoding %q", got)
	}
	if got := Encode(nil); got != "" {
		t.Errorf("expected empty string for nil points, got %q", got)
	}
}

func TestRoundTrip(t *testing.T) {
	points := []maps.LatLng{
		{Lat: 52.37403, Lng: 4.88969},
		{Lat: 52.37234, Lng: 4.89231},
		{Lat: -33.86705, Lng: 151.19574},
	}

	decoded, err := Decode(Encode(points))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range points {
		if !near(decoded[i], points[i], 1e-5) {
			t.Errorf("point %d lost precision: expected %+v, got %+v", i, points[i], decoded[i])
		}
	}
}

func TestLength(t *testing.T) {
	tests := []struct {
		name      string
		points    []maps.LatLng
		meters    float64
		tolerance float64
	}{
		{"empty", nil, 0, 0},
		{"single point", []maps.LatLng{{Lat: 52, Lng: 4}}, 0, 0},
		{"one degree of latitude", []maps.LatLng{{Lat: 0, Lng: 0}, {Lat: 1, Lng: 0}}, 111195, 100},
		{"Amsterdam to Utrecht", []maps.LatLng{{Lat: 52.3676, Lng: 4.9041}, {Lat: 52.0907, Lng: 5.1214}}, 34000, 2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Length(tt.points)
			if math.Abs(got-tt.meters) > tt.tolerance {
				t.Errorf("expected ~%.0fm (±%.0f), got %.0fm", tt.meters, tt.tolerance, got)
			}
		})
	}
}

func near(a, b maps.LatLng, tolerance float64) bool {
	return math.Abs(a.Lat-b.Lat) <= tolerance && math.Abs(a.Lng-b.Lng) <= tolerance
}

func BenchmarkDecode(b *testing.B) {
	encoded := "_p~iF~ps|U_ulLnnqC_mqNvxq`@"
	for i := 0; i < b.N; i++ {
		_, _ = Decode(encoded)
	}
}
