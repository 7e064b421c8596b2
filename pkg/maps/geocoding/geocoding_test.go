package geocoding_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapsplatform/googlemaps/pkg/maps"
	"github.com/mapsplatform/googlemaps/pkg/maps/geocoding"
)

func newClient(baseURL string) *maps.Client {
	return maps.NewClient(maps.ClientConfig{
		APIKey:  "mock123",
		BaseURL: baseURL,
		Logger:  zerolog.Nop(),
	})
}

// fixtureServer serves a testdata file and records the last query it saw.
func fixtureServer(t *testing.T, name string) (*httptest.Server, *url.Values) {
	t.Helper()
	body, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)

	var seen url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/maps/api/geocode/json", r.URL.Path)
		seen = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	t.Cleanup(server.Close)
	return server, &seen
}

func TestForward_RequiresAddressOrComponents(t *testing.T) {
	r := geocoding.NewForwardRequest(newClient("")).WithAddress("   ")

	err := r.Validate()
	require.ErrorIs(t, err, maps.KindAddressOrComponentsRequired)
	assert.Contains(t, err.Error(), "Google Maps Geocoding API client: Forward geocoding requests must be for an address or specific components.")
	assert.Equal(t, maps.PhaseFailed, r.Phase())

	r.WithComponents(geocoding.Component{Type: geocoding.ComponentCountry, Value: "US"})
	assert.Equal(t, maps.PhaseFailed, r.Phase())
	assert.ErrorIs(t, r.Validate(), maps.KindRequestAlreadyExecuted)

	fresh := geocoding.NewForwardRequest(newClient("")).
		WithComponents(geocoding.Component{Type: geocoding.ComponentCountry, Value: "US"})
	assert.NoError(t, fresh.Validate())
}

func TestForward_Query(t *testing.T) {
	tag, err := maps.ParseLanguage("en")
	require.NoError(t, err)
	region, err := maps.ParseRegion("us")
	require.NoError(t, err)

	r := geocoding.NewForwardRequest(newClient("")).
		WithAddress("1600 Amphitheatre Parkway").
		WithComponents(
			geocoding.Component{Type: geocoding.ComponentPostalCode, Value: "94043"},
			geocoding.Component{Type: geocoding.ComponentCountry, Value: "US"},
		).
		WithBounds(maps.Bounds{
			Northeast: maps.LatLng{Lat: 37.5, Lng: -122},
			Southwest: maps.LatLng{Lat: 37.3, Lng: -122.2},
		}).
		WithLanguage(tag).
		WithRegion(region)

	require.NoError(t, r.Validate())
	require.NoError(t, r.Build())

	q, err := url.ParseQuery(r.Query())
	require.NoError(t, err)
	assert.Equal(t, "mock123", q.Get("key"))
	assert.Equal(t, "1600 Amphitheatre Parkway", q.Get("address"))
	assert.Equal(t, "postal_code:94043|country:US", q.Get("components"))
	assert.Equal(t, "37.3,-122.2|37.5,-122", q.Get("bounds"))
	assert.Equal(t, "en", q.Get("language"))
	assert.Equal(t, "us", q.Get("region"))
}

func TestForward_Execute(t *testing.T) {
	server, seen := fixtureServer(t, "geocode_forward.json")

	resp, err := geocoding.NewForwardRequest(newClient(server.URL)).
		WithAddress("1600 Amphitheatre Parkway, Mountain View, CA").
		Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1600 Amphitheatre Parkway, Mountain View, CA", seen.Get("address"))

	require.Len(t, resp.Results, 1)
	result := resp.Results[0]
	assert.Equal(t, "ChIJ2eUgeAK6j4ARbn5u_wAGqWA", result.PlaceID)
	assert.Equal(t, []maps.PlaceType{maps.PlaceTypeStreetAddress}, result.Types)
	assert.Equal(t, geocoding.LocationTypeRooftop, result.Geometry.LocationType)
	assert.Nil(t, result.Geometry.Bounds)
	assert.InDelta(t, 37.4224764, result.Geometry.Location.Lat, 1e-9)
	assert.False(t, result.PartialMatch)
	require.NotNil(t, result.PlusCode)
	assert.Equal(t, "849VCWC8+W5", result.PlusCode.GlobalCode)

	postal, ok := result.Component(maps.PlaceTypePostalCode)
	require.True(t, ok)
	assert.Equal(t, "94043", postal.LongName)

	country, ok := result.Component(maps.PlaceTypeCountry)
	require.True(t, ok)
	assert.Equal(t, "US", country.ShortName)

	_, ok = result.Component(maps.PlaceTypeSublocality)
	assert.False(t, ok)
}

func TestReverse_Execute(t *testing.T) {
	server, seen := fixtureServer(t, "geocode_reverse.json")

	ll, err := maps.NewLatLng(40.714224, -73.961452)
	require.NoError(t, err)

	r := geocoding.NewReverseRequest(newClient(server.URL), ll).
		WithResultTypes(maps.PlaceTypeSublocality, maps.PlaceTypeLocality).
		WithLocationTypes(geocoding.LocationTypeApproximate, geocoding.LocationTypeGeometricCenter)
	resp, err := r.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "40.714224,-73.961452", seen.Get("latlng"))
	assert.Equal(t, "sublocality|locality", seen.Get("result_type"))
	assert.Equal(t, "APPROXIMATE|GEOMETRIC_CENTER", seen.Get("location_type"))
	assert.False(t, seen.Has("language"))

	require.NotNil(t, resp.PlusCode)
	assert.Equal(t, "87G8P27Q+MC", resp.PlusCode.GlobalCode)

	result := resp.Results[0]
	assert.True(t, result.PartialMatch)
	assert.Equal(t, []string{"Brooklyn", "Kings County"}, result.PostcodeLocalities)
	require.NotNil(t, result.Geometry.Bounds)
	assert.Equal(t, geocoding.LocationTypeApproximate, result.Geometry.LocationType)

	_, err = r.Get(context.Background())
	assert.ErrorIs(t, err, maps.KindRequestAlreadyExecuted)
}

func TestExecute_ServiceErrors(t *testing.T) {
	tests := []struct {
		fixture string
		status  string
		message string
	}{
		{"geocode_zero_results.json", "ZERO_RESULTS", "Zero results. The request was valid but no results were found."},
		{"geocode_invalid_request.json", "INVALID_REQUEST", "Invalid request. Missing the 'address', 'components', 'latlng' or 'place_id' parameter."},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			server, _ := fixtureServer(t, tt.fixture)

			_, err := geocoding.NewForwardRequest(newClient(server.URL)).
				WithAddress("nowhere").
				Execute(context.Background())

			var mapsErr *maps.Error
			require.ErrorAs(t, err, &mapsErr)
			assert.ErrorIs(t, err, maps.ErrServiceStatus)
			assert.Equal(t, tt.status, mapsErr.Status)
			assert.Equal(t, "Google Maps Geocoding API service: "+tt.message, err.Error())
		})
	}
}

func TestGet_Sequencing(t *testing.T) {
	r := geocoding.NewReverseRequest(newClient(""), maps.LatLng{Lat: 1, Lng: 2})

	_, err := r.Get(context.Background())
	require.ErrorIs(t, err, maps.KindQueryNotBuilt)
	require.ErrorIs(t, r.Build(), maps.KindRequestNotValidated)

	require.NoError(t, r.Validate())
	require.NoError(t, r.Build())
	tag, err := maps.ParseLanguage("de")
	require.NoError(t, err)
	r.WithLanguage(tag)
	assert.Empty(t, r.Query())
	assert.Equal(t, maps.PhaseConfigured, r.Phase())
}

func TestEnums(t *testing.T) {
	lt, err := geocoding.ParseLocationType("RANGE_INTERPOLATED")
	require.NoError(t, err)
	assert.Equal(t, geocoding.LocationTypeRangeInterpolated, lt)
	assert.Equal(t, "Range Interpolated", lt.String())

	_, err = geocoding.ParseLocationType("rooftop")
	assert.ErrorIs(t, err, maps.KindInvalidLocationTypeCode)

	ct, err := geocoding.ParseComponentType("administrative_area")
	require.NoError(t, err)
	assert.Equal(t, geocoding.ComponentAdministrativeArea, ct)

	_, err = geocoding.ParseComponentType("planet")
	assert.ErrorIs(t, err, maps.KindInvalidComponentCode)

	_, err = geocoding.ParseStatus("MAX_ELEMENTS_EXCEEDED")
	assert.ErrorIs(t, err, maps.KindInvalidStatusCode)
}
