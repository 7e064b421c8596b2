package directions

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/mapsplatform/googlemaps/pkg/maps"
)

func testClient(baseURL string) *maps.Client {
	return maps.NewClient(maps.ClientConfig{
		APIKey:  "mock123",
		BaseURL: baseURL,
		Logger:  zerolog.Nop(),
	})
}

func newTestRequest() *Request {
	return NewRequest(testClient("http://127.0.0.1:1"), Address("Toronto, ON"), Address("Montreal, QC"))
}

func stops(n int) []Waypoint {
	ws := make([]Waypoint, n)
	for i := range ws {
		ws[i] = Stop(Coordinates(maps.LatLng{Lat: 44, Lng: -77 + float64(i)/100}))
	}
	return ws
}

func expectKind(t *testing.T, err error, kind maps.Kind) *maps.Error {
	t.Helper()
	if !errors.Is(err, kind) {
		t.Fatalf("expected %s, got %v", kind, err)
	}
	var mapsErr *maps.Error
	errors.As(err, &mapsErr)
	return mapsErr
}

func TestValidate_Rules(t *testing.T) {
	arrive := time.Date(2024, 6, 20, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		setup func(r *Request)
		kind  maps.Kind
	}{
		{
			name:  "arrival time without transit",
			setup: func(r *Request) { r.WithArrivalTime(arrive).WithTravelMode(TravelModeDriving) },
			kind:  maps.KindArrivalTimeIsForTransitOnly,
		},
		{
			name: "arrival and departure, arrival first",
			setup: func(r *Request) {
				r.WithTravelMode(TravelModeTransit).WithArrivalTime(arrive).WithDepartureTime(DepartureNow())
			},
			kind: maps.KindEitherDepartureTimeOrArrivalTime,
		},
		{
			name: "arrival and departure, departure first",
			setup: func(r *Request) {
				r.WithTravelMode(TravelModeTransit).WithDepartureTime(DepartureAt(arrive.Add(-time.Hour))).WithArrivalTime(arrive)
			},
			kind: maps.KindEitherDepartureTimeOrArrivalTime,
		},
		{
			name:  "arrival and departure, mode unset",
			setup: func(r *Request) { r.WithArrivalTime(arrive).WithDepartureTime(DepartureNow()) },
			kind:  maps.KindEitherDepartureTimeOrArrivalTime,
		},
		{
			name:  "departure and arrival, mode unset",
			setup: func(r *Request) { r.WithDepartureTime(DepartureNow()).WithArrivalTime(arrive) },
			kind:  maps.KindEitherDepartureTimeOrArrivalTime,
		},
		{
			name:  "arrival and departure while driving",
			setup: func(r *Request) { r.WithTravelMode(TravelModeDriving).WithArrivalTime(arrive).WithDepartureTime(DepartureNow()) },
			kind:  maps.KindEitherDepartureTimeOrArrivalTime,
		},
		{
			name:  "transit modes without transit",
			setup: func(r *Request) { r.WithTransitModes(TransitModeBus, TransitModeTram) },
			kind:  maps.KindTransitModeIsForTransitOnly,
		},
		{
			name:  "transit preference without transit",
			setup: func(r *Request) { r.WithTravelMode(TravelModeWalking).WithTransitRoutePreference(TransitRoutePreferenceFewerTransfers) },
			kind:  maps.KindTransitRoutePreferenceIsForTransitOnly,
		},
		{
			name:  "waypoints with transit",
			setup: func(r *Request) { r.WithTravelMode(TravelModeTransit).WithWaypoints(stops(2)...) },
			kind:  maps.KindEitherWaypointsOrTransitMode,
		},
		{
			name:  "too many waypoints",
			setup: func(r *Request) { r.WithWaypoints(stops(26)...) },
			kind:  maps.KindTooManyWaypoints,
		},
		{
			name:  "alternatives with waypoints",
			setup: func(r *Request) { r.WithAlternatives(true).WithWaypoints(stops(1)...) },
			kind:  maps.KindEitherAlternativesOrWaypoints,
		},
		{
			name:  "restrictions with waypoints",
			setup: func(r *Request) { r.WithRestrictions(AvoidTolls, AvoidFerries).WithWaypoints(stops(3)...) },
			kind:  maps.KindEitherRestrictionsOrWaypoints,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRequest()
			tt.setup(r)
			expectKind(t, r.Validate(), tt.kind)
			if r.Phase() != maps.PhaseFailed {
				t.Errorf("failed validation should spend the request, got %s", r.Phase())
			}
			expectKind(t, r.Validate(), maps.KindRequestAlreadyExecuted)
		})
	}
}

func TestValidate_FirstViolationWins(t *testing.T) {
	// Breaks the arrival, transit mode and waypoint rules at once.
	r := newTestRequest().
		WithArrivalTime(time.Now()).
		WithTransitModes(TransitModeRail).
		WithWaypoints(stops(30)...)

	expectKind(t, r.Validate(), maps.KindArrivalTimeIsForTransitOnly)
}

func TestValidate_ArrivalTimeMessage(t *testing.T) {
	arrive := time.Date(2024, 6, 20, 9, 0, 0, 0, time.UTC)
	err := newTestRequest().WithArrivalTime(arrive).Validate()

	mapsErr := expectKind(t, err, maps.KindArrivalTimeIsForTransitOnly)
	if mapsErr.Values[0] != "not set" || mapsErr.Values[1] != "2024-06-20T09:00:00Z" {
		t.Errorf("unexpected values %v", mapsErr.Values)
	}
	if !strings.Contains(err.Error(), "The travel mode is set to `not set`") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestValidate_TooManyWaypointsOverage(t *testing.T) {
	err := newTestRequest().WithWaypoints(stops(31)...).Validate()

	mapsErr := expectKind(t, err, maps.KindTooManyWaypoints)
	if mapsErr.Count != 31 {
		t.Errorf("expected count 31, got %d", mapsErr.Count)
	}
	if !strings.Contains(err.Error(), "Try again with 6 fewer waypoint(s).") {
		t.Errorf("message should cite the overage: %q", err.Error())
	}
}

func TestValidate_ExactlyMaxWaypoints(t *testing.T) {
	if err := newTestRequest().WithWaypoints(stops(MaxWaypoints)...).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_TransitWithArrivalTime(t *testing.T) {
	r := newTestRequest().
		WithTravelMode(TravelModeTransit).
		WithArrivalTime(time.Now().Add(time.Hour)).
		WithTransitModes(TransitModeSubway).
		WithTransitRoutePreference(TransitRoutePreferenceLessWalking)

	if err := r.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Phase() != maps.PhaseValidated {
		t.Errorf("expected validated, got %s", r.Phase())
	}
}

func TestBuild_BeforeValidate(t *testing.T) {
	expectKind(t, newTestRequest().Build(), maps.KindRequestNotValidated)
}

func TestGet_BeforeBuild(t *testing.T) {
	r := newTestRequest()
	if err := r.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := r.Get(context.Background())
	expectKind(t, err, maps.KindQueryNotBuilt)
}

func TestSetterInvalidatesBuild(t *testing.T) {
	r := newTestRequest()
	if err := r.Validate(); err != nil {
		t.Fatal(err)
	}
	if err := r.Build(); err != nil {
		t.Fatal(err)
	}

	r.WithAlternatives(true)

	if r.Query() != "" {
		t.Errorf("setter should discard the built query")
	}
	expectKind(t, r.Build(), maps.KindRequestNotValidated)
}

func TestBuild_Query(t *testing.T) {
	depart := time.Unix(1718899800, 0)
	tag, _ := maps.ParseLanguage("fr")
	region, _ := maps.ParseRegion("ca")

	r := newTestRequest().
		WithTravelMode(TravelModeDriving).
		WithDepartureTime(DepartureAt(depart)).
		WithLanguage(tag).
		WithRegion(region).
		WithTrafficModel(TrafficModelPessimistic).
		WithUnitSystem(UnitSystemImperial).
		WithWaypoints(Stop(Address("Kingston, ON")), Via(PlaceID("ChIJ123")), EncodedPath("_p~iF~ps|U")).
		WithWaypointOptimization(true)

	if err := r.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if err := r.Build(); err != nil {
		t.Fatalf("build: %v", err)
	}

	q, err := url.ParseQuery(r.Query())
	if err != nil {
		t.Fatalf("query does not parse: %v", err)
	}
	want := map[string]string{
		"key":            "mock123",
		"origin":         "Toronto, ON",
		"destination":    "Montreal, QC",
		"mode":           "driving",
		"departure_time": "1718899800",
		"language":       "fr",
		"region":         "ca",
		"traffic_model":  "pessimistic",
		"units":          "imperial",
		"waypoints":      "optimize:true|Kingston, ON|via:place_id:ChIJ123|enc:_p~iF~ps|U:",
	}
	for k, v := range want {
		if got := q.Get(k); got != v {
			t.Errorf("%s: expected %q, got %q", k, v, got)
		}
	}
	for _, absent := range []string{"alternatives", "arrival_time", "avoid", "transit_mode"} {
		if q.Has(absent) {
			t.Errorf("%s should not be sent", absent)
		}
	}
}

func TestBuild_TransitQuery(t *testing.T) {
	r := newTestRequest().
		WithTravelMode(TravelModeTransit).
		WithArrivalTime(time.Unix(1718901900, 0)).
		WithTransitModes(TransitModeBus, TransitModeSubway).
		WithTransitRoutePreference(TransitRoutePreferenceFewerTransfers).
		WithAlternatives(true)

	if err := r.Validate(); err != nil {
		t.Fatal(err)
	}
	if err := r.Build(); err != nil {
		t.Fatal(err)
	}

	q, _ := url.ParseQuery(r.Query())
	if q.Get("arrival_time") != "1718901900" || q.Get("transit_mode") != "bus|subway" ||
		q.Get("transit_routing_preference") != "fewer_transfers" || q.Get("alternatives") != "true" {
		t.Errorf("unexpected query %q", r.Query())
	}
	if !strings.Contains(r.Query(), "transit_mode=bus%7Csubway") {
		t.Errorf("pipes should be percent-encoded: %q", r.Query())
	}
}

func serveFixture(t *testing.T, name string, status int, check func(r *http.Request)) *httptest.Server {
	t.Helper()
	body, err := os.ReadFile("testdata/" + name)
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			check(r)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestExecute_Success(t *testing.T) {
	server := serveFixture(t, "directions_driving.json", http.StatusOK, func(r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/maps/api/directions/json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "mock123" {
			t.Errorf("missing key in %s", r.URL.RawQuery)
		}
	})

	r := NewRequest(testClient(server.URL), Address("Toronto"), Address("Montreal"))
	resp, err := r.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Routes) != 1 || resp.Routes[0].Summary != "ON-401 E" {
		t.Fatalf("unexpected routes %+v", resp.Routes)
	}
	if r.Phase() != maps.PhaseExecuted {
		t.Errorf("expected executed, got %s", r.Phase())
	}

	_, err = r.Get(context.Background())
	expectKind(t, err, maps.KindRequestAlreadyExecuted)
}

func TestExecute_ServiceErrorUsesServerMessage(t *testing.T) {
	server := serveFixture(t, "directions_denied.json", http.StatusOK, nil)

	_, err := NewRequest(testClient(server.URL), Address("a"), Address("b")).Execute(context.Background())

	mapsErr := expectKind(t, err, maps.KindGoogleMapsService)
	if mapsErr.Status != "REQUEST_DENIED" {
		t.Errorf("unexpected status %q", mapsErr.Status)
	}
	if !strings.Contains(err.Error(), "The provided API key is invalid.") {
		t.Errorf("expected server message, got %q", err.Error())
	}
}

func TestExecute_ZeroResultsIsAnError(t *testing.T) {
	server := serveFixture(t, "directions_zero_results.json", http.StatusOK, nil)

	_, err := NewRequest(testClient(server.URL), Address("a"), Address("b")).Execute(context.Background())

	mapsErr := expectKind(t, err, maps.KindGoogleMapsService)
	if !strings.Contains(mapsErr.Error(), "Zero results.") {
		t.Errorf("expected canned message, got %q", mapsErr.Error())
	}
}

func TestExecute_HTTPUnsuccessful(t *testing.T) {
	server := serveFixture(t, "directions_denied.json", http.StatusBadGateway, nil)

	r := NewRequest(testClient(server.URL), Address("a"), Address("b"))
	_, err := r.Execute(context.Background())

	mapsErr := expectKind(t, err, maps.KindHTTPUnsuccessful)
	if mapsErr.HTTPStatus != http.StatusBadGateway {
		t.Errorf("unexpected status %d", mapsErr.HTTPStatus)
	}
	if r.Phase() != maps.PhaseExecuted {
		t.Errorf("a failed get still spends the request")
	}
}

func TestExecute_DecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"OK","routes":[{"legs":"nope"}]}`))
	}))
	defer server.Close()

	_, err := NewRequest(testClient(server.URL), Address("a"), Address("b")).Execute(context.Background())
	expectKind(t, err, maps.KindDecode)
}

func TestExecute_UnknownManeuverFailsDecode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"OK","routes":[{"legs":[{"steps":[{"maneuver":"moonwalk","travel_mode":"DRIVING"}]}]}]}`))
	}))
	defer server.Close()

	_, err := NewRequest(testClient(server.URL), Address("a"), Address("b")).Execute(context.Background())
	expectKind(t, err, maps.KindDecode)
	if !errors.Is(err, maps.KindInvalidManeuverTypeCode) {
		t.Errorf("decode error should wrap the invalid code, got %v", err)
	}
}

func TestExecute_ValidationStopsBeforeNetwork(t *testing.T) {
	var called bool
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))
	defer server.Close()

	_, err := NewRequest(testClient(server.URL), Address("a"), Address("b")).
		WithWaypoints(stops(26)...).
		Execute(context.Background())

	expectKind(t, err, maps.KindTooManyWaypoints)
	if called {
		t.Error("no request should reach the server")
	}
}
