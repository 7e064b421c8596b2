// Package directions implements the Google Maps Directions API.
//
// A Request is configured with chained setters and then runs through
// Validate, Build and Get, or all three at once with Execute:
//
//	resp, err := directions.NewRequest(client,
//		directions.Address("Toronto, ON"),
//		directions.Address("Montreal, QC"),
//	).WithTravelMode(directions.TravelModeDriving).Execute(ctx)
package directions

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/text/language"

	"github.com/mapsplatform/googlemaps/pkg/maps"
)

// MaxWaypoints is the most waypoints a request may carry besides its origin
// and destination.
const MaxWaypoints = 25

var endpoint = maps.Endpoint{API: maps.APIDirections, Host: maps.HostMaps, Path: "/maps/api/directions/json"}

// Request is a Directions API query. It is owned by one goroutine and sent at
// most once.
type Request struct {
	client      *maps.Client
	origin      Location
	destination Location

	alternatives           bool
	arrivalTime            *time.Time
	departureTime          *DepartureTime
	language               *language.Tag
	region                 *language.Region
	restrictions           []Avoid
	trafficModel           TrafficModel
	transitModes           []TransitMode
	transitRoutePreference TransitRoutePreference
	travelMode             TravelMode
	unitSystem             UnitSystem
	waypoints              []Waypoint
	optimizeWaypoints      bool

	lifecycle maps.Lifecycle
}

// NewRequest starts a request for directions from origin to destination.
func NewRequest(client *maps.Client, origin, destination Location) *Request {
	r := &Request{
		client:      client,
		origin:      origin,
		destination: destination,
		lifecycle:   maps.NewLifecycle(maps.APIDirections),
	}
	r.lifecycle.Touch()
	return r
}

// Phase reports where the request is in its lifecycle.
func (r *Request) Phase() maps.Phase { return r.lifecycle.Phase() }

// WithAlternatives asks for more than one route when available.
func (r *Request) WithAlternatives(alternatives bool) *Request {
	r.alternatives = alternatives
	r.lifecycle.Touch()
	return r
}

// WithArrivalTime sets the desired arrival time. Transit only.
func (r *Request) WithArrivalTime(t time.Time) *Request {
	r.arrivalTime = &t
	r.lifecycle.Touch()
	return r
}

// WithDepartureTime sets the departure time, either DepartureNow() or
// DepartureAt(t).
func (r *Request) WithDepartureTime(d DepartureTime) *Request {
	r.departureTime = &d
	r.lifecycle.Touch()
	return r
}

// WithLanguage sets the language of the returned text. See maps.ParseLanguage.
func (r *Request) WithLanguage(tag language.Tag) *Request {
	r.language = &tag
	r.lifecycle.Touch()
	return r
}

// WithRegion biases geocoding of addresses toward a region. See maps.ParseRegion.
func (r *Request) WithRegion(region language.Region) *Request {
	r.region = &region
	r.lifecycle.Touch()
	return r
}

// WithRestrictions lists features the route should avoid.
func (r *Request) WithRestrictions(avoid ...Avoid) *Request {
	r.restrictions = append(r.restrictions[:0:0], avoid...)
	r.lifecycle.Touch()
	return r
}

// WithTrafficModel sets the traffic assumptions for duration_in_traffic.
func (r *Request) WithTrafficModel(m TrafficModel) *Request {
	r.trafficModel = m
	r.lifecycle.Touch()
	return r
}

// WithTransitModes lists preferred transit vehicles. Transit only.
func (r *Request) WithTransitModes(modes ...TransitMode) *Request {
	r.transitModes = append(r.transitModes[:0:0], modes...)
	r.lifecycle.Touch()
	return r
}

// WithTransitRoutePreference biases transit routes. Transit only.
func (r *Request) WithTransitRoutePreference(p TransitRoutePreference) *Request {
	r.transitRoutePreference = p
	r.lifecycle.Touch()
	return r
}

// WithTravelMode sets the travel mode. Google defaults to driving.
func (r *Request) WithTravelMode(m TravelMode) *Request {
	r.travelMode = m
	r.lifecycle.Touch()
	return r
}

// WithUnitSystem sets the units used in distance text.
func (r *Request) WithUnitSystem(u UnitSystem) *Request {
	r.unitSystem = u
	r.lifecycle.Touch()
	return r
}

// WithWaypoints replaces the intermediate stops.
func (r *Request) WithWaypoints(waypoints ...Waypoint) *Request {
	r.waypoints = append(r.waypoints[:0:0], waypoints...)
	r.lifecycle.Touch()
	return r
}

// WithWaypointOptimization lets Google reorder stopover waypoints.
func (r *Request) WithWaypointOptimization(optimize bool) *Request {
	r.optimizeWaypoints = optimize
	r.lifecycle.Touch()
	return r
}

// Validate checks the combination of parameters and reports the first rule
// broken. A failed validation spends the request.
func (r *Request) Validate() error {
	if err := r.lifecycle.CheckValidate(); err != nil {
		return err
	}
	if err := r.check(); err != nil {
		r.lifecycle.Fail()
		return err
	}
	return r.lifecycle.Validated()
}

func (r *Request) check() error {
	api := maps.APIDirections
	transit := r.travelMode == TravelModeTransit

	if r.arrivalTime != nil && r.departureTime != nil {
		return maps.NewPreconditionError(api, maps.KindEitherDepartureTimeOrArrivalTime,
			r.arrivalTime.Format(time.RFC3339), r.departureTime.Describe())
	}
	if r.arrivalTime != nil && !transit {
		return maps.NewPreconditionError(api, maps.KindArrivalTimeIsForTransitOnly,
			DescribeMode(r.travelMode), r.arrivalTime.Format(time.RFC3339))
	}
	if len(r.transitModes) > 0 && !transit {
		return maps.NewPreconditionError(api, maps.KindTransitModeIsForTransitOnly,
			DescribeMode(r.travelMode), maps.JoinCodes(r.transitModes, ", "))
	}
	if r.transitRoutePreference != 0 && !transit {
		return maps.NewPreconditionError(api, maps.KindTransitRoutePreferenceIsForTransitOnly,
			DescribeMode(r.travelMode), r.transitRoutePreference.Code())
	}

	n := len(r.waypoints)
	if n == 0 {
		return nil
	}
	if transit {
		return maps.NewCountError(api, maps.KindEitherWaypointsOrTransitMode, n, MaxWaypoints)
	}
	if n > MaxWaypoints {
		return maps.NewCountError(api, maps.KindTooManyWaypoints, n, MaxWaypoints)
	}
	if r.alternatives {
		return maps.NewCountError(api, maps.KindEitherAlternativesOrWaypoints, n, MaxWaypoints)
	}
	if len(r.restrictions) > 0 {
		return maps.NewCountError(api, maps.KindEitherRestrictionsOrWaypoints, n, MaxWaypoints,
			maps.JoinCodes(r.restrictions, ", "))
	}
	return nil
}

// DescribeMode renders a travel mode for error messages, "not set" when unset.
func DescribeMode(m TravelMode) string {
	if m == 0 {
		return "not set"
	}
	return m.Code()
}

// Build renders the validated request into its query string.
func (r *Request) Build() error {
	if err := r.lifecycle.CheckBuild(); err != nil {
		return err
	}

	q := url.Values{}
	q.Set("key", r.client.APIKey())
	q.Set("origin", r.origin.String())
	q.Set("destination", r.destination.String())
	if r.travelMode != 0 {
		q.Set("mode", r.travelMode.Code())
	}
	if r.alternatives {
		q.Set("alternatives", "true")
	}
	if r.arrivalTime != nil {
		q.Set("arrival_time", strconv.FormatInt(r.arrivalTime.Unix(), 10))
	}
	if r.departureTime != nil {
		q.Set("departure_time", r.departureTime.String())
	}
	if len(r.restrictions) > 0 {
		q.Set("avoid", maps.JoinCodes(r.restrictions, "|"))
	}
	if r.language != nil {
		q.Set("language", r.language.String())
	}
	if r.region != nil {
		q.Set("region", maps.RegionCode(*r.region))
	}
	if r.trafficModel != 0 {
		q.Set("traffic_model", r.trafficModel.Code())
	}
	if len(r.transitModes) > 0 {
		q.Set("transit_mode", maps.JoinCodes(r.transitModes, "|"))
	}
	if r.transitRoutePreference != 0 {
		q.Set("transit_routing_preference", r.transitRoutePreference.Code())
	}
	if r.unitSystem != 0 {
		q.Set("units", r.unitSystem.Code())
	}
	if len(r.waypoints) > 0 {
		wp := joinWaypoints(r.waypoints)
		if r.optimizeWaypoints {
			wp = "optimize:true|" + wp
		}
		q.Set("waypoints", wp)
	}

	r.lifecycle.Built(q.Encode())
	return nil
}

// Query returns the built query string, or "" before Build.
func (r *Request) Query() string { return r.lifecycle.Query() }

// Get sends the built request. The request is spent afterwards, whatever the
// outcome.
func (r *Request) Get(ctx context.Context) (*Response, error) {
	query, err := r.lifecycle.Begin()
	if err != nil {
		return nil, err
	}

	reply, err := r.client.Fetch(ctx, endpoint, query)
	if err != nil {
		return nil, err
	}
	if !reply.OK() {
		return nil, maps.NewUnsuccessfulError(maps.APIDirections, reply.StatusCode)
	}

	var resp Response
	if err := maps.DecodeJSON(maps.APIDirections, reply.Body, &resp); err != nil {
		return nil, err
	}
	if resp.Status != StatusOK {
		return nil, maps.NewServiceError(maps.APIDirections, resp.Status.Code(), resp.ErrorMessage)
	}
	return &resp, nil
}

// Execute runs Validate, Build and Get.
func (r *Request) Execute(ctx context.Context) (*Response, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if err := r.Build(); err != nil {
		return nil, err
	}
	return r.Get(ctx)
}
