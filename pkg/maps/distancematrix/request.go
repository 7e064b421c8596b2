// Package distancematrix implements the Google Maps Distance Matrix API,
// which returns travel distance and time for every pairing of a set of
// origins with a set of destinations.
//
// Locations and the travel parameters are shared with package directions.
package distancematrix

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/mapsplatform/googlemaps/pkg/maps"
	"github.com/mapsplatform/googlemaps/pkg/maps/directions"
)

var endpoint = maps.Endpoint{API: maps.APIDistanceMatrix, Host: maps.HostMaps, Path: "/maps/api/distancematrix/json"}

// Request is a Distance Matrix API query. It is owned by one goroutine and
// sent at most once.
type Request struct {
	client       *maps.Client
	origins      []directions.Location
	destinations []directions.Location

	arrivalTime            *time.Time
	departureTime          *directions.DepartureTime
	language               *language.Tag
	region                 *language.Region
	restrictions           []directions.Avoid
	trafficModel           directions.TrafficModel
	transitModes           []directions.TransitMode
	transitRoutePreference directions.TransitRoutePreference
	travelMode             directions.TravelMode
	unitSystem             directions.UnitSystem

	lifecycle maps.Lifecycle
}

// NewRequest starts a matrix request between origins and destinations.
func NewRequest(client *maps.Client, origins, destinations []directions.Location) *Request {
	r := &Request{
		client:       client,
		origins:      append([]directions.Location(nil), origins...),
		destinations: append([]directions.Location(nil), destinations...),
		lifecycle:    maps.NewLifecycle(maps.APIDistanceMatrix),
	}
	r.lifecycle.Touch()
	return r
}

// Phase reports where the request is in its lifecycle.
func (r *Request) Phase() maps.Phase { return r.lifecycle.Phase() }

// WithArrivalTime sets the desired arrival time. Transit only.
func (r *Request) WithArrivalTime(t time.Time) *Request {
	r.arrivalTime = &t
	r.lifecycle.Touch()
	return r
}

// WithDepartureTime sets the departure time.
func (r *Request) WithDepartureTime(d directions.DepartureTime) *Request {
	r.departureTime = &d
	r.lifecycle.Touch()
	return r
}

func (r *Request) WithLanguage(tag language.Tag) *Request {
	r.language = &tag
	r.lifecycle.Touch()
	return r
}

func (r *Request) WithRegion(region language.Region) *Request {
	r.region = &region
	r.lifecycle.Touch()
	return r
}

// WithRestrictions lists features the routes should avoid.
func (r *Request) WithRestrictions(avoid ...directions.Avoid) *Request {
	r.restrictions = append(r.restrictions[:0:0], avoid...)
	r.lifecycle.Touch()
	return r
}

func (r *Request) WithTrafficModel(m directions.TrafficModel) *Request {
	r.trafficModel = m
	r.lifecycle.Touch()
	return r
}

// WithTransitModes lists preferred transit vehicles. Transit only.
func (r *Request) WithTransitModes(modes ...directions.TransitMode) *Request {
	r.transitModes = append(r.transitModes[:0:0], modes...)
	r.lifecycle.Touch()
	return r
}

// WithTransitRoutePreference biases transit routes. Transit only.
func (r *Request) WithTransitRoutePreference(p directions.TransitRoutePreference) *Request {
	r.transitRoutePreference = p
	r.lifecycle.Touch()
	return r
}

func (r *Request) WithTravelMode(m directions.TravelMode) *Request {
	r.travelMode = m
	r.lifecycle.Touch()
	return r
}

func (r *Request) WithUnitSystem(u directions.UnitSystem) *Request {
	r.unitSystem = u
	r.lifecycle.Touch()
	return r
}

// Validate reports the first broken rule. A failed validation spends the
// request.
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
	api := maps.APIDistanceMatrix
	transit := r.travelMode == directions.TravelModeTransit

	if len(r.origins) == 0 || len(r.destinations) == 0 {
		return maps.NewPreconditionError(api, maps.KindOriginsAndDestinationsRequired,
			strconv.Itoa(len(r.origins)), strconv.Itoa(len(r.destinations)))
	}
	if r.arrivalTime != nil && r.departureTime != nil {
		return maps.NewPreconditionError(api, maps.KindEitherDepartureTimeOrArrivalTime,
			r.arrivalTime.Format(time.RFC3339), r.departureTime.Describe())
	}
	if r.arrivalTime != nil && !transit {
		return maps.NewPreconditionError(api, maps.KindArrivalTimeIsForTransitOnly,
			directions.DescribeMode(r.travelMode), r.arrivalTime.Format(time.RFC3339))
	}
	if len(r.transitModes) > 0 && !transit {
		return maps.NewPreconditionError(api, maps.KindTransitModeIsForTransitOnly,
			directions.DescribeMode(r.travelMode), maps.JoinCodes(r.transitModes, ", "))
	}
	if r.transitRoutePreference != 0 && !transit {
		return maps.NewPreconditionError(api, maps.KindTransitRoutePreferenceIsForTransitOnly,
			directions.DescribeMode(r.travelMode), r.transitRoutePreference.Code())
	}
	return nil
}

func joinLocations(locs []directions.Location) string {
	parts := make([]string, len(locs))
	for i, l := range locs {
		parts[i] = l.String()
	}
	return strings.Join(parts, "|")
}

// Build renders the validated request into its query string.
func (r *Request) Build() error {
	if err := r.lifecycle.CheckBuild(); err != nil {
		return err
	}

	q := url.Values{}
	q.Set("key", r.client.APIKey())
	q.Set("origins", joinLocations(r.origins))
	q.Set("destinations", joinLocations(r.destinations))
	if r.travelMode != 0 {
		q.Set("mode", r.travelMode.Code())
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

	r.lifecycle.Built(q.Encode())
	return nil
}

// Query returns the built query string, or "" before Build.
func (r *Request) Query() string { return r.lifecycle.Query() }

// Get sends the built request. The request is spent afterwards, whatever the
// outcome. A response with status OK may still hold elements whose own
// status is not OK.
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
		return nil, maps.NewUnsuccessfulError(maps.APIDistanceMatrix, reply.StatusCode)
	}

	var resp Response
	if err := maps.DecodeJSON(maps.APIDistanceMatrix, reply.Body, &resp); err != nil {
		return nil, err
	}
	if resp.Status != StatusOK {
		return nil, maps.NewServiceError(maps.APIDistanceMatrix, resp.Status.Code(), resp.ErrorMessage)
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
