package directions

import (
	"fmt"
	"time"

	"github.com/mapsplatform/googlemaps/pkg/maps"
	"github.com/mapsplatform/googlemaps/pkg/polyline"
)

// Response is a decoded Directions API reply. Optional members are pointers
// or slices and stay nil when Google omits them.
type Response struct {
	GeocodedWaypoints    []GeocodedWaypoint `json:"geocoded_waypoints,omitempty"`
	Routes               []Route            `json:"routes"`
	AvailableTravelModes []TravelMode       `json:"available_travel_modes,omitempty"`
	Status               Status             `json:"status"`
	ErrorMessage         *string            `json:"error_message,omitempty"`
}

// GeocodedWaypoint describes how the origin, a waypoint or the destination
// was geocoded.
type GeocodedWaypoint struct {
	GeocoderStatus GeocoderStatus   `json:"geocoder_status"`
	PartialMatch   bool             `json:"partial_match,omitempty"`
	PlaceID        string           `json:"place_id"`
	Types          []maps.PlaceType `json:"types,omitempty"`
}

// Route is one way of getting from origin to destination.
type Route struct {
	Summary          string      `json:"summary"`
	Legs             []Leg       `json:"legs"`
	WaypointOrder    []int       `json:"waypoint_order"`
	OverviewPolyline Polyline    `json:"overview_polyline"`
	Bounds           maps.Bounds `json:"bounds"`
	Copyrights       string      `json:"copyrights"`
	Warnings         []string    `json:"warnings,omitempty"`
	Fare             *Fare       `json:"fare,omitempty"`
}

// Fare is the total transit fare of a route.
type Fare struct {
	Currency string  `json:"currency"`
	Value    float64 `json:"value"`
	Text     string  `json:"text"`
}

// Leg is the part of a route between two consecutive stops.
type Leg struct {
	Steps             []Step       `json:"steps"`
	Distance          *Distance    `json:"distance,omitempty"`
	Duration          *Duration    `json:"duration,omitempty"`
	DurationInTraffic *Duration    `json:"duration_in_traffic,omitempty"`
	ArrivalTime       *TransitTime `json:"arrival_time,omitempty"`
	DepartureTime     *TransitTime `json:"departure_time,omitempty"`
	StartLocation     maps.LatLng  `json:"start_location"`
	EndLocation       maps.LatLng  `json:"end_location"`
	StartAddress      string       `json:"start_address"`
	EndAddress        string       `json:"end_address"`
}

// Step is a single instruction. Transit routes nest the walking or driving
// detail of a step in Steps: nil means the field was absent, an empty
// non-nil slice means Google sent an empty array.
type Step struct {
	Distance         *Distance       `json:"distance,omitempty"`
	Duration         *Duration       `json:"duration,omitempty"`
	EndLocation      maps.LatLng     `json:"end_location"`
	StartLocation    maps.LatLng     `json:"start_location"`
	HTMLInstructions *string         `json:"html_instructions,omitempty"`
	Maneuver         *ManeuverType   `json:"maneuver,omitempty"`
	Polyline         *Polyline       `json:"polyline,omitempty"`
	Steps            []Step          `json:"steps"`
	TransitDetails   *TransitDetails `json:"transit_details,omitempty"`
	TravelMode       TravelMode      `json:"travel_mode"`
}

// ManeuverCode returns the maneuver's wire code, e.g. "turn-left", and false
// when the step has no maneuver.
func (s *Step) ManeuverCode() (string, bool) {
	if s.Maneuver == nil {
		return "", false
	}
	return s.Maneuver.Code(), true
}

// Distance is a length in meters plus its localized text.
type Distance struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

// Duration is a span in seconds plus its localized text.
type Duration struct {
	Text  string `json:"text"`
	Value int64  `json:"value"`
}

// Std converts the duration to a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d.Value) * time.Second
}

// TransitTime is an instant given as Unix seconds in a named time zone.
type TransitTime struct {
	Text     string `json:"text"`
	TimeZone string `json:"time_zone"`
	Value    int64  `json:"value"`
}

// Time returns the instant in its own time zone, or in UTC when no zone was
// given.
func (t TransitTime) Time() (time.Time, error) {
	at := time.Unix(t.Value, 0)
	if t.TimeZone == "" {
		return at.UTC(), nil
	}
	loc, err := time.LoadLocation(t.TimeZone)
	if err != nil {
		return time.Time{}, fmt.Errorf("loading time zone %q: %w", t.TimeZone, err)
	}
	return at.In(loc), nil
}

// Polyline holds an encoded path.
type Polyline struct {
	Points string `json:"points"`
}

// Decode returns the points of the path.
func (p Polyline) Decode() ([]maps.LatLng, error) {
	return polyline.Decode(p.Points)
}

// Length returns the great-circle length of the path in meters.
func (p Polyline) Length() (float64, error) {
	points, err := p.Decode()
	if err != nil {
		return 0, err
	}
	return polyline.Length(points), nil
}

// TransitDetails describes the transit leg a step rides. Headway is the
// expected number of seconds between departures from the same stop.
type TransitDetails struct {
	ArrivalStop   TransitStop `json:"arrival_stop"`
	DepartureStop TransitStop `json:"departure_stop"`
	ArrivalTime   TransitTime `json:"arrival_time"`
	DepartureTime TransitTime `json:"departure_time"`
	Headsign      string      `json:"headsign"`
	Headway       *int        `json:"headway,omitempty"`
	NumStops      int         `json:"num_stops"`
	TripShortName string      `json:"trip_short_name,omitempty"`
	Line          TransitLine `json:"line"`
}

// TransitStop is a transit station or stop.
type TransitStop struct {
	Location maps.LatLng `json:"location"`
	Name     string      `json:"name"`
}

// TransitLine is the line a transit step rides.
type TransitLine struct {
	Name      string          `json:"name,omitempty"`
	ShortName string          `json:"short_name,omitempty"`
	Color     string          `json:"color,omitempty"`
	TextColor string          `json:"text_color,omitempty"`
	URL       string          `json:"url,omitempty"`
	Icon      string          `json:"icon,omitempty"`
	Agencies  []TransitAgency `json:"agencies"`
	Vehicle   Vehicle         `json:"vehicle"`
}

// TransitAgency operates a transit line.
type TransitAgency struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	URL   string `json:"url"`
}

// Vehicle is the kind of vehicle used on a line.
type Vehicle struct {
	Name      string      `json:"name"`
	Type      VehicleType `json:"type"`
	Icon      string      `json:"icon"`
	LocalIcon string      `json:"local_icon,omitempty"`
}
