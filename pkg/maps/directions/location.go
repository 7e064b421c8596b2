package directions

import (
	"strconv"
	"strings"
	"time"

	"github.com/mapsplatform/googlemaps/pkg/maps"
	"github.com/mapsplatform/googlemaps/pkg/polyline"
)

// Location is an origin or destination. Exactly one of its forms is set by
// the constructor used to create it.
type Location struct {
	address string
	latLng  *maps.LatLng
	placeID string
}

// Address locates by free-form address, e.g. "Toronto, ON".
func Address(address string) Location {
	return Location{address: address}
}

// Coordinates locates by latitude and longitude.
func Coordinates(ll maps.LatLng) Location {
	return Location{latLng: &ll}
}

// PlaceID locates by Google place id.
func PlaceID(id string) Location {
	return Location{placeID: id}
}

// String renders the location as a query parameter value.
func (l Location) String() string {
	switch {
	case l.latLng != nil:
		return l.latLng.String()
	case l.placeID != "":
		return "place_id:" + l.placeID
	default:
		return l.address
	}
}

// Waypoint is an intermediate stop, or with Via a pass-through point that
// does not split the route into legs.
type Waypoint struct {
	location Location
	encoded  string
	via      bool
}

// Stop returns a stopover waypoint at loc.
func Stop(loc Location) Waypoint {
	return Waypoint{location: loc}
}

// Via returns a pass-through waypoint at loc.
func Via(loc Location) Waypoint {
	return Waypoint{location: loc, via: true}
}

// EncodedPath returns a waypoint made of an encoded polyline of points.
func EncodedPath(encoded string) Waypoint {
	return Waypoint{encoded: encoded}
}

// EncodedPoints encodes points into a single path waypoint, which is shorter
// on the wire than one waypoint per point.
func EncodedPoints(points []maps.LatLng) Waypoint {
	return EncodedPath(polyline.Encode(points))
}

func (w Waypoint) String() string {
	var s string
	if w.encoded != "" {
		s = "enc:" + w.encoded + ":"
	} else {
		s = w.location.String()
	}
	if w.via {
		return "via:" + s
	}
	return s
}

func joinWaypoints(ws []Waypoint) string {
	parts := make([]string, len(ws))
	for i, w := range ws {
		parts[i] = w.String()
	}
	return strings.Join(parts, "|")
}

// DepartureTime is either "now" or a fixed instant.
type DepartureTime struct {
	now bool
	at  time.Time
}

// DepartureNow departs at the time the request is served.
func DepartureNow() DepartureTime {
	return DepartureTime{now: true}
}

// DepartureAt departs at t.
func DepartureAt(t time.Time) DepartureTime {
	return DepartureTime{at: t}
}

// IsNow reports whether the departure is "now".
func (d DepartureTime) IsNow() bool { return d.now }

// Time returns the fixed departure instant, or the zero time for "now".
func (d DepartureTime) Time() time.Time { return d.at }

// Describe renders "now" or the instant in RFC 3339, for error messages.
func (d DepartureTime) Describe() string {
	if d.now {
		return "now"
	}
	return d.at.Format(time.RFC3339)
}

// String renders "now" or seconds since the Unix epoch.
func (d DepartureTime) String() string {
	if d.now {
		return "now"
	}
	return strconv.FormatInt(d.at.Unix(), 10)
}
