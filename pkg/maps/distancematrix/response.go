package distancematrix

import (
	"github.com/mapsplatform/googlemaps/pkg/maps/directions"
)

// Response is a decoded Distance Matrix API reply. Rows follow the order of
// the request's origins and each row's elements the order of its
// destinations.
type Response struct {
	OriginAddresses      []string `json:"origin_addresses"`
	DestinationAddresses []string `json:"destination_addresses"`
	Rows                 []Row    `json:"rows"`
	Status               Status   `json:"status"`
	ErrorMessage         *string  `json:"error_message,omitempty"`
}

// Row holds the elements for one origin.
type Row struct {
	Elements []Element `json:"elements"`
}

// Element is the result for one origin and destination pair. Only Status is
// guaranteed; the rest is nil when the pair could not be routed.
type Element struct {
	Status            ElementStatus        `json:"status"`
	Distance          *directions.Distance `json:"distance,omitempty"`
	Duration          *directions.Duration `json:"duration,omitempty"`
	DurationInTraffic *directions.Duration `json:"duration_in_traffic,omitempty"`
	Fare              *directions.Fare     `json:"fare,omitempty"`
}

// OK reports whether the pair was routed.
func (e Element) OK() bool {
	return e.Status == ElementStatusOK
}

// Element returns the element for the given origin and destination indexes.
func (r *Response) Element(origin, destination int) (Element, bool) {
	if origin < 0 || origin >= len(r.Rows) {
		return Element{}, false
	}
	row := r.Rows[origin].Elements
	if destination < 0 || destination >= len(row) {
		return Element{}, false
	}
	return row[destination], true
}
