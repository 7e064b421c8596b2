package geocoding

import (
	"context"

	"github.com/mapsplatform/googlemaps/pkg/maps"
)

// Response is a decoded Geocoding API reply.
type Response struct {
	Results      []Result  `json:"results"`
	PlusCode     *PlusCode `json:"plus_code,omitempty"`
	Status       Status    `json:"status"`
	ErrorMessage *string   `json:"error_message,omitempty"`
}

// Result is one geocoded place.
type Result struct {
	AddressComponents  []AddressComponent `json:"address_components"`
	FormattedAddress   string             `json:"formatted_address"`
	Geometry           Geometry           `json:"geometry"`
	PartialMatch       bool               `json:"partial_match,omitempty"`
	PlaceID            string             `json:"place_id"`
	PlusCode           *PlusCode          `json:"plus_code,omitempty"`
	PostcodeLocalities []string           `json:"postcode_localities,omitempty"`
	Types              []maps.PlaceType   `json:"types"`
}

// Component returns the first address component of type t.
func (r *Result) Component(t maps.PlaceType) (AddressComponent, bool) {
	for _, c := range r.AddressComponents {
		for _, ct := range c.Types {
			if ct == t {
				return c, true
			}
		}
	}
	return AddressComponent{}, false
}

// AddressComponent is one part of a formatted address, e.g. the postal code.
type AddressComponent struct {
	LongName  string           `json:"long_name"`
	ShortName string           `json:"short_name"`
	Types     []maps.PlaceType `json:"types"`
}

// Geometry locates a result. Bounds is only present for results that cover
// an area.
type Geometry struct {
	Location     maps.LatLng  `json:"location"`
	LocationType LocationType `json:"location_type"`
	Viewport     maps.Bounds  `json:"viewport"`
	Bounds       *maps.Bounds `json:"bounds,omitempty"`
}

// PlusCode is an Open Location Code for a place.
type PlusCode struct {
	GlobalCode   string `json:"global_code"`
	CompoundCode string `json:"compound_code,omitempty"`
}

var endpoint = maps.Endpoint{API: maps.APIGeocoding, Host: maps.HostMaps, Path: "/maps/api/geocode/json"}

func fetch(ctx context.Context, client *maps.Client, lc *maps.Lifecycle) (*Response, error) {
	query, err := lc.Begin()
	if err != nil {
		return nil, err
	}

	reply, err := client.Fetch(ctx, endpoint, query)
	if err != nil {
		return nil, err
	}
	if !reply.OK() {
		return nil, maps.NewUnsuccessfulError(maps.APIGeocoding, reply.StatusCode)
	}

	var resp Response
	if err := maps.DecodeJSON(maps.APIGeocoding, reply.Body, &resp); err != nil {
		return nil, err
	}
	if resp.Status != StatusOK {
		return nil, maps.NewServiceError(maps.APIGeocoding, resp.Status.Code(), resp.ErrorMessage)
	}
	return &resp, nil
}
