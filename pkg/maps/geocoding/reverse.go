package geocoding

import (
	"context"
	"net/url"

	"golang.org/x/text/language"

	"github.com/mapsplatform/googlemaps/pkg/maps"
)

// ReverseRequest looks up the addresses at a coordinate.
type ReverseRequest struct {
	client        *maps.Client
	latLng        maps.LatLng
	resultTypes   []maps.PlaceType
	locationTypes []LocationType
	language      *language.Tag

	lifecycle maps.Lifecycle
}

// NewReverseRequest starts a reverse geocoding request for ll.
func NewReverseRequest(client *maps.Client, ll maps.LatLng) *ReverseRequest {
	r := &ReverseRequest{
		client:    client,
		latLng:    ll,
		lifecycle: maps.NewLifecycle(maps.APIGeocoding),
	}
	r.lifecycle.Touch()
	return r
}

// Phase reports where the request is in its lifecycle.
func (r *ReverseRequest) Phase() maps.Phase { return r.lifecycle.Phase() }

// WithResultTypes keeps only results of the given types.
func (r *ReverseRequest) WithResultTypes(types ...maps.PlaceType) *ReverseRequest {
	r.resultTypes = append(r.resultTypes[:0:0], types...)
	r.lifecycle.Touch()
	return r
}

// WithLocationTypes keeps only results with the given precision.
func (r *ReverseRequest) WithLocationTypes(types ...LocationType) *ReverseRequest {
	r.locationTypes = append(r.locationTypes[:0:0], types...)
	r.lifecycle.Touch()
	return r
}

func (r *ReverseRequest) WithLanguage(tag language.Tag) *ReverseRequest {
	r.language = &tag
	r.lifecycle.Touch()
	return r
}

// Validate has no cross-field rules to check; the coordinate was checked
// when it was constructed.
func (r *ReverseRequest) Validate() error {
	if err := r.lifecycle.CheckValidate(); err != nil {
		return err
	}
	return r.lifecycle.Validated()
}

func (r *ReverseRequest) Build() error {
	if err := r.lifecycle.CheckBuild(); err != nil {
		return err
	}

	q := url.Values{}
	q.Set("key", r.client.APIKey())
	q.Set("latlng", r.latLng.String())
	if len(r.resultTypes) > 0 {
		q.Set("result_type", maps.JoinCodes(r.resultTypes, "|"))
	}
	if len(r.locationTypes) > 0 {
		q.Set("location_type", maps.JoinCodes(r.locationTypes, "|"))
	}
	if r.language != nil {
		q.Set("language", r.language.String())
	}

	r.lifecycle.Built(q.Encode())
	return nil
}

// Query returns the built query string, or "" before Build.
func (r *ReverseRequest) Query() string { return r.lifecycle.Query() }

// Get sends the built request. ZERO_RESULTS is reported as a service error.
func (r *ReverseRequest) Get(ctx context.Context) (*Response, error) {
	return fetch(ctx, r.client, &r.lifecycle)
}

// Execute runs Validate, Build and Get.
func (r *ReverseRequest) Execute(ctx context.Context) (*Response, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if err := r.Build(); err != nil {
		return nil, err
	}
	return r.Get(ctx)
}
