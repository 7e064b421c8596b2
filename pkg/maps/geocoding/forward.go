// Package geocoding implements the Google Maps Geocoding API: forward
// geocoding turns an address into coordinates and reverse geocoding turns
// coordinates into addresses.
package geocoding

import (
	"context"
	"net/url"
	"strings"

	"golang.org/x/text/language"

	"github.com/mapsplatform/googlemaps/pkg/maps"
)

// Component restricts forward geocoding results, e.g. to one country.
type Component struct {
	Type  ComponentType
	Value string
}

func (c Component) String() string {
	return c.Type.Code() + ":" + c.Value
}

// ForwardRequest looks up an address, a set of component filters, or both.
type ForwardRequest struct {
	client     *maps.Client
	address    string
	components []Component
	bounds     *maps.Bounds
	language   *language.Tag
	region     *language.Region

	lifecycle maps.Lifecycle
}

// NewForwardRequest starts an empty forward geocoding request. Set an
// address or at least one component before validating.
func NewForwardRequest(client *maps.Client) *ForwardRequest {
	r := &ForwardRequest{
		client:    client,
		lifecycle: maps.NewLifecycle(maps.APIGeocoding),
	}
	r.lifecycle.Touch()
	return r
}

// Phase reports where the request is in its lifecycle.
func (r *ForwardRequest) Phase() maps.Phase { return r.lifecycle.Phase() }

func (r *ForwardRequest) WithAddress(address string) *ForwardRequest {
	r.address = address
	r.lifecycle.Touch()
	return r
}

// WithComponents adds component filters. Filters on the same type are all
// sent; Google treats them as alternatives.
func (r *ForwardRequest) WithComponents(components ...Component) *ForwardRequest {
	r.components = append(r.components, components...)
	r.lifecycle.Touch()
	return r
}

// WithBounds biases results toward a viewport.
func (r *ForwardRequest) WithBounds(b maps.Bounds) *ForwardRequest {
	r.bounds = &b
	r.lifecycle.Touch()
	return r
}

func (r *ForwardRequest) WithLanguage(tag language.Tag) *ForwardRequest {
	r.language = &tag
	r.lifecycle.Touch()
	return r
}

// WithRegion biases results toward a region.
func (r *ForwardRequest) WithRegion(region language.Region) *ForwardRequest {
	r.region = &region
	r.lifecycle.Touch()
	return r
}

// Validate checks that an address or a component filter is present.
func (r *ForwardRequest) Validate() error {
	if err := r.lifecycle.CheckValidate(); err != nil {
		return err
	}
	if strings.TrimSpace(r.address) == "" && len(r.components) == 0 {
		r.lifecycle.Fail()
		return maps.NewPreconditionError(maps.APIGeocoding, maps.KindAddressOrComponentsRequired)
	}
	return r.lifecycle.Validated()
}

// Build renders the validated request into its query string.
func (r *ForwardRequest) Build() error {
	if err := r.lifecycle.CheckBuild(); err != nil {
		return err
	}

	q := url.Values{}
	q.Set("key", r.client.APIKey())
	if r.address != "" {
		q.Set("address", r.address)
	}
	if len(r.components) > 0 {
		parts := make([]string, len(r.components))
		for i, c := range r.components {
			parts[i] = c.String()
		}
		q.Set("components", strings.Join(parts, "|"))
	}
	if r.bounds != nil {
		q.Set("bounds", r.bounds.String())
	}
	if r.language != nil {
		q.Set("language", r.language.String())
	}
	if r.region != nil {
		q.Set("region", maps.RegionCode(*r.region))
	}

	r.lifecycle.Built(q.Encode())
	return nil
}

// Query returns the built query string, or "" before Build.
func (r *ForwardRequest) Query() string { return r.lifecycle.Query() }

// Get sends the built request. ZERO_RESULTS is reported as a service error.
func (r *ForwardRequest) Get(ctx context.Context) (*Response, error) {
	return fetch(ctx, r.client, &r.lifecycle)
}

// Execute runs Validate, Build and Get.
func (r *ForwardRequest) Execute(ctx context.Context) (*Response, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if err := r.Build(); err != nil {
		return nil, err
	}
	return r.Get(ctx)
}
