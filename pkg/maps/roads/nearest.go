package roads

import (
	"context"
	"net/url"

	"github.com/mapsplatform/googlemaps/pkg/maps"
)

// NearestResponse is the reply to a NearestRoadsRequest. Points with no road
// nearby are left out; use OriginalIndex to match results to requests.
type NearestResponse struct {
	SnappedPoints []SnappedPoint `json:"snappedPoints"`
}

// NearestRoadsRequest finds the closest road segment to each of a set of
// unrelated points.
type NearestRoadsRequest struct {
	client *maps.Client
	points []maps.LatLng

	lifecycle maps.Lifecycle
}

func NewNearestRoadsRequest(client *maps.Client, points []maps.LatLng) *NearestRoadsRequest {
	r := &NearestRoadsRequest{
		client:    client,
		points:    append([]maps.LatLng(nil), points...),
		lifecycle: maps.NewLifecycle(maps.APIRoads),
	}
	r.lifecycle.Touch()
	return r
}

// Phase reports where the request is in its lifecycle.
func (r *NearestRoadsRequest) Phase() maps.Phase { return r.lifecycle.Phase() }

// Validate checks that there are between 1 and MaxPoints points.
func (r *NearestRoadsRequest) Validate() error {
	if err := r.lifecycle.CheckValidate(); err != nil {
		return err
	}
	if err := checkPoints(r.points); err != nil {
		r.lifecycle.Fail()
		return err
	}
	return r.lifecycle.Validated()
}

func (r *NearestRoadsRequest) Build() error {
	if err := r.lifecycle.CheckBuild(); err != nil {
		return err
	}
	q := url.Values{}
	q.Set("key", r.client.APIKey())
	q.Set("points", maps.JoinLatLngs(r.points))
	r.lifecycle.Built(q.Encode())
	return nil
}

// Query returns the built query string, or "" before Build.
func (r *NearestRoadsRequest) Query() string { return r.lifecycle.Query() }

// Get sends the built request.
func (r *NearestRoadsRequest) Get(ctx context.Context) (*NearestResponse, error) {
	var resp NearestResponse
	if err := fetch(ctx, r.client, nearestEndpoint, &r.lifecycle, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Execute runs Validate, Build and Get.
func (r *NearestRoadsRequest) Execute(ctx context.Context) (*NearestResponse, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if err := r.Build(); err != nil {
		return nil, err
	}
	return r.Get(ctx)
}
