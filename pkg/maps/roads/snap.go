package roads

import (
	"context"
	"net/url"

	"github.com/mapsplatform/googlemaps/pkg/maps"
)

// SnapResponse is the reply to a SnapToRoadsRequest. WarningMessage is set
// when Google suspects the trace is unreliable, e.g. the points are too far
// apart.
type SnapResponse struct {
	SnappedPoints  []SnappedPoint `json:"snappedPoints"`
	WarningMessage string         `json:"warningMessage,omitempty"`
}

// SnapToRoadsRequest snaps an ordered GPS trace to the roads it most likely
// followed.
type SnapToRoadsRequest struct {
	client      *maps.Client
	path        []maps.LatLng
	interpolate bool

	lifecycle maps.Lifecycle
}

// NewSnapToRoadsRequest starts a request for the trace path.
func NewSnapToRoadsRequest(client *maps.Client, path []maps.LatLng) *SnapToRoadsRequest {
	r := &SnapToRoadsRequest{
		client:    client,
		path:      append([]maps.LatLng(nil), path...),
		lifecycle: maps.NewLifecycle(maps.APIRoads),
	}
	r.lifecycle.Touch()
	return r
}

// Phase reports where the request is in its lifecycle.
func (r *SnapToRoadsRequest) Phase() maps.Phase { return r.lifecycle.Phase() }

// WithInterpolate asks for extra points that follow the road geometry
// between the snapped ones.
func (r *SnapToRoadsRequest) WithInterpolate(interpolate bool) *SnapToRoadsRequest {
	r.interpolate = interpolate
	r.lifecycle.Touch()
	return r
}

// Validate checks that the path holds between 1 and MaxPoints points.
func (r *SnapToRoadsRequest) Validate() error {
	if err := r.lifecycle.CheckValidate(); err != nil {
		return err
	}
	if err := checkPoints(r.path); err != nil {
		r.lifecycle.Fail()
		return err
	}
	return r.lifecycle.Validated()
}

func (r *SnapToRoadsRequest) Build() error {
	if err := r.lifecycle.CheckBuild(); err != nil {
		return err
	}
	q := url.Values{}
	q.Set("key", r.client.APIKey())
	q.Set("path", maps.JoinLatLngs(r.path))
	if r.interpolate {
		q.Set("interpolate", "true")
	}
	r.lifecycle.Built(q.Encode())
	return nil
}

// Query returns the built query string, or "" before Build.
func (r *SnapToRoadsRequest) Query() string { return r.lifecycle.Query() }

// Get sends the built request.
func (r *SnapToRoadsRequest) Get(ctx context.Context) (*SnapResponse, error) {
	var resp SnapResponse
	if err := fetch(ctx, r.client, snapEndpoint, &r.lifecycle, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Execute runs Validate, Build and Get.
func (r *SnapToRoadsRequest) Execute(ctx context.Context) (*SnapResponse, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if err := r.Build(); err != nil {
		return nil, err
	}
	return r.Get(ctx)
}
