// Package roads implements the Google Maps Roads API: snapping a GPS trace
// to the road network and finding the nearest road segment to points.
//
// The Roads API lives on its own host and reports failures as non-2xx
// replies carrying a Google RPC error body instead of a status field.
package roads

import (
	"context"
	"encoding/json"

	"github.com/mapsplatform/googlemaps/pkg/maps"
)

// MaxPoints is the most points a single request may carry.
const MaxPoints = 100

var (
	snapEndpoint    = maps.Endpoint{API: maps.APIRoads, Host: maps.HostRoads, Path: "/v1/snapToRoads"}
	nearestEndpoint = maps.Endpoint{API: maps.APIRoads, Host: maps.HostRoads, Path: "/v1/nearestRoads"}
)

// SnappedPoint is a point moved onto a road. OriginalIndex is the index of
// the request point it was snapped from, nil for points added by
// interpolation.
type SnappedPoint struct {
	Location      Location `json:"location"`
	OriginalIndex *int     `json:"originalIndex,omitempty"`
	PlaceID       string   `json:"placeId"`
}

// Location is a coordinate as the Roads API spells it.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LatLng converts the location to the type used by the other APIs.
func (l Location) LatLng() maps.LatLng {
	return maps.LatLng{Lat: l.Latitude, Lng: l.Longitude}
}

type errorBody struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func checkPoints(points []maps.LatLng) error {
	switch n := len(points); {
	case n == 0:
		return maps.NewPreconditionError(maps.APIRoads, maps.KindPointsRequired)
	case n > MaxPoints:
		return maps.NewCountError(maps.APIRoads, maps.KindTooManyPoints, n, MaxPoints)
	}
	return nil
}

func fetch(ctx context.Context, client *maps.Client, ep maps.Endpoint, lc *maps.Lifecycle, v any) error {
	query, err := lc.Begin()
	if err != nil {
		return err
	}

	reply, err := client.Fetch(ctx, ep, query)
	if err != nil {
		return err
	}
	if !reply.OK() {
		return replyError(reply)
	}
	return maps.DecodeJSON(maps.APIRoads, reply.Body, v)
}

// replyError turns a non-2xx reply into a service error when the body names a
// known status, and into an HTTP error otherwise.
func replyError(reply *maps.Reply) error {
	var body errorBody
	if err := json.Unmarshal(reply.Body, &body); err != nil || body.Error.Status == "" {
		return maps.NewUnsuccessfulError(maps.APIRoads, reply.StatusCode)
	}
	status, err := ParseStatus(body.Error.Status)
	if err != nil {
		return maps.NewUnsuccessfulError(maps.APIRoads, reply.StatusCode)
	}

	e := maps.NewServiceError(maps.APIRoads, status.Code(), &body.Error.Message)
	e.HTTPStatus = reply.StatusCode
	return e
}
