// Package polyline implements Google's encoded polyline algorithm format at
// the precision of 5 decimal places used by every Maps web service.
//
// See https://developers.google.com/maps/documentation/utilities/polylinealgorithm
package polyline

import (
	"errors"
	"math"
	"strings"

	"github.com/mapsplatform/googlemaps/pkg/maps"
)

const factor = 1e5

// ErrMalformed is returned for input that ends inside a value or contains
// bytes outside the encoding alphabet.
var ErrMalformed = errors.New("polyline: malformed encoding")

// Decode turns an encoded polyline into its points. An empty string decodes
// to nil.
func Decode(encoded string) ([]maps.LatLng, error) {
	if encoded == "" {
		return nil, nil
	}

	points := make([]maps.LatLng, 0, len(encoded)/4)
	var lat, lng, i int
	for i < len(encoded) {
		dLat, next, err := decodeValue(encoded, i)
		if err != nil {
			return nil, err
		}
		dLng, next, err := decodeValue(encoded, next)
		if err != nil {
			return nil, err
		}
		i = next
		lat += dLat
		lng += dLng
		points = append(points, maps.LatLng{Lat: float64(lat) / factor, Lng: float64(lng) / factor})
	}
	return points, nil
}

// decodeValue reads one zig-zag varint starting at i and returns it with the
// index of the following byte.
func decodeValue(encoded string, i int) (int, int, error) {
	var result, shift int
	for {
		if i >= len(encoded) {
			return 0, 0, ErrMalformed
		}
		b := int(encoded[i]) - 63
		i++
		if b < 0 || b > 0x3f {
			return 0, 0, ErrMalformed
		}
		result |= (b & 0x1f) << shift
		shift += 5
		if b < 0x20 {
			break
		}
	}
	if result&1 != 0 {
		return ^(result >> 1), i, nil
	}
	return result >> 1, i, nil
}

// Encode renders points as an encoded polyline.
func Encode(points []maps.LatLng) string {
	var sb strings.Builder
	sb.Grow(len(points) * 8)

	var prevLat, prevLng int
	buf := make([]byte, 0, 16)
	for _, p := range points {
		lat := int(math.Round(p.Lat * factor))
		lng := int(math.Round(p.Lng * factor))
		buf = encodeValue(buf[:0], lat-prevLat)
		buf = encodeValue(buf, lng-prevLng)
		sb.Write(buf)
		prevLat, prevLng = lat, lng
	}
	return sb.String()
}

func encodeValue(buf []byte, v int) []byte {
	if v < 0 {
		v = ^(v << 1)
	} else {
		v <<= 1
	}
	for v >= 0x20 {
		buf = append(buf, byte((v&0x1f)|0x20)+63)
		v >>= 5
	}
	return append(buf, byte(v)+63)
}

const earthRadiusMeters = 6371000

// Length returns the great-circle length of the path in meters.
func Length(points []maps.LatLng) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += haversine(points[i-1], points[i])
	}
	return total
}

func haversine(a, b maps.LatLng) float64 {
	const rad = math.Pi / 180
	dLat := (b.Lat - a.Lat) * rad
	dLng := (b.Lng - a.Lng) * rad
	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(a.Lat*rad)*math.Cos(b.Lat*rad)*sinLng*sinLng
	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(h))
}
