package roads

import (
	"strconv"

	"github.com/mapsplatform/googlemaps/internal/codes"
	"github.com/mapsplatform/googlemaps/pkg/maps"
)

// Status is the RPC-style status carried in a Roads API error body.
type Status int

const (
	StatusInvalidArgument Status = iota + 1
	StatusPermissionDenied
	StatusNotFound
	StatusResourceExhausted
	StatusUnavailable
	StatusInternal
)

var statusCodes = codes.New(
	codes.Entry[Status]{Value: StatusInvalidArgument, Code: "INVALID_ARGUMENT", Label: "Invalid Argument"},
	codes.Entry[Status]{Value: StatusPermissionDenied, Code: "PERMISSION_DENIED", Label: "Permission Denied"},
	codes.Entry[Status]{Value: StatusNotFound, Code: "NOT_FOUND", Label: "Not Found"},
	codes.Entry[Status]{Value: StatusResourceExhausted, Code: "RESOURCE_EXHAUSTED", Label: "Resource Exhausted"},
	codes.Entry[Status]{Value: StatusUnavailable, Code: "UNAVAILABLE", Label: "Unavailable"},
	codes.Entry[Status]{Value: StatusInternal, Code: "INTERNAL", Label: "Internal"},
)

// Code returns the wire code.
func (s Status) Code() string { return statusCodes.Code(s) }

func (s Status) String() string { return statusCodes.Label(s) }

func (s Status) MarshalText() ([]byte, error) {
	code := statusCodes.Code(s)
	if code == "" {
		return nil, maps.NewInvalidCodeError(maps.APIRoads, maps.KindInvalidStatusCode, strconv.Itoa(int(s)), statusCodes.Codes())
	}
	return []byte(code), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	v, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseStatus converts a wire code such as "INVALID_ARGUMENT" into a Status.
func ParseStatus(code string) (Status, error) {
	if v, ok := statusCodes.Parse(code); ok {
		return v, nil
	}
	return 0, maps.NewInvalidCodeError(maps.APIRoads, maps.KindInvalidStatusCode, code, statusCodes.Codes())
}
