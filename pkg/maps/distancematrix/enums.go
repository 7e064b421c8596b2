package distancematrix

import (
	"strconv"

	"github.com/mapsplatform/googlemaps/internal/codes"
	"github.com/mapsplatform/googlemaps/pkg/maps"
)

// Status is the top-level status of a Distance Matrix response.
type Status int

const (
	StatusOK Status = iota + 1
	StatusInvalidRequest
	StatusMaxElementsExceeded
	StatusMaxDimensionsExceeded
	StatusOverDailyLimit
	StatusOverQueryLimit
	StatusRequestDenied
	StatusUnknownError
)

var statusCodes = codes.New(
	codes.Entry[Status]{Value: StatusOK, Code: "OK", Label: "OK"},
	codes.Entry[Status]{Value: StatusInvalidRequest, Code: "INVALID_REQUEST", Label: "Invalid Request"},
	codes.Entry[Status]{Value: StatusMaxElementsExceeded, Code: "MAX_ELEMENTS_EXCEEDED", Label: "Max Elements Exceeded"},
	codes.Entry[Status]{Value: StatusMaxDimensionsExceeded, Code: "MAX_DIMENSIONS_EXCEEDED", Label: "Max Dimensions Exceeded"},
	codes.Entry[Status]{Value: StatusOverDailyLimit, Code: "OVER_DAILY_LIMIT", Label: "Over Daily Limit"},
	codes.Entry[Status]{Value: StatusOverQueryLimit, Code: "OVER_QUERY_LIMIT", Label: "Over Query Limit"},
	codes.Entry[Status]{Value: StatusRequestDenied, Code: "REQUEST_DENIED", Label: "Request Denied"},
	codes.Entry[Status]{Value: StatusUnknownError, Code: "UNKNOWN_ERROR", Label: "Unknown Error"},
)

// Code returns the wire code.
func (s Status) Code() string { return statusCodes.Code(s) }

func (s Status) String() string { return statusCodes.Label(s) }

func (s Status) MarshalText() ([]byte, error) {
	code := statusCodes.Code(s)
	if code == "" {
		return nil, maps.NewInvalidCodeError(maps.APIDistanceMatrix, maps.KindInvalidStatusCode, strconv.Itoa(int(s)), statusCodes.Codes())
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

// ParseStatus converts a wire code such as "OK" into a Status.
func ParseStatus(code string) (Status, error) {
	if v, ok := statusCodes.Parse(code); ok {
		return v, nil
	}
	return 0, maps.NewInvalidCodeError(maps.APIDistanceMatrix, maps.KindInvalidStatusCode, code, statusCodes.Codes())
}

// ElementStatus is the status of a single origin and destination pairing.
type ElementStatus int

const (
	ElementStatusOK ElementStatus = iota + 1
	ElementStatusNotFound
	ElementStatusZeroResults
	ElementStatusMaxRouteLengthExceeded
)

var elementStatusCodes = codes.New(
	codes.Entry[ElementStatus]{Value: ElementStatusOK, Code: "OK", Label: "OK"},
	codes.Entry[ElementStatus]{Value: ElementStatusNotFound, Code: "NOT_FOUND", Label: "Not Found"},
	codes.Entry[ElementStatus]{Value: ElementStatusZeroResults, Code: "ZERO_RESULTS", Label: "Zero Results"},
	codes.Entry[ElementStatus]{Value: ElementStatusMaxRouteLengthExceeded, Code: "MAX_ROUTE_LENGTH_EXCEEDED", Label: "Max Route Length Exceeded"},
)

// Code returns the wire code.
func (e ElementStatus) Code() string { return elementStatusCodes.Code(e) }

func (e ElementStatus) String() string { return elementStatusCodes.Label(e) }

func (e ElementStatus) MarshalText() ([]byte, error) {
	code := elementStatusCodes.Code(e)
	if code == "" {
		return nil, maps.NewInvalidCodeError(maps.APIDistanceMatrix, maps.KindInvalidElementStatusCode, strconv.Itoa(int(e)), elementStatusCodes.Codes())
	}
	return []byte(code), nil
}

func (e *ElementStatus) UnmarshalText(text []byte) error {
	v, err := ParseElementStatus(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// ParseElementStatus converts a wire code such as "OK" into a ElementStatus.
func ParseElementStatus(code string) (ElementStatus, error) {
	if v, ok := elementStatusCodes.Parse(code); ok {
		return v, nil
	}
	return 0, maps.NewInvalidCodeError(maps.APIDistanceMatrix, maps.KindInvalidElementStatusCode, code, elementStatusCodes.Codes())
}
