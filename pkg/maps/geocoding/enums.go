package geocoding

import (
	"strconv"

	"github.com/mapsplatform/googlemaps/internal/codes"
	"github.com/mapsplatform/googlemaps/pkg/maps"
)

// Status is the top-level status of a Geocoding response.
type Status int

const (
	StatusOK Status = iota + 1
	StatusZeroResults
	StatusOverDailyLimit
	StatusOverQueryLimit
	StatusRequestDenied
	StatusInvalidRequest
	StatusUnknownError
)

var statusCodes = codes.New(
	codes.Entry[Status]{Value: StatusOK, Code: "OK", Label: "OK"},
	codes.Entry[Status]{Value: StatusZeroResults, Code: "ZERO_RESULTS", Label: "Zero Results"},
	codes.Entry[Status]{Value: StatusOverDailyLimit, Code: "OVER_DAILY_LIMIT", Label: "Over Daily Limit"},
	codes.Entry[Status]{Value: StatusOverQueryLimit, Code: "OVER_QUERY_LIMIT", Label: "Over Query Limit"},
	codes.Entry[Status]{Value: StatusRequestDenied, Code: "REQUEST_DENIED", Label: "Request Denied"},
	codes.Entry[Status]{Value: StatusInvalidRequest, Code: "INVALID_REQUEST", Label: "Invalid Request"},
	codes.Entry[Status]{Value: StatusUnknownError, Code: "UNKNOWN_ERROR", Label: "Unknown Error"},
)

// Code returns the wire code.
func (s Status) Code() string { return statusCodes.Code(s) }

func (s Status) String() string { return statusCodes.Label(s) }

func (s Status) MarshalText() ([]byte, error) {
	code := statusCodes.Code(s)
	if code == "" {
		return nil, maps.NewInvalidCodeError(maps.APIGeocoding, maps.KindInvalidStatusCode, strconv.Itoa(int(s)), statusCodes.Codes())
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
	return 0, maps.NewInvalidCodeError(maps.APIGeocoding, maps.KindInvalidStatusCode, code, statusCodes.Codes())
}

// LocationType describes how precise a geocoded location is.
type LocationType int

const (
	LocationTypeRooftop LocationType = iota + 1
	LocationTypeRangeInterpolated
	LocationTypeGeometricCenter
	LocationTypeApproximate
)

var locationTypeCodes = codes.New(
	codes.Entry[LocationType]{Value: LocationTypeRooftop, Code: "ROOFTOP", Label: "Rooftop"},
	codes.Entry[LocationType]{Value: LocationTypeRangeInterpolated, Code: "RANGE_INTERPOLATED", Label: "Range Interpolated"},
	codes.Entry[LocationType]{Value: LocationTypeGeometricCenter, Code: "GEOMETRIC_CENTER", Label: "Geometric Center"},
	codes.Entry[LocationType]{Value: LocationTypeApproximate, Code: "APPROXIMATE", Label: "Approximate"},
)

// Code returns the wire code.
func (l LocationType) Code() string { return locationTypeCodes.Code(l) }

func (l LocationType) String() string { return locationTypeCodes.Label(l) }

func (l LocationType) MarshalText() ([]byte, error) {
	code := locationTypeCodes.Code(l)
	if code == "" {
		return nil, maps.NewInvalidCodeError(maps.APIGeocoding, maps.KindInvalidLocationTypeCode, strconv.Itoa(int(l)), locationTypeCodes.Codes())
	}
	return []byte(code), nil
}

func (l *LocationType) UnmarshalText(text []byte) error {
	v, err := ParseLocationType(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// ParseLocationType converts a wire code such as "ROOFTOP" into a LocationType.
func ParseLocationType(code string) (LocationType, error) {
	if v, ok := locationTypeCodes.Parse(code); ok {
		return v, nil
	}
	return 0, maps.NewInvalidCodeError(maps.APIGeocoding, maps.KindInvalidLocationTypeCode, code, locationTypeCodes.Codes())
}

// ComponentType is a component filter key for forward geocoding.
type ComponentType int

const (
	ComponentRoute ComponentType = iota + 1
	ComponentLocality
	ComponentAdministrativeArea
	ComponentPostalCode
	ComponentCountry
)

var componentTypeCodes = codes.New(
	codes.Entry[ComponentType]{Value: ComponentRoute, Code: "route", Label: "Route"},
	codes.Entry[ComponentType]{Value: ComponentLocality, Code: "locality", Label: "Locality"},
	codes.Entry[ComponentType]{Value: ComponentAdministrativeArea, Code: "administrative_area", Label: "Administrative Area"},
	codes.Entry[ComponentType]{Value: ComponentPostalCode, Code: "postal_code", Label: "Postal Code"},
	codes.Entry[ComponentType]{Value: ComponentCountry, Code: "country", Label: "Country"},
)

// Code returns the wire code.
func (c ComponentType) Code() string { return componentTypeCodes.Code(c) }

func (c ComponentType) String() string { return componentTypeCodes.Label(c) }

func (c ComponentType) MarshalText() ([]byte, error) {
	code := componentTypeCodes.Code(c)
	if code == "" {
		return nil, maps.NewInvalidCodeError(maps.APIGeocoding, maps.KindInvalidComponentCode, strconv.Itoa(int(c)), componentTypeCodes.Codes())
	}
	return []byte(code), nil
}

func (c *ComponentType) UnmarshalText(text []byte) error {
	v, err := ParseComponentType(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseComponentType converts a wire code such as "route" into a ComponentType.
func ParseComponentType(code string) (ComponentType, error) {
	if v, ok := componentTypeCodes.Parse(code); ok {
		return v, nil
	}
	return 0, maps.NewInvalidCodeError(maps.APIGeocoding, maps.KindInvalidComponentCode, code, componentTypeCodes.Codes())
}
