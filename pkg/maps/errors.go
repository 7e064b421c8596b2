package maps

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// API names the Google Maps Platform surface an error originated from.
type API string

// API surfaces covered by this module.
const (
	APIPlatform       API = "Google Maps Platform API"
	APIDirections     API = "Google Maps Directions API"
	APIDistanceMatrix API = "Google Maps Distance Matrix API"
	APIGeocoding      API = "Google Maps Geocoding API"
	APIRoads          API = "Google Maps Roads API"
)

// Error categories. Every *Error matches exactly one of these with errors.Is.
var (
	// ErrPrecondition indicates the request was rejected before any network call.
	ErrPrecondition = errors.New("request precondition violated")
	// ErrServiceStatus indicates the service answered with a non-OK status.
	ErrServiceStatus = errors.New("service returned an error status")
	// ErrTransport indicates the HTTP exchange itself failed.
	ErrTransport = errors.New("transport failure")
	// ErrDecode indicates the response body did not match the expected schema.
	ErrDecode = errors.New("response could not be decoded")
	// ErrSequence indicates request methods were called out of order.
	ErrSequence = errors.New("request methods called out of order")
	// ErrInvalidCode indicates a string outside an enumeration's vocabulary.
	ErrInvalidCode = errors.New("invalid code")
)

// Kind identifies a single error variant. Kinds satisfy the error interface so
// they can be used as errors.Is targets.
type Kind string

func (k Kind) Error() string { return string(k) }

// Client-side precondition violations.
const (
	KindArrivalTimeIsForTransitOnly            Kind = "ArrivalTimeIsForTransitOnly"
	KindEitherDepartureTimeOrArrivalTime       Kind = "EitherDepartureTimeOrArrivalTime"
	KindEitherWaypointsOrTransitMode           Kind = "EitherWaypointsOrTransitMode"
	KindTooManyWaypoints                       Kind = "TooManyWaypoints"
	KindEitherAlternativesOrWaypoints          Kind = "EitherAlternativesOrWaypoints"
	KindEitherRestrictionsOrWaypoints          Kind = "EitherRestrictionsOrWaypoints"
	KindTransitModeIsForTransitOnly            Kind = "TransitModeIsForTransitOnly"
	KindTransitRoutePreferenceIsForTransitOnly Kind = "TransitRoutePreferenceIsForTransitOnly"
	KindAddressOrComponentsRequired            Kind = "AddressOrComponentsRequired"
	KindOriginsAndDestinationsRequired         Kind = "OriginsAndDestinationsRequired"
	KindPointsRequired                         Kind = "PointsRequired"
	KindTooManyPoints                          Kind = "TooManyPoints"
	KindInvalidLatitude                        Kind = "InvalidLatitude"
	KindInvalidLongitude                       Kind = "InvalidLongitude"
)

// Unrecognized codes.
const (
	KindInvalidAvoidCode                  Kind = "InvalidAvoidCode"
	KindInvalidComponentCode              Kind = "InvalidComponentCode"
	KindInvalidElementStatusCode          Kind = "InvalidElementStatusCode"
	KindInvalidGeocoderStatusCode         Kind = "InvalidGeocoderStatusCode"
	KindInvalidLanguageCode               Kind = "InvalidLanguageCode"
	KindInvalidLatLngString               Kind = "InvalidLatLngString"
	KindInvalidLocationTypeCode           Kind = "InvalidLocationTypeCode"
	KindInvalidManeuverTypeCode           Kind = "InvalidManeuverTypeCode"
	KindInvalidPlaceTypeCode              Kind = "InvalidPlaceTypeCode"
	KindInvalidRegionCode                 Kind = "InvalidRegionCode"
	KindInvalidStatusCode                 Kind = "InvalidStatusCode"
	KindInvalidTrafficModelCode           Kind = "InvalidTrafficModelCode"
	KindInvalidTransitModeCode            Kind = "InvalidTransitModeCode"
	KindInvalidTransitRoutePreferenceCode Kind = "InvalidTransitRoutePreferenceCode"
	KindInvalidTravelModeCode             Kind = "InvalidTravelModeCode"
	KindInvalidUnitSystemCode             Kind = "InvalidUnitSystemCode"
	KindInvalidVehicleTypeCode            Kind = "InvalidVehicleTypeCode"
)

// Server, transport, decode and sequencing failures.
const (
	KindGoogleMapsService      Kind = "GoogleMapsService"
	KindHTTPUnsuccessful       Kind = "HttpUnsuccessful"
	KindRequestFailed          Kind = "RequestFailed"
	KindRateLimiterWait        Kind = "RateLimiterWait"
	KindDecode                 Kind = "Decode"
	KindRequestNotValidated    Kind = "RequestNotValidated"
	KindQueryNotBuilt          Kind = "QueryNotBuilt"
	KindRequestAlreadyExecuted Kind = "RequestAlreadyExecuted"
)

var categories = map[Kind]error{
	KindArrivalTimeIsForTransitOnly:            ErrPrecondition,
	KindEitherDepartureTimeOrArrivalTime:       ErrPrecondition,
	KindEitherWaypointsOrTransitMode:           ErrPrecondition,
	KindTooManyWaypoints:                       ErrPrecondition,
	KindEitherAlternativesOrWaypoints:          ErrPrecondition,
	KindEitherRestrictionsOrWaypoints:          ErrPrecondition,
	KindTransitModeIsForTransitOnly:            ErrPrecondition,
	KindTransitRoutePreferenceIsForTransitOnly: ErrPrecondition,
	KindAddressOrComponentsRequired:            ErrPrecondition,
	KindOriginsAndDestinationsRequired:         ErrPrecondition,
	KindPointsRequired:                         ErrPrecondition,
	KindTooManyPoints:                          ErrPrecondition,
	KindInvalidLatitude:                        ErrPrecondition,
	KindInvalidLongitude:                       ErrPrecondition,

	KindInvalidAvoidCode:                  ErrInvalidCode,
	KindInvalidComponentCode:              ErrInvalidCode,
	KindInvalidElementStatusCode:          ErrInvalidCode,
	KindInvalidGeocoderStatusCode:         ErrInvalidCode,
	KindInvalidLanguageCode:               ErrInvalidCode,
	KindInvalidLatLngString:               ErrInvalidCode,
	KindInvalidLocationTypeCode:           ErrInvalidCode,
	KindInvalidManeuverTypeCode:           ErrInvalidCode,
	KindInvalidPlaceTypeCode:              ErrInvalidCode,
	KindInvalidRegionCode:                 ErrInvalidCode,
	KindInvalidStatusCode:                 ErrInvalidCode,
	KindInvalidTrafficModelCode:           ErrInvalidCode,
	KindInvalidTransitModeCode:            ErrInvalidCode,
	KindInvalidTransitRoutePreferenceCode: ErrInvalidCode,
	KindInvalidTravelModeCode:             ErrInvalidCode,
	KindInvalidUnitSystemCode:             ErrInvalidCode,
	KindInvalidVehicleTypeCode:            ErrInvalidCode,

	KindGoogleMapsService:      ErrServiceStatus,
	KindHTTPUnsuccessful:       ErrTransport,
	KindRequestFailed:          ErrTransport,
	KindRateLimiterWait:        ErrTransport,
	KindDecode:                 ErrDecode,
	KindRequestNotValidated:    ErrSequence,
	KindQueryNotBuilt:          ErrSequence,
	KindRequestAlreadyExecuted: ErrSequence,
}

// Error is the single error type returned by every request in this module.
// Kind selects the variant; the remaining fields carry exactly the data the
// variant's message cites.
type Error struct {
	API  API
	Kind Kind

	// Values are the offending values, in the order the message cites them.
	Values []string
	// Count is the offending item count (waypoints, points).
	Count int
	// Limit is the maximum the service accepts for Count.
	Limit int
	// Valid lists the accepted codes for invalid-code errors.
	Valid []string

	// Status is the status code reported by the service.
	Status string
	// ServerMessage is the service's own explanation, empty when none was sent.
	ServerMessage string
	// HTTPStatus is the HTTP status of an unsuccessful exchange.
	HTTPStatus int

	// Err is the underlying transport or decode error, if any.
	Err error
}

// Category returns the category sentinel the error belongs to.
func (e *Error) Category() error {
	return categories[e.Kind]
}

// Is matches both the error's Kind and its category sentinel.
func (e *Error) Is(target error) bool {
	if k, ok := target.(Kind); ok {
		return k == e.Kind
	}
	cat := e.Category()
	return cat != nil && target == cat
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsRetryable returns true if the failure is transient and a fresh request may
// succeed. The library never retries on its own; this is a hint for callers.
func (e *Error) IsRetryable() bool {
	switch e.Kind {
	case KindGoogleMapsService:
		switch e.Status {
		case "OVER_QUERY_LIMIT", "UNKNOWN_ERROR", "RESOURCE_EXHAUSTED", "UNAVAILABLE", "INTERNAL":
			return true
		}
		return false
	case KindHTTPUnsuccessful:
		return e.HTTPStatus == http.StatusTooManyRequests || e.HTTPStatus >= 500
	case KindRequestFailed:
		return true
	default:
		return false
	}
}

func (e *Error) Error() string {
	if e.Kind == KindGoogleMapsService {
		return string(e.API) + " service: " + e.serviceMessage()
	}
	return string(e.API) + " client: " + e.clientMessage()
}

func (e *Error) value(i int) string {
	if i < len(e.Values) {
		return e.Values[i]
	}
	return ""
}

func (e *Error) serviceMessage() string {
	if e.ServerMessage != "" {
		return e.ServerMessage
	}
	if canned, ok := cannedStatusMessages[e.Status]; ok {
		return canned
	}
	return fmt.Sprintf("Unrecognized status `%s`.", e.Status)
}

func (e *Error) clientMessage() string {
	switch e.Kind {
	case KindArrivalTimeIsForTransitOnly:
		return fmt.Sprintf("The WithArrivalTime() method may only be used when WithTravelMode() is set to `transit`. "+
			"The travel mode is set to `%s` and the arrival time is set to `%s`. "+
			"Try again either with a travel mode of `transit` or no arrival time.", e.value(0), e.value(1))
	case KindEitherDepartureTimeOrArrivalTime:
		return fmt.Sprintf("The WithDepartureTime() method cannot be used when WithArrivalTime() has been set. "+
			"The arrival time is set to `%s` and the departure time is set to `%s`. "+
			"Try again either with no arrival time or no departure time.", e.value(0), e.value(1))
	case KindEitherWaypointsOrTransitMode:
		return fmt.Sprintf("The WithWaypoints() method cannot be used when WithTravelMode() is set to `transit`. "+
			"%d waypoint(s) are set. "+
			"Try again either with a different travel mode or no waypoints.", e.Count)
	case KindTooManyWaypoints:
		return fmt.Sprintf("The maximum allowed number of waypoints is %d plus the origin and destination. "+
			"%d waypoints are set. "+
			"Try again with %d fewer waypoint(s).", e.Limit, e.Count, e.Count-e.Limit)
	case KindEitherAlternativesOrWaypoints:
		return fmt.Sprintf("The WithAlternatives() method cannot be set to `true` if WithWaypoints() has been set. "+
			"%d waypoint(s) are set. "+
			"Try again either with no waypoints or no alternatives.", e.Count)
	case KindEitherRestrictionsOrWaypoints:
		return fmt.Sprintf("The WithRestrictions() method cannot be used when WithWaypoints() has been set. "+
			"%d waypoint(s) are set and the restriction(s) are set to `%s`. "+
			"Try again either with no waypoints or no restrictions.", e.Count, e.value(0))
	case KindTransitModeIsForTransitOnly:
		return fmt.Sprintf("The WithTransitModes() method may only be used when WithTravelMode() is set to `transit`. "+
			"The travel mode is set to `%s` and the transit mode(s) are set to `%s`. "+
			"Try again either with a travel mode of `transit` or no transit modes.", e.value(0), e.value(1))
	case KindTransitRoutePreferenceIsForTransitOnly:
		return fmt.Sprintf("The WithTransitRoutePreference() method may only be used when WithTravelMode() is set to `transit`. "+
			"The travel mode is set to `%s` and the transit route preference is set to `%s`. "+
			"Try again either with a travel mode of `transit` or no transit route preference.", e.value(0), e.value(1))
	case KindAddressOrComponentsRequired:
		return "Forward geocoding requests must be for an address or specific components. " +
			"Ensure that the WithAddress() method, the WithComponents() method, or both are used."
	case KindOriginsAndDestinationsRequired:
		return fmt.Sprintf("At least one origin and one destination are required. "+
			"%s origin(s) and %s destination(s) are set.", e.value(0), e.value(1))
	case KindPointsRequired:
		return "At least one point is required."
	case KindTooManyPoints:
		return fmt.Sprintf("The maximum allowed number of points is %d. "+
			"%d points are set. "+
			"Try again with %d fewer point(s).", e.Limit, e.Count, e.Count-e.Limit)
	case KindInvalidLatitude:
		return fmt.Sprintf("`%s` from the `%s,%s` pair is an invalid latitudinal value. "+
			"A latitude must be between -90.0° and 90.0°.", e.value(0), e.value(0), e.value(1))
	case KindInvalidLongitude:
		return fmt.Sprintf("`%s` from the `%s,%s` pair is an invalid longitudinal value. "+
			"A longitude must be between -180.0° and 180.0°.", e.value(1), e.value(0), e.value(1))
	case KindInvalidLatLngString:
		return fmt.Sprintf("`%s` is an invalid `LatLng` string. Expected `latitude,longitude`.", e.value(0))
	case KindInvalidLanguageCode:
		return fmt.Sprintf("`%s` is not a recognized language code. "+
			"For a list of supported languages see https://developers.google.com/maps/faq#languagesupport", e.value(0))
	case KindInvalidRegionCode:
		return fmt.Sprintf("`%s` is not a recognized region code. "+
			"For a list of supported regions see https://developers.google.com/maps/coverage", e.value(0))
	case KindInvalidPlaceTypeCode:
		return fmt.Sprintf("`%s` is not a recognized place type code. "+
			"For a list of supported place types see https://developers.google.com/places/web-service/supported_types", e.value(0))
	case KindHTTPUnsuccessful:
		return fmt.Sprintf("Could not successfully query the Google Maps Platform service. "+
			"The service last responded with a `%d %s` status.", e.HTTPStatus, http.StatusText(e.HTTPStatus))
	case KindRequestFailed:
		return fmt.Sprintf("The HTTP request could not be completed: %v", e.Err)
	case KindRateLimiterWait:
		return fmt.Sprintf("The request was abandoned while waiting for the client-side rate limiter: %v", e.Err)
	case KindDecode:
		return fmt.Sprintf("The response could not be decoded: %v", e.Err)
	case KindRequestNotValidated:
		return "The request must be validated before a query string may be built. " +
			"Ensure the Validate() method is called before Build()."
	case KindQueryNotBuilt:
		return "The query string must be built before the request may be sent to the Google Maps Platform. " +
			"Ensure the Build() method is called before Get()."
	case KindRequestAlreadyExecuted:
		return "This request has already been sent or has failed validation. " +
			"Requests are single-use; construct a new request to query the service again."
	}
	if noun, ok := codeNouns[e.Kind]; ok {
		return fmt.Sprintf("`%s` is not a valid %s code. Valid codes are %s.", e.value(0), noun, listCodes(e.Valid))
	}
	return string(e.Kind)
}

var codeNouns = map[Kind]string{
	KindInvalidAvoidCode:                  "restrictions",
	KindInvalidComponentCode:              "component filter",
	KindInvalidElementStatusCode:          "element status",
	KindInvalidGeocoderStatusCode:         "geocoder status",
	KindInvalidLocationTypeCode:           "location type",
	KindInvalidManeuverTypeCode:           "maneuver type",
	KindInvalidStatusCode:                 "status",
	KindInvalidTrafficModelCode:           "traffic model",
	KindInvalidTransitModeCode:            "transit mode",
	KindInvalidTransitRoutePreferenceCode: "transit route preference",
	KindInvalidTravelModeCode:             "travel mode",
	KindInvalidUnitSystemCode:             "unit system",
	KindInvalidVehicleTypeCode:            "vehicle type",
}

// listCodes renders `a`, `b`, and `c`.
func listCodes(codes []string) string {
	quoted := make([]string, len(codes))
	for i, c := range codes {
		quoted[i] = "`" + c + "`"
	}
	switch len(quoted) {
	case 0:
		return "none"
	case 1:
		return quoted[0]
	case 2:
		return quoted[0] + " and " + quoted[1]
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", and " + quoted[len(quoted)-1]
}

var cannedStatusMessages = map[string]string{
	"OK":                        "Ok. The request was successful.",
	"INVALID_REQUEST":           "Invalid request. The provided request was invalid; a parameter may be missing or malformed.",
	"MAX_ELEMENTS_EXCEEDED":     "Maximum elements exceeded. The product of origins and destinations exceeds the per-query limit.",
	"MAX_DIMENSIONS_EXCEEDED":   "Maximum dimensions exceeded. The number of origins or destinations exceeds the per-query limit.",
	"MAX_ROUTE_LENGTH_EXCEEDED": "Maximum route length exceeded. The requested route is too long and cannot be processed.",
	"MAX_WAYPOINTS_EXCEEDED":    "Maximum waypoints exceeded. Too many waypoints were provided in the request.",
	"NOT_FOUND":                 "Not found. At least one of the locations specified in the request could not be geocoded.",
	"OVER_DAILY_LIMIT":          "Over daily limit. Usage cap has been exceeded, API key is invalid, billing has not been enabled, or method of payment is no longer valid.",
	"OVER_QUERY_LIMIT":          "Over query limit. Requestor has exceeded quota.",
	"REQUEST_DENIED":            "Request denied. Service did not complete the request.",
	"UNKNOWN_ERROR":             "Unknown error. The request could not be processed due to a server error; it may succeed if you try again.",
	"ZERO_RESULTS":              "Zero results. The request was valid but no results were found.",
	"INVALID_ARGUMENT":          "Invalid argument. The API key is not valid or the request contained an invalid parameter.",
	"PERMISSION_DENIED":         "Permission denied. The API key is missing or the API is not enabled for this project.",
	"RESOURCE_EXHAUSTED":        "Resource exhausted. The request exceeded a quota or rate limit.",
	"UNAVAILABLE":               "Unavailable. The service is temporarily unavailable.",
	"INTERNAL":                  "Internal error. The service encountered an internal error.",
}

// NewInvalidCodeError reports a code outside an enumeration's vocabulary.
func NewInvalidCodeError(api API, kind Kind, code string, valid []string) *Error {
	return &Error{API: api, Kind: kind, Values: []string{code}, Valid: valid}
}

// NewPreconditionError reports a client-side rule violation. values are cited
// in message order.
func NewPreconditionError(api API, kind Kind, values ...string) *Error {
	return &Error{API: api, Kind: kind, Values: values}
}

// NewCountError reports a violation whose message cites an item count.
func NewCountError(api API, kind Kind, count, limit int, values ...string) *Error {
	return &Error{API: api, Kind: kind, Count: count, Limit: limit, Values: values}
}

// NewServiceError wraps a non-OK status reported by the service. message is
// the service's error_message and may be nil.
func NewServiceError(api API, status string, message *string) *Error {
	e := &Error{API: api, Kind: KindGoogleMapsService, Status: status}
	if message != nil {
		e.ServerMessage = *message
	}
	return e
}

// NewUnsuccessfulError reports a non-2xx HTTP reply.
func NewUnsuccessfulError(api API, httpStatus int) *Error {
	return &Error{API: api, Kind: KindHTTPUnsuccessful, HTTPStatus: httpStatus}
}

// NewDecodeError wraps a JSON decoding failure.
func NewDecodeError(api API, err error) *Error {
	return &Error{API: api, Kind: KindDecode, Err: err}
}

// NewSequenceError reports a request lifecycle method called out of order.
func NewSequenceError(api API, kind Kind) *Error {
	return &Error{API: api, Kind: kind}
}
