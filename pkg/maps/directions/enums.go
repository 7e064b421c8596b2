package directions

import (
	"strconv"
	"strings"

	"github.com/mapsplatform/googlemaps/internal/codes"
	"github.com/mapsplatform/googlemaps/pkg/maps"
)

// TravelMode is the means of transport used to compute a route.
type TravelMode int

const (
	TravelModeDriving TravelMode = iota + 1
	TravelModeWalking
	TravelModeBicycling
	TravelModeTransit
)

// DefaultTravelMode is what Google assumes when the parameter is omitted.
const DefaultTravelMode = TravelModeDriving

var travelModeCodes = codes.New(
	codes.Entry[TravelMode]{Value: TravelModeDriving, Code: "driving", Label: "Driving"},
	codes.Entry[TravelMode]{Value: TravelModeWalking, Code: "walking", Label: "Walking"},
	codes.Entry[TravelMode]{Value: TravelModeBicycling, Code: "bicycling", Label: "Bicycling"},
	codes.Entry[TravelMode]{Value: TravelModeTransit, Code: "transit", Label: "Transit"},
)

// Code returns the wire code.
func (m TravelMode) Code() string { return travelModeCodes.Code(m) }

func (m TravelMode) String() string { return travelModeCodes.Label(m) }

func (m TravelMode) MarshalText() ([]byte, error) {
	code := travelModeCodes.Code(m)
	if code == "" {
		return nil, maps.NewInvalidCodeError(maps.APIDirections, maps.KindInvalidTravelModeCode, strconv.Itoa(int(m)), travelModeCodes.Codes())
	}
	return []byte(code), nil
}

func (m *TravelMode) UnmarshalText(text []byte) error {
	v, err := ParseTravelMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// ParseTravelMode converts a wire code such as "driving" into a TravelMode.
// Responses spell travel modes in upper case ("DRIVING"), which is accepted
// too; mixed case is not.
func ParseTravelMode(code string) (TravelMode, error) {
	if v, ok := travelModeCodes.Parse(code); ok {
		return v, nil
	}
	if lower := strings.ToLower(code); strings.ToUpper(lower) == code {
		if v, ok := travelModeCodes.Parse(lower); ok {
			return v, nil
		}
	}
	return 0, maps.NewInvalidCodeError(maps.APIDirections, maps.KindInvalidTravelModeCode, code, travelModeCodes.Codes())
}

// Avoid names a feature routes should avoid. Several may be combined.
type Avoid int

const (
	AvoidTolls Avoid = iota + 1
	AvoidHighways
	AvoidFerries
	AvoidIndoor
)

var avoidCodes = codes.New(
	codes.Entry[Avoid]{Value: AvoidTolls, Code: "tolls", Label: "Tolls"},
	codes.Entry[Avoid]{Value: AvoidHighways, Code: "highways", Label: "Highways"},
	codes.Entry[Avoid]{Value: AvoidFerries, Code: "ferries", Label: "Ferries"},
	codes.Entry[Avoid]{Value: AvoidIndoor, Code: "indoor", Label: "Indoor"},
)

// Code returns the wire code.
func (a Avoid) Code() string { return avoidCodes.Code(a) }

func (a Avoid) String() string { return avoidCodes.Label(a) }

func (a Avoid) MarshalText() ([]byte, error) {
	code := avoidCodes.Code(a)
	if code == "" {
		return nil, maps.NewInvalidCodeError(maps.APIDirections, maps.KindInvalidAvoidCode, strconv.Itoa(int(a)), avoidCodes.Codes())
	}
	return []byte(code), nil
}

func (a *Avoid) UnmarshalText(text []byte) error {
	v, err := ParseAvoid(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// ParseAvoid converts a wire code such as "tolls" into a Avoid.
func ParseAvoid(code string) (Avoid, error) {
	if v, ok := avoidCodes.Parse(code); ok {
		return v, nil
	}
	return 0, maps.NewInvalidCodeError(maps.APIDirections, maps.KindInvalidAvoidCode, code, avoidCodes.Codes())
}

// TrafficModel selects the assumptions used for duration_in_traffic.
type TrafficModel int

const (
	TrafficModelBestGuess TrafficModel = iota + 1
	TrafficModelOptimistic
	TrafficModelPessimistic
)

// DefaultTrafficModel is what Google assumes when the parameter is omitted.
const DefaultTrafficModel = TrafficModelBestGuess

var trafficModelCodes = codes.New(
	codes.Entry[TrafficModel]{Value: TrafficModelBestGuess, Code: "best_guess", Label: "Best Guess"},
	codes.Entry[TrafficModel]{Value: TrafficModelOptimistic, Code: "optimistic", Label: "Optimistic"},
	codes.Entry[TrafficModel]{Value: TrafficModelPessimistic, Code: "pessimistic", Label: "Pessimistic"},
)

// Code returns the wire code.
func (m TrafficModel) Code() string { return trafficModelCodes.Code(m) }

func (m TrafficModel) String() string { return trafficModelCodes.Label(m) }

func (m TrafficModel) MarshalText() ([]byte, error) {
	code := trafficModelCodes.Code(m)
	if code == "" {
		return nil, maps.NewInvalidCodeError(maps.APIDirections, maps.KindInvalidTrafficModelCode, strconv.Itoa(int(m)), trafficModelCodes.Codes())
	}
	return []byte(code), nil
}

func (m *TrafficModel) UnmarshalText(text []byte) error {
	v, err := ParseTrafficModel(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// ParseTrafficModel converts a wire code such as "best_guess" into a TrafficModel.
func ParseTrafficModel(code string) (TrafficModel, error) {
	if v, ok := trafficModelCodes.Parse(code); ok {
		return v, nil
	}
	return 0, maps.NewInvalidCodeError(maps.APIDirections, maps.KindInvalidTrafficModelCode, code, trafficModelCodes.Codes())
}

// TransitMode is a preferred public transport mode for transit routes.
type TransitMode int

const (
	TransitModeBus TransitMode = iota + 1
	TransitModeRail
	TransitModeSubway
	TransitModeTrain
	TransitModeTram
)

var transitModeCodes = codes.New(
	codes.Entry[TransitMode]{Value: TransitModeBus, Code: "bus", Label: "Bus"},
	codes.Entry[TransitMode]{Value: TransitModeRail, Code: "rail", Label: "Rail"},
	codes.Entry[TransitMode]{Value: TransitModeSubway, Code: "subway", Label: "Subway"},
	codes.Entry[TransitMode]{Value: TransitModeTrain, Code: "train", Label: "Train"},
	codes.Entry[TransitMode]{Value: TransitModeTram, Code: "tram", Label: "Tram"},
)

// Code returns the wire code.
func (m TransitMode) Code() string { return transitModeCodes.Code(m) }

func (m TransitMode) String() string { return transitModeCodes.Label(m) }

func (m TransitMode) MarshalText() ([]byte, error) {
	code := transitModeCodes.Code(m)
	if code == "" {
		return nil, maps.NewInvalidCodeError(maps.APIDirections, maps.KindInvalidTransitModeCode, strconv.Itoa(int(m)), transitModeCodes.Codes())
	}
	return []byte(code), nil
}

func (m *TransitMode) UnmarshalText(text []byte) error {
	v, err := ParseTransitMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// ParseTransitMode converts a wire code such as "bus" into a TransitMode.
func ParseTransitMode(code string) (TransitMode, error) {
	if v, ok := transitModeCodes.Parse(code); ok {
		return v, nil
	}
	return 0, maps.NewInvalidCodeError(maps.APIDirections, maps.KindInvalidTransitModeCode, code, transitModeCodes.Codes())
}

// TransitRoutePreference biases transit routes.
type TransitRoutePreference int

const (
	TransitRoutePreferenceLessWalking TransitRoutePreference = iota + 1
	TransitRoutePreferenceFewerTransfers
)

var transitRoutePreferenceCodes = codes.New(
	codes.Entry[TransitRoutePreference]{Value: TransitRoutePreferenceLessWalking, Code: "less_walking", Label: "Less Walking"},
	codes.Entry[TransitRoutePreference]{Value: TransitRoutePreferenceFewerTransfers, Code: "fewer_transfers", Label: "Fewer Transfers"},
)

// Code returns the wire code.
func (t TransitRoutePreference) Code() string { return transitRoutePreferenceCodes.Code(t) }

func (t TransitRoutePreference) String() string { return transitRoutePreferenceCodes.Label(t) }

func (t TransitRoutePreference) MarshalText() ([]byte, error) {
	code := transitRoutePreferenceCodes.Code(t)
	if code == "" {
		return nil, maps.NewInvalidCodeError(maps.APIDirections, maps.KindInvalidTransitRoutePreferenceCode, strconv.Itoa(int(t)), transitRoutePreferenceCodes.Codes())
	}
	return []byte(code), nil
}

func (t *TransitRoutePreference) UnmarshalText(text []byte) error {
	v, err := ParseTransitRoutePreference(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ParseTransitRoutePreference converts a wire code such as "less_walking" into a TransitRoutePreference.
func ParseTransitRoutePreference(code string) (TransitRoutePreference, error) {
	if v, ok := transitRoutePreferenceCodes.Parse(code); ok {
		return v, nil
	}
	return 0, maps.NewInvalidCodeError(maps.APIDirections, maps.KindInvalidTransitRoutePreferenceCode, code, transitRoutePreferenceCodes.Codes())
}

// UnitSystem selects the units of the text in distance fields. Values are
// always in meters.
type UnitSystem int

const (
	UnitSystemMetric UnitSystem = iota + 1
	UnitSystemImperial
)

var unitSystemCodes = codes.New(
	codes.Entry[UnitSystem]{Value: UnitSystemMetric, Code: "metric", Label: "Metric"},
	codes.Entry[UnitSystem]{Value: UnitSystemImperial, Code: "imperial", Label: "Imperial"},
)

// Code returns the wire code.
func (u UnitSystem) Code() string { return unitSystemCodes.Code(u) }

func (u UnitSystem) String() string { return unitSystemCodes.Label(u) }

func (u UnitSystem) MarshalText() ([]byte, error) {
	code := unitSystemCodes.Code(u)
	if code == "" {
		return nil, maps.NewInvalidCodeError(maps.APIDirections, maps.KindInvalidUnitSystemCode, strconv.Itoa(int(u)), unitSystemCodes.Codes())
	}
	return []byte(code), nil
}

func (u *UnitSystem) UnmarshalText(text []byte) error {
	v, err := ParseUnitSystem(string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// ParseUnitSystem converts a wire code such as "metric" into a UnitSystem.
func ParseUnitSystem(code string) (UnitSystem, error) {
	if v, ok := unitSystemCodes.Parse(code); ok {
		return v, nil
	}
	return 0, maps.NewInvalidCodeError(maps.APIDirections, maps.KindInvalidUnitSystemCode, code, unitSystemCodes.Codes())
}

// ManeuverType is the action a step asks the traveller to take.
type ManeuverType int

const (
	ManeuverFerry ManeuverType = iota + 1
	ManeuverFerryTrain
	ManeuverForkLeft
	ManeuverForkRight
	ManeuverKeepLeft
	ManeuverKeepRight
	ManeuverMerge
	ManeuverRampLeft
	ManeuverRampRight
	ManeuverRoundaboutLeft
	ManeuverRoundaboutRight
	ManeuverStraight
	ManeuverTurnLeft
	ManeuverTurnRight
	ManeuverTurnSharpLeft
	ManeuverTurnSharpRight
	ManeuverTurnSlightLeft
	ManeuverTurnSlightRight
	ManeuverUTurnLeft
	ManeuverUTurnRight
)

var maneuverTypeCodes = codes.New(
	codes.Entry[ManeuverType]{Value: ManeuverFerry, Code: "ferry", Label: "Ferry"},
	codes.Entry[ManeuverType]{Value: ManeuverFerryTrain, Code: "ferry-train", Label: "Ferry Train"},
	codes.Entry[ManeuverType]{Value: ManeuverForkLeft, Code: "fork-left", Label: "Fork Left"},
	codes.Entry[ManeuverType]{Value: ManeuverForkRight, Code: "fork-right", Label: "Fork Right"},
	codes.Entry[ManeuverType]{Value: ManeuverKeepLeft, Code: "keep-left", Label: "Keep Left"},
	codes.Entry[ManeuverType]{Value: ManeuverKeepRight, Code: "keep-right", Label: "Keep Right"},
	codes.Entry[ManeuverType]{Value: ManeuverMerge, Code: "merge", Label: "Merge"},
	codes.Entry[ManeuverType]{Value: ManeuverRampLeft, Code: "ramp-left", Label: "Ramp Left"},
	codes.Entry[ManeuverType]{Value: ManeuverRampRight, Code: "ramp-right", Label: "Ramp Right"},
	codes.Entry[ManeuverType]{Value: ManeuverRoundaboutLeft, Code: "roundabout-left", Label: "Roundabout Left"},
	codes.Entry[ManeuverType]{Value: ManeuverRoundaboutRight, Code: "roundabout-right", Label: "Roundabout Right"},
	codes.Entry[ManeuverType]{Value: ManeuverStraight, Code: "straight", Label: "Straight"},
	codes.Entry[ManeuverType]{Value: ManeuverTurnLeft, Code: "turn-left", Label: "Turn Left"},
	codes.Entry[ManeuverType]{Value: ManeuverTurnRight, Code: "turn-right", Label: "Turn Right"},
	codes.Entry[ManeuverType]{Value: ManeuverTurnSharpLeft, Code: "turn-sharp-left", Label: "Turn Sharp Left"},
	codes.Entry[ManeuverType]{Value: ManeuverTurnSharpRight, Code: "turn-sharp-right", Label: "Turn Sharp Right"},
	codes.Entry[ManeuverType]{Value: ManeuverTurnSlightLeft, Code: "turn-slight-left", Label: "Turn Slight Left"},
	codes.Entry[ManeuverType]{Value: ManeuverTurnSlightRight, Code: "turn-slight-right", Label: "Turn Slight Right"},
	codes.Entry[ManeuverType]{Value: ManeuverUTurnLeft, Code: "uturn-left", Label: "U-Turn Left"},
	codes.Entry[ManeuverType]{Value: ManeuverUTurnRight, Code: "uturn-right", Label: "U-Turn Right"},
)

// Code returns the wire code.
func (m ManeuverType) Code() string { return maneuverTypeCodes.Code(m) }

func (m ManeuverType) String() string { return maneuverTypeCodes.Label(m) }

func (m ManeuverType) MarshalText() ([]byte, error) {
	code := maneuverTypeCodes.Code(m)
	if code == "" {
		return nil, maps.NewInvalidCodeError(maps.APIDirections, maps.KindInvalidManeuverTypeCode, strconv.Itoa(int(m)), maneuverTypeCodes.Codes())
	}
	return []byte(code), nil
}

func (m *ManeuverType) UnmarshalText(text []byte) error {
	v, err := ParseManeuverType(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// ParseManeuverType converts a wire code such as "ferry" into a ManeuverType.
func ParseManeuverType(code string) (ManeuverType, error) {
	if v, ok := maneuverTypeCodes.Parse(code); ok {
		return v, nil
	}
	return 0, maps.NewInvalidCodeError(maps.APIDirections, maps.KindInvalidManeuverTypeCode, code, maneuverTypeCodes.Codes())
}

// VehicleType is the kind of vehicle serving a transit line.
type VehicleType int

const (
	VehicleBus VehicleType = iota + 1
	VehicleCableCar
	VehicleCommuterTrain
	VehicleFerry
	VehicleFunicular
	VehicleGondolaLift
	VehicleHeavyRail
	VehicleHighSpeedTrain
	VehicleIntercityBus
	VehicleLongDistanceTrain
	VehicleMetroRail
	VehicleMonorail
	VehicleOther
	VehicleRail
	VehicleShareTaxi
	VehicleSubway
	VehicleTram
	VehicleTrolleybus
)

var vehicleTypeCodes = codes.New(
	codes.Entry[VehicleType]{Value: VehicleBus, Code: "BUS", Label: "Bus"},
	codes.Entry[VehicleType]{Value: VehicleCableCar, Code: "CABLE_CAR", Label: "Cable Car"},
	codes.Entry[VehicleType]{Value: VehicleCommuterTrain, Code: "COMMUTER_TRAIN", Label: "Commuter Train"},
	codes.Entry[VehicleType]{Value: VehicleFerry, Code: "FERRY", Label: "Ferry"},
	codes.Entry[VehicleType]{Value: VehicleFunicular, Code: "FUNICULAR", Label: "Funicular"},
	codes.Entry[VehicleType]{Value: VehicleGondolaLift, Code: "GONDOLA_LIFT", Label: "Gondola Lift"},
	codes.Entry[VehicleType]{Value: VehicleHeavyRail, Code: "HEAVY_RAIL", Label: "Heavy Rail"},
	codes.Entry[VehicleType]{Value: VehicleHighSpeedTrain, Code: "HIGH_SPEED_TRAIN", Label: "High Speed Train"},
	codes.Entry[VehicleType]{Value: VehicleIntercityBus, Code: "INTERCITY_BUS", Label: "Intercity Bus"},
	codes.Entry[VehicleType]{Value: VehicleLongDistanceTrain, Code: "LONG_DISTANCE_TRAIN", Label: "Long Distance Train"},
	codes.Entry[VehicleType]{Value: VehicleMetroRail, Code: "METRO_RAIL", Label: "Metro Rail"},
	codes.Entry[VehicleType]{Value: VehicleMonorail, Code: "MONORAIL", Label: "Monorail"},
	codes.Entry[VehicleType]{Value: VehicleOther, Code: "OTHER", Label: "Other"},
	codes.Entry[VehicleType]{Value: VehicleRail, Code: "RAIL", Label: "Rail"},
	codes.Entry[VehicleType]{Value: VehicleShareTaxi, Code: "SHARE_TAXI", Label: "Share Taxi"},
	codes.Entry[VehicleType]{Value: VehicleSubway, Code: "SUBWAY", Label: "Subway"},
	codes.Entry[VehicleType]{Value: VehicleTram, Code: "TRAM", Label: "Tram"},
	codes.Entry[VehicleType]{Value: VehicleTrolleybus, Code: "TROLLEYBUS", Label: "Trolleybus"},
)

// Code returns the wire code.
func (v VehicleType) Code() string { return vehicleTypeCodes.Code(v) }

func (v VehicleType) String() string { return vehicleTypeCodes.Label(v) }

func (v VehicleType) MarshalText() ([]byte, error) {
	code := vehicleTypeCodes.Code(v)
	if code == "" {
		return nil, maps.NewInvalidCodeError(maps.APIDirections, maps.KindInvalidVehicleTypeCode, strconv.Itoa(int(v)), vehicleTypeCodes.Codes())
	}
	return []byte(code), nil
}

func (v *VehicleType) UnmarshalText(text []byte) error {
	x, err := ParseVehicleType(string(text))
	if err != nil {
		return err
	}
	*v = x
	return nil
}

// ParseVehicleType converts a wire code such as "BUS" into a VehicleType.
func ParseVehicleType(code string) (VehicleType, error) {
	if v, ok := vehicleTypeCodes.Parse(code); ok {
		return v, nil
	}
	return 0, maps.NewInvalidCodeError(maps.APIDirections, maps.KindInvalidVehicleTypeCode, code, vehicleTypeCodes.Codes())
}

// Status is the top-level status of a Directions response.
type Status int

const (
	StatusOK Status = iota + 1
	StatusNotFound
	StatusZeroResults
	StatusMaxWaypointsExceeded
	StatusMaxRouteLengthExceeded
	StatusInvalidRequest
	StatusOverDailyLimit
	StatusOverQueryLimit
	StatusRequestDenied
	StatusUnknownError
)

var statusCodes = codes.New(
	codes.Entry[Status]{Value: StatusOK, Code: "OK", Label: "OK"},
	codes.Entry[Status]{Value: StatusNotFound, Code: "NOT_FOUND", Label: "Not Found"},
	codes.Entry[Status]{Value: StatusZeroResults, Code: "ZERO_RESULTS", Label: "Zero Results"},
	codes.Entry[Status]{Value: StatusMaxWaypointsExceeded, Code: "MAX_WAYPOINTS_EXCEEDED", Label: "Max Waypoints Exceeded"},
	codes.Entry[Status]{Value: StatusMaxRouteLengthExceeded, Code: "MAX_ROUTE_LENGTH_EXCEEDED", Label: "Max Route Length Exceeded"},
	codes.Entry[Status]{Value: StatusInvalidRequest, Code: "INVALID_REQUEST", Label: "Invalid Request"},
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
		return nil, maps.NewInvalidCodeError(maps.APIDirections, maps.KindInvalidStatusCode, strconv.Itoa(int(s)), statusCodes.Codes())
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
	return 0, maps.NewInvalidCodeError(maps.APIDirections, maps.KindInvalidStatusCode, code, statusCodes.Codes())
}

// GeocoderStatus reports whether an origin, waypoint or destination could be
// geocoded.
type GeocoderStatus int

const (
	GeocoderStatusOK GeocoderStatus = iota + 1
	GeocoderStatusZeroResults
)

var geocoderStatusCodes = codes.New(
	codes.Entry[GeocoderStatus]{Value: GeocoderStatusOK, Code: "OK", Label: "OK"},
	codes.Entry[GeocoderStatus]{Value: GeocoderStatusZeroResults, Code: "ZERO_RESULTS", Label: "Zero Results"},
)

// Code returns the wire code.
func (g GeocoderStatus) Code() string { return geocoderStatusCodes.Code(g) }

func (g GeocoderStatus) String() string { return geocoderStatusCodes.Label(g) }

func (g GeocoderStatus) MarshalText() ([]byte, error) {
	code := geocoderStatusCodes.Code(g)
	if code == "" {
		return nil, maps.NewInvalidCodeError(maps.APIDirections, maps.KindInvalidGeocoderStatusCode, strconv.Itoa(int(g)), geocoderStatusCodes.Codes())
	}
	return []byte(code), nil
}

func (g *GeocoderStatus) UnmarshalText(text []byte) error {
	v, err := ParseGeocoderStatus(string(text))
	if err != nil {
		return err
	}
	*g = v
	return nil
}

// ParseGeocoderStatus converts a wire code such as "OK" into a GeocoderStatus.
func ParseGeocoderStatus(code string) (GeocoderStatus, error) {
	if v, ok := geocoderStatusCodes.Parse(code); ok {
		return v, nil
	}
	return 0, maps.NewInvalidCodeError(maps.APIDirections, maps.KindInvalidGeocoderStatusCode, code, geocoderStatusCodes.Codes())
}
