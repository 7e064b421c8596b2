package maps

import (
	"strconv"
	"strings"

	"github.com/mapsplatform/googlemaps/internal/codes"
)

// PlaceType is a Google Maps place or address type. It appears in geocoding
// results, address components and place type filters.
//
// See https://developers.google.com/maps/documentation/places/web-service/supported_types
type PlaceType int

// Types that may be used as filters and appear in results.
const (
	PlaceTypeAccounting PlaceType = iota + 1
	PlaceTypeAirport
	PlaceTypeAmusementPark
	PlaceTypeAquarium
	PlaceTypeArtGallery
	PlaceTypeATM
	PlaceTypeBakery
	PlaceTypeBank
	PlaceTypeBar
	PlaceTypeBeautySalon
	PlaceTypeBicycleStore
	PlaceTypeBookStore
	PlaceTypeBowlingAlley
	PlaceTypeBusStation
	PlaceTypeCafe
	PlaceTypeCampground
	PlaceTypeCarDealer
	PlaceTypeCarRental
	PlaceTypeCarRepair
	PlaceTypeCarWash
	PlaceTypeCasino
	PlaceTypeCemetery
	PlaceTypeChurch
	PlaceTypeCityHall
	PlaceTypeClothingStore
	PlaceTypeConvenienceStore
	PlaceTypeCourthouse
	PlaceTypeDentist
	PlaceTypeDepartmentStore
	PlaceTypeDoctor
	PlaceTypeDrugstore
	PlaceTypeElectrician
	PlaceTypeElectronicsStore
	PlaceTypeEmbassy
	PlaceTypeFireStation
	PlaceTypeFlorist
	PlaceTypeFuneralHome
	PlaceTypeFurnitureStore
	PlaceTypeGasStation
	PlaceTypeGroceryOrSupermarket
	PlaceTypeGym
	PlaceTypeHairCare
	PlaceTypeHardwareStore
	PlaceTypeHinduTemple
	PlaceTypeHomeGoodsStore
	PlaceTypeHospital
	PlaceTypeInsuranceAgency
	PlaceTypeJewelryStore
	PlaceTypeLaundry
	PlaceTypeLawyer
	PlaceTypeLibrary
	PlaceTypeLightRailStation
	PlaceTypeLiquorStore
	PlaceTypeLocalGovernmentOffice
	PlaceTypeLocksmith
	PlaceTypeLodging
	PlaceTypeMealDelivery
	PlaceTypeMealTakeaway
	PlaceTypeMosque
	PlaceTypeMovieRental
	PlaceTypeMovieTheater
	PlaceTypeMovingCompany
	PlaceTypeMuseum
	PlaceTypeNightClub
	PlaceTypePainter
	PlaceTypePark
	PlaceTypeParking
	PlaceTypePetStore
	PlaceTypePharmacy
	PlaceTypePhysiotherapist
	PlaceTypePlumber
	PlaceTypePolice
	PlaceTypePostOffice
	PlaceTypePrimarySchool
	PlaceTypeRealEstateAgency
	PlaceTypeRestaurant
	PlaceTypeRoofingContractor
	PlaceTypeRVPark
	PlaceTypeSchool
	PlaceTypeSecondarySchool
	PlaceTypeShoeStore
	PlaceTypeShoppingMall
	PlaceTypeSpa
	PlaceTypeStadium
	PlaceTypeStorage
	PlaceTypeStore
	PlaceTypeSubwayStation
	PlaceTypeSupermarket
	PlaceTypeSynagogue
	PlaceTypeTaxiStand
	PlaceTypeTouristAttraction
	PlaceTypeTrainStation
	PlaceTypeTransitStation
	PlaceTypeTravelAgency
	PlaceTypeUniversity
	PlaceTypeVeterinaryCare
	PlaceTypeZoo

	// Types returned in results only.
	PlaceTypeAdministrativeAreaLevel1
	PlaceTypeAdministrativeAreaLevel2
	PlaceTypeAdministrativeAreaLevel3
	PlaceTypeAdministrativeAreaLevel4
	PlaceTypeAdministrativeAreaLevel5
	PlaceTypeArchipelago
	PlaceTypeColloquialArea
	PlaceTypeContinent
	PlaceTypeCountry
	PlaceTypeEstablishment
	PlaceTypeFinance
	PlaceTypeFloor
	PlaceTypeFood
	PlaceTypeGeneralContractor
	PlaceTypeGeocode
	PlaceTypeHealth
	PlaceTypeIntersection
	PlaceTypeLocality
	PlaceTypeNaturalFeature
	PlaceTypeNeighborhood
	PlaceTypePlaceOfWorship
	PlaceTypePlusCode
	PlaceTypePointOfInterest
	PlaceTypePolitical
	PlaceTypePostBox
	PlaceTypePostalCode
	PlaceTypePostalCodePrefix
	PlaceTypePostalCodeSuffix
	PlaceTypePostalTown
	PlaceTypePremise
	PlaceTypeRoom
	PlaceTypeRoute
	PlaceTypeStreetAddress
	PlaceTypeStreetNumber
	PlaceTypeSublocality
	PlaceTypeSublocalityLevel1
	PlaceTypeSublocalityLevel2
	PlaceTypeSublocalityLevel3
	PlaceTypeSublocalityLevel4
	PlaceTypeSublocalityLevel5
	PlaceTypeSubpremise
	PlaceTypeTownSquare

	// Type collections accepted by place autocomplete.
	PlaceTypeAddress
	PlaceTypeRegions
	PlaceTypeCities
)

// DefaultPlaceType is used where a place type is required but none was given.
const DefaultPlaceType = PlaceTypeLocality

var placeTypes = codes.New(
	codes.Entry[PlaceType]{Value: PlaceTypeAccounting, Code: "accounting", Label: "Accounting"},
	codes.Entry[PlaceType]{Value: PlaceTypeAirport, Code: "airport", Label: "Airport"},
	codes.Entry[PlaceType]{Value: PlaceTypeAmusementPark, Code: "amusement_park", Label: "Amusement Park"},
	codes.Entry[PlaceType]{Value: PlaceTypeAquarium, Code: "aquarium", Label: "Aquarium"},
	codes.Entry[PlaceType]{Value: PlaceTypeArtGallery, Code: "art_gallery", Label: "Art Gallery"},
	codes.Entry[PlaceType]{Value: PlaceTypeATM, Code: "atm", Label: "ATM"},
	codes.Entry[PlaceType]{Value: PlaceTypeBakery, Code: "bakery", Label: "Bakery"},
	codes.Entry[PlaceType]{Value: PlaceTypeBank, Code: "bank", Label: "Bank"},
	codes.Entry[PlaceType]{Value: PlaceTypeBar, Code: "bar", Label: "Bar"},
	codes.Entry[PlaceType]{Value: PlaceTypeBeautySalon, Code: "beauty_salon", Label: "Beauty Salon"},
	codes.Entry[PlaceType]{Value: PlaceTypeBicycleStore, Code: "bicycle_store", Label: "Bicycle Store"},
	codes.Entry[PlaceType]{Value: PlaceTypeBookStore, Code: "book_store", Label: "Book Store"},
	codes.Entry[PlaceType]{Value: PlaceTypeBowlingAlley, Code: "bowling_alley", Label: "Bowling Alley"},
	codes.Entry[PlaceType]{Value: PlaceTypeBusStation, Code: "bus_station", Label: "Bus Station"},
	codes.Entry[PlaceType]{Value: PlaceTypeCafe, Code: "cafe", Label: "Café"},
	codes.Entry[PlaceType]{Value: PlaceTypeCampground, Code: "campground", Label: "Campground"},
	codes.Entry[PlaceType]{Value: PlaceTypeCarDealer, Code: "car_dealer", Label: "Car Dealer"},
	codes.Entry[PlaceType]{Value: PlaceTypeCarRental, Code: "car_rental", Label: "Car Rental"},
	codes.Entry[PlaceType]{Value: PlaceTypeCarRepair, Code: "car_repair", Label: "Car Repair"},
	codes.Entry[PlaceType]{Value: PlaceTypeCarWash, Code: "car_wash", Label: "Car Wash"},
	codes.Entry[PlaceType]{Value: PlaceTypeCasino, Code: "casino", Label: "Casino"},
	codes.Entry[PlaceType]{Value: PlaceTypeCemetery, Code: "cemetery", Label: "Cemetery"},
	codes.Entry[PlaceType]{Value: PlaceTypeChurch, Code: "church", Label: "Church"},
	codes.Entry[PlaceType]{Value: PlaceTypeCityHall, Code: "city_hall", Label: "City Hall"},
	codes.Entry[PlaceType]{Value: PlaceTypeClothingStore, Code: "clothing_store", Label: "Clothing Store"},
	codes.Entry[PlaceType]{Value: PlaceTypeConvenienceStore, Code: "convenience_store", Label: "Convenience Store"},
	codes.Entry[PlaceType]{Value: PlaceTypeCourthouse, Code: "courthouse", Label: "Courthouse"},
	codes.Entry[PlaceType]{Value: PlaceTypeDentist, Code: "dentist", Label: "Dentist"},
	codes.Entry[PlaceType]{Value: PlaceTypeDepartmentStore, Code: "department_store", Label: "Department Store"},
	codes.Entry[PlaceType]{Value: PlaceTypeDoctor, Code: "doctor", Label: "Doctor"},
	codes.Entry[PlaceType]{Value: PlaceTypeDrugstore, Code: "drugstore", Label: "Drug Store"},
	codes.Entry[PlaceType]{Value: PlaceTypeElectrician, Code: "electrician", Label: "Electrician"},
	codes.Entry[PlaceType]{Value: PlaceTypeElectronicsStore, Code: "electronics_store", Label: "Electronics Store"},
	codes.Entry[PlaceType]{Value: PlaceTypeEmbassy, Code: "embassy", Label: "Embassy"},
	codes.Entry[PlaceType]{Value: PlaceTypeFireStation, Code: "fire_station", Label: "Fire Station"},
	codes.Entry[PlaceType]{Value: PlaceTypeFlorist, Code: "florist", Label: "Florist"},
	codes.Entry[PlaceType]{Value: PlaceTypeFuneralHome, Code: "funeral_home", Label: "Funeral Home"},
	codes.Entry[PlaceType]{Value: PlaceTypeFurnitureStore, Code: "furniture_store", Label: "Furniture Store"},
	codes.Entry[PlaceType]{Value: PlaceTypeGasStation, Code: "gas_station", Label: "Gas Station"},
	codes.Entry[PlaceType]{Value: PlaceTypeGroceryOrSupermarket, Code: "grocery_or_supermarket", Label: "Grocery or Supermarket"},
	codes.Entry[PlaceType]{Value: PlaceTypeGym, Code: "gym", Label: "Gym"},
	codes.Entry[PlaceType]{Value: PlaceTypeHairCare, Code: "hair_care", Label: "Hair Care"},
	codes.Entry[PlaceType]{Value: PlaceTypeHardwareStore, Code: "hardware_store", Label: "Hardware Store"},
	codes.Entry[PlaceType]{Value: PlaceTypeHinduTemple, Code: "hindu_temple", Label: "Hindu Temple"},
	codes.Entry[PlaceType]{Value: PlaceTypeHomeGoodsStore, Code: "home_goods_store", Label: "Home Goods Store"},
	codes.Entry[PlaceType]{Value: PlaceTypeHospital, Code: "hospital", Label: "Hospital"},
	codes.Entry[PlaceType]{Value: PlaceTypeInsuranceAgency, Code: "insurance_agency", Label: "Insurance Agency"},
	codes.Entry[PlaceType]{Value: PlaceTypeJewelryStore, Code: "jewelry_store", Label: "Jewelry Store"},
	codes.Entry[PlaceType]{Value: PlaceTypeLaundry, Code: "laundry", Label: "Laundry"},
	codes.Entry[PlaceType]{Value: PlaceTypeLawyer, Code: "lawyer", Label: "Lawyer"},
	codes.Entry[PlaceType]{Value: PlaceTypeLibrary, Code: "library", Label: "Library"},
	codes.Entry[PlaceType]{Value: PlaceTypeLightRailStation, Code: "light_rail_station", Label: "Light Rail Station"},
	codes.Entry[PlaceType]{Value: PlaceTypeLiquorStore, Code: "liquor_store", Label: "Liquor Store"},
	codes.Entry[PlaceType]{Value: PlaceTypeLocalGovernmentOffice, Code: "local_government_office", Label: "Local Government Office"},
	codes.Entry[PlaceType]{Value: PlaceTypeLocksmith, Code: "locksmith", Label: "Locksmith"},
	codes.Entry[PlaceType]{Value: PlaceTypeLodging, Code: "lodging", Label: "Lodging"},
	codes.Entry[PlaceType]{Value: PlaceTypeMealDelivery, Code: "meal_delivery", Label: "Meal Delivery"},
	codes.Entry[PlaceType]{Value: PlaceTypeMealTakeaway, Code: "meal_takeaway", Label: "Meal Takeaway"},
	codes.Entry[PlaceType]{Value: PlaceTypeMosque, Code: "mosque", Label: "Mosque"},
	codes.Entry[PlaceType]{Value: PlaceTypeMovieRental, Code: "movie_rental", Label: "Movie Rental"},
	codes.Entry[PlaceType]{Value: PlaceTypeMovieTheater, Code: "movie_theater", Label: "Movie Theater"},
	codes.Entry[PlaceType]{Value: PlaceTypeMovingCompany, Code: "moving_company", Label: "Moving Company"},
	codes.Entry[PlaceType]{Value: PlaceTypeMuseum, Code: "museum", Label: "Museum"},
	codes.Entry[PlaceType]{Value: PlaceTypeNightClub, Code: "night_club", Label: "Night Club"},
	codes.Entry[PlaceType]{Value: PlaceTypePainter, Code: "painter", Label: "Painter"},
	codes.Entry[PlaceType]{Value: PlaceTypePark, Code: "park", Label: "Park"},
	codes.Entry[PlaceType]{Value: PlaceTypeParking, Code: "parking", Label: "Parking"},
	codes.Entry[PlaceType]{Value: PlaceTypePetStore, Code: "pet_store", Label: "Pet Store"},
	codes.Entry[PlaceType]{Value: PlaceTypePharmacy, Code: "pharmacy", Label: "Pharmacy"},
	codes.Entry[PlaceType]{Value: PlaceTypePhysiotherapist, Code: "physiotherapist", Label: "Physiotherapist"},
	codes.Entry[PlaceType]{Value: PlaceTypePlumber, Code: "plumber", Label: "Plumber"},
	codes.Entry[PlaceType]{Value: PlaceTypePolice, Code: "police", Label: "Police"},
	codes.Entry[PlaceType]{Value: PlaceTypePostOffice, Code: "post_office", Label: "Post Office"},
	codes.Entry[PlaceType]{Value: PlaceTypePrimarySchool, Code: "primary_school", Label: "Primary School"},
	codes.Entry[PlaceType]{Value: PlaceTypeRealEstateAgency, Code: "real_estate_agency", Label: "Real Estate Agency"},
	codes.Entry[PlaceType]{Value: PlaceTypeRestaurant, Code: "restaurant", Label: "Restaurant"},
	codes.Entry[PlaceType]{Value: PlaceTypeRoofingContractor, Code: "roofing_contractor", Label: "Roofing Contractor"},
	codes.Entry[PlaceType]{Value: PlaceTypeRVPark, Code: "rv_park", Label: "RV Park"},
	codes.Entry[PlaceType]{Value: PlaceTypeSchool, Code: "school", Label: "School"},
	codes.Entry[PlaceType]{Value: PlaceTypeSecondarySchool, Code: "secondary_school", Label: "Secondary School"},
	codes.Entry[PlaceType]{Value: PlaceTypeShoeStore, Code: "shoe_store", Label: "Shoe Store"},
	codes.Entry[PlaceType]{Value: PlaceTypeShoppingMall, Code: "shopping_mall", Label: "Shopping Mall"},
	codes.Entry[PlaceType]{Value: PlaceTypeSpa, Code: "spa", Label: "Spa"},
	codes.Entry[PlaceType]{Value: PlaceTypeStadium, Code: "stadium", Label: "Stadium"},
	codes.Entry[PlaceType]{Value: PlaceTypeStorage, Code: "storage", Label: "Storage"},
	codes.Entry[PlaceType]{Value: PlaceTypeStore, Code: "store", Label: "Store"},
	codes.Entry[PlaceType]{Value: PlaceTypeSubwayStation, Code: "subway_station", Label: "Subway Station"},
	codes.Entry[PlaceType]{Value: PlaceTypeSupermarket, Code: "supermarket", Label: "Supermarket"},
	codes.Entry[PlaceType]{Value: PlaceTypeSynagogue, Code: "synagogue", Label: "Synagogue"},
	codes.Entry[PlaceType]{Value: PlaceTypeTaxiStand, Code: "taxi_stand", Label: "Taxi Stand"},
	codes.Entry[PlaceType]{Value: PlaceTypeTouristAttraction, Code: "tourist_attraction", Label: "Tourist Attraction"},
	codes.Entry[PlaceType]{Value: PlaceTypeTrainStation, Code: "train_station", Label: "Train Station"},
	codes.Entry[PlaceType]{Value: PlaceTypeTransitStation, Code: "transit_station", Label: "Transit Station"},
	codes.Entry[PlaceType]{Value: PlaceTypeTravelAgency, Code: "travel_agency", Label: "Travel Agency"},
	codes.Entry[PlaceType]{Value: PlaceTypeUniversity, Code: "university", Label: "University"},
	codes.Entry[PlaceType]{Value: PlaceTypeVeterinaryCare, Code: "veterinary_care", Label: "Veterinary Care"},
	codes.Entry[PlaceType]{Value: PlaceTypeZoo, Code: "zoo", Label: "Zoo"},
	codes.Entry[PlaceType]{Value: PlaceTypeAdministrativeAreaLevel1, Code: "administrative_area_level_1", Label: "Administrative Area Level 1"},
	codes.Entry[PlaceType]{Value: PlaceTypeAdministrativeAreaLevel2, Code: "administrative_area_level_2", Label: "Administrative Area Level 2"},
	codes.Entry[PlaceType]{Value: PlaceTypeAdministrativeAreaLevel3, Code: "administrative_area_level_3", Label: "Administrative Area Level 3"},
	codes.Entry[PlaceType]{Value: PlaceTypeAdministrativeAreaLevel4, Code: "administrative_area_level_4", Label: "Administrative Area Level 4"},
	codes.Entry[PlaceType]{Value: PlaceTypeAdministrativeAreaLevel5, Code: "administrative_area_level_5", Label: "Administrative Area Level 5"},
	codes.Entry[PlaceType]{Value: PlaceTypeArchipelago, Code: "archipelago", Label: "Archipelago"},
	codes.Entry[PlaceType]{Value: PlaceTypeColloquialArea, Code: "colloquial_area", Label: "Colloquial Area"},
	codes.Entry[PlaceType]{Value: PlaceTypeContinent, Code: "continent", Label: "Continent"},
	codes.Entry[PlaceType]{Value: PlaceTypeCountry, Code: "country", Label: "Country"},
	codes.Entry[PlaceType]{Value: PlaceTypeEstablishment, Code: "establishment", Label: "Establishment"},
	codes.Entry[PlaceType]{Value: PlaceTypeFinance, Code: "finance", Label: "Finance"},
	codes.Entry[PlaceType]{Value: PlaceTypeFloor, Code: "floor", Label: "Floor"},
	codes.Entry[PlaceType]{Value: PlaceTypeFood, Code: "food", Label: "Food"},
	codes.Entry[PlaceType]{Value: PlaceTypeGeneralContractor, Code: "general_contractor", Label: "General Contractor"},
	codes.Entry[PlaceType]{Value: PlaceTypeGeocode, Code: "geocode", Label: "Geocode"},
	codes.Entry[PlaceType]{Value: PlaceTypeHealth, Code: "health", Label: "Health"},
	codes.Entry[PlaceType]{Value: PlaceTypeIntersection, Code: "intersection", Label: "Intersection"},
	codes.Entry[PlaceType]{Value: PlaceTypeLocality, Code: "locality", Label: "Locality"},
	codes.Entry[PlaceType]{Value: PlaceTypeNaturalFeature, Code: "natural_feature", Label: "Natural Feature"},
	codes.Entry[PlaceType]{Value: PlaceTypeNeighborhood, Code: "neighborhood", Label: "Neighborhood"},
	codes.Entry[PlaceType]{Value: PlaceTypePlaceOfWorship, Code: "place_of_worship", Label: "Place of Worship"},
	codes.Entry[PlaceType]{Value: PlaceTypePlusCode, Code: "plus_code", Label: "Plus Code"},
	codes.Entry[PlaceType]{Value: PlaceTypePointOfInterest, Code: "point_of_interest", Label: "Point of Interest"},
	codes.Entry[PlaceType]{Value: PlaceTypePolitical, Code: "political", Label: "Political"},
	codes.Entry[PlaceType]{Value: PlaceTypePostBox, Code: "post_box", Label: "Post Box"},
	codes.Entry[PlaceType]{Value: PlaceTypePostalCode, Code: "postal_code", Label: "Postal Code"},
	codes.Entry[PlaceType]{Value: PlaceTypePostalCodePrefix, Code: "postal_code_prefix", Label: "Postal Code Prefix"},
	codes.Entry[PlaceType]{Value: PlaceTypePostalCodeSuffix, Code: "postal_code_suffix", Label: "Postal Code Suffix"},
	codes.Entry[PlaceType]{Value: PlaceTypePostalTown, Code: "postal_town", Label: "Postal Town"},
	codes.Entry[PlaceType]{Value: PlaceTypePremise, Code: "premise", Label: "Premise"},
	codes.Entry[PlaceType]{Value: PlaceTypeRoom, Code: "room", Label: "Room"},
	codes.Entry[PlaceType]{Value: PlaceTypeRoute, Code: "route", Label: "Route"},
	codes.Entry[PlaceType]{Value: PlaceTypeStreetAddress, Code: "street_address", Label: "Street Address"},
	codes.Entry[PlaceType]{Value: PlaceTypeStreetNumber, Code: "street_number", Label: "Street Number"},
	codes.Entry[PlaceType]{Value: PlaceTypeSublocality, Code: "sublocality", Label: "Sublocality"},
	codes.Entry[PlaceType]{Value: PlaceTypeSublocalityLevel1, Code: "sublocality_level_1", Label: "Sublocality Level 1"},
	codes.Entry[PlaceType]{Value: PlaceTypeSublocalityLevel2, Code: "sublocality_level_2", Label: "Sublocality Level 2"},
	codes.Entry[PlaceType]{Value: PlaceTypeSublocalityLevel3, Code: "sublocality_level_3", Label: "Sublocality Level 3"},
	codes.Entry[PlaceType]{Value: PlaceTypeSublocalityLevel4, Code: "sublocality_level_4", Label: "Sublocality Level 4"},
	codes.Entry[PlaceType]{Value: PlaceTypeSublocalityLevel5, Code: "sublocality_level_5", Label: "Sublocality Level 5"},
	codes.Entry[PlaceType]{Value: PlaceTypeSubpremise, Code: "subpremise", Label: "Subpremise"},
	codes.Entry[PlaceType]{Value: PlaceTypeTownSquare, Code: "town_square", Label: "Town Square"},
	codes.Entry[PlaceType]{Value: PlaceTypeAddress, Code: "address", Label: "Address"},
	codes.Entry[PlaceType]{Value: PlaceTypeRegions, Code: "regions", Label: "Regions"},
	codes.Entry[PlaceType]{Value: PlaceTypeCities, Code: "cities", Label: "Cities"},
)

// Code returns the wire code, e.g. "bowling_alley".
func (p PlaceType) Code() string { return placeTypes.Code(p) }

// String returns the display label, e.g. "Bowling Alley".
func (p PlaceType) String() string { return placeTypes.Label(p) }

func (p PlaceType) MarshalText() ([]byte, error) {
	code := placeTypes.Code(p)
	if code == "" {
		return nil, NewInvalidCodeError(APIPlatform, KindInvalidPlaceTypeCode, strconv.Itoa(int(p)), nil)
	}
	return []byte(code), nil
}

func (p *PlaceType) UnmarshalText(text []byte) error {
	v, err := ParsePlaceType(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ParsePlaceType converts a wire code into a PlaceType. Codes are matched
// exactly; "Bar" and " bar" are rejected.
func ParsePlaceType(code string) (PlaceType, error) {
	if v, ok := placeTypes.Parse(code); ok {
		return v, nil
	}
	return 0, NewInvalidCodeError(APIPlatform, KindInvalidPlaceTypeCode, code, nil)
}

// PlaceTypes returns every known place type in declaration order.
func PlaceTypes() []PlaceType { return placeTypes.Values() }

// JoinPlaceTypes renders types as a comma-separated list of wire codes, the
// format Google expects for type filters.
func JoinPlaceTypes(types []PlaceType) string {
	return JoinCodes(types, ",")
}

// Coded is implemented by every enumeration in this module.
type Coded interface {
	Code() string
}

// JoinCodes renders the wire codes of values separated by sep.
func JoinCodes[T Coded](values []T, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.Code()
	}
	return strings.Join(parts, sep)
}
