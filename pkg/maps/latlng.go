package maps

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
)

var validate = validator.New()

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// NewLatLng returns a coordinate after checking that lat is within [-90, 90]
// and lng within [-180, 180].
func NewLatLng(lat, lng float64) (LatLng, error) {
	if err := validate.Var(lat, "gte=-90,lte=90"); err != nil {
		return LatLng{}, NewPreconditionError(APIPlatform, KindInvalidLatitude, formatFloat(lat), formatFloat(lng))
	}
	if err := validate.Var(lng, "gte=-180,lte=180"); err != nil {
		return LatLng{}, NewPreconditionError(APIPlatform, KindInvalidLongitude, formatFloat(lat), formatFloat(lng))
	}
	return LatLng{Lat: lat, Lng: lng}, nil
}

// ParseLatLng parses a "latitude,longitude" string such as "51.5,-0.12".
func ParseLatLng(s string) (LatLng, error) {
	latStr, lngStr, ok := strings.Cut(s, ",")
	if !ok {
		return LatLng{}, NewPreconditionError(APIPlatform, KindInvalidLatLngString, s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return LatLng{}, NewPreconditionError(APIPlatform, KindInvalidLatLngString, s)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
	if err != nil {
		return LatLng{}, NewPreconditionError(APIPlatform, KindInvalidLatLngString, s)
	}
	return NewLatLng(lat, lng)
}

// String renders the pair the way the APIs accept it in query strings.
func (l LatLng) String() string {
	return formatFloat(l.Lat) + "," + formatFloat(l.Lng)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// JoinLatLngs renders a pipe-separated coordinate list.
func JoinLatLngs(points []LatLng) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = p.String()
	}
	return strings.Join(parts, "|")
}

// Bounds is a viewport given by its north-east and south-west corners.
type Bounds struct {
	Northeast LatLng `json:"northeast"`
	Southwest LatLng `json:"southwest"`
}

// String renders "sw_lat,sw_lng|ne_lat,ne_lng", the geocoding bounds format.
func (b Bounds) String() string {
	return b.Southwest.String() + "|" + b.Northeast.String()
}

// ParseLanguage parses a BCP 47 language code such as "en" or "zh-TW".
func ParseLanguage(code string) (language.Tag, error) {
	tag, err := language.Parse(code)
	if err != nil || tag == language.Und {
		return language.Und, NewInvalidCodeError(APIPlatform, KindInvalidLanguageCode, code, nil)
	}
	return tag, nil
}

// ParseRegion parses a ccTLD-style region code such as "uk" or "de". Google
// accepts "uk" for the United Kingdom, which is mapped to GB.
func ParseRegion(code string) (language.Region, error) {
	in := code
	if strings.EqualFold(in, "uk") {
		in = "GB"
	}
	r, err := language.ParseRegion(in)
	if err != nil || !r.IsCountry() {
		return language.Region{}, NewInvalidCodeError(APIPlatform, KindInvalidRegionCode, code, nil)
	}
	return r, nil
}

// RegionCode renders a region the way the APIs expect it: lower-case ccTLD.
func RegionCode(r language.Region) string {
	if r.String() == "GB" {
		return "uk"
	}
	return strings.ToLower(r.String())
}
