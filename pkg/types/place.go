package types

import "errors"

// PlaceID identifies a place. IDs are assigned by the caller, never
// generated by the catalog.
type PlaceID int64

// PlaceType is the enumerated category of a place.
type PlaceType string

// Place categories. The sentinel PlaceTypeNone is both a storable category
// ("no type") and the "any type" filter in proximity queries.
const (
	PlaceTypeOther   PlaceType = "other"
	PlaceTypeFirepit PlaceType = "firepit"
	PlaceTypeShelter PlaceType = "shelter"
	PlaceTypeParking PlaceType = "parking"
	PlaceTypePeak    PlaceType = "peak"
	PlaceTypeBay     PlaceType = "bay"
	PlaceTypeArea    PlaceType = "area"
	PlaceTypeNone    PlaceType = "none"
)

// validPlaceTypes is the set of recognized place type values.
var validPlaceTypes = map[PlaceType]bool{
	PlaceTypeOther:   true,
	PlaceTypeFirepit: true,
	PlaceTypeShelter: true,
	PlaceTypeParking: true,
	PlaceTypePeak:    true,
	PlaceTypeBay:     true,
	PlaceTypeArea:    true,
	PlaceTypeNone:    true,
}

// ValidPlaceType reports whether t is a recognized place type.
func ValidPlaceType(t PlaceType) bool {
	return validPlaceTypes[t]
}

// ErrInvalidPlaceType signals an unrecognized place type value.
var ErrInvalidPlaceType = errors.New("unknown place type")

// Place is a named, typed point of interest at a coordinate. Names and
// types may repeat across places; IDs are unique.
type Place struct {
	ID   PlaceID
	Name string
	Type PlaceType
	At   Coord
}
