package types

import "errors"

// General catalog errors.
var (
	ErrNotFound    = errors.New("entity not found")
	ErrDuplicateID = errors.New("id already in use")
)

// Catalog is the synchronous query interface over one in-process dataset
// of places, areas, and ways. All operations run to completion; failed
// operations leave the catalog unchanged. Implementations serialize
// access internally, and route searches hold the catalog exclusively for
// the whole call.
type Catalog interface {
	// Place operations.
	AddPlace(id PlaceID, name string, t PlaceType, at Coord) error
	Place(id PlaceID) (Place, error)
	AllPlaces() []PlaceID
	RenamePlace(id PlaceID, name string) error
	MovePlace(id PlaceID, to Coord) error
	RemovePlace(id PlaceID) error
	FindPlacesByName(name string) []PlaceID
	FindPlacesByType(t PlaceType) []PlaceID

	// PlacesAlphabetically returns all place IDs ordered by name;
	// PlacesByDistance orders by origin distance, then ascending Y.
	// Both views are cached until the next place mutation.
	PlacesAlphabetically() []PlaceID
	PlacesByDistance() []PlaceID

	// PlacesClosestTo returns up to the three places nearest to at,
	// closest first, optionally restricted to one type. PlaceTypeNone
	// admits every place.
	PlacesClosestTo(at Coord, t PlaceType) []PlaceID

	PlaceCount() int

	// ClearAll removes every place and every area. Ways are untouched.
	ClearAll()

	// Area operations.
	AddArea(id AreaID, name string, boundary []Coord) error
	Area(id AreaID) (Area, error)
	AllAreas() []AreaID
	Attach(child, parent AreaID) error
	Ancestors(id AreaID) ([]AreaID, error)
	Descendants(id AreaID) ([]AreaID, error)
	CommonAncestor(a, b AreaID) (AreaID, error)

	// Way operations.
	AddWay(id WayID, coords []Coord) error
	WayCoords(id WayID) ([]Coord, error)
	AllWays() []WayID
	RemoveWay(id WayID) error
	WaysFrom(at Coord) []Connection

	// ClearWays removes every way and all network state. Places and
	// areas are untouched.
	ClearWays()

	// Route searches.
	RouteAny(from, to Coord) ([]RouteStep, error)
	RouteWithCycle(from Coord) ([]CycleStep, error)
}
