package types

import (
	"errors"
	"math"
)

// WayID identifies a way.
type WayID string

// NoWay marks route steps with no onward way: the destination of a
// reachability path and the revisited coordinate that ends a cycle walk.
const NoWay WayID = ""

// Distance is a length in metres.
type Distance int

// NoDistance marks an unknown distance. Way lengths and cumulative route
// distances are never negative.
const NoDistance Distance = -1

// ErrInvalidPolyline signals a way polyline with fewer than two points.
var ErrInvalidPolyline = errors.New("way polyline needs at least two coordinates")

// Way is a polyline road segment. End1 and End2 are the first and last
// polyline points (they may coincide); Length is the sum of the floored
// Euclidean lengths of the consecutive segments. Ways are immutable once
// created.
type Way struct {
	ID     WayID
	Coords []Coord
	End1   Coord
	End2   Coord
	Length Distance
}

// NewWay builds a way from its polyline, deriving endpoints and length.
// Returns ErrInvalidPolyline if the polyline has fewer than two points.
func NewWay(id WayID, coords []Coord) (Way, error) {
	if len(coords) < 2 {
		return Way{}, ErrInvalidPolyline
	}
	w := Way{
		ID:     id,
		Coords: coords,
		End1:   coords[0],
		End2:   coords[len(coords)-1],
	}
	for i := 0; i < len(coords)-1; i++ {
		w.Length += Distance(math.Floor(coords[i].DistanceTo(coords[i+1])))
	}
	return w, nil
}

// Connection is one adjacency entry: a way incident to the queried
// coordinate, and the coordinate at the way's other end.
type Connection struct {
	Way   WayID
	Other Coord
}
