package types

import "errors"

// RouteStep is one node of a reachability path: the coordinate, the way
// taken onward from it (NoWay at the destination), and the cumulative
// distance from the start of the path to this coordinate.
type RouteStep struct {
	At   Coord
	Way  WayID
	Dist Distance
}

// CycleStep is one node of a cycle walk: the coordinate and the way taken
// onward from it (NoWay at the revisited coordinate that ends the walk).
type CycleStep struct {
	At  Coord
	Way WayID
}

// Route search errors.
var (
	// ErrNoRoute is returned by RouteAny when the destination is not in
	// the component reachable from the start.
	ErrNoRoute = errors.New("no route between the coordinates")

	// ErrNoCycle is returned by RouteWithCycle when the reachable
	// component is acyclic.
	ErrNoCycle = errors.New("no cycle reachable from the coordinate")
)
