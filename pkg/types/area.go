package types

import "errors"

// AreaID identifies an area.
type AreaID int64

// Area is a named polygonal region participating in the containment
// forest. Parent and child links are held by the catalog as AreaID
// handles, never on the value itself.
type Area struct {
	ID       AreaID
	Name     string
	Boundary []Coord
}

// Area hierarchy errors.
var (
	// ErrParentAlreadySet is returned by Attach when the child already
	// has a parent. The parent link is set at most once, ever.
	ErrParentAlreadySet = errors.New("area already has a parent")

	// ErrCycle is returned by Attach when the requested parent is the
	// child itself or one of its descendants.
	ErrCycle = errors.New("attachment would create a cycle")

	// ErrNoCommonAncestor is returned by CommonAncestor for areas in
	// different trees of the forest.
	ErrNoCommonAncestor = errors.New("areas have no common ancestor")
)
