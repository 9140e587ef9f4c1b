package types

import "math"

// Coord is an integer grid coordinate.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// OriginDistance returns the Euclidean distance between c and the origin.
func (c Coord) OriginDistance() float64 {
	return math.Sqrt(float64(c.X)*float64(c.X) + float64(c.Y)*float64(c.Y))
}

// DistanceTo returns the Euclidean distance between c and other.
func (c Coord) DistanceTo(other Coord) float64 {
	return Coord{X: c.X - other.X, Y: c.Y - other.Y}.OriginDistance()
}

// Less reports whether c orders before other under the coordinate ordering
// relation: by distance from the origin first, then by ascending Y.
func (c Coord) Less(other Coord) bool {
	cd, od := c.OriginDistance(), other.OriginDistance()
	if cd != od {
		return cd < od
	}
	return c.Y < other.Y
}
