package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordOriginDistance(t *testing.T) {
	tests := []struct {
		name  string
		coord Coord
		want  float64
	}{
		{name: "origin", coord: Coord{0, 0}, want: 0},
		{name: "axis aligned", coord: Coord{3, 0}, want: 3},
		{name: "pythagorean triple", coord: Coord{3, 4}, want: 5},
		{name: "negative components", coord: Coord{-3, -4}, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.coord.OriginDistance(), 1e-9)
		})
	}
}

func TestCoordDistanceTo(t *testing.T) {
	assert.InDelta(t, 5.0, Coord{1, 1}.DistanceTo(Coord{4, 5}), 1e-9)
	assert.InDelta(t, 5.0, Coord{4, 5}.DistanceTo(Coord{1, 1}), 1e-9, "distance is symmetric")
	assert.InDelta(t, 0.0, Coord{7, -2}.DistanceTo(Coord{7, -2}), 1e-9)
}

func TestCoordLess(t *testing.T) {
	tests := []struct {
		name string
		a, b Coord
		want bool
	}{
		{name: "closer to origin orders first", a: Coord{1, 0}, b: Coord{3, 0}, want: true},
		{name: "farther from origin orders last", a: Coord{3, 0}, b: Coord{1, 0}, want: false},
		{name: "equal distance breaks by lower y", a: Coord{5, 0}, b: Coord{0, 5}, want: true},
		{name: "equal distance higher y orders last", a: Coord{0, 5}, b: Coord{5, 0}, want: false},
		{name: "identical coordinates", a: Coord{2, 2}, b: Coord{2, 2}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Less(tt.b))
		})
	}
}
