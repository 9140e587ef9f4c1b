package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/gazetteer/pkg/types"
)

func TestRouteAny(t *testing.T) {
	a := types.Coord{X: 0, Y: 0}
	b := types.Coord{X: 1, Y: 0}
	d := types.Coord{X: 1, Y: 1}

	t.Run("two-way chain", func(t *testing.T) {
		c := New()
		require.NoError(t, c.AddWay("w1", []types.Coord{a, b}))
		require.NoError(t, c.AddWay("w2", []types.Coord{b, d}))

		route, err := c.RouteAny(a, d)

		require.NoError(t, err)
		assert.Equal(t, []types.RouteStep{
			{At: a, Way: "w1", Dist: 0},
			{At: b, Way: "w2", Dist: 1},
			{At: d, Way: types.NoWay, Dist: 2},
		}, route)
	})

	t.Run("start equals goal", func(t *testing.T) {
		c := New()
		require.NoError(t, c.AddWay("w1", []types.Coord{a, b}))

		route, err := c.RouteAny(a, a)

		require.NoError(t, err)
		assert.Equal(t, []types.RouteStep{{At: a, Way: types.NoWay, Dist: 0}}, route)
	})

	t.Run("endpoint off the network fails", func(t *testing.T) {
		c := New()
		require.NoError(t, c.AddWay("w1", []types.Coord{a, b}))

		_, err := c.RouteAny(a, types.Coord{X: 9, Y: 9})
		assert.ErrorIs(t, err, types.ErrNotFound)

		_, err = c.RouteAny(types.Coord{X: 9, Y: 9}, a)
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("disconnected components fail", func(t *testing.T) {
		c := New()
		require.NoError(t, c.AddWay("w1", []types.Coord{a, b}))
		far := types.Coord{X: 9, Y: 9}
		require.NoError(t, c.AddWay("w9", []types.Coord{far, {X: 9, Y: 10}}))

		_, err := c.RouteAny(a, far)
		assert.ErrorIs(t, err, types.ErrNoRoute)
	})

	t.Run("path over a branching network stays consistent", func(t *testing.T) {
		// A ladder of ways with a dead-end spur; whichever branch the
		// traversal picks, the returned path must chain correctly.
		c := New()
		coords := []types.Coord{
			{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 2}, {X: 2, Y: 2},
		}
		require.NoError(t, c.AddWay("r1", []types.Coord{coords[0], coords[1]}))
		require.NoError(t, c.AddWay("spur", []types.Coord{coords[1], {X: 2, Y: -3}}))
		require.NoError(t, c.AddWay("r2", []types.Coord{coords[1], coords[2]}))
		require.NoError(t, c.AddWay("r3", []types.Coord{coords[2], coords[3]}))
		require.NoError(t, c.AddWay("r4", []types.Coord{coords[3], coords[4]}))
		require.NoError(t, c.AddWay("shortcut", []types.Coord{coords[1], coords[4]}))

		route, err := c.RouteAny(coords[0], coords[4])
		require.NoError(t, err)

		assertRouteChains(t, c, route, coords[0], coords[4])
	})
}

// assertRouteChains checks the structural route guarantees: endpoints
// match, every step's way really connects it to the next coordinate, and
// cumulative distances grow by exactly each way's length.
func assertRouteChains(t *testing.T, c *Catalog, route []types.RouteStep, from, to types.Coord) {
	t.Helper()
	require.NotEmpty(t, route)

	assert.Equal(t, from, route[0].At)
	assert.Equal(t, to, route[len(route)-1].At)
	assert.Equal(t, types.Distance(0), route[0].Dist)
	assert.Equal(t, types.NoWay, route[len(route)-1].Way)

	for i := 0; i < len(route)-1; i++ {
		step, next := route[i], route[i+1]
		require.NotEqual(t, types.NoWay, step.Way, "only the destination carries no onward way")

		coords, err := c.WayCoords(step.Way)
		require.NoError(t, err)
		ends := []types.Coord{coords[0], coords[len(coords)-1]}
		assert.Contains(t, ends, step.At)
		assert.Contains(t, ends, next.At)

		w, err := types.NewWay(step.Way, coords)
		require.NoError(t, err)
		assert.Equal(t, step.Dist+w.Length, next.Dist)
	}
}

func TestRouteWithCycle(t *testing.T) {
	a := types.Coord{X: 0, Y: 0}
	b := types.Coord{X: 2, Y: 0}
	d := types.Coord{X: 2, Y: 2}

	triangle := func(t *testing.T) *Catalog {
		t.Helper()
		c := New()
		require.NoError(t, c.AddWay("ab", []types.Coord{a, b}))
		require.NoError(t, c.AddWay("bd", []types.Coord{b, d}))
		require.NoError(t, c.AddWay("da", []types.Coord{d, a}))
		return c
	}

	t.Run("start on the cycle closes the walk", func(t *testing.T) {
		c := triangle(t)

		walk, err := c.RouteWithCycle(a)

		require.NoError(t, err)
		assert.Equal(t, []types.CycleStep{
			{At: a, Way: "ab"},
			{At: b, Way: "bd"},
			{At: d, Way: "da"},
			{At: a, Way: types.NoWay},
		}, walk)
	})

	t.Run("start on a tail reaches the cycle", func(t *testing.T) {
		c := triangle(t)
		tail := types.Coord{X: -3, Y: 0}
		require.NoError(t, c.AddWay("tail", []types.Coord{tail, a}))

		walk, err := c.RouteWithCycle(tail)

		require.NoError(t, err)
		require.GreaterOrEqual(t, len(walk), 3)
		assert.Equal(t, tail, walk[0].At)
		assert.Equal(t, types.NoWay, walk[len(walk)-1].Way)

		// The revisited coordinate closes a sub-walk: it must already
		// appear earlier in the sequence.
		last := walk[len(walk)-1].At
		seen := false
		for _, step := range walk[:len(walk)-1] {
			if step.At == last {
				seen = true
			}
		}
		assert.True(t, seen, "final coordinate %v revisits the walk", last)

		for i := 0; i < len(walk)-2; i++ {
			assert.NotEqual(t, walk[i].Way, walk[i+1].Way, "walk must not immediately retrace a way")
		}
	})

	t.Run("parallel ways form a cycle", func(t *testing.T) {
		c := New()
		require.NoError(t, c.AddWay("upper", []types.Coord{a, {X: 1, Y: 1}, b}))
		require.NoError(t, c.AddWay("lower", []types.Coord{a, {X: 1, Y: -1}, b}))

		walk, err := c.RouteWithCycle(a)

		require.NoError(t, err)
		assert.Equal(t, []types.CycleStep{
			{At: a, Way: "upper"},
			{At: b, Way: "lower"},
			{At: a, Way: types.NoWay},
		}, walk)
	})

	t.Run("tree has no cycle", func(t *testing.T) {
		c := New()
		require.NoError(t, c.AddWay("ab", []types.Coord{a, b}))
		require.NoError(t, c.AddWay("bd", []types.Coord{b, d}))

		_, err := c.RouteWithCycle(a)
		assert.ErrorIs(t, err, types.ErrNoCycle)
	})

	t.Run("coordinate off the network fails", func(t *testing.T) {
		c := triangle(t)
		_, err := c.RouteWithCycle(types.Coord{X: 9, Y: 9})
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("searches reset state between calls", func(t *testing.T) {
		c := triangle(t)

		first, err := c.RouteWithCycle(a)
		require.NoError(t, err)
		second, err := c.RouteWithCycle(a)
		require.NoError(t, err)
		assert.Equal(t, first, second, "stale visited flags would break the rerun")
	})
}
