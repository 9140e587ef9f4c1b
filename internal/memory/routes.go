// Route searches: depth-first reachability and cycle detection over the
// road network. Both mutate the shared crossroad state, so they hold the
// catalog write lock for the whole call; at most one search runs at a
// time.
package memory

import "github.com/mesh-intelligence/gazetteer/pkg/types"

// RouteAny returns some path from one coordinate to another, not
// necessarily the shortest. Each step carries the way taken onward and
// the cumulative distance so far; the destination step carries NoWay.
// Returns ErrNotFound when either coordinate has no incident way and
// ErrNoRoute when the destination is unreachable. A search from a
// coordinate to itself yields the single step at distance 0.
func (c *Catalog) RouteAny(from, to types.Coord) ([]types.RouteStep, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.waysByEnd[from]) == 0 || len(c.waysByEnd[to]) == 0 {
		return nil, types.ErrNotFound
	}

	c.resetSearchState()
	s := &routeSearch{c: c, goal: to}
	s.walk(from, 0)
	if !s.found {
		return nil, types.ErrNoRoute
	}

	// Steps were collected on unwind, destination first.
	reverse(s.steps)
	return s.steps, nil
}

// RouteWithCycle returns a walk from the coordinate to the first
// coordinate seen twice, never immediately re-traversing the way just
// used. Returns ErrNotFound when the coordinate has no incident way and
// ErrNoCycle when the reachable component is acyclic.
func (c *Catalog) RouteWithCycle(from types.Coord) ([]types.CycleStep, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.waysByEnd[from]) == 0 {
		return nil, types.ErrNotFound
	}

	c.resetSearchState()
	s := &cycleSearch{c: c}
	s.walk(from, types.NoWay)
	if !s.found {
		return nil, types.ErrNoCycle
	}

	reverse(s.steps)
	return s.steps, nil
}

// resetSearchState clears every crossroad's transient fields. Every
// search starts from a clean slate.
func (c *Catalog) resetSearchState() {
	for _, cr := range c.crossroads {
		cr.visited = false
		cr.dist = types.NoDistance
	}
}

// routeSearch carries the per-call state of RouteAny. The visited and
// distance markers stay on the shared crossroad records; found and steps
// are local to the call.
type routeSearch struct {
	c     *Catalog
	goal  types.Coord
	found bool
	steps []types.RouteStep
}

// walk marks the coordinate with its cumulative distance and recurses
// depth-first into unvisited neighbors, in adjacency order. The first
// branch to reach the goal records the path while unwinding.
func (s *routeSearch) walk(at types.Coord, travelled types.Distance) {
	cr := s.c.crossroads[at]
	cr.visited = true
	cr.dist = travelled

	if at == s.goal {
		s.found = true
		s.steps = append(s.steps, types.RouteStep{At: at, Way: types.NoWay, Dist: travelled})
		return
	}

	for _, conn := range s.c.connectionsFrom(at) {
		if s.c.crossroads[conn.Other].visited {
			continue
		}
		s.walk(conn.Other, travelled+s.c.ways[conn.Way].Length)
		if s.found {
			s.steps = append(s.steps, types.RouteStep{At: at, Way: conn.Way, Dist: cr.dist})
			return
		}
	}
}

// cycleSearch carries the per-call state of RouteWithCycle.
type cycleSearch struct {
	c     *Catalog
	found bool
	steps []types.CycleStep
}

// walk recurses depth-first, skipping only the way it just arrived over,
// so a pair of parallel ways counts as a cycle while plain backtracking
// does not. Reaching an already-visited coordinate ends the search.
func (s *cycleSearch) walk(at types.Coord, arrived types.WayID) {
	cr := s.c.crossroads[at]
	if cr.visited {
		s.found = true
		s.steps = append(s.steps, types.CycleStep{At: at, Way: types.NoWay})
		return
	}
	cr.visited = true

	for _, conn := range s.c.connectionsFrom(at) {
		if conn.Way == arrived {
			continue
		}
		s.walk(conn.Other, conn.Way)
		if s.found {
			s.steps = append(s.steps, types.CycleStep{At: at, Way: conn.Way})
			return
		}
	}
}

func reverse[T any](steps []T) {
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
}
