// Road network operations: the way store, the endpoint index, and the
// crossroad record lifecycle.
package memory

import "github.com/mesh-intelligence/gazetteer/pkg/types"

// AddWay inserts a new way, registers both endpoints in the endpoint
// index, and creates crossroad records for endpoints not yet tracked.
// Returns ErrDuplicateID if the id is in use and ErrInvalidPolyline for
// polylines shorter than two points.
func (c *Catalog) AddWay(id types.WayID, coords []types.Coord) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.ways[id]; ok {
		return types.ErrDuplicateID
	}
	w, err := types.NewWay(id, append([]types.Coord(nil), coords...))
	if err != nil {
		return err
	}

	c.ways[id] = &w
	c.waysByEnd[w.End1] = append(c.waysByEnd[w.End1], &w)
	c.waysByEnd[w.End2] = append(c.waysByEnd[w.End2], &w)

	if _, ok := c.crossroads[w.End1]; !ok {
		c.crossroads[w.End1] = &crossroad{dist: types.NoDistance}
	}
	if _, ok := c.crossroads[w.End2]; !ok {
		c.crossroads[w.End2] = &crossroad{dist: types.NoDistance}
	}
	return nil
}

// WayCoords returns a copy of the way's polyline.
func (c *Catalog) WayCoords(id types.WayID) ([]types.Coord, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	w, ok := c.ways[id]
	if !ok {
		return nil, types.ErrNotFound
	}
	return append([]types.Coord(nil), w.Coords...), nil
}

// AllWays returns every way id. Order is not specified.
func (c *Catalog) AllWays() []types.WayID {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]types.WayID, 0, len(c.ways))
	for id := range c.ways {
		ids = append(ids, id)
	}
	return ids
}

// RemoveWay deletes a way, drops its two endpoint-index entries, and
// deletes the crossroad record of any endpoint left without incident
// ways.
func (c *Catalog) RemoveWay(id types.WayID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	w, ok := c.ways[id]
	if !ok {
		return types.ErrNotFound
	}

	// One entry per endpoint; a loop way holds two entries under the
	// same coordinate and each call drops one of them.
	c.dropEndpoint(w.End1, id)
	c.dropEndpoint(w.End2, id)
	delete(c.ways, id)
	return nil
}

// dropEndpoint removes one endpoint-index entry for the way at the given
// coordinate and retires the crossroad once no way references it.
func (c *Catalog) dropEndpoint(at types.Coord, id types.WayID) {
	bucket := c.waysByEnd[at]
	for i, w := range bucket {
		if w.ID == id {
			c.waysByEnd[at] = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
	if len(c.waysByEnd[at]) == 0 {
		delete(c.waysByEnd, at)
		delete(c.crossroads, at)
	}
}

// WaysFrom returns every way incident to the coordinate together with the
// coordinate at the way's other end. This is the network's adjacency
// query and the sole traversal primitive of the route searches. A loop
// way is reported twice.
func (c *Catalog) WaysFrom(at types.Coord) []types.Connection {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connectionsFrom(at)
}

// connectionsFrom is WaysFrom without locking, for callers already
// holding the mutex.
func (c *Catalog) connectionsFrom(at types.Coord) []types.Connection {
	bucket := c.waysByEnd[at]
	conns := make([]types.Connection, 0, len(bucket))
	for _, w := range bucket {
		if at == w.End1 {
			conns = append(conns, types.Connection{Way: w.ID, Other: w.End2})
		} else {
			conns = append(conns, types.Connection{Way: w.ID, Other: w.End1})
		}
	}
	return conns
}
