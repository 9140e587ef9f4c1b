// Area hierarchy operations: the containment forest and its ancestor,
// descendant, and common-ancestor queries.
package memory

import "github.com/mesh-intelligence/gazetteer/pkg/types"

// AddArea inserts a new area with no parent and no children.
func (c *Catalog) AddArea(id types.AreaID, name string, boundary []types.Coord) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.areas[id]; ok {
		return types.ErrDuplicateID
	}
	c.areas[id] = &area{
		data: types.Area{ID: id, Name: name, Boundary: boundary},
	}
	return nil
}

// Area returns a copy of the area with the given id.
func (c *Catalog) Area(id types.AreaID) (types.Area, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	a, ok := c.areas[id]
	if !ok {
		return types.Area{}, types.ErrNotFound
	}
	out := a.data
	out.Boundary = append([]types.Coord(nil), a.data.Boundary...)
	return out, nil
}

// AllAreas returns every area id. Order is not specified.
func (c *Catalog) AllAreas() []types.AreaID {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]types.AreaID, 0, len(c.areas))
	for id := range c.areas {
		ids = append(ids, id)
	}
	return ids
}

// Attach links child under parent. The link is set at most once, ever:
// a child that already has a parent is rejected with ErrParentAlreadySet.
// Attachments that would close a cycle (the parent is the child itself or
// one of its descendants) are rejected with ErrCycle, keeping the forest
// acyclic so the traversal queries terminate.
func (c *Catalog) Attach(child, parent types.AreaID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	ca, ok := c.areas[child]
	if !ok {
		return types.ErrNotFound
	}
	pa, ok := c.areas[parent]
	if !ok {
		return types.ErrNotFound
	}
	if ca.hasParent {
		return types.ErrParentAlreadySet
	}

	// The parent is a descendant of the child exactly when the child is
	// on the parent's ancestor chain.
	for at := parent; ; {
		if at == child {
			return types.ErrCycle
		}
		a := c.areas[at]
		if !a.hasParent {
			break
		}
		at = a.parent
	}

	ca.parent = parent
	ca.hasParent = true
	pa.children = append(pa.children, child)
	return nil
}

// Ancestors returns the chain of parents from the area upward, immediate
// parent first, root last.
func (c *Catalog) Ancestors(id types.AreaID) ([]types.AreaID, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	a, ok := c.areas[id]
	if !ok {
		return nil, types.ErrNotFound
	}

	var chain []types.AreaID
	for a.hasParent {
		chain = append(chain, a.parent)
		a = c.areas[a.parent]
	}
	return chain, nil
}

// Descendants returns every area reachable through child links, in
// pre-order: each child immediately followed by its own descendants.
func (c *Catalog) Descendants(id types.AreaID) ([]types.AreaID, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	a, ok := c.areas[id]
	if !ok {
		return nil, types.ErrNotFound
	}
	return c.collectDescendants(a, nil), nil
}

func (c *Catalog) collectDescendants(a *area, out []types.AreaID) []types.AreaID {
	for _, child := range a.children {
		out = append(out, child)
		out = c.collectDescendants(c.areas[child], out)
	}
	return out
}

// CommonAncestor returns the deepest area that is an ancestor of both a
// and b, where an area counts as its own ancestor. Areas in different
// trees of the forest have none (ErrNoCommonAncestor).
func (c *Catalog) CommonAncestor(a, b types.AreaID) (types.AreaID, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if _, ok := c.areas[a]; !ok {
		return 0, types.ErrNotFound
	}
	if _, ok := c.areas[b]; !ok {
		return 0, types.ErrNotFound
	}

	// Compare the two root-first chains and keep the entry before the
	// first disagreement. Disagreement at the root means disjoint trees.
	chainA := c.chainFromRoot(a)
	chainB := c.chainFromRoot(b)

	shared := 0
	for shared < len(chainA) && shared < len(chainB) && chainA[shared] == chainB[shared] {
		shared++
	}
	if shared == 0 {
		return 0, types.ErrNoCommonAncestor
	}
	return chainA[shared-1], nil
}

// chainFromRoot returns the path from the area's root down to the area
// itself, both endpoints included.
func (c *Catalog) chainFromRoot(id types.AreaID) []types.AreaID {
	chain := []types.AreaID{id}
	for a := c.areas[id]; a.hasParent; a = c.areas[a.parent] {
		chain = append(chain, a.parent)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}
