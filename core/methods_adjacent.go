// File: methods_adjacent.go
// Role: Neighborhood APIs (NeighborIDs, SortedNeighborIDs, AdjacencyList) and adjacency helpers.
// Determinism:
//   - NeighborIDs() returns neighbors in the order their edges were created.
//   - SortedNeighborIDs() returns neighbors sorted lex asc.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.
//   - Helpers are called only under the muEdgeAdj write lock by mutating code.

package core

import "sort"

// NeighborIDs returns the IDs adjacent to id in insertion order.
//
// Implementation:
//   - Stage 1: Validate id is non-empty (ErrEmptyVertexID).
//   - Stage 2: Acquire muVert then muEdgeAdj read locks for a consistent snapshot.
//   - Stage 3: Validate vertex existence (ErrVertexNotFound).
//   - Stage 4: Copy the adjacency bucket.
//
// Returns:
//   - []string: a fresh slice the caller may retain and mutate; never nil on success.
//
// Complexity:
//   - Time O(d), Space O(d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	src := g.adjacency[id]
	out := make([]string, len(src))
	copy(out, src)

	return out, nil
}

// SortedNeighborIDs is NeighborIDs with the result sorted lexicographically ascending.
// Complexity: O(d log d).
func (g *Graph) SortedNeighborIDs(id string) ([]string, error) {
	ids, err := g.NeighborIDs(id)
	if err != nil {
		return nil, err
	}
	sort.Strings(ids)

	return ids, nil
}

// AdjacencyList returns a snapshot mapping every vertex ID to its sorted neighbor IDs.
// Isolated vertices map to an empty, non-nil slice.
//
// Notes:
//   - Map key iteration order is not deterministic in Go; use Vertices() for key order.
//
// Complexity:
//   - Time O(V + E log E), Space O(V + E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	result := make(map[string][]string, len(g.vertices))
	for id := range g.vertices {
		buf := make([]string, len(g.adjacency[id]))
		copy(buf, g.adjacency[id])
		sort.Strings(buf)
		result[id] = buf
	}

	return result
}

// ensureAdjacency guarantees that adjacency[id] has an entry.
// Must be called ONLY under muEdgeAdj write lock.
func ensureAdjacency(g *Graph, id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = nil
	}
}
