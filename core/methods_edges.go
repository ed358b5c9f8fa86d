// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/GetEdge/Edges/EdgeCount, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in creation order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - AddEdge holds muVert (read) and muEdgeAdj (write) for the whole insert.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
// Byte form allows append to a []byte buffer without fmt.
const edgeIDPrefix = 'e'

// AddEdge connects from and to with an undirected edge and returns its ID.
//
// Steps:
//  1. Validate IDs and the loop policy.
//  2. RLock muVert, Lock muEdgeAdj; both endpoints must be registered.
//  3. If the unordered pair is already joined, return its ID with ErrEdgeExists.
//  4. Generate eid, store the edge, index the pair.
//  5. Append to adjacency[from]; if from != to, append to adjacency[to].
//
// Endpoints are never created implicitly. Steps 3-5 happen under a single write
// lock, so both directions of the adjacency appear together or not at all.
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed, ErrVertexNotFound, ErrEdgeExists.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[from]; !ok {
		return "", ErrVertexNotFound
	}
	if _, ok := g.vertices[to]; !ok {
		return "", ErrVertexNotFound
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	k := keyOf(from, to)
	if eid, ok := g.pairs[k]; ok {
		return eid, ErrEdgeExists
	}

	n := atomic.AddUint64(&g.nextEdgeID, 1)
	e := &Edge{ID: formatEdgeID(n), From: from, To: to, seq: n}
	g.edges[e.ID] = e
	g.pairs[k] = e.ID

	ensureAdjacency(g, from)
	g.adjacency[from] = append(g.adjacency[from], to)
	if from != to {
		ensureAdjacency(g, to)
		g.adjacency[to] = append(g.adjacency[to], from)
	}

	return e.ID, nil
}

// HasEdge reports whether a and b are joined, in either orientation.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.pairs[keyOf(a, b)]

	return ok
}

// GetEdge returns the Edge with the given ID, or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only.
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges in creation order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// EdgeCount returns total number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// formatEdgeID renders sequence number n as "e<n>" without fmt.
func formatEdgeID(n uint64) string {
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
