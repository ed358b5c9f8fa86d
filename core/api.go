// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters and snapshots.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	AllowsLoops bool // self-loop policy

	VertexCount int // |V|
	EdgeCount   int // |E|

	// Isolated counts vertices with no neighbors.
	Isolated int
}

// Looped reports whether self-loops (from==to) are permitted by policy.
// If false, AddEdge(v,v) rejects the operation with ErrLoopNotAllowed.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Stats produces a deterministic, read-only snapshot of the loop policy and catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock and muEdgeAdj.RLock (in that order).
//   - Stage 2: Record flag and counts; scan vertices once for isolated ones.
//
// Complexity:
//   - Time O(V), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	stats := GraphStats{
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.edges),
	}
	for id := range g.vertices {
		if len(g.adjacency[id]) == 0 {
			stats.Isolated++
		}
	}

	return &stats
}
