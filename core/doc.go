// Package core provides a thread-safe, in-memory undirected graph keyed by
// string vertex IDs. It is the arena the social package stores people and
// friendships in: vertices are addressed by stable identifier and adjacency
// lists hold identifiers, never pointers, so no ownership cycles arise.
//
// The Graph G = (V,E) is a simple graph:
//
//   - Undirected: AddEdge(a,b) makes b a neighbor of a and a a neighbor of b, atomically.
//   - At most one edge per unordered pair; a second AddEdge returns ErrEdgeExists.
//   - Self-loops rejected unless built WithLoops().
//   - Endpoints must already exist; AddEdge never creates vertices.
//   - Grow-only: there is no removal API.
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj).
//
// Deterministic enumeration:
//
//	Vertices()            // sorted lex asc
//	NeighborIDs(id)       // insertion order
//	SortedNeighborIDs(id) // sorted lex asc
//	Edges()               // creation order ("e1", "e2", ...)
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error          // O(1); ErrVertexExists on duplicates
//	HasVertex(id string) bool           // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string) (string, error) // O(1)
//	HasEdge(a, b string) bool                // O(1), symmetric
//	GetEdge(id string) (*Edge, error)        // O(1)
//
//	// Counts & snapshots
//	Degree(id string) (int, error)
//	VertexCount(), EdgeCount() int
//	AdjacencyList() map[string][]string
//	Stats() *GraphStats
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrVertexNotFound – missing vertex
//	ErrVertexExists   – duplicate vertex
//	ErrEdgeNotFound   – missing edge
//	ErrEdgeExists     – pair already joined
//	ErrLoopNotAllowed – self-loop when loops disabled
package core
