// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for core.Graph.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Enforce concurrency-safe testing patterns (no *testing.T usage inside goroutines).

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/socialnet/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"

	VertexX = "X"
)

// Common concurrency sizes used across core tests (avoid magic numbers in test bodies).
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// NewGraphABCD RETURNS a default graph with vertices A, B, C, D and no edges.
func NewGraphABCD(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	for _, id := range []string{VertexA, VertexB, VertexC, VertexD} {
		MustNoError(t, g.AddVertex(id), "AddVertex("+id+")")
	}

	return g
}

// MustNoError FAILS the test if err != nil.
//
// Notes:
//   - Keep op stable and descriptive; prefer call-signature labels like "AddEdge(A,B)".
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs FAILS the test if !errors.Is(err, target).
// Use only for sentinel-style contracts (core.Err*).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
}

// MustNoErrorsFromChan FAILS the test if any non-nil error is received.
//
// Goroutines send errors to a channel; the parent goroutine validates.
// The channel must be closed by the caller.
func MustNoErrorsFromChan(t *testing.T, errCh <-chan error, op string) {
	t.Helper()

	for err := range errCh {
		if err == nil {
			continue
		}
		t.Fatalf("%s: unexpected concurrent error: %v", op, err)
	}
}

// ExtractEdgeIDs RETURNS edge IDs preserving the incoming slice order.
func ExtractEdgeIDs(edges []*core.Edge) []string {
	out := make([]string, len(edges))
	for i := range edges {
		out[i] = edges[i].ID
	}

	return out
}
