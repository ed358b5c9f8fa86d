// Package socialnet is an in-memory social graph: people as nodes,
// friendships as symmetric edges, and a deterministic adjacency report.
//
// Layout:
//
//	core/           — thread-safe undirected Graph arena keyed by string IDs
//	social/         — Person, Network, Outcome: the registry people and friendships live in
//	roster/         — TOML roster files applied to a Network
//	logging/        — logrus setup for binaries and tests
//	cmd/socialnet/  — CLI: apply a roster, print outcome messages and the report
//	examples/       — runnable walkthrough of outcome handling
//
// Quick ASCII example:
//
//	Alex───Jordan     Morgan
//
// prints
//
//	Alex is friends with: Jordan
//	Jordan is friends with: Alex
//	Morgan is friends with: (no friends)
//
//	go run github.com/katalvlaran/socialnet/cmd/socialnet
package socialnet
