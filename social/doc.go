// Package social models an undirected social graph: people are nodes and
// friendships are symmetric edges.
//
// A Network is the registry. It owns a core.Graph in which every person is a
// vertex addressed by name; friend lists hold names, so there are no pointer
// cycles between people. People and friendships are only ever added.
//
//	n := social.New()
//	n.AddPerson("Alex")
//	n.AddPerson("Jordan")
//	n.AddFriendship("Alex", "Jordan")
//	_ = n.PrintNetwork(os.Stdout)
//	// Alex is friends with: Jordan
//	// Jordan is friends with: Alex
//
// Mutations never print. They return an Outcome (Created, DuplicateSkipped or
// Rejected with a Reason) whose Message method renders the console line a
// front end should show, and whose Err method maps onto the package's sentinel
// errors.
//
// A Network is safe for concurrent use.
package social
