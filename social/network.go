// File: network.go
// Role: Network registry: person and friendship mutations over the core.Graph arena.
// Concurrency:
//   - mu serialises mutations so the presence checks in AddFriendship and the
//     edge insert that follows form one step.
//   - Reads go straight to the arena, which carries its own locks.

package social

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/katalvlaran/socialnet/core"
	"github.com/sirupsen/logrus"
)

// Network owns every Person registered in it. People and friendships only grow.
type Network struct {
	mu    sync.Mutex
	id    uuid.UUID
	graph *core.Graph
	log   logrus.FieldLogger
}

// Option configures a Network at construction.
type Option func(*Network)

// WithLogger routes mutation logs to l instead of the logrus standard logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(n *Network) {
		if l != nil {
			n.log = l
		}
	}
}

// WithID fixes the network ID, which is otherwise random.
func WithID(id uuid.UUID) Option {
	return func(n *Network) { n.id = id }
}

// New returns an empty Network.
func New(opts ...Option) *Network {
	n := &Network{
		id:    uuid.New(),
		graph: core.NewGraph(),
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// ID returns the network's identifier, attached to every log entry it writes.
func (n *Network) ID() uuid.UUID { return n.id }

// AddPerson registers name.
//
// A name already registered yields DuplicateSkipped and leaves the existing
// Person and its friends untouched. An empty name is Rejected.
func (n *Network) AddPerson(name string) Outcome {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := Outcome{Op: OpAddPerson, Subject: []string{name}}
	switch err := n.graph.AddVertex(name); {
	case err == nil:
		out.Status = Created
	case errors.Is(err, core.ErrVertexExists):
		out.Status = DuplicateSkipped
	default:
		out.Status, out.Reason = Rejected, ReasonEmptyName
	}
	n.logOutcome(out)

	return out
}

// AddFriendship makes a and b friends of each other.
//
// Checks run in order: a == b is Rejected (self friendship); unregistered
// names are Rejected with Missing set; an existing friendship is
// DuplicateSkipped. Only a Created outcome changes state, and it adds both
// directions together.
func (n *Network) AddFriendship(a, b string) Outcome {
	out := Outcome{Op: OpAddFriendship, Subject: []string{a, b}}
	if a == b {
		out.Status, out.Reason = Rejected, ReasonSelfFriendship
		n.logOutcome(out)
		return out
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	for _, name := range out.Subject {
		if !n.graph.HasVertex(name) {
			out.Missing = append(out.Missing, name)
		}
	}
	if len(out.Missing) > 0 {
		out.Status, out.Reason = Rejected, ReasonUnknownPerson
		n.logOutcome(out)
		return out
	}

	switch _, err := n.graph.AddEdge(a, b); {
	case err == nil:
		out.Status = Created
	case errors.Is(err, core.ErrEdgeExists):
		out.Status = DuplicateSkipped
	default:
		// Unreachable while mu is held and people are never removed.
		out.Status, out.Reason = Rejected, ReasonUnknownPerson
	}
	n.logOutcome(out)

	return out
}

// HasPerson reports whether name is registered.
func (n *Network) HasPerson(name string) bool { return n.graph.HasVertex(name) }

// Person returns a snapshot of name with friends in the order they were added.
func (n *Network) Person(name string) (Person, bool) {
	friends, err := n.graph.NeighborIDs(name)
	if err != nil {
		return Person{}, false
	}

	return Person{Name: name, Friends: friends}, true
}

// Friends returns the friends of name in the order they were added.
func (n *Network) Friends(name string) ([]string, error) {
	friends, err := n.graph.NeighborIDs(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPerson, name)
	}

	return friends, nil
}

// AreFriends reports whether a and b are friends. It is symmetric.
func (n *Network) AreFriends(a, b string) bool {
	return a != b && n.graph.HasEdge(a, b)
}

// People returns all registered names, ascending.
func (n *Network) People() []string { return n.graph.Vertices() }

// Len returns the number of registered people.
func (n *Network) Len() int { return n.graph.VertexCount() }

// FriendshipCount returns the number of friendships (each counted once).
func (n *Network) FriendshipCount() int { return n.graph.EdgeCount() }

func (n *Network) logOutcome(out Outcome) {
	entry := n.log.WithFields(logrus.Fields{
		"function":   out.Op.String(),
		"network_id": n.id.String(),
		"subject":    out.Subject,
		"status":     out.Status.String(),
	})
	if out.OK() {
		entry.Debug("Network updated")
		return
	}
	entry.WithField("reason", out.Reason.String()).Info(out.Message())
}
