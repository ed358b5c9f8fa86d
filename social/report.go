package social

import (
	"fmt"
	"io"
	"strings"
)

// NoFriends is printed in place of the friend list for people without friends.
const NoFriends = "(no friends)"

// FormatLine renders one report line. friends are printed in the given order.
func FormatLine(name string, friends []string) string {
	list := NoFriends
	if len(friends) > 0 {
		list = strings.Join(friends, ", ")
	}

	return fmt.Sprintf("%s is friends with: %s", name, list)
}

// Report returns one line per person, names ascending, each with friends ascending.
func (n *Network) Report() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	names := n.graph.Vertices()
	lines := make([]string, 0, len(names))
	for _, name := range names {
		friends, err := n.graph.SortedNeighborIDs(name)
		if err != nil {
			continue
		}
		lines = append(lines, FormatLine(name, friends))
	}

	return lines
}

// PrintNetwork writes Report to w, one line each.
func (n *Network) PrintNetwork(w io.Writer) error {
	for _, line := range n.Report() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}
