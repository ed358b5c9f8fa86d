package social

import "fmt"

// Person is a participant in the network and its direct friends.
//
// Friends holds names, not pointers; names resolve against the Network that
// produced the Person. Values returned by Network are detached snapshots.
type Person struct {
	Name    string
	Friends []string
}

// AddFriend appends other to p's friends and reports whether it did.
//
// Passing p itself, a Person with the same name, or an existing friend is a
// no-op. The link is one-directional; callers keeping two views in sync must
// call it on both.
func (p *Person) AddFriend(other *Person) bool {
	if other == nil || other == p || other.Name == p.Name {
		return false
	}
	if p.HasFriend(other.Name) {
		return false
	}
	p.Friends = append(p.Friends, other.Name)

	return true
}

// HasFriend reports whether name is among p's friends.
func (p *Person) HasFriend(name string) bool {
	for _, f := range p.Friends {
		if f == name {
			return true
		}
	}

	return false
}

func (p Person) String() string {
	return fmt.Sprintf("Person(%q)", p.Name)
}
