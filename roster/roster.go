// Package roster loads people and friendships from a TOML file and applies
// them to a social.Network.
//
//	people = ["Alex", "Jordan", "Morgan"]
//
//	[[friendships]]
//	a = "Alex"
//	b = "Jordan"
package roster

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/katalvlaran/socialnet/social"
	"github.com/sirupsen/logrus"
)

// ErrNoPeople is returned by Validate for a roster that registers nobody.
var ErrNoPeople = errors.New("roster: no people listed")

// Roster is the decoded file. Entries are kept in file order, duplicates included.
type Roster struct {
	People      []string     `toml:"people"`
	Friendships []Friendship `toml:"friendships"`
}

// Friendship is one [[friendships]] table.
type Friendship struct {
	A string `toml:"a"`
	B string `toml:"b"`
}

// Load reads and decodes the roster at path.
func Load(path string) (Roster, error) {
	var r Roster
	meta, err := toml.DecodeFile(path, &r)
	if err != nil {
		return Roster{}, fmt.Errorf("roster load failed (%s): %w", path, err)
	}
	return finish(r, meta)
}

// Decode reads a roster from rd.
func Decode(rd io.Reader) (Roster, error) {
	var r Roster
	meta, err := toml.NewDecoder(rd).Decode(&r)
	if err != nil {
		return Roster{}, fmt.Errorf("roster parse failed: %w", err)
	}
	return finish(r, meta)
}

func finish(r Roster, meta toml.MetaData) (Roster, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return Roster{}, fmt.Errorf("roster has unknown keys: %s", strings.Join(keys, ", "))
	}
	r.People = normalizeNames(r.People)
	for i := range r.Friendships {
		r.Friendships[i].A = strings.TrimSpace(r.Friendships[i].A)
		r.Friendships[i].B = strings.TrimSpace(r.Friendships[i].B)
	}
	if err := r.Validate(); err != nil {
		return Roster{}, err
	}
	return r, nil
}

// Validate reports structural problems. Unknown names in friendships are not
// an error here; the network reports them when the roster is applied.
func (r Roster) Validate() error {
	if len(r.People) == 0 {
		return ErrNoPeople
	}
	for i, f := range r.Friendships {
		if f.A == "" || f.B == "" {
			return fmt.Errorf("friendships[%d] invalid: a and b are required", i)
		}
	}
	return nil
}

// Apply registers every person, then every friendship, in file order, and
// returns the outcome of each call in the same order.
func (r Roster) Apply(n *social.Network) []social.Outcome {
	outcomes := make([]social.Outcome, 0, len(r.People)+len(r.Friendships))
	for _, name := range r.People {
		outcomes = append(outcomes, n.AddPerson(name))
	}
	for _, f := range r.Friendships {
		outcomes = append(outcomes, n.AddFriendship(f.A, f.B))
	}

	logrus.WithFields(logrus.Fields{
		"function":    "Apply",
		"network_id":  n.ID().String(),
		"people":      len(r.People),
		"friendships": len(r.Friendships),
		"skipped":     countNotOK(outcomes),
	}).Debug("Roster applied")

	return outcomes
}

func normalizeNames(in []string) []string {
	out := make([]string, 0, len(in))
	for _, name := range in {
		v := strings.TrimSpace(name)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}

func countNotOK(outcomes []social.Outcome) int {
	c := 0
	for _, o := range outcomes {
		if !o.OK() {
			c++
		}
	}
	return c
}
