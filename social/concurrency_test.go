package social_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/socialnet/social"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddFriendship races both orientations of one pair: exactly one is Created.
func TestConcurrentAddFriendship(t *testing.T) {
	n := newNetwork(t, Alex, Jordan)

	const workers = 64
	results := make(chan social.Status, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				results <- n.AddFriendship(Alex, Jordan).Status
				return
			}
			results <- n.AddFriendship(Jordan, Alex).Status
		}(i)
	}
	wg.Wait()
	close(results)

	counts := map[social.Status]int{}
	for s := range results {
		counts[s]++
	}
	assert.Equal(t, 1, counts[social.Created])
	assert.Equal(t, workers-1, counts[social.DuplicateSkipped])
	assert.Equal(t, 1, n.FriendshipCount())
}

// TestConcurrentAddPerson races registrations of the same names.
func TestConcurrentAddPerson(t *testing.T) {
	n := newNetwork(t)

	const names, rounds = 10, 8
	var wg sync.WaitGroup
	created := make(chan string, names*rounds)
	wg.Add(names * rounds)
	for r := 0; r < rounds; r++ {
		for i := 0; i < names; i++ {
			go func(i int) {
				defer wg.Done()
				name := fmt.Sprintf("P%d", i)
				if n.AddPerson(name).OK() {
					created <- name
				}
			}(i)
		}
	}
	wg.Wait()
	close(created)

	seen := map[string]int{}
	for name := range created {
		seen[name]++
	}
	require.Len(t, seen, names)
	for name, c := range seen {
		assert.Equal(t, 1, c, name)
	}
	assert.Equal(t, names, n.Len())
}
