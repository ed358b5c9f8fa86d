package roster_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/socialnet/logging/logtest"
	"github.com/katalvlaran/socialnet/roster"
	"github.com/katalvlaran/socialnet/social"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const small = `
people = ["Alex", " Jordan ", "Morgan", "Alex", ""]

[[friendships]]
a = "Alex"
b = "Jordan"

[[friendships]]
a = "Jordan"
b = "Johnny"

[[friendships]]
a = "Jordan"
b = "Alex"
`

func TestDecodeAndApply(t *testing.T) {
	logtest.Start(t)
	r, err := roster.Decode(strings.NewReader(small))
	require.NoError(t, err)
	assert.Equal(t, []string{"Alex", "Jordan", "Morgan", "Alex"}, r.People)
	require.Len(t, r.Friendships, 3)

	l, _ := logtest.Capture(t)
	n := social.New(social.WithLogger(l))
	outcomes := r.Apply(n)
	require.Len(t, outcomes, 7)

	statuses := make([]social.Status, len(outcomes))
	for i, o := range outcomes {
		statuses[i] = o.Status
	}
	assert.Equal(t, []social.Status{
		social.Created, social.Created, social.Created, social.DuplicateSkipped,
		social.Created, social.Rejected, social.DuplicateSkipped,
	}, statuses)
	assert.Equal(t, "Friendship not created. Johnny does not exist!", outcomes[5].Message())

	assert.Equal(t, []string{
		"Alex is friends with: Jordan",
		"Jordan is friends with: Alex",
		"Morgan is friends with: (no friends)",
	}, n.Report())
}

func TestDecodeErrors(t *testing.T) {
	_, err := roster.Decode(strings.NewReader(`people = [`))
	assert.Error(t, err)

	_, err = roster.Decode(strings.NewReader(`friends = ["x"]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown keys: friends")

	_, err = roster.Decode(strings.NewReader(`people = []`))
	assert.ErrorIs(t, err, roster.ErrNoPeople)

	_, err = roster.Decode(strings.NewReader("people = [\"A\"]\n[[friendships]]\na = \"A\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "friendships[0] invalid")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.toml")
	require.NoError(t, os.WriteFile(path, []byte(small), 0o600))

	r, err := roster.Load(path)
	require.NoError(t, err)
	assert.Len(t, r.People, 4)

	_, err = roster.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "roster load failed")
}
