package social_test

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/socialnet/social"
	"github.com/sirupsen/logrus"
)

func quietNetwork() *social.Network {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return social.New(social.WithLogger(l))
}

// ExampleNetwork builds the three-person network and prints its report.
func ExampleNetwork() {
	n := quietNetwork()
	for _, name := range []string{"Alex", "Jordan", "Morgan"} {
		n.AddPerson(name)
	}
	n.AddFriendship("Alex", "Jordan")

	_ = n.PrintNetwork(os.Stdout)

	// Output:
	// Alex is friends with: Jordan
	// Jordan is friends with: Alex
	// Morgan is friends with: (no friends)
}

// ExampleOutcome_Message shows the console text for rejected and skipped requests.
func ExampleOutcome_Message() {
	n := quietNetwork()
	n.AddPerson("Alex")
	n.AddPerson("Jordan")
	n.AddFriendship("Alex", "Jordan")

	for _, out := range []social.Outcome{
		n.AddPerson("Alex"),
		n.AddFriendship("Alex", "Alex"),
		n.AddFriendship("Jordan", "Johnny"),
		n.AddFriendship("Alex", "Jordan"),
	} {
		fmt.Println(out.Message())
	}

	// Output:
	// Person 'Alex' already exists. Skipping duplicate.
	// Friendship not created. Cannot friend yourself.
	// Friendship not created. Johnny does not exist!
	// Friendship between 'Alex' and 'Jordan' already exists.
}
