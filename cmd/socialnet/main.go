// Command socialnet applies a roster to a fresh network and prints the result.
//
//	socialnet              # built-in demo roster
//	socialnet roster.toml  # roster from file
//
// Each skipped or rejected request prints one line, followed by the network
// report. Logging goes to stderr; see package logging for its env variables.
package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/socialnet/logging"
	"github.com/katalvlaran/socialnet/roster"
	"github.com/katalvlaran/socialnet/social"
)

//go:embed demo.toml
var demoRoster []byte

func main() {
	logging.ConfigureRuntime()
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "socialnet: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	r, err := loadRoster(args)
	if err != nil {
		return err
	}

	n := social.New()
	for _, o := range r.Apply(n) {
		if msg := o.Message(); msg != "" {
			if _, err := fmt.Fprintln(out, msg); err != nil {
				return err
			}
		}
	}
	return n.PrintNetwork(out)
}

func loadRoster(args []string) (roster.Roster, error) {
	switch len(args) {
	case 0:
		return roster.Decode(bytes.NewReader(demoRoster))
	case 1:
		return roster.Load(args[0])
	default:
		return roster.Roster{}, fmt.Errorf("usage: socialnet [roster.toml]")
	}
}
