// Package logtest holds logging helpers shared by package tests.
package logtest

import (
	"testing"

	"github.com/katalvlaran/socialnet/logging"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// Start configures the test logging profile and tags the run.
func Start(t *testing.T) {
	t.Helper()
	logging.ConfigureTests()
	logrus.WithField("test", t.Name()).Debug("start")
}

// Capture returns a debug-level logger whose entries are recorded by the hook
// instead of written anywhere.
func Capture(t *testing.T) (*logrus.Logger, *test.Hook) {
	t.Helper()
	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)
	return l, hook
}
