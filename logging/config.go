// Package logging configures logrus for socialnet binaries and tests.
//
// Runtime defaults to warn so that console output stays limited to outcome
// messages and the network report; SOCIALNET_LOG_LEVEL raises it.
package logging

import (
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

const (
	EnvLogLevel     = "SOCIALNET_LOG_LEVEL"
	EnvLogTimestamp = "SOCIALNET_LOG_TIMESTAMP"
	EnvLogJSON      = "SOCIALNET_LOG_JSON"
)

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

// Config is the resolved logger setup.
type Config struct {
	Level     logrus.Level
	Timestamp bool
	JSON      bool
	Output    io.Writer
}

var configureOnce sync.Once

func ConfigureRuntime() {
	Configure(ProfileRuntime)
}

func ConfigureTests() {
	Configure(ProfileTest)
}

// Configure applies profile defaults and environment overrides to the logrus
// standard logger. Only the first call has an effect.
func Configure(profile Profile) {
	configureOnce.Do(func() {
		cfg := DefaultConfig(profile)
		applyEnvOverrides(&cfg, os.Getenv)
		Apply(logrus.StandardLogger(), cfg)
	})
}

// New returns a fresh logger for profile with environment overrides applied.
func New(profile Profile) *logrus.Logger {
	cfg := DefaultConfig(profile)
	applyEnvOverrides(&cfg, os.Getenv)
	l := logrus.New()
	Apply(l, cfg)
	return l
}

func DefaultConfig(profile Profile) Config {
	cfg := Config{Output: os.Stderr}
	switch profile {
	case ProfileTest:
		cfg.Level = logrus.DebugLevel
		cfg.Timestamp = false
	default:
		cfg.Level = logrus.WarnLevel
		cfg.Timestamp = true
	}
	return cfg
}

// Apply configures l from cfg.
func Apply(l *logrus.Logger, cfg Config) {
	l.SetLevel(cfg.Level)
	if cfg.Output != nil {
		l.SetOutput(cfg.Output)
	}
	if cfg.JSON {
		l.SetFormatter(&logrus.JSONFormatter{DisableTimestamp: !cfg.Timestamp})
		return
	}
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: !cfg.Timestamp,
		FullTimestamp:    cfg.Timestamp,
	})
}

func applyEnvOverrides(cfg *Config, getenv func(string) string) {
	if lvl, ok := parseLevel(getenv(EnvLogLevel)); ok {
		cfg.Level = lvl
	}
	if v, ok := parseBool(getenv(EnvLogTimestamp)); ok {
		cfg.Timestamp = v
	}
	if v, ok := parseBool(getenv(EnvLogJSON)); ok {
		cfg.JSON = v
	}
}

func parseLevel(raw string) (logrus.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return logrus.InfoLevel, false
	case "trace":
		return logrus.TraceLevel, true
	case "debug":
		return logrus.DebugLevel, true
	case "info":
		return logrus.InfoLevel, true
	case "warn", "warning":
		return logrus.WarnLevel, true
	case "error":
		return logrus.ErrorLevel, true
	case "disabled", "disable", "off", "none":
		return logrus.PanicLevel, true
	default:
		return logrus.InfoLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
