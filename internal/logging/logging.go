// Package logging builds the zap loggers used by boundctl.
package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvLogLevel overrides the configured level when set.
const EnvLogLevel = "BOUNDED_LOG_LEVEL"

// Profile selects encoder and default level.
type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

// New returns a logger for the given profile. level may be empty, in which
// case the profile default applies; BOUNDED_LOG_LEVEL wins over both.
func New(profile Profile, level string) (*zap.Logger, error) {
	var cfg zap.Config
	switch profile {
	case ProfileTest:
		cfg = zap.NewDevelopmentConfig()
	default:
		cfg = zap.NewProductionConfig()
		cfg.OutputPaths = []string{"stderr"}
	}

	if env := os.Getenv(EnvLogLevel); env != "" {
		level = env
	}
	if level != "" {
		lvl, err := ParseLevel(level)
		if err != nil {
			return nil, err
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	return cfg.Build()
}

// ParseLevel maps a level name such as "debug" or "WARN" to a zapcore.Level.
func ParseLevel(s string) (zapcore.Level, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(s)))); err != nil {
		return lvl, fmt.Errorf("parse log level %q: %w", s, err)
	}
	return lvl, nil
}
