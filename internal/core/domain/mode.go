package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Strategy selects how dev mode keeps built assets fresh.
type Strategy string

const (
	// StrategyGate rescans the source tree on the request path and rebuilds when stale.
	StrategyGate Strategy = "gate"
	// StrategyWatch runs the build tools in their own watch mode for the server's lifetime.
	StrategyWatch Strategy = "watch"
)

// ParseStrategy parses a strategy name. The empty string selects StrategyGate.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case "", StrategyGate:
		return StrategyGate, nil
	case StrategyWatch:
		return StrategyWatch, nil
	default:
		return "", zerr.With(ErrInvalidStrategy, "strategy", s)
	}
}

// Mode is the recompiler arrangement the host runs with. Exactly one is active.
type Mode uint8

const (
	// ModeProduction serves built assets as they are.
	ModeProduction Mode = iota
	// ModeGate installs the staleness gate in front of static serving.
	ModeGate
	// ModeWatch starts the process supervisor at startup.
	ModeWatch
)

// String returns the mode name used in logs.
func (m Mode) String() string {
	switch m {
	case ModeGate:
		return "dev (gate)"
	case ModeWatch:
		return "dev (watch)"
	default:
		return "production"
	}
}
