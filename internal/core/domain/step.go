package domain

import "strings"

// BuildStep is one external build tool invocation run to completion.
type BuildStep struct {
	// Name labels the step in logs, e.g. "tailwind".
	Name string
	// Command is the executable followed by its arguments.
	Command []string
	// WorkingDir is the directory the command runs in. Empty means the current directory.
	WorkingDir string
	// Environment holds extra variables layered over the inherited environment.
	Environment map[string]string
}

// String renders the command line for logs.
func (s BuildStep) String() string {
	return strings.Join(s.Command, " ")
}

// BuildOutcome is the result of a single build step. It is logged, never persisted.
type BuildOutcome struct {
	Step   string
	Stdout string
	Stderr string
	// Err is nil when the step launched and exited with status zero.
	Err error
}

// Succeeded reports whether the step launched and exited cleanly.
func (o BuildOutcome) Succeeded() bool {
	return o.Err == nil
}

// WatchSpec describes a long-lived build tool started in watch mode.
type WatchSpec struct {
	// Name identifies the tool in multiplexed log lines.
	Name        string
	Command     []string
	WorkingDir  string
	Environment map[string]string
}
