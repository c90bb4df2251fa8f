package domain

// StreamKind identifies which output stream of a process a line came from.
type StreamKind uint8

const (
	// StreamStdout is a process's standard output.
	StreamStdout StreamKind = iota
	// StreamStderr is a process's standard error.
	StreamStderr
)

// String returns "stdout" or "stderr".
func (k StreamKind) String() string {
	if k == StreamStderr {
		return "stderr"
	}
	return "stdout"
}

// Line is a single complete line read from a supervised process.
type Line struct {
	Source string
	Kind   StreamKind
	Text   string
}

// Label identifies the line's (tool, stream) origin, e.g. "vite:stderr".
func (l Line) Label() string {
	return l.Source + ":" + l.Kind.String()
}

// String renders the line as it is written to the log.
func (l Line) String() string {
	return "[" + l.Label() + "] " + l.Text
}
