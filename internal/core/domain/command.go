package domain

// Command describes one subprocess invocation.
type Command struct {
	Name string
	Args []string
	Dir  string
}

// CommandResult carries the captured streams and exit status of a finished
// subprocess. It is populated even when the process exits nonzero so that
// callers can report truncated output.
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}
