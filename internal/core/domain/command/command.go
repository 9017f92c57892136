/*
Package command defines the core domain entities for a single command
invocation: its argument vector, its redirection and the streams it runs with.
*/
package command

import "io"

// RedirectMode identifies which standard stream a redirection rebinds.
type RedirectMode int

const (
	ModeNone   RedirectMode = iota
	ModeRead                // <
	ModeWrite               // >
	ModeAppend              // >>
)

// String returns the operator text for the mode.
func (m RedirectMode) String() string {
	switch m {
	case ModeRead:
		return "<"
	case ModeWrite:
		return ">"
	case ModeAppend:
		return ">>"
	default:
		return ""
	}
}

// ParseOperator maps an accumulated operator string to its mode.
// It reports false for anything other than "<", ">" or ">>".
func ParseOperator(op string) (RedirectMode, bool) {
	switch op {
	case "<":
		return ModeRead, true
	case ">":
		return ModeWrite, true
	case ">>":
		return ModeAppend, true
	default:
		return ModeNone, false
	}
}

// Redirection is the single redirection honored for an invocation.
type Redirection struct {
	Mode   RedirectMode
	Target string
}

// Invocation is an external command after redirection extraction.
type Invocation struct {
	Argv        []string // argv[0] is the program name
	Redirection Redirection
}

// Streams holds the standard streams a child process is started with.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Builtin describes a command executed inside the interpreter process.
type Builtin struct {
	Name    string
	Usage   string
	Summary string
}
