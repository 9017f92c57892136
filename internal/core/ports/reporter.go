package ports

import "io"

// Reporter writes one-line user-facing messages.
type Reporter interface {
	// Error writes a diagnostic line.
	Error(w io.Writer, msg string)
	// Info writes an informational line.
	Info(w io.Writer, msg string)
}
