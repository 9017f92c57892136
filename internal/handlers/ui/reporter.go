package ui

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/myshell/internal/core/ports"
)

// ConsoleReporter implements ports.Reporter. Diagnostics and the farewell
// are written uncolored, so the bytes match the documented messages even
// on a terminal.
type ConsoleReporter struct{}

// NewConsoleReporter creates a new ConsoleReporter.
func NewConsoleReporter() ports.Reporter {
	return &ConsoleReporter{}
}

func (r *ConsoleReporter) Error(w io.Writer, msg string) {
	fmt.Fprintln(w, msg)
}

func (r *ConsoleReporter) Info(w io.Writer, msg string) {
	fmt.Fprintln(w, msg)
}
