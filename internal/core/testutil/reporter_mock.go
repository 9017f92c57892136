package testutil

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/myshell/internal/core/ports"
)

// MockReporter writes messages uncolored and records them.
type MockReporter struct {
	Errors []string
	Infos  []string
}

func (m *MockReporter) Error(w io.Writer, msg string) {
	m.Errors = append(m.Errors, msg)
	fmt.Fprintln(w, msg)
}

func (m *MockReporter) Info(w io.Writer, msg string) {
	m.Infos = append(m.Infos, msg)
	fmt.Fprintln(w, msg)
}

var _ ports.Reporter = (*MockReporter)(nil)
