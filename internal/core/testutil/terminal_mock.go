package testutil

import (
	"bytes"
	"io"
	"strings"

	"github.com/AntonioJCosta/myshell/internal/core/domain/command"
	"github.com/AntonioJCosta/myshell/internal/core/ports"
)

// MockTerminal is an in-memory ports.Terminal fed from a fixed input.
type MockTerminal struct {
	In     io.Reader
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
	Closed bool
}

// NewMockTerminal creates a MockTerminal that reads input.
func NewMockTerminal(input string) *MockTerminal {
	return &MockTerminal{
		In:     strings.NewReader(input),
		Out:    &bytes.Buffer{},
		ErrOut: &bytes.Buffer{},
	}
}

func (m *MockTerminal) Streams() command.Streams {
	return command.Streams{Stdin: m.In, Stdout: m.Out, Stderr: m.ErrOut}
}

func (m *MockTerminal) Close() error {
	m.Closed = true
	return nil
}

var _ ports.Terminal = (*MockTerminal)(nil)
