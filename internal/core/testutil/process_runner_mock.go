package testutil

import (
	"context"
	"errors"

	"github.com/AntonioJCosta/myshell/internal/core/domain/command"
	"github.com/AntonioJCosta/myshell/internal/core/ports"
)

// MockProcessRunner is a mock implementation of ports.ProcessRunner.
// Calls records every argv it was asked to run.
type MockProcessRunner struct {
	RunFunc func(ctx context.Context, argv []string, streams command.Streams) (int, error)
	Calls   [][]string
}

// Run calls the mock RunFunc.
func (m *MockProcessRunner) Run(ctx context.Context, argv []string, streams command.Streams) (int, error) {
	m.Calls = append(m.Calls, argv)
	if m.RunFunc != nil {
		return m.RunFunc(ctx, argv, streams)
	}
	return 1, errors.New("MockProcessRunner.RunFunc not implemented")
}

var _ ports.ProcessRunner = (*MockProcessRunner)(nil)
