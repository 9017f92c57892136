package testutil

import (
	"context"

	"github.com/AntonioJCosta/myshell/internal/core/domain/command"
	"github.com/AntonioJCosta/myshell/internal/core/ports"
)

// MockLauncher is a mock implementation of ports.Launcher.
type MockLauncher struct {
	LaunchFunc func(ctx context.Context, tokens []string, terminal command.Streams) (int, error)
	Calls      [][]string
}

// Launch records tokens and calls LaunchFunc. Without LaunchFunc it succeeds.
func (m *MockLauncher) Launch(ctx context.Context, tokens []string, terminal command.Streams) (int, error) {
	m.Calls = append(m.Calls, tokens)
	if m.LaunchFunc != nil {
		return m.LaunchFunc(ctx, tokens, terminal)
	}
	return 0, nil
}

var _ ports.Launcher = (*MockLauncher)(nil)
