package testutil

import (
	"context"

	"github.com/AntonioJCosta/myshell/internal/core/domain/command"
	"github.com/AntonioJCosta/myshell/internal/core/ports"
)

// MockInterpreter is a mock implementation of ports.Interpreter.
type MockInterpreter struct {
	RunFunc      func(ctx context.Context) int
	DispatchFunc func(ctx context.Context, line string) (int, error)
	BuiltinList  []command.Builtin

	RunCalls      int
	DispatchCalls []string
}

func (m *MockInterpreter) Run(ctx context.Context) int {
	m.RunCalls++
	if m.RunFunc != nil {
		return m.RunFunc(ctx)
	}
	return 0
}

func (m *MockInterpreter) Dispatch(ctx context.Context, line string) (int, error) {
	m.DispatchCalls = append(m.DispatchCalls, line)
	if m.DispatchFunc != nil {
		return m.DispatchFunc(ctx, line)
	}
	return 0, nil
}

func (m *MockInterpreter) Builtins() []command.Builtin {
	return m.BuiltinList
}

var _ ports.Interpreter = (*MockInterpreter)(nil)
