package ports

import (
	"context"

	"github.com/AntonioJCosta/myshell/internal/core/domain/command"
)

// Interpreter is the read-eval loop driving built-ins and the Launcher.
type Interpreter interface {
	// Run prompts and dispatches lines until exit or end of input.
	// It returns the process exit status.
	Run(ctx context.Context) int

	// Dispatch handles a single line and returns the resulting status.
	// Any error returned has already been reported on the terminal;
	// command.ErrExit means the line asked the interpreter to stop.
	Dispatch(ctx context.Context, line string) (int, error)

	// Builtins lists the commands handled in-process.
	Builtins() []command.Builtin
}
