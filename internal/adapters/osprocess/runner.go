package osprocess

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/AntonioJCosta/myshell/internal/core/domain/command"
	"github.com/AntonioJCosta/myshell/internal/core/ports"
)

// Runner implements the ProcessRunner interface using os/exec.
type Runner struct {
	lookPath func(file string) (string, error)
}

// NewRunner creates a new Runner that resolves programs through PATH.
func NewRunner() ports.ProcessRunner {
	return &Runner{lookPath: exec.LookPath}
}

// Run starts argv[0] with the given streams and blocks until it exits.
// A program that cannot be found or started yields command.ErrInvalidCommand.
// A program that ran and failed is not an error; its exit status is returned.
func (r *Runner) Run(ctx context.Context, argv []string, streams command.Streams) (int, error) {
	if len(argv) == 0 {
		return 1, fmt.Errorf("%w: empty argument vector", command.ErrInvalidCommand)
	}

	path, err := r.lookPath(argv[0])
	if err != nil && !errors.Is(err, exec.ErrDot) {
		return 1, fmt.Errorf("%w: %s: %v", command.ErrInvalidCommand, argv[0], err)
	}

	cmd := exec.CommandContext(ctx, path, argv[1:]...)
	if errors.Is(err, exec.ErrDot) {
		// A "." entry in PATH runs the program found there, as execvp does.
		cmd.Err = nil
	}
	cmd.Args = argv
	cmd.Stdin = streams.Stdin
	cmd.Stdout = streams.Stdout
	cmd.Stderr = streams.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 1, fmt.Errorf("%w: %s: %v", command.ErrInvalidCommand, argv[0], err)
	}
	return 0, nil
}
