package launcher

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AntonioJCosta/myshell/internal/core/domain/command"
	"github.com/AntonioJCosta/myshell/internal/core/ports"
)

type service struct {
	runner ports.ProcessRunner
	opener ports.FileOpener
	logger *slog.Logger
}

// NewService creates a new redirection-aware launcher.
// It panics if the runner or opener is nil. A nil logger discards log output.
func NewService(runner ports.ProcessRunner, opener ports.FileOpener, logger *slog.Logger) ports.Launcher {
	if runner == nil {
		panic("runner cannot be nil")
	}
	if opener == nil {
		panic("opener cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &service{runner: runner, opener: opener, logger: logger}
}

/*
Launch parses the redirection out of tokens, binds the child's streams for the
duration of one run and waits for the child to exit.

Syntax errors and a missing input file abort before anything is started.
The redirect file, if one was opened, is closed on every return path, so the
terminal streams handed in are the only streams left bound afterwards.
*/
func (s *service) Launch(ctx context.Context, tokens []string, terminal command.Streams) (int, error) {
	inv, err := ParseInvocation(tokens)
	if err != nil {
		return 1, err
	}

	b, err := bind(inv.Redirection, terminal, s.opener)
	if err != nil {
		return 1, err
	}
	defer func() {
		if err := b.release(); err != nil {
			s.logger.Warn("closing redirect target", "target", inv.Redirection.Target, "error", err)
		}
	}()

	if inv.Redirection.Mode != command.ModeNone {
		s.logger.Debug("redirect bound", "operator", inv.Redirection.Mode.String(), "target", inv.Redirection.Target)
	}

	if len(inv.Argv) == 0 {
		return 1, fmt.Errorf("%w: no program before redirection", command.ErrInvalidCommand)
	}

	exitCode, err := s.runner.Run(ctx, inv.Argv, b.streams)
	if err != nil {
		s.logger.Debug("launch failed", "program", inv.Argv[0], "error", err)
		return 1, err
	}
	s.logger.Debug("child exited", "program", inv.Argv[0], "status", exitCode)
	return exitCode, nil
}
