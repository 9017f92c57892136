package interpreter

import (
	"context"
	"fmt"

	"github.com/AntonioJCosta/myshell/internal/core/domain/command"
)

const farewell = "exiting the shell"

type builtinFunc func(ctx context.Context, s *service, args []string, streams command.Streams) (int, error)

type builtin struct {
	command.Builtin
	run builtinFunc
}

func builtinTable() map[string]builtin {
	return map[string]builtin{
		"exit": {
			Builtin: command.Builtin{Name: "exit", Usage: "exit", Summary: "Leave the shell with status 0."},
			run:     runExit,
		},
		"cd": {
			Builtin: command.Builtin{Name: "cd", Usage: "cd <dir>", Summary: "Change the working directory."},
			run:     runCd,
		},
		"time": {
			Builtin: command.Builtin{Name: "time", Usage: "time <command...>", Summary: "Run a command and print the CPU time its children used."},
			run:     runTime,
		},
	}
}

// builtinDescriptions lists the built-ins in a stable order.
func builtinDescriptions() []command.Builtin {
	table := builtinTable()
	out := make([]command.Builtin, 0, len(table))
	for _, name := range []string{"cd", "exit", "time"} {
		out = append(out, table[name].Builtin)
	}
	return out
}

func runExit(_ context.Context, s *service, _ []string, streams command.Streams) (int, error) {
	s.reporter.Info(streams.Stdout, farewell)
	return 0, command.ErrExit
}

// runCd changes the interpreter's own working directory, which every later
// child inherits. Arguments after the directory are ignored.
func runCd(_ context.Context, s *service, args []string, _ command.Streams) (int, error) {
	if len(args) == 0 {
		return 1, &missingArgumentError{builtin: "cd", operand: "argument"}
	}
	if err := s.chdir(args[0]); err != nil {
		return 1, fmt.Errorf("%w: %s: %v", command.ErrDirectoryNotFound, args[0], err)
	}
	return 0, nil
}

/*
runTime launches args and prints the user and system CPU time accumulated by
terminated children in between. The timing is printed even if the launch
failed; it is skipped if either snapshot fails, and the command is not run
at all if the first one does.
*/
func runTime(ctx context.Context, s *service, args []string, streams command.Streams) (int, error) {
	if len(args) == 0 {
		return 1, &missingArgumentError{builtin: "time", operand: "command"}
	}

	start, err := s.clock.ChildTimes()
	if err != nil {
		return 1, err
	}

	status, launchErr := s.launcher.Launch(ctx, args, streams)
	if launchErr != nil {
		s.report(streams.Stdout, launchErr)
	}

	end, err := s.clock.ChildTimes()
	if err != nil {
		return status, err
	}

	elapsed := end.Sub(start)
	fmt.Fprintf(streams.Stdout, "User time: %.5fs\nSystem time: %.5fs\n",
		elapsed.ChildUser.Seconds(), elapsed.ChildSystem.Seconds())
	return status, nil
}
