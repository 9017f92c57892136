package interpreter

import (
	"errors"
	"fmt"

	"github.com/AntonioJCosta/myshell/internal/core/domain/command"
)

// missingArgumentError is returned by a built-in invoked without its operand.
type missingArgumentError struct {
	builtin string
	operand string
}

func (e *missingArgumentError) Error() string {
	return fmt.Sprintf("%s: missing %s", e.builtin, e.operand)
}

func (e *missingArgumentError) Unwrap() error {
	return command.ErrMissingArgument
}

// diagnostic maps err to the exact line shown to the user.
func diagnostic(err error) string {
	var missing *missingArgumentError
	switch {
	case errors.As(err, &missing):
		return missing.Error()
	case errors.Is(err, command.ErrDirectoryNotFound):
		return "cd: directory does not exist"
	case errors.Is(err, command.ErrTimingUnavailable):
		return "times: failed"
	case errors.Is(err, command.ErrRedirectTargetMissing):
		return "redirect error: file does not exist"
	case errors.Is(err, command.ErrRedirectTargetUnwritable):
		return "redirect error: cannot open file"
	case errors.Is(err, command.ErrInvalidRedirectOperator):
		return "error: invalid redirect operation"
	case errors.Is(err, command.ErrInvalidCommand):
		return "error: invalid command"
	default:
		return "error: " + err.Error()
	}
}
