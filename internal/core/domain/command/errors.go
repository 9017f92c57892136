package command

import "errors"

// User input errors.
var (
	ErrEmptyInput        = errors.New("empty input")
	ErrMissingArgument   = errors.New("missing argument")
	ErrDirectoryNotFound = errors.New("directory does not exist")
	ErrTimingUnavailable = errors.New("timing unavailable")
)

// Launch errors.
var (
	ErrInvalidRedirectOperator  = errors.New("invalid redirect operation")
	ErrRedirectTargetMissing    = errors.New("redirect file does not exist")
	ErrRedirectTargetUnwritable = errors.New("redirect file cannot be opened for writing")
	ErrInvalidCommand           = errors.New("invalid command")
)

// ErrExit is returned by the dispatcher when the exit built-in ran.
var ErrExit = errors.New("exit")
