package ports

import (
	"context"

	"github.com/AntonioJCosta/myshell/internal/core/domain/command"
)

/*
Launcher runs one external command described by a raw token sequence,
honoring at most one redirection. The streams passed in are the terminal
streams; the launcher rebinds them only for the child it starts.
It returns the child's exit status. A status of 1 with ErrInvalidCommand
means the program could not be started.
*/
type Launcher interface {
	Launch(ctx context.Context, tokens []string, terminal command.Streams) (int, error)
}
