package ports

import (
	"context"

	"github.com/AntonioJCosta/myshell/internal/core/domain/command"
)

// ProcessRunner starts argv[0], resolved through PATH, and waits for it.
type ProcessRunner interface {
	Run(ctx context.Context, argv []string, streams command.Streams) (exitCode int, err error)
}
