package ports

import "github.com/AntonioJCosta/myshell/internal/core/domain/command"

/*
Terminal is the controlling terminal the interpreter prompts on.
Streams returns the terminal-bound streams; calling it again always yields
streams bound to the terminal, whatever the previous command redirected.
*/
type Terminal interface {
	Streams() command.Streams
	Close() error
}
