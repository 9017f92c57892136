package terminal

import (
	"errors"
	"fmt"
	"os"

	"github.com/AntonioJCosta/myshell/internal/core/domain/command"
	"github.com/AntonioJCosta/myshell/internal/core/ports"
	"github.com/mattn/go-isatty"
)

// Terminal implements ports.Terminal. When the interpreter is attached to a
// TTY it prompts on the controlling terminal device itself, so the prompt
// survives whatever the inherited stdio points at. Otherwise it falls back
// to the inherited stdin and stdout.
type Terminal struct {
	in     *os.File
	out    *os.File
	errOut *os.File
	owned  bool // in and out were opened by us
}

// NewTerminal opens device (typically /dev/tty) when stdin is a terminal.
// An empty device, a non-terminal stdin or a failed open selects the
// inherited standard streams.
func NewTerminal(device string) (ports.Terminal, error) {
	inherited := &Terminal{in: os.Stdin, out: os.Stdout, errOut: os.Stderr}

	if device == "" || !isTerminal(os.Stdin) {
		return inherited, nil
	}

	in, err := os.OpenFile(device, os.O_RDONLY, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open %s: %v. Using standard input and output.\n", device, err)
		return inherited, nil
	}
	out, err := os.OpenFile(device, os.O_WRONLY, 0)
	if err != nil {
		in.Close()
		return nil, fmt.Errorf("failed to open %s for writing: %w", device, err)
	}

	return &Terminal{in: in, out: out, errOut: os.Stderr, owned: true}, nil
}

// Streams implements the ports.Terminal interface.
func (t *Terminal) Streams() command.Streams {
	return command.Streams{Stdin: t.in, Stdout: t.out, Stderr: t.errOut}
}

// Close releases the device handles if this Terminal opened them.
func (t *Terminal) Close() error {
	if !t.owned {
		return nil
	}
	t.owned = false
	return errors.Join(t.in.Close(), t.out.Close())
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
