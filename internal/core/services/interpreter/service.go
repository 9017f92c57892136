package interpreter

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/AntonioJCosta/myshell/internal/core/domain/command"
	"github.com/AntonioJCosta/myshell/internal/core/domain/settings"
	"github.com/AntonioJCosta/myshell/internal/core/ports"
)

type service struct {
	terminal  ports.Terminal
	tokenizer ports.Tokenizer
	launcher  ports.Launcher
	clock     ports.CPUClock
	reporter  ports.Reporter
	cfg       settings.Settings
	logger    *slog.Logger

	chdir    func(dir string) error
	builtins map[string]builtin
}

// NewService creates the interactive interpreter.
// It panics if any collaborator is nil. A nil logger discards log output.
func NewService(
	terminal ports.Terminal,
	tokenizer ports.Tokenizer,
	launcher ports.Launcher,
	clock ports.CPUClock,
	reporter ports.Reporter,
	cfg settings.Settings,
	logger *slog.Logger,
) ports.Interpreter {
	switch {
	case terminal == nil:
		panic("terminal cannot be nil")
	case tokenizer == nil:
		panic("tokenizer cannot be nil")
	case launcher == nil:
		panic("launcher cannot be nil")
	case clock == nil:
		panic("clock cannot be nil")
	case reporter == nil:
		panic("reporter cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &service{
		terminal:  terminal,
		tokenizer: tokenizer,
		launcher:  launcher,
		clock:     clock,
		reporter:  reporter,
		cfg:       cfg,
		logger:    logger,
		chdir:     os.Chdir,
	}
	s.builtins = builtinTable()
	return s
}

/*
Run is the read-eval loop. Every iteration starts from freshly fetched
terminal streams, so the prompt is shown on the terminal no matter what the
previous command was redirected to. Run returns 0 after exit or end of input,
and 1 if the terminal cannot be read.
*/
func (s *service) Run(ctx context.Context) int {
	lines := newLineReader(s.terminal.Streams().Stdin, s.cfg.MaxLineLength)

	for {
		streams := s.terminal.Streams()
		fmt.Fprint(streams.Stdout, s.cfg.Prompt)

		line, readErr := lines.ReadLine()
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			s.logger.Error("reading terminal", "error", readErr)
			return 1
		}

		if line != "" {
			if _, err := s.Dispatch(ctx, line); errors.Is(err, command.ErrExit) {
				return 0
			}
		}

		if errors.Is(readErr, io.EOF) {
			fmt.Fprintln(streams.Stdout)
			s.logger.Debug("end of input")
			return 0
		}
	}
}

// Dispatch implements the ports.Interpreter interface.
func (s *service) Dispatch(ctx context.Context, line string) (int, error) {
	tokens := s.tokenizer.Tokenize(line)
	if len(tokens) == 0 {
		return 0, command.ErrEmptyInput
	}

	streams := s.terminal.Streams()

	var (
		status int
		err    error
	)
	if b, ok := s.builtins[tokens[0]]; ok {
		s.logger.Debug("builtin", "name", tokens[0], "args", tokens[1:])
		status, err = b.run(ctx, s, tokens[1:], streams)
	} else {
		s.logger.Debug("launch", "tokens", tokens)
		status, err = s.launcher.Launch(ctx, tokens, streams)
	}

	if err != nil && !errors.Is(err, command.ErrExit) {
		s.report(streams.Stdout, err)
	}
	return status, err
}

// Builtins implements the ports.Interpreter interface.
func (s *service) Builtins() []command.Builtin {
	return builtinDescriptions()
}

// report writes the one-line diagnostic for err to the terminal.
func (s *service) report(w io.Writer, err error) {
	s.logger.Debug("command failed", "error", err)
	s.reporter.Error(w, diagnostic(err))
}

// lineReader returns input lines of at most max bytes. Excess input stays
// buffered and is returned by the next call, the way fgets splits long lines.
type lineReader struct {
	r   *bufio.Reader
	max int
}

func newLineReader(r io.Reader, max int) *lineReader {
	return &lineReader{r: bufio.NewReader(r), max: max}
}

// ReadLine returns the next line without its newline. At end of input it
// returns whatever was read along with io.EOF.
func (l *lineReader) ReadLine() (string, error) {
	var line []byte
	for l.max <= 0 || len(line) < l.max {
		c, err := l.r.ReadByte()
		if err != nil {
			return string(line), err
		}
		if c == '\n' {
			return string(line), nil
		}
		line = append(line, c)
	}
	return string(line), nil
}
