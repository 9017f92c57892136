package launcher

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/AntonioJCosta/myshell/internal/core/domain/command"
	"github.com/AntonioJCosta/myshell/internal/core/ports"
)

const operatorChars = "<>"

/*
ParseInvocation separates the argument vector from the redirection.

Only the first token containing '<' or '>' is considered. Every operator
character in that token forms the operator string, which must be exactly
"<", ">" or ">>". The operator may stand alone ("cmd > out") or be glued to
a word ("cmd>out", "cmd >out", "cmd> out"). The argument vector ends at the
operator token; the target is the first word after the operator.
*/
func ParseInvocation(tokens []string) (command.Invocation, error) {
	for i, tok := range tokens {
		op := operatorIn(tok)
		if op == "" {
			continue
		}

		mode, ok := command.ParseOperator(op)
		if !ok {
			return command.Invocation{}, fmt.Errorf("%w: %q", command.ErrInvalidRedirectOperator, op)
		}

		argv, target := extractOperands(tokens, i, op)
		if target == "" {
			return command.Invocation{}, fmt.Errorf("%w: %q has no target", command.ErrInvalidRedirectOperator, op)
		}

		return command.Invocation{
			Argv:        argv,
			Redirection: command.Redirection{Mode: mode, Target: target},
		}, nil
	}

	return command.Invocation{Argv: slices.Clone(tokens)}, nil
}

// operatorIn collects every redirection character of tok, in order.
func operatorIn(tok string) string {
	var op strings.Builder
	for _, r := range tok {
		if r == '<' || r == '>' {
			op.WriteRune(r)
		}
	}
	return op.String()
}

// extractOperands returns the argv preceding the operator token at i and the
// redirection target.
func extractOperands(tokens []string, i int, op string) ([]string, string) {
	argv := slices.Clone(tokens[:i])
	tok := tokens[i]

	// Standalone operator: the next token is the target.
	if len(op) == len(tok) {
		return argv, tokenAt(tokens, i+1)
	}

	before, target := splitGlued(tok)
	if before != "" {
		// For a single-token invocation ("ls>out.txt") this is the whole command.
		argv = append(argv, before)
	}
	if target == "" {
		// "cmd> out": operator glued on the left only.
		target = tokenAt(tokens, i+1)
	}
	return argv, target
}

// splitGlued splits tok at its first operator character. The target runs
// from the end of that operator up to the next operator character.
func splitGlued(tok string) (before, target string) {
	idx := strings.IndexAny(tok, operatorChars)
	before = tok[:idx]
	target = strings.TrimLeft(tok[idx:], operatorChars)
	if end := strings.IndexAny(target, operatorChars); end >= 0 {
		target = target[:end]
	}
	return before, target
}

func tokenAt(tokens []string, i int) string {
	if i < len(tokens) {
		return tokens[i]
	}
	return ""
}

// binding is the set of streams one child runs with, plus the redirect file
// that has to be closed once the child is gone.
type binding struct {
	streams command.Streams
	file    io.Closer
}

// bind opens the redirection target and substitutes it for the matching
// terminal stream. Stderr is never redirected.
func bind(r command.Redirection, terminal command.Streams, opener ports.FileOpener) (*binding, error) {
	b := &binding{streams: terminal}

	switch r.Mode {
	case command.ModeRead:
		f, err := opener.OpenRead(r.Target)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", command.ErrRedirectTargetMissing, r.Target, err)
		}
		b.streams.Stdin, b.file = f, f
	case command.ModeWrite:
		f, err := opener.OpenTruncate(r.Target)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", command.ErrRedirectTargetUnwritable, r.Target, err)
		}
		b.streams.Stdout, b.file = f, f
	case command.ModeAppend:
		f, err := opener.OpenAppend(r.Target)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", command.ErrRedirectTargetUnwritable, r.Target, err)
		}
		b.streams.Stdout, b.file = f, f
	}

	return b, nil
}

// release closes the redirect file. It is safe to call more than once.
func (b *binding) release() error {
	if b.file == nil {
		return nil
	}
	err := b.file.Close()
	b.file = nil
	return err
}
