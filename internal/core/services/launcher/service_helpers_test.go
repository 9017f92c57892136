package launcher

import (
	"errors"
	"reflect"
	"testing"

	"github.com/AntonioJCosta/myshell/internal/core/domain/command"
)

func TestParseInvocation(t *testing.T) {
	tests := []struct {
		name    string
		tokens  []string
		want    command.Invocation
		wantErr error
	}{
		{
			name:   "no redirection keeps every token",
			tokens: []string{"ls", "-l", "/tmp"},
			want:   command.Invocation{Argv: []string{"ls", "-l", "/tmp"}},
		},
		{
			name:   "single glued token becomes command and target",
			tokens: []string{"ls>out.txt"},
			want: command.Invocation{
				Argv:        []string{"ls"},
				Redirection: command.Redirection{Mode: command.ModeWrite, Target: "out.txt"},
			},
		},
		{
			name:   "spaced operator removes operator and target",
			tokens: []string{"echo", "hi", ">", "out.txt"},
			want: command.Invocation{
				Argv:        []string{"echo", "hi"},
				Redirection: command.Redirection{Mode: command.ModeWrite, Target: "out.txt"},
			},
		},
		{
			name:   "spaced append",
			tokens: []string{"echo", "a", ">>", "out.txt"},
			want: command.Invocation{
				Argv:        []string{"echo", "a"},
				Redirection: command.Redirection{Mode: command.ModeAppend, Target: "out.txt"},
			},
		},
		{
			name:   "spaced read",
			tokens: []string{"cat", "<", "in.txt"},
			want: command.Invocation{
				Argv:        []string{"cat"},
				Redirection: command.Redirection{Mode: command.ModeRead, Target: "in.txt"},
			},
		},
		{
			name:   "glued inside a multi-token command keeps the word before the operator",
			tokens: []string{"echo", "hi>out.txt"},
			want: command.Invocation{
				Argv:        []string{"echo", "hi"},
				Redirection: command.Redirection{Mode: command.ModeWrite, Target: "out.txt"},
			},
		},
		{
			name:   "operator glued to the target only",
			tokens: []string{"sort", "<in.txt"},
			want: command.Invocation{
				Argv:        []string{"sort"},
				Redirection: command.Redirection{Mode: command.ModeRead, Target: "in.txt"},
			},
		},
		{
			name:   "operator glued to the word only takes the next token",
			tokens: []string{"echo", "hi>>", "log.txt"},
			want: command.Invocation{
				Argv:        []string{"echo", "hi"},
				Redirection: command.Redirection{Mode: command.ModeAppend, Target: "log.txt"},
			},
		},
		{
			name:   "glued append on a single token",
			tokens: []string{"date>>log.txt"},
			want: command.Invocation{
				Argv:        []string{"date"},
				Redirection: command.Redirection{Mode: command.ModeAppend, Target: "log.txt"},
			},
		},
		{
			name:   "tokens after the target are dropped",
			tokens: []string{"cat", "<", "in.txt", "-n"},
			want: command.Invocation{
				Argv:        []string{"cat"},
				Redirection: command.Redirection{Mode: command.ModeRead, Target: "in.txt"},
			},
		},
		{
			name:   "only the first operator token is considered",
			tokens: []string{"echo", ">", "a.txt", ">", "b.txt"},
			want: command.Invocation{
				Argv:        []string{"echo"},
				Redirection: command.Redirection{Mode: command.ModeWrite, Target: "a.txt"},
			},
		},
		{
			name:   "redirect with no command yields empty argv",
			tokens: []string{">out.txt"},
			want: command.Invocation{
				Argv:        []string{},
				Redirection: command.Redirection{Mode: command.ModeWrite, Target: "out.txt"},
			},
		},
		{
			name:    "read-write operator is rejected",
			tokens:  []string{"echo", "hi", "<>", "out"},
			wantErr: command.ErrInvalidRedirectOperator,
		},
		{
			name:    "here-doc operator is rejected",
			tokens:  []string{"cat", "<<", "EOF"},
			wantErr: command.ErrInvalidRedirectOperator,
		},
		{
			name:    "three characters are rejected",
			tokens:  []string{"echo", ">>>", "out"},
			wantErr: command.ErrInvalidRedirectOperator,
		},
		{
			name:    "operator characters scattered in one token are accumulated",
			tokens:  []string{"echo", "a<b>c"},
			wantErr: command.ErrInvalidRedirectOperator,
		},
		{
			name:    "operator without target",
			tokens:  []string{"cat", "<"},
			wantErr: command.ErrInvalidRedirectOperator,
		},
		{
			name:    "glued operator without target",
			tokens:  []string{"ls>"},
			wantErr: command.ErrInvalidRedirectOperator,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInvocation(tt.tokens)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseInvocation(%q) error = %v, want %v", tt.tokens, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseInvocation(%q) unexpected error = %v", tt.tokens, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseInvocation(%q) = %#v, want %#v", tt.tokens, got, tt.want)
			}
		})
	}
}

func TestParseInvocation_DoesNotMutateTokens(t *testing.T) {
	tokens := []string{"echo", "hi", ">", "out.txt"}
	if _, err := ParseInvocation(tokens); err != nil {
		t.Fatalf("ParseInvocation() unexpected error = %v", err)
	}
	want := []string{"echo", "hi", ">", "out.txt"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("tokens = %q after parsing, want %q", tokens, want)
	}
}

func TestSplitGlued(t *testing.T) {
	tests := []struct {
		tok        string
		wantBefore string
		wantTarget string
	}{
		{"ls>out.txt", "ls", "out.txt"},
		{">out.txt", "", "out.txt"},
		{"ls>", "ls", ""},
		{"ls>>out.txt", "ls", "out.txt"},
		{"a>b>c", "a", "b"},
	}
	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			before, target := splitGlued(tt.tok)
			if before != tt.wantBefore || target != tt.wantTarget {
				t.Errorf("splitGlued(%q) = (%q, %q), want (%q, %q)", tt.tok, before, target, tt.wantBefore, tt.wantTarget)
			}
		})
	}
}
