package tokenizer

import (
	"strings"

	"github.com/AntonioJCosta/myshell/internal/core/ports"
)

// BasicTokenizer splits a line into words on spaces, tabs and newlines.
// Quotes and escapes have no special meaning.
type BasicTokenizer struct {
	maxTokens int
}

// NewBasicTokenizer creates a new BasicTokenizer. Tokens beyond maxTokens
// are dropped; a maxTokens of 0 or less keeps every token.
func NewBasicTokenizer(maxTokens int) ports.Tokenizer {
	return &BasicTokenizer{maxTokens: maxTokens}
}

// Tokenize implements the ports.Tokenizer interface.
func (t *BasicTokenizer) Tokenize(line string) []string {
	tokens := strings.FieldsFunc(line, isSeparator)
	if t.maxTokens > 0 && len(tokens) > t.maxTokens {
		tokens = tokens[:t.maxTokens]
	}
	return tokens
}

func isSeparator(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}
