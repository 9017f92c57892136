package ports

// Tokenizer splits a raw input line into word tokens.
type Tokenizer interface {
	Tokenize(line string) []string
}
