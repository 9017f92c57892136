/*
Package settings defines the interpreter's runtime configuration.
*/
package settings

// Settings configures the interactive loop.
type Settings struct {
	Prompt        string `yaml:"prompt"`
	TTY           string `yaml:"tty"`             // controlling terminal device
	MaxLineLength int    `yaml:"max_line_length"` // 0 means unlimited
	MaxTokens     int    `yaml:"max_tokens"`      // 0 means unlimited
	Log           Log    `yaml:"log"`
}

// Log configures the interpreter's own structured log.
type Log struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
	Output string `yaml:"output"` // stderr, stdout or a file path
}

// Default returns the settings matching the classic interpreter limits.
func Default() Settings {
	return Settings{
		Prompt:        "% ",
		TTY:           "/dev/tty",
		MaxLineLength: 99,
		MaxTokens:     100,
		Log: Log{
			Level:  "warn",
			Format: "text",
			Output: "stderr",
		},
	}
}
