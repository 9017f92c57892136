package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/AntonioJCosta/myshell/internal/adapters/config"
	"github.com/AntonioJCosta/myshell/internal/adapters/cputime"
	"github.com/AntonioJCosta/myshell/internal/adapters/fileopener"
	"github.com/AntonioJCosta/myshell/internal/adapters/logging"
	"github.com/AntonioJCosta/myshell/internal/adapters/osprocess"
	"github.com/AntonioJCosta/myshell/internal/adapters/terminal"
	"github.com/AntonioJCosta/myshell/internal/adapters/tokenizer"
	"github.com/AntonioJCosta/myshell/internal/core/domain/settings"
	"github.com/AntonioJCosta/myshell/internal/core/ports"
	"github.com/AntonioJCosta/myshell/internal/core/services/interpreter"
	"github.com/AntonioJCosta/myshell/internal/core/services/launcher"
	"github.com/AntonioJCosta/myshell/internal/handlers/cli"
	"github.com/AntonioJCosta/myshell/internal/handlers/ui"
)

// Version is set at build time
var Version = "dev"

func main() {
	rootCmd := cli.NewRootCommand(Version, loadSettings, newInterpreter)

	if err := rootCmd.Execute(); err != nil {
		var statusErr *cli.StatusError
		if errors.As(err, &statusErr) {
			os.Exit(statusErr.Code)
		}
		os.Exit(1)
	}
}

func loadSettings(path string) (settings.Settings, error) {
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			// No config directory means no config file; run on defaults.
			fmt.Fprintln(os.Stderr, ui.WarningColor(fmt.Sprintf("Warning: %v. Continuing with default settings.", err)))
			return settings.Default(), nil
		}
		path = defaultPath
	}

	provider, err := config.NewYAMLProvider(path)
	if err != nil {
		return settings.Settings{}, err
	}
	return provider.GetSettings()
}

func newInterpreter(cfg settings.Settings) (ports.Interpreter, func() error, error) {
	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, err
	}

	term, err := terminal.NewTerminal(cfg.TTY)
	if err != nil {
		closeLog()
		return nil, nil, fmt.Errorf("opening terminal: %w", err)
	}

	launch := launcher.NewService(osprocess.NewRunner(), fileopener.NewOSFileOpener(), logger)
	interp := interpreter.NewService(
		term,
		tokenizer.NewBasicTokenizer(cfg.MaxTokens),
		launch,
		cputime.NewClock(),
		ui.NewConsoleReporter(),
		cfg,
		logger,
	)

	cleanup := func() error {
		return errors.Join(term.Close(), closeLog())
	}
	return interp, cleanup, nil
}
