package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/AntonioJCosta/myshell/internal/core/domain/command"
	"github.com/AntonioJCosta/myshell/internal/core/domain/settings"
	"github.com/AntonioJCosta/myshell/internal/core/ports"
	"github.com/AntonioJCosta/myshell/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// SettingsLoader loads settings from the file at path. An empty path selects
// the default location.
type SettingsLoader func(path string) (settings.Settings, error)

// InterpreterFactory builds an interpreter for the given settings. The
// returned cleanup function releases whatever the interpreter holds open.
type InterpreterFactory func(cfg settings.Settings) (ports.Interpreter, func() error, error)

// StatusError carries a non-zero exit status out of the root command.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

type rootFlags struct {
	configPath string
	prompt     string
	tty        string
	logLevel   string
	command    string
}

func NewRootCommand(version string, loadSettings SettingsLoader, newInterpreter InterpreterFactory) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "myshell",
		Short: "myshell is a minimal interactive command interpreter.",
		Long: `myshell reads one line at a time, runs it as a child process and waits for it.
A command may redirect its input or output once with <, > or >>.
The built-ins exit, cd and time run inside the shell itself.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRootCmd(cmd, flags, loadSettings, newInterpreter)
		},
	}

	rootCmd.Flags().StringVar(&flags.configPath, "config", "", "Path to the YAML settings file (default $XDG_CONFIG_HOME/myshell/config.yaml).")
	rootCmd.Flags().StringVar(&flags.prompt, "prompt", "", "Prompt shown before each line (default \"% \").")
	rootCmd.Flags().StringVar(&flags.tty, "tty", "", "Controlling terminal device (default /dev/tty).")
	rootCmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error (default warn).")
	rootCmd.Flags().StringVarP(&flags.command, "command", "c", "", "Run a single command line and exit with its status.")

	rootCmd.AddCommand(NewBuiltinsCommand(newInterpreter))

	return rootCmd
}

func runRootCmd(cmd *cobra.Command, flags *rootFlags, loadSettings SettingsLoader, newInterpreter InterpreterFactory) error {
	cfg, err := loadSettings(flags.configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error loading settings: %v", err)))
		return fmt.Errorf("could not load settings: %w", err)
	}
	applyFlagOverrides(cmd, flags, &cfg)

	interp, cleanup, err := newInterpreter(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error starting shell: %v", err)))
		return fmt.Errorf("could not start interpreter: %w", err)
	}
	defer cleanup()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var status int
	if cmd.Flags().Changed("command") {
		status, err = interp.Dispatch(ctx, flags.command)
		if errors.Is(err, command.ErrExit) {
			status = 0
		}
	} else {
		status = interp.Run(ctx)
	}

	if status != 0 {
		return &StatusError{Code: status}
	}
	return nil
}

// applyFlagOverrides lets explicitly set flags win over the settings file.
func applyFlagOverrides(cmd *cobra.Command, flags *rootFlags, cfg *settings.Settings) {
	if cmd.Flags().Changed("prompt") {
		cfg.Prompt = flags.prompt
	}
	if cmd.Flags().Changed("tty") {
		cfg.TTY = flags.tty
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}
}
