package cli

import (
	"fmt"

	"github.com/AntonioJCosta/myshell/internal/core/domain/settings"
	"github.com/AntonioJCosta/myshell/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewBuiltinsCommand creates the 'builtins' subcommand.
func NewBuiltinsCommand(newInterpreter InterpreterFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "builtins",
		Short: "List the commands myshell runs in-process.",
		Long:  `Displays the built-in commands, their usage and what they do. Anything else is run as a child process.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuiltinsCmd(cmd, newInterpreter)
		},
	}
	return cmd
}

// runBuiltinsCmd contains the core logic for the 'builtins' command.
func runBuiltinsCmd(cmd *cobra.Command, newInterpreter InterpreterFactory) error {
	cfg := settings.Default()
	cfg.TTY = "" // listing never prompts
	interp, cleanup, err := newInterpreter(cfg)
	if err != nil {
		return fmt.Errorf("could not list builtins: %w", err)
	}
	defer cleanup()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.HeaderColor("Built-in commands:"))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Name", "Usage", "Description"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, b := range interp.Builtins() {
		table.Append([]string{ui.BuiltinNameColor(b.Name), ui.BuiltinUsageColor(b.Usage), b.Summary})
	}
	table.Render()

	fmt.Fprintln(out, ui.DetailColor("Redirection: one of <, > or >> per command, with or without spaces."))
	return nil
}
