// Package tui provides the full-screen terminal interface for tarefas.
package tui

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/felixgeelhaar/tarefas/adapter/cli"
	"github.com/spf13/cobra"
)

// ErrNoTTY is returned when stdout is not a terminal.
var ErrNoTTY = errors.New("tui requires a TTY")

// Run starts the TUI and blocks until the user quits.
func Run(ctx context.Context, app *cli.App) error {
	if app == nil {
		return errors.New("application not initialized")
	}
	if !cli.IsTTY(os.Stdout) {
		return ErrNoTTY
	}

	model := NewModel(ctx, app)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

// NewCmd creates the tui command.
func NewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Manage tasks in a full-screen terminal UI",
		Long: `Open the task list in a full-screen terminal UI.

Keys:
  a            add a task
  e, enter     edit the selected task
  d            delete the selected task
  space, x     toggle completion
  up/k down/j  move the cursor
  q            quit

In the form, tab moves between fields, left/right change the priority,
enter saves and esc cancels.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{cli.AnnotationQuietLogs: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cmd.Context(), cli.GetApp())
		},
	}
}
