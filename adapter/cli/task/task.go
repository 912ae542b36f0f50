// Package task implements the task commands shared by the one-shot CLI and
// the interactive shell.
package task

import (
	"errors"

	"github.com/felixgeelhaar/tarefas/adapter/cli"
	"github.com/spf13/cobra"
)

var errNotInitialized = errors.New("application not initialized")

// NewCmd builds the task command group. Every call returns a fresh command
// tree, so flag values never leak from one invocation to the next.
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
		Long:  `Add, edit, delete, complete and list tasks.`,
	}
	AddCommands(cmd)
	return cmd
}

// AddCommands attaches every task subcommand to parent.
func AddCommands(parent *cobra.Command) {
	parent.AddCommand(
		newAddCmd(),
		newEditCmd(),
		newRemoveCmd(),
		newToggleCmd(),
		newShowCmd(),
		newListCmd(),
		newStatsCmd(),
	)
}

func requireApp() (*cli.App, error) {
	app := cli.GetApp()
	if app == nil || app.CreateTaskHandler == nil {
		return nil, errNotInitialized
	}
	return app, nil
}
