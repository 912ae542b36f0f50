package task

import (
	"fmt"

	"github.com/felixgeelhaar/tarefas/internal/productivity/application/queries"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List tasks, most recent first",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := requireApp()
			if err != nil {
				return err
			}

			tasks, err := app.ListTasksHandler.Handle(cmd.Context(), queries.ListTasksQuery{})
			if err != nil {
				return fmt.Errorf("failed to list tasks: %w", err)
			}

			printList(cmd.OutOrStdout(), tasks, app.Settings.DateFormat)
			return nil
		},
	}
}
