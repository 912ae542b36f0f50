package task

import (
	"fmt"

	"github.com/felixgeelhaar/tarefas/internal/productivity/application/commands"
	"github.com/felixgeelhaar/tarefas/internal/productivity/application/queries"
	"github.com/spf13/cobra"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Short:   "Delete a task",
		Aliases: []string{"delete", "remove"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := requireApp()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			id, err := resolveID(ctx, app, args[0])
			if err != nil {
				return err
			}

			result, err := app.DeleteTaskHandler.Handle(ctx, commands.DeleteTaskCommand{TaskID: id})
			if err != nil {
				return fmt.Errorf("failed to delete task: %w", err)
			}
			if !result.Found {
				return fmt.Errorf("%s: %w", id, queries.ErrTaskNotFound)
			}

			dto := queries.ToTaskDTO(result.Task)
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %s\n", shortID(dto), dto.Title)
			return nil
		},
	}
}
