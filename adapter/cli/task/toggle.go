package task

import (
	"fmt"

	"github.com/felixgeelhaar/tarefas/internal/productivity/application/commands"
	"github.com/felixgeelhaar/tarefas/internal/productivity/application/queries"
	"github.com/spf13/cobra"
)

func newToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "toggle <id>",
		Short:   "Mark a task complete, or incomplete again",
		Aliases: []string{"done"},
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

			result, err := app.ToggleTaskHandler.Handle(ctx, commands.ToggleTaskCommand{TaskID: id})
			if err != nil {
				return fmt.Errorf("failed to toggle task: %w", err)
			}
			if !result.Found {
				return fmt.Errorf("%s: %w", id, queries.ErrTaskNotFound)
			}

			dto := queries.ToTaskDTO(result.Task)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", checkbox(dto.Completed), shortID(dto), dto.Title)
			return nil
		},
	}
}
