package task

import (
	"fmt"

	"github.com/felixgeelhaar/tarefas/internal/productivity/application/queries"
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "show <id>",
		Short:   "Show task details",
		Aliases: []string{"get", "view"},
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

			t, err := app.GetTaskHandler.Handle(ctx, queries.GetTaskQuery{TaskID: id})
			if err != nil {
				return fmt.Errorf("failed to get task: %w", err)
			}

			printTask(cmd.OutOrStdout(), *t, app.Settings.DateFormat)
			return nil
		},
	}
}
