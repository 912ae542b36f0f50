package task

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/tarefas/adapter/form"
	"github.com/felixgeelhaar/tarefas/internal/productivity/application/commands"
	"github.com/felixgeelhaar/tarefas/internal/productivity/application/queries"
	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	var (
		description string
		priority    string
		completed   bool
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a new task",
		Long: `Add a task to the top of the list. Words after the command form the title.

Examples:
  add Buy milk
  add "Review PR" -p high -d "the config loader one"`,
		Aliases: []string{"create", "new"},
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := requireApp()
			if err != nil {
				return err
			}

			input := form.Input{
				Title:       strings.Join(args, " "),
				Description: description,
				Priority:    priority,
			}
			data, err := input.ToData(app.Settings.DefaultPriority)
			if err != nil {
				return err
			}

			result, err := app.CreateTaskHandler.Handle(cmd.Context(), commands.CreateTaskCommand{
				Title:       data.Title,
				Description: data.Description,
				Priority:    data.Priority,
				Completed:   completed,
			})
			if err != nil {
				return fmt.Errorf("failed to add task: %w", err)
			}

			dto := queries.ToTaskDTO(result.Task)
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s %s\n", shortID(dto), dto.Title, priorityBadge(dto.Priority))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "task description")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "task priority (low, medium, high)")
	cmd.Flags().BoolVar(&completed, "completed", false, "mark the task as already completed")
	return cmd
}
