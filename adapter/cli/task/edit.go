package task

import (
	"errors"
	"fmt"

	"github.com/felixgeelhaar/tarefas/adapter/form"
	"github.com/felixgeelhaar/tarefas/internal/productivity/application/commands"
	"github.com/felixgeelhaar/tarefas/internal/productivity/application/queries"
	"github.com/spf13/cobra"
)

var errNothingToChange = errors.New("nothing to change: pass --title, --description, --priority or --completed")

func newEditCmd() *cobra.Command {
	var (
		title       string
		description string
		priority    string
		completed   bool
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task",
		Long: `Change the fields of a task. Fields without a flag keep their value.

Examples:
  edit 1a2b --title "Buy oat milk"
  edit 1a2b -p low --completed=false`,
		Aliases: []string{"update"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := requireApp()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if !flags.Changed("title") && !flags.Changed("description") &&
				!flags.Changed("priority") && !flags.Changed("completed") {
				return errNothingToChange
			}

			ctx := cmd.Context()
			id, err := resolveID(ctx, app, args[0])
			if err != nil {
				return err
			}
			current, err := app.GetTaskHandler.Handle(ctx, queries.GetTaskQuery{TaskID: id})
			if err != nil {
				return fmt.Errorf("failed to get task: %w", err)
			}

			input := form.FromTaskDTO(*current)
			if flags.Changed("title") {
				input.Title = title
			}
			if flags.Changed("description") {
				input.Description = description
			}
			if flags.Changed("priority") {
				input.Priority = priority
			}
			if flags.Changed("completed") {
				input.Completed = &completed
			}

			data, err := input.ToData(app.Settings.DefaultPriority)
			if err != nil {
				return err
			}

			result, err := app.UpdateTaskHandler.Handle(ctx, commands.UpdateTaskCommand{
				TaskID:      id,
				Title:       data.Title,
				Description: data.Description,
				Priority:    data.Priority,
				Completed:   data.Completed,
			})
			if err != nil {
				return fmt.Errorf("failed to edit task: %w", err)
			}
			if !result.Found {
				return fmt.Errorf("%s: %w", id, queries.ErrTaskNotFound)
			}

			dto := queries.ToTaskDTO(result.Task)
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s %s %s\n", shortID(dto), dto.Title, priorityBadge(dto.Priority))
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "new title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "new description")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "new priority (low, medium, high)")
	cmd.Flags().BoolVar(&completed, "completed", false, "set the completion flag")
	return cmd
}
