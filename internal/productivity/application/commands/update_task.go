package commands

import (
	"context"
	"fmt"

	"github.com/felixgeelhaar/tarefas/internal/productivity/domain/task"
	"github.com/felixgeelhaar/tarefas/internal/productivity/domain/value_objects"
	sharedApplication "github.com/felixgeelhaar/tarefas/internal/shared/application"
	"github.com/google/uuid"
)

// UpdateTaskCommand replaces the editable fields of a task.
type UpdateTaskCommand struct {
	TaskID      uuid.UUID
	Title       string
	Description string
	Priority    value_objects.Priority // zero keeps the current priority
	Completed   *bool                  // nil keeps the current value
}

// UpdateTaskHandler handles the UpdateTaskCommand.
type UpdateTaskHandler struct {
	taskRepo  task.Repository
	publisher sharedApplication.EventPublisher
	opts      handlerOptions
}

// NewUpdateTaskHandler creates a new UpdateTaskHandler.
func NewUpdateTaskHandler(taskRepo task.Repository, publisher sharedApplication.EventPublisher, opts ...Option) *UpdateTaskHandler {
	return &UpdateTaskHandler{
		taskRepo:  taskRepo,
		publisher: publisher,
		opts:      buildOptions(opts),
	}
}

// Handle executes the UpdateTaskCommand.
func (h *UpdateTaskHandler) Handle(ctx context.Context, cmd UpdateTaskCommand) (SnapshotResult, error) {
	timer := h.opts.startTimer(OperationUpdate)

	current, err := h.taskRepo.Load(ctx)
	if err != nil {
		timer.StopWithError(err)
		return SnapshotResult{}, fmt.Errorf("load tasks: %w", err)
	}

	previous, ok := current.Find(cmd.TaskID)
	if !ok {
		timer.Stop()
		return SnapshotResult{Snapshot: current}, nil
	}

	priority := cmd.Priority
	if !priority.IsValid() {
		priority = previous.Priority()
	}

	next, _ := current.Update(cmd.TaskID, task.Data{
		Title:       cmd.Title,
		Description: cmd.Description,
		Priority:    priority,
		Completed:   cmd.Completed,
	})
	updated, _ := next.Find(cmd.TaskID)

	if err := h.taskRepo.Save(ctx, next); err != nil {
		timer.StopWithError(err)
		return SnapshotResult{}, fmt.Errorf("save tasks: %w", err)
	}

	h.opts.publish(ctx, h.publisher, task.NewTaskUpdated(cmd.TaskID, previous.ChangedFields(updated)))
	timer.Stop()

	return SnapshotResult{Snapshot: next, Task: updated, Found: true}, nil
}
