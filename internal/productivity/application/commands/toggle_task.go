package commands

import (
	"context"
	"fmt"

	"github.com/felixgeelhaar/tarefas/internal/productivity/domain/task"
	sharedApplication "github.com/felixgeelhaar/tarefas/internal/shared/application"
	"github.com/google/uuid"
)

// ToggleTaskCommand flips the completion flag of a task.
type ToggleTaskCommand struct {
	TaskID uuid.UUID
}

// ToggleTaskHandler handles the ToggleTaskCommand.
type ToggleTaskHandler struct {
	taskRepo  task.Repository
	publisher sharedApplication.EventPublisher
	opts      handlerOptions
}

// NewToggleTaskHandler creates a new ToggleTaskHandler.
func NewToggleTaskHandler(taskRepo task.Repository, publisher sharedApplication.EventPublisher, opts ...Option) *ToggleTaskHandler {
	return &ToggleTaskHandler{
		taskRepo:  taskRepo,
		publisher: publisher,
		opts:      buildOptions(opts),
	}
}

// Handle executes the ToggleTaskCommand.
func (h *ToggleTaskHandler) Handle(ctx context.Context, cmd ToggleTaskCommand) (SnapshotResult, error) {
	timer := h.opts.startTimer(OperationToggle)

	current, err := h.taskRepo.Load(ctx)
	if err != nil {
		timer.StopWithError(err)
		return SnapshotResult{}, fmt.Errorf("load tasks: %w", err)
	}

	next, ok := current.ToggleComplete(cmd.TaskID)
	if !ok {
		timer.Stop()
		return SnapshotResult{Snapshot: current}, nil
	}
	toggled, _ := next.Find(cmd.TaskID)

	if err := h.taskRepo.Save(ctx, next); err != nil {
		timer.StopWithError(err)
		return SnapshotResult{}, fmt.Errorf("save tasks: %w", err)
	}

	h.opts.publish(ctx, h.publisher, task.NewTaskCompletionToggled(toggled))
	timer.Stop()

	return SnapshotResult{Snapshot: next, Task: toggled, Found: true}, nil
}
