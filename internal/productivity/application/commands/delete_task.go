package commands

import (
	"context"
	"fmt"

	"github.com/felixgeelhaar/tarefas/internal/productivity/domain/task"
	sharedApplication "github.com/felixgeelhaar/tarefas/internal/shared/application"
	"github.com/google/uuid"
)

// DeleteTaskCommand removes a task.
type DeleteTaskCommand struct {
	TaskID uuid.UUID
}

// DeleteTaskHandler handles the DeleteTaskCommand.
type DeleteTaskHandler struct {
	taskRepo  task.Repository
	publisher sharedApplication.EventPublisher
	opts      handlerOptions
}

// NewDeleteTaskHandler creates a new DeleteTaskHandler.
func NewDeleteTaskHandler(taskRepo task.Repository, publisher sharedApplication.EventPublisher, opts ...Option) *DeleteTaskHandler {
	return &DeleteTaskHandler{
		taskRepo:  taskRepo,
		publisher: publisher,
		opts:      buildOptions(opts),
	}
}

// Handle executes the DeleteTaskCommand. The returned Task is the one that
// was removed.
func (h *DeleteTaskHandler) Handle(ctx context.Context, cmd DeleteTaskCommand) (SnapshotResult, error) {
	timer := h.opts.startTimer(OperationDelete)

	current, err := h.taskRepo.Load(ctx)
	if err != nil {
		timer.StopWithError(err)
		return SnapshotResult{}, fmt.Errorf("load tasks: %w", err)
	}

	removed, ok := current.Find(cmd.TaskID)
	if !ok {
		timer.Stop()
		return SnapshotResult{Snapshot: current}, nil
	}
	next, _ := current.Delete(cmd.TaskID)

	if err := h.taskRepo.Save(ctx, next); err != nil {
		timer.StopWithError(err)
		return SnapshotResult{}, fmt.Errorf("save tasks: %w", err)
	}

	h.opts.publish(ctx, h.publisher, task.NewTaskDeleted(removed))
	timer.Stop()

	return SnapshotResult{Snapshot: next, Task: removed, Found: true}, nil
}
