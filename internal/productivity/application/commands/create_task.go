package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/felixgeelhaar/tarefas/internal/productivity/domain/task"
	"github.com/felixgeelhaar/tarefas/internal/productivity/domain/value_objects"
	sharedApplication "github.com/felixgeelhaar/tarefas/internal/shared/application"
)

// maxIDAttempts bounds how often a colliding id is redrawn.
const maxIDAttempts = 8

// ErrIDExhausted is returned when the id generator keeps producing ids that
// are already in use.
var ErrIDExhausted = errors.New("could not generate a unique task id")

// CreateTaskCommand contains the data needed to create a task.
type CreateTaskCommand struct {
	Title       string
	Description string
	Priority    value_objects.Priority // zero means the default priority
	Completed   bool
}

// CreateTaskHandler handles the CreateTaskCommand.
type CreateTaskHandler struct {
	taskRepo  task.Repository
	publisher sharedApplication.EventPublisher
	opts      handlerOptions
}

// NewCreateTaskHandler creates a new CreateTaskHandler.
func NewCreateTaskHandler(taskRepo task.Repository, publisher sharedApplication.EventPublisher, opts ...Option) *CreateTaskHandler {
	return &CreateTaskHandler{
		taskRepo:  taskRepo,
		publisher: publisher,
		opts:      buildOptions(opts),
	}
}

// Handle prepends a new task to the current list.
func (h *CreateTaskHandler) Handle(ctx context.Context, cmd CreateTaskCommand) (SnapshotResult, error) {
	timer := h.opts.startTimer(OperationCreate)

	current, err := h.taskRepo.Load(ctx)
	if err != nil {
		timer.StopWithError(err)
		return SnapshotResult{}, fmt.Errorf("load tasks: %w", err)
	}

	priority := cmd.Priority
	if !priority.IsValid() {
		priority = value_objects.DefaultPriority
	}
	completed := cmd.Completed
	data := task.Data{
		Title:       cmd.Title,
		Description: cmd.Description,
		Priority:    priority,
		Completed:   &completed,
	}

	var (
		created task.Task
		next    task.List
	)
	for attempt := 0; ; attempt++ {
		if attempt == maxIDAttempts {
			timer.StopWithError(ErrIDExhausted)
			return SnapshotResult{}, ErrIDExhausted
		}
		created = task.New(h.opts.newID(), h.opts.now(), data)
		next, err = current.Add(created)
		if errors.Is(err, task.ErrDuplicateID) {
			continue
		}
		if err != nil {
			timer.StopWithError(err)
			return SnapshotResult{}, err
		}
		break
	}

	if err := h.taskRepo.Save(ctx, next); err != nil {
		timer.StopWithError(err)
		return SnapshotResult{}, fmt.Errorf("save tasks: %w", err)
	}

	h.opts.publish(ctx, h.publisher, task.NewTaskCreated(created))
	timer.Stop()

	return SnapshotResult{Snapshot: next, Task: created, Found: true}, nil
}
