package queries

import (
	"context"
	"errors"

	"github.com/felixgeelhaar/tarefas/internal/productivity/domain/task"
	"github.com/google/uuid"
)

// ErrTaskNotFound is returned when a task is not found.
var ErrTaskNotFound = errors.New("task not found")

// GetTaskQuery contains the parameters for getting a single task.
type GetTaskQuery struct {
	TaskID uuid.UUID
}

// GetTaskHandler handles the GetTaskQuery.
type GetTaskHandler struct {
	taskRepo task.Repository
}

// NewGetTaskHandler creates a new GetTaskHandler.
func NewGetTaskHandler(taskRepo task.Repository) *GetTaskHandler {
	return &GetTaskHandler{taskRepo: taskRepo}
}

// Handle executes the GetTaskQuery.
func (h *GetTaskHandler) Handle(ctx context.Context, query GetTaskQuery) (*TaskDTO, error) {
	list, err := h.taskRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	t, ok := list.Find(query.TaskID)
	if !ok {
		return nil, ErrTaskNotFound
	}

	dto := ToTaskDTO(t)
	return &dto, nil
}
