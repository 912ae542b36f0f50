package queries

import (
	"context"
	"time"

	"github.com/felixgeelhaar/tarefas/internal/productivity/domain/task"
	"github.com/google/uuid"
)

// TaskDTO is a data transfer object for tasks.
type TaskDTO struct {
	ID          uuid.UUID
	Title       string
	Description string
	Priority    string
	Completed   bool
	CreatedAt   time.Time
}

// ListTasksQuery requests the current task list.
type ListTasksQuery struct{}

// ListTasksHandler handles the ListTasksQuery.
type ListTasksHandler struct {
	taskRepo task.Repository
}

// NewListTasksHandler creates a new ListTasksHandler.
func NewListTasksHandler(taskRepo task.Repository) *ListTasksHandler {
	return &ListTasksHandler{taskRepo: taskRepo}
}

// Handle returns every task, most recently added first.
func (h *ListTasksHandler) Handle(ctx context.Context, _ ListTasksQuery) ([]TaskDTO, error) {
	list, err := h.taskRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return ToTaskDTOs(list), nil
}

// ToTaskDTO converts a task into its DTO.
func ToTaskDTO(t task.Task) TaskDTO {
	return TaskDTO{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Priority:    t.Priority().String(),
		Completed:   t.IsCompleted(),
		CreatedAt:   t.CreatedAt(),
	}
}

// ToTaskDTOs converts a snapshot into DTOs, keeping its order.
func ToTaskDTOs(list task.List) []TaskDTO {
	dtos := make([]TaskDTO, 0, list.Len())
	for i := range list.Len() {
		dtos = append(dtos, ToTaskDTO(list.At(i)))
	}
	return dtos
}
