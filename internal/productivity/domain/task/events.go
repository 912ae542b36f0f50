package task

import (
	"github.com/felixgeelhaar/tarefas/internal/productivity/domain/value_objects"
	"github.com/felixgeelhaar/tarefas/internal/shared/domain"
	"github.com/google/uuid"
)

const (
	AggregateType = "Task"

	RoutingKeyCreated = "productivity.task.created"
	RoutingKeyUpdated = "productivity.task.updated"
	RoutingKeyDeleted = "productivity.task.deleted"
	RoutingKeyToggled = "productivity.task.toggled"
)

// RoutingKeys lists every routing key emitted for tasks.
func RoutingKeys() []string {
	return []string{RoutingKeyCreated, RoutingKeyUpdated, RoutingKeyDeleted, RoutingKeyToggled}
}

// TaskCreated is emitted when a new task is added.
type TaskCreated struct {
	domain.BaseEvent
	Title     string                 `json:"title"`
	Priority  value_objects.Priority `json:"priority"`
	Completed bool                   `json:"completed"`
}

// NewTaskCreated creates a TaskCreated event.
func NewTaskCreated(t Task) *TaskCreated {
	return &TaskCreated{
		BaseEvent: domain.NewBaseEvent(t.ID(), AggregateType, RoutingKeyCreated),
		Title:     t.Title(),
		Priority:  t.Priority(),
		Completed: t.IsCompleted(),
	}
}

// TaskUpdated is emitted when a task's fields are replaced.
type TaskUpdated struct {
	domain.BaseEvent
	Fields []string `json:"fields"` // Names of fields that changed
}

// NewTaskUpdated creates a TaskUpdated event.
func NewTaskUpdated(taskID uuid.UUID, fields []string) *TaskUpdated {
	if fields == nil {
		fields = []string{}
	}
	return &TaskUpdated{
		BaseEvent: domain.NewBaseEvent(taskID, AggregateType, RoutingKeyUpdated),
		Fields:    fields,
	}
}

// TaskDeleted is emitted when a task is removed.
type TaskDeleted struct {
	domain.BaseEvent
	Title string `json:"title"`
}

// NewTaskDeleted creates a TaskDeleted event.
func NewTaskDeleted(t Task) *TaskDeleted {
	return &TaskDeleted{
		BaseEvent: domain.NewBaseEvent(t.ID(), AggregateType, RoutingKeyDeleted),
		Title:     t.Title(),
	}
}

// TaskCompletionToggled is emitted when a task's completion flag flips.
type TaskCompletionToggled struct {
	domain.BaseEvent
	Completed bool `json:"completed"`
}

// NewTaskCompletionToggled creates a TaskCompletionToggled event.
func NewTaskCompletionToggled(t Task) *TaskCompletionToggled {
	return &TaskCompletionToggled{
		BaseEvent: domain.NewBaseEvent(t.ID(), AggregateType, RoutingKeyToggled),
		Completed: t.IsCompleted(),
	}
}
