package task

import (
	"time"

	"github.com/felixgeelhaar/tarefas/internal/productivity/domain/value_objects"
	"github.com/felixgeelhaar/tarefas/internal/shared/domain"
	"github.com/google/uuid"
)

// Data holds the user-supplied fields of a task.
//
// Content is not validated here: rejecting an empty title is the job of
// whoever collects the input.
type Data struct {
	Title       string
	Description string
	Priority    value_objects.Priority
	// Completed is optional. On creation nil means false; on update nil
	// keeps the value the task already had.
	Completed *bool
}

// Task represents a single to-do item. Task values are immutable: every
// change produces a new Task that keeps the original ID and CreatedAt.
type Task struct {
	domain.BaseEntity
	title       string
	description string
	priority    value_objects.Priority
	completed   bool
}

// New creates a task with the given identity and fields.
func New(id uuid.UUID, createdAt time.Time, data Data) Task {
	t := Task{
		BaseEntity:  domain.NewBaseEntityWithID(id, createdAt),
		title:       data.Title,
		description: data.Description,
		priority:    data.Priority,
	}
	if data.Completed != nil {
		t.completed = *data.Completed
	}
	return t
}

// Getters
func (t Task) Title() string                    { return t.title }
func (t Task) Description() string              { return t.description }
func (t Task) Priority() value_objects.Priority { return t.priority }
func (t Task) IsCompleted() bool                { return t.completed }

// Data returns the mutable fields of the task.
func (t Task) Data() Data {
	completed := t.completed
	return Data{
		Title:       t.title,
		Description: t.description,
		Priority:    t.priority,
		Completed:   &completed,
	}
}

// WithData returns a copy of the task with its fields replaced by data.
func (t Task) WithData(data Data) Task {
	next := t
	next.title = data.Title
	next.description = data.Description
	next.priority = data.Priority
	if data.Completed != nil {
		next.completed = *data.Completed
	}
	return next
}

// Toggled returns a copy of the task with the completion flag flipped.
func (t Task) Toggled() Task {
	next := t
	next.completed = !t.completed
	return next
}

// ChangedFields lists the names of the fields that differ between t and other.
func (t Task) ChangedFields(other Task) []string {
	var fields []string
	if t.title != other.title {
		fields = append(fields, "title")
	}
	if t.description != other.description {
		fields = append(fields, "description")
	}
	if t.priority != other.priority {
		fields = append(fields, "priority")
	}
	if t.completed != other.completed {
		fields = append(fields, "completed")
	}
	return fields
}
