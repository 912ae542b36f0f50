package task_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/felixgeelhaar/tarefas/internal/productivity/domain/task"
	"github.com/felixgeelhaar/tarefas/internal/productivity/domain/value_objects"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestNew(t *testing.T) {
	id := uuid.New()
	createdAt := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

	tsk := task.New(id, createdAt, task.Data{
		Title:       "Write report",
		Description: "Quarterly numbers",
		Priority:    value_objects.PriorityHigh,
	})

	assert.Equal(t, id, tsk.ID())
	assert.Equal(t, createdAt, tsk.CreatedAt())
	assert.Equal(t, "Write report", tsk.Title())
	assert.Equal(t, "Quarterly numbers", tsk.Description())
	assert.Equal(t, value_objects.PriorityHigh, tsk.Priority())
	assert.False(t, tsk.IsCompleted())
}

func TestNew_CompletedSupplied(t *testing.T) {
	tsk := task.New(uuid.New(), time.Now(), task.Data{
		Title:     "Already done",
		Priority:  value_objects.PriorityLow,
		Completed: boolPtr(true),
	})

	assert.True(t, tsk.IsCompleted())
}

func TestNew_DoesNotValidateContent(t *testing.T) {
	tsk := task.New(uuid.New(), time.Now(), task.Data{Title: ""})

	assert.Equal(t, "", tsk.Title())
	assert.False(t, tsk.Priority().IsValid())
}

func TestTask_WithData(t *testing.T) {
	original := task.New(uuid.New(), time.Now(), task.Data{
		Title:     "A",
		Priority:  value_objects.PriorityLow,
		Completed: boolPtr(true),
	})

	t.Run("keeps identity and carries completed when omitted", func(t *testing.T) {
		updated := original.WithData(task.Data{Title: "A2", Priority: value_objects.PriorityMedium})

		assert.Equal(t, original.ID(), updated.ID())
		assert.Equal(t, original.CreatedAt(), updated.CreatedAt())
		assert.Equal(t, "A2", updated.Title())
		assert.Equal(t, value_objects.PriorityMedium, updated.Priority())
		assert.True(t, updated.IsCompleted())
	})

	t.Run("applies completed when supplied", func(t *testing.T) {
		updated := original.WithData(task.Data{Title: "A", Completed: boolPtr(false)})
		assert.False(t, updated.IsCompleted())
	})

	t.Run("leaves the receiver untouched", func(t *testing.T) {
		_ = original.WithData(task.Data{Title: "Other"})
		assert.Equal(t, "A", original.Title())
	})
}

func TestTask_Toggled(t *testing.T) {
	original := task.New(uuid.New(), time.Now(), task.Data{Title: "A"})

	once := original.Toggled()
	twice := once.Toggled()

	assert.True(t, once.IsCompleted())
	assert.False(t, twice.IsCompleted())
	assert.False(t, original.IsCompleted())
	assert.Equal(t, original, twice)
}

func TestTask_Data(t *testing.T) {
	tsk := task.New(uuid.New(), time.Now(), task.Data{
		Title:       "A",
		Description: "d",
		Priority:    value_objects.PriorityHigh,
		Completed:   boolPtr(true),
	})

	data := tsk.Data()

	assert.Equal(t, "A", data.Title)
	assert.Equal(t, "d", data.Description)
	assert.Equal(t, value_objects.PriorityHigh, data.Priority)
	require.NotNil(t, data.Completed)
	assert.True(t, *data.Completed)
}

func TestTask_ChangedFields(t *testing.T) {
	base := task.New(uuid.New(), time.Now(), task.Data{Title: "A", Priority: value_objects.PriorityLow})

	assert.Empty(t, base.ChangedFields(base))
	assert.Equal(t, []string{"title", "priority"},
		base.ChangedFields(base.WithData(task.Data{Title: "B", Priority: value_objects.PriorityHigh})))
	assert.Equal(t, []string{"completed"}, base.ChangedFields(base.Toggled()))
}

func TestEvents(t *testing.T) {
	tsk := task.New(uuid.New(), time.Now(), task.Data{Title: "A", Priority: value_objects.PriorityHigh})

	created := task.NewTaskCreated(tsk)
	assert.Equal(t, tsk.ID(), created.AggregateID())
	assert.Equal(t, task.RoutingKeyCreated, created.RoutingKey())
	assert.Equal(t, "A", created.Title)
	assert.Equal(t, value_objects.PriorityHigh, created.Priority)
	payload, err := json.Marshal(created)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"priority":"high"`)

	updated := task.NewTaskUpdated(tsk.ID(), nil)
	assert.Equal(t, task.RoutingKeyUpdated, updated.RoutingKey())
	assert.NotNil(t, updated.Fields)

	deleted := task.NewTaskDeleted(tsk)
	assert.Equal(t, task.RoutingKeyDeleted, deleted.RoutingKey())
	assert.Equal(t, "A", deleted.Title)

	toggled := task.NewTaskCompletionToggled(tsk.Toggled())
	assert.Equal(t, task.RoutingKeyToggled, toggled.RoutingKey())
	assert.True(t, toggled.Completed)

	assert.Len(t, task.RoutingKeys(), 4)
}
