package commands

import (
	"context"
	"testing"

	"github.com/felixgeelhaar/tarefas/internal/productivity/domain/task"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteTaskHandler_Handle(t *testing.T) {
	t.Run("removes exactly the matching task", func(t *testing.T) {
		repo := seedRepo(t, "A", "B", "C")
		before := loadList(t, repo)
		target := before.At(1)

		publisher := new(mockPublisher)
		publisher.On("PublishDomainEvent", mock.Anything, mock.AnythingOfType("*task.TaskDeleted")).Return(nil).Once()

		result, err := NewDeleteTaskHandler(repo, publisher).Handle(context.Background(), DeleteTaskCommand{TaskID: target.ID()})

		require.NoError(t, err)
		assert.True(t, result.Found)
		assert.Equal(t, target.ID(), result.Task.ID())
		assert.Equal(t, 2, result.Snapshot.Len())
		assert.False(t, result.Snapshot.Contains(target.ID()))
		assert.Equal(t, "C", result.Snapshot.At(0).Title())
		assert.Equal(t, "A", result.Snapshot.At(1).Title())
		assert.Equal(t, 3, before.Len())

		publisher.AssertExpectations(t)
		event := publisher.Calls[0].Arguments.Get(1).(*task.TaskDeleted)
		assert.Equal(t, "B", event.Title)
	})

	t.Run("unknown id leaves the list unchanged", func(t *testing.T) {
		repo := seedRepo(t, "A")
		before := loadList(t, repo)
		publisher := new(mockPublisher)

		result, err := NewDeleteTaskHandler(repo, publisher).Handle(context.Background(), DeleteTaskCommand{TaskID: uuid.New()})

		require.NoError(t, err)
		assert.False(t, result.Found)
		assert.Equal(t, before, result.Snapshot)
		publisher.AssertNotCalled(t, "PublishDomainEvent", mock.Anything, mock.Anything)
	})

	t.Run("fails when load fails", func(t *testing.T) {
		repo := new(mockTaskRepo)
		repo.On("Load", mock.Anything).Return(task.List{}, errStore)

		_, err := NewDeleteTaskHandler(repo, nil).Handle(context.Background(), DeleteTaskCommand{TaskID: uuid.New()})

		assert.ErrorIs(t, err, errStore)
	})
}
