package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/felixgeelhaar/tarefas/internal/productivity/domain/task"
	"github.com/felixgeelhaar/tarefas/internal/productivity/domain/value_objects"
	"github.com/felixgeelhaar/tarefas/internal/productivity/infrastructure/persistence"
	"github.com/felixgeelhaar/tarefas/internal/shared/domain"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errStore = errors.New("store unavailable")

// mockPublisher is a mock implementation of application.EventPublisher.
type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishDomainEvent(ctx context.Context, event domain.DomainEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// mockTaskRepo is a mock implementation of task.Repository.
type mockTaskRepo struct {
	mock.Mock
}

func (m *mockTaskRepo) Load(ctx context.Context) (task.List, error) {
	args := m.Called(ctx)
	return args.Get(0).(task.List), args.Error(1)
}

func (m *mockTaskRepo) Save(ctx context.Context, list task.List) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// seedRepo returns a memory repository holding the given titles, the last
// title being the most recent task.
func seedRepo(t *testing.T, titles ...string) *persistence.MemoryTaskRepository {
	t.Helper()
	repo := persistence.NewMemoryTaskRepository()
	handler := NewCreateTaskHandler(repo, nil, WithClock(fixedClock))
	for _, title := range titles {
		_, err := handler.Handle(context.Background(), CreateTaskCommand{
			Title:    title,
			Priority: value_objects.PriorityLow,
		})
		require.NoError(t, err)
	}
	return repo
}

func loadList(t *testing.T, repo task.Repository) task.List {
	t.Helper()
	list, err := repo.Load(context.Background())
	require.NoError(t, err)
	return list
}
