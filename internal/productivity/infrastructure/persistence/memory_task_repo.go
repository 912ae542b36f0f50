package persistence

import (
	"context"
	"sync"

	"github.com/felixgeelhaar/tarefas/internal/productivity/domain/task"
)

// MemoryTaskRepository implements task.Repository by holding the current
// snapshot in memory. State is lost when the process exits.
type MemoryTaskRepository struct {
	mu      sync.RWMutex
	current task.List
}

// NewMemoryTaskRepository creates a repository holding an empty list.
func NewMemoryTaskRepository() *MemoryTaskRepository {
	return &MemoryTaskRepository{}
}

// Load returns the current snapshot.
func (r *MemoryTaskRepository) Load(ctx context.Context) (task.List, error) {
	if err := ctx.Err(); err != nil {
		return task.List{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current, nil
}

// Save swaps in a new snapshot.
func (r *MemoryTaskRepository) Save(ctx context.Context, list task.List) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = list
	return nil
}
