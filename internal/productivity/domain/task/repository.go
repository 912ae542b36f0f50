package task

import (
	"context"
)

// Repository holds the authoritative current snapshot of the task list.
type Repository interface {
	// Load returns the current snapshot.
	Load(ctx context.Context) (List, error)
	// Save replaces the current snapshot.
	Save(ctx context.Context, list List) error
}
