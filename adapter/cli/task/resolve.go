package task

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/felixgeelhaar/tarefas/adapter/cli"
	"github.com/felixgeelhaar/tarefas/internal/productivity/application/queries"
	"github.com/google/uuid"
)

// ErrAmbiguousID is returned when an id prefix matches more than one task.
var ErrAmbiguousID = errors.New("id prefix matches more than one task")

// resolveID turns a full id or a unique id prefix into a task id.
func resolveID(ctx context.Context, app *cli.App, ref string) (uuid.UUID, error) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	if ref == "" {
		return uuid.Nil, fmt.Errorf("empty task id: %w", queries.ErrTaskNotFound)
	}
	if id, err := uuid.Parse(ref); err == nil {
		return id, nil
	}

	tasks, err := app.ListTasksHandler.Handle(ctx, queries.ListTasksQuery{})
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	var matches []uuid.UUID
	for _, t := range tasks {
		if strings.HasPrefix(t.ID.String(), ref) {
			matches = append(matches, t.ID)
		}
	}

	switch len(matches) {
	case 0:
		return uuid.Nil, fmt.Errorf("%q: %w", ref, queries.ErrTaskNotFound)
	case 1:
		return matches[0], nil
	default:
		return uuid.Nil, fmt.Errorf("%q: %w", ref, ErrAmbiguousID)
	}
}
