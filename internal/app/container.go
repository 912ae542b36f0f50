// Package app wires the tarefas dependencies together.
package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/felixgeelhaar/tarefas/internal/productivity/application/commands"
	"github.com/felixgeelhaar/tarefas/internal/productivity/application/queries"
	"github.com/felixgeelhaar/tarefas/internal/productivity/application/subscribers"
	"github.com/felixgeelhaar/tarefas/internal/productivity/domain/task"
	"github.com/felixgeelhaar/tarefas/internal/productivity/infrastructure/persistence"
	"github.com/felixgeelhaar/tarefas/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/tarefas/pkg/config"
	"github.com/felixgeelhaar/tarefas/pkg/observability"
)

// Container holds all application dependencies.
type Container struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *observability.InMemoryMetrics

	// TaskRepo is the only owner of the current task list.
	TaskRepo task.Repository
	EventBus *eventbus.InProcessEventBus

	// Task Command Handlers
	CreateTaskHandler *commands.CreateTaskHandler
	UpdateTaskHandler *commands.UpdateTaskHandler
	DeleteTaskHandler *commands.DeleteTaskHandler
	ToggleTaskHandler *commands.ToggleTaskHandler

	// Task Query Handlers
	GetTaskHandler   *queries.GetTaskHandler
	ListTasksHandler *queries.ListTasksHandler
}

// NewContainer creates and wires all dependencies. opts are passed to every
// task command handler.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts ...commands.Option) (*Container, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if logger == nil {
		logger = observability.DiscardLogger()
	}

	c := &Container{
		Config:   cfg,
		Logger:   logger,
		Metrics:  observability.NewInMemoryMetrics(),
		TaskRepo: persistence.NewMemoryTaskRepository(),
	}

	c.EventBus = eventbus.NewInProcessEventBus(logger)
	c.EventBus.RegisterConsumer(subscribers.NewActivityLogger(logger))
	c.EventBus.RegisterConsumer(subscribers.NewMetricsRecorder(c.Metrics, c.TaskRepo))

	handlerOpts := append([]commands.Option{
		commands.WithLogger(logger),
		commands.WithMetrics(c.Metrics),
	}, opts...)

	c.CreateTaskHandler = commands.NewCreateTaskHandler(c.TaskRepo, c.EventBus, handlerOpts...)
	c.UpdateTaskHandler = commands.NewUpdateTaskHandler(c.TaskRepo, c.EventBus, handlerOpts...)
	c.DeleteTaskHandler = commands.NewDeleteTaskHandler(c.TaskRepo, c.EventBus, handlerOpts...)
	c.ToggleTaskHandler = commands.NewToggleTaskHandler(c.TaskRepo, c.EventBus, handlerOpts...)

	c.GetTaskHandler = queries.NewGetTaskHandler(c.TaskRepo)
	c.ListTasksHandler = queries.NewListTasksHandler(c.TaskRepo)

	logger.DebugContext(ctx, "container ready",
		"consumers", c.EventBus.GetRegistry().ConsumerCount(),
		"app_env", cfg.AppEnv,
	)

	return c, nil
}
