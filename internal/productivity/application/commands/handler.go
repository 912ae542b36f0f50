package commands

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/tarefas/internal/productivity/domain/task"
	sharedApplication "github.com/felixgeelhaar/tarefas/internal/shared/application"
	"github.com/felixgeelhaar/tarefas/internal/shared/domain"
	"github.com/felixgeelhaar/tarefas/pkg/observability"
	"github.com/google/uuid"
)

// Operation names recorded by the handler timers.
const (
	OperationCreate = "task.create"
	OperationUpdate = "task.update"
	OperationDelete = "task.delete"
	OperationToggle = "task.toggle"
)

const metricComponent = "productivity"

// Operations lists every timed operation.
func Operations() []string {
	return []string{OperationCreate, OperationUpdate, OperationDelete, OperationToggle}
}

// OperationTags returns the metric tags a handler timer records for
// operation.
func OperationTags(operation string) []observability.Tag {
	return []observability.Tag{
		observability.T("component", metricComponent),
		observability.T(observability.OperationKey, operation),
	}
}

// SnapshotResult is returned by every task mutation.
//
// Snapshot is always the list that is current after the command ran. When
// the referenced task does not exist Found is false, Snapshot is the
// unchanged list and Task is the zero value.
type SnapshotResult struct {
	Snapshot task.List
	Task     task.Task
	Found    bool
}

// Option configures a command handler.
type Option func(*handlerOptions)

type handlerOptions struct {
	newID   func() uuid.UUID
	now     func() time.Time
	logger  *slog.Logger
	metrics observability.Metrics
}

// WithIDGenerator replaces uuid.New as the source of task ids.
func WithIDGenerator(fn func() uuid.UUID) Option {
	return func(o *handlerOptions) {
		if fn != nil {
			o.newID = fn
		}
	}
}

// WithClock replaces time.Now as the source of creation timestamps.
func WithClock(fn func() time.Time) Option {
	return func(o *handlerOptions) {
		if fn != nil {
			o.now = fn
		}
	}
}

// WithLogger sets the logger used for operation timing and publish failures.
func WithLogger(logger *slog.Logger) Option {
	return func(o *handlerOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetrics sets the collector used for operation timing.
func WithMetrics(metrics observability.Metrics) Option {
	return func(o *handlerOptions) {
		if metrics != nil {
			o.metrics = metrics
		}
	}
}

func buildOptions(opts []Option) handlerOptions {
	o := handlerOptions{
		newID:   uuid.New,
		now:     time.Now,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics: observability.NoopMetrics{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o handlerOptions) startTimer(operation string) *observability.Timer {
	return observability.StartTimer(operation).
		WithLogger(o.logger).
		WithMetrics(o.metrics).
		WithTags(observability.T("component", metricComponent))
}

// publish delivers events after the new snapshot has been saved. A failed
// publish is logged; the mutation itself has already been applied.
func (o handlerOptions) publish(ctx context.Context, publisher sharedApplication.EventPublisher, events ...domain.DomainEvent) {
	if publisher == nil {
		return
	}
	correlationID := observability.CorrelationIDFromContext(ctx)
	sharedApplication.ApplyEventMetadata(events, sharedApplication.NewEventMetadata(correlationID))

	for _, event := range events {
		if err := publisher.PublishDomainEvent(ctx, event); err != nil {
			o.logger.WarnContext(ctx, "failed to publish event",
				"routing_key", event.RoutingKey(),
				"aggregate_id", event.AggregateID(),
				"error", err,
			)
		}
	}
}
