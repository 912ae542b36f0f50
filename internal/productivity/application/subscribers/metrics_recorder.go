package subscribers

import (
	"context"

	"github.com/felixgeelhaar/tarefas/internal/productivity/domain/task"
	"github.com/felixgeelhaar/tarefas/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/tarefas/pkg/observability"
)

// MetricsRecorder counts task events per routing key and tracks the size of
// the current list.
type MetricsRecorder struct {
	metrics  observability.Metrics
	taskRepo task.Repository
}

// NewMetricsRecorder creates a new metrics recorder. taskRepo may be nil, in
// which case only event counters are recorded.
func NewMetricsRecorder(metrics observability.Metrics, taskRepo task.Repository) *MetricsRecorder {
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}
	return &MetricsRecorder{metrics: metrics, taskRepo: taskRepo}
}

// EventTypes returns the event types this subscriber handles.
func (s *MetricsRecorder) EventTypes() []string {
	return task.RoutingKeys()
}

// Handle records the event.
func (s *MetricsRecorder) Handle(ctx context.Context, event *eventbus.ConsumedEvent) error {
	s.metrics.Counter(observability.MetricTaskEvents, 1, observability.T("routing_key", event.RoutingKey))

	if s.taskRepo == nil {
		return nil
	}
	list, err := s.taskRepo.Load(ctx)
	if err != nil {
		return err
	}
	s.metrics.Gauge(observability.MetricTaskCount, float64(list.Len()))
	return nil
}
