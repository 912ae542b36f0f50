package subscribers

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/felixgeelhaar/tarefas/internal/shared/infrastructure/eventbus"
)

// ActivityLogger writes one log line for every task event.
type ActivityLogger struct {
	logger *slog.Logger
}

// NewActivityLogger creates a new activity logger.
func NewActivityLogger(logger *slog.Logger) *ActivityLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &ActivityLogger{logger: logger}
}

// EventTypes returns the event types this subscriber handles.
func (s *ActivityLogger) EventTypes() []string {
	return []string{eventbus.AllEvents}
}

// Handle logs the event together with its payload fields.
func (s *ActivityLogger) Handle(ctx context.Context, event *eventbus.ConsumedEvent) error {
	attrs := []any{
		"routing_key", event.RoutingKey,
		"aggregate_type", event.AggregateType,
		"aggregate_id", event.AggregateID,
		"event_id", event.EventID,
		"occurred_at", event.OccurredAt,
	}
	if event.Metadata.CorrelationID != "" {
		attrs = append(attrs, "correlation_id", event.Metadata.CorrelationID)
	}

	if len(event.Payload) > 0 {
		var payload map[string]any
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			s.logger.DebugContext(ctx, "event payload is not an object",
				"event_id", event.EventID,
				"error", err,
			)
		} else if len(payload) > 0 {
			attrs = append(attrs, slog.Any("payload", payload))
		}
	}

	s.logger.InfoContext(ctx, "task activity", attrs...)
	return nil
}
