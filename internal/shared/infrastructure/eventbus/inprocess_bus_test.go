package eventbus_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/felixgeelhaar/tarefas/internal/shared/domain"
	"github.com/felixgeelhaar/tarefas/internal/shared/infrastructure/eventbus"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleEvent struct {
	domain.BaseEvent
	Title string `json:"title"`
}

func TestInProcessEventBus_PublishDomainEvent(t *testing.T) {
	bus := eventbus.NewInProcessEventBus(discardLogger())

	consumer := &mockConsumer{eventTypes: []string{"productivity.task.created"}}
	bus.RegisterConsumer(consumer)

	aggregateID := uuid.New()
	causationID := uuid.New()
	event := &sampleEvent{
		BaseEvent: domain.NewBaseEvent(aggregateID, "Task", "productivity.task.created"),
		Title:     "Buy milk",
	}
	event.SetMetadata(domain.EventMetadata{CorrelationID: "corr-1", CausationID: causationID})

	require.NoError(t, bus.PublishDomainEvent(context.Background(), event))

	require.Len(t, consumer.events, 1)
	got := consumer.events[0]
	assert.Equal(t, event.EventID(), got.EventID)
	assert.Equal(t, aggregateID, got.AggregateID)
	assert.Equal(t, "Task", got.AggregateType)
	assert.Equal(t, "productivity.task.created", got.RoutingKey)
	assert.Equal(t, event.OccurredAt(), got.OccurredAt)
	assert.Equal(t, "corr-1", got.Metadata.CorrelationID)
	assert.Equal(t, causationID.String(), got.Metadata.CausationID)

	var payload struct {
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal(got.Payload, &payload))
	assert.Equal(t, "Buy milk", payload.Title)
}

func TestInProcessEventBus_MultipleConsumers(t *testing.T) {
	bus := eventbus.NewInProcessEventBus(discardLogger())

	consumer1 := &mockConsumer{eventTypes: []string{"productivity.task.deleted"}}
	consumer2 := &mockConsumer{eventTypes: []string{eventbus.AllEvents}}
	bus.RegisterConsumer(consumer1)
	bus.RegisterConsumer(consumer2)

	err := bus.PublishConsumedEvent(context.Background(), &eventbus.ConsumedEvent{
		EventID:    uuid.New(),
		RoutingKey: "productivity.task.deleted",
	})
	require.NoError(t, err)

	assert.Len(t, consumer1.events, 1)
	assert.Len(t, consumer2.events, 1)
	assert.Equal(t, 2, bus.GetRegistry().ConsumerCount())
}

func TestInProcessEventBus_NoConsumers(t *testing.T) {
	bus := eventbus.NewInProcessEventBus(nil)

	event := domain.NewBaseEvent(uuid.New(), "Task", "unknown.event.type")
	err := bus.PublishDomainEvent(context.Background(), &event)

	require.NoError(t, err)
}

func TestInProcessEventBus_ConsumerErrorIsNotReturned(t *testing.T) {
	bus := eventbus.NewInProcessEventBus(discardLogger())

	consumer := &mockConsumer{
		eventTypes: []string{"productivity.task.toggled"},
		err:        errors.New("consumer error"),
	}
	bus.RegisterConsumer(consumer)

	err := bus.PublishConsumedEvent(context.Background(), &eventbus.ConsumedEvent{
		EventID:    uuid.New(),
		RoutingKey: "productivity.task.toggled",
	})

	require.NoError(t, err)
	assert.Len(t, consumer.events, 1)
}
