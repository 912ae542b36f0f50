package domain_test

import (
	"testing"
	"time"

	"github.com/felixgeelhaar/tarefas/internal/shared/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewBaseEntityWithID(t *testing.T) {
	id := uuid.New()
	createdAt := time.Date(2024, 3, 10, 12, 0, 0, 0, time.FixedZone("BRT", -3*60*60))

	entity := domain.NewBaseEntityWithID(id, createdAt)

	assert.Equal(t, id, entity.ID())
	assert.True(t, createdAt.Equal(entity.CreatedAt()))
	assert.Equal(t, time.UTC, entity.CreatedAt().Location())
}
