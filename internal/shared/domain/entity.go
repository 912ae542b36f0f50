package domain

import (
	"time"

	"github.com/google/uuid"
)

// BaseEntity carries the identity fields shared by all entities.
// Both fields are fixed when the entity is created and never change.
type BaseEntity struct {
	id        uuid.UUID
	createdAt time.Time
}

// NewBaseEntityWithID creates an entity with a specific ID and creation time.
func NewBaseEntityWithID(id uuid.UUID, createdAt time.Time) BaseEntity {
	return BaseEntity{
		id:        id,
		createdAt: createdAt.UTC(),
	}
}

func (e BaseEntity) ID() uuid.UUID        { return e.id }
func (e BaseEntity) CreatedAt() time.Time { return e.createdAt }
