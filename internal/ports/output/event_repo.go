package output

import (
	"context"

	"cateringbot/internal/domain/entities"
)

type EventRepository interface {
	// Create persists the event, filling in ID and CreatedAt.
	Create(ctx context.Context, event *entities.Event) error
	FindByID(ctx context.Context, id int64) (*entities.Event, error)
	// FindAll returns every event in storage order.
	FindAll(ctx context.Context) ([]entities.Event, error)
}
