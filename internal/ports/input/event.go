package input

import (
	"context"

	"cateringbot/internal/domain/entities"
)

// EventUseCase runs the publish pipeline and exposes event queries.
type EventUseCase interface {
	// Publish validates the draft, persists it, renders the document, sends
	// it to the creator and broadcasts it to every registered department.
	Publish(ctx context.Context, draft entities.Draft, creatorChatID int64) (*entities.Event, error)
	ListAll(ctx context.Context) ([]entities.Event, error)
}
