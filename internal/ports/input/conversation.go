package input

import "context"

// ConversationUseCase drives the per-user conversation state machine for
// plain text messages (commands are routed by the adapter and never reach it).
type ConversationUseCase interface {
	// HandleText advances the user's conversation with one message and
	// returns the reply to send, which may be empty.
	HandleText(ctx context.Context, userID, chatID int64, text string) (string, error)
	// BeginRegistration puts the user into the Registering state (/start).
	BeginRegistration(ctx context.Context, userID int64) error
	// BeginCreation puts the user at the first step of the event wizard (/create).
	BeginCreation(ctx context.Context, userID int64) error
}
