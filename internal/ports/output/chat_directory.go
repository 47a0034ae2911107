package output

import "context"

// ChatDirectory maps usernames to the chat ids captured via /capture_chat_id.
// It lets an admin register a user by handle without that user replying.
type ChatDirectory interface {
	Store(ctx context.Context, username string, chatID int64) error
	// Lookup returns domain.ErrChatNotFound when the username was never captured.
	Lookup(ctx context.Context, username string) (int64, error)
}
