package input

import "context"

// DirectoryUseCase captures chat ids and lets an admin assign users to
// departments by username.
type DirectoryUseCase interface {
	// Capture stores the chat id for a username (/capture_chat_id).
	Capture(ctx context.Context, username string, chatID int64) error
	// Assign registers a previously captured user's chat under a department.
	// added is false when the chat was already registered there. Returns
	// domain.ErrChatNotFound when the username was never captured and
	// domain.ErrUnknownDepartment for a department outside the configured set.
	Assign(ctx context.Context, department, username string) (added bool, err error)
}
