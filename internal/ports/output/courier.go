package output

import "context"

// Courier sends outbound chat traffic. It is the only path through which the
// application layer talks back to the chat platform.
type Courier interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	// SendMarkdown sends text with Markdown formatting enabled. The caller is
	// responsible for escaping (pkg/markdown).
	SendMarkdown(ctx context.Context, chatID int64, text string) error
	SendDocument(ctx context.Context, chatID int64, path string, caption string) error
}
