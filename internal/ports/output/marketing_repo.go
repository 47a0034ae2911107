package output

import "context"

// MarketingRepository persists the set of usernames allowed to create events.
type MarketingRepository interface {
	// Add inserts a username; inserting an existing member is a no-op.
	Add(ctx context.Context, username string) error
	Remove(ctx context.Context, username string) error
	List(ctx context.Context) ([]string, error)
	Exists(ctx context.Context, username string) (bool, error)
}
