package output

import "context"

// StateStore persists one opaque conversation state token per user. The
// token format belongs to the domain layer (domain.EncodeState); the store
// treats it as a string.
type StateStore interface {
	// Get returns the token for userID; found is false when no state is recorded.
	Get(ctx context.Context, userID int64) (token string, found bool, err error)
	Set(ctx context.Context, userID int64, token string) error
	Clear(ctx context.Context, userID int64) error
}
