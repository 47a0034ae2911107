package input

import "context"

// TeamUseCase manages the marketing team membership.
type TeamUseCase interface {
	Add(ctx context.Context, username string) error
	Remove(ctx context.Context, username string) error
	List(ctx context.Context) ([]string, error)
	IsMember(ctx context.Context, username string) (bool, error)
}
