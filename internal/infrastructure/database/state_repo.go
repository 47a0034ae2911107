package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cateringbot/internal/ports/output"
)

var _ output.StateStore = (*StateRepository)(nil)

// StateRepository persists one conversation state token per user.
type StateRepository struct {
	pool *pgxpool.Pool
}

func NewStateRepository(pool *pgxpool.Pool) *StateRepository {
	return &StateRepository{pool: pool}
}

func (r *StateRepository) Get(ctx context.Context, userID int64) (string, bool, error) {
	var token string
	err := r.pool.QueryRow(ctx,
		`SELECT state FROM user_states WHERE user_id = $1`, userID).Scan(&token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get state: %w", err)
	}
	return token, true, nil
}

func (r *StateRepository) Set(ctx context.Context, userID int64, token string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO user_states (user_id, state) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET state = EXCLUDED.state`,
		userID, token)
	if err != nil {
		return fmt.Errorf("set state: %w", err)
	}
	return nil
}

func (r *StateRepository) Clear(ctx context.Context, userID int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM user_states WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("clear state: %w", err)
	}
	return nil
}
