package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cateringbot/internal/domain"
	"cateringbot/internal/ports/output"
)

var _ output.ChatDirectory = (*ChatDirectoryRepository)(nil)

// ChatDirectoryRepository stores the username -> chat id mapping captured by
// /capture_chat_id.
type ChatDirectoryRepository struct {
	pool *pgxpool.Pool
}

func NewChatDirectoryRepository(pool *pgxpool.Pool) *ChatDirectoryRepository {
	return &ChatDirectoryRepository{pool: pool}
}

func (r *ChatDirectoryRepository) Store(ctx context.Context, username string, chatID int64) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO user_chats (username, chat_id) VALUES ($1, $2)
		ON CONFLICT (username) DO UPDATE SET chat_id = EXCLUDED.chat_id`,
		username, chatID)
	if err != nil {
		return fmt.Errorf("store chat id: %w", err)
	}
	return nil
}

func (r *ChatDirectoryRepository) Lookup(ctx context.Context, username string) (int64, error) {
	var chatID int64
	err := r.pool.QueryRow(ctx,
		`SELECT chat_id FROM user_chats WHERE username = $1`, username).Scan(&chatID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrChatNotFound
		}
		return 0, fmt.Errorf("lookup chat id: %w", err)
	}
	return chatID, nil
}
