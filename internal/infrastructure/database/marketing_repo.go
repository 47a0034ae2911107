package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"cateringbot/internal/ports/output"
)

var _ output.MarketingRepository = (*MarketingRepository)(nil)

type MarketingRepository struct {
	pool *pgxpool.Pool
}

func NewMarketingRepository(pool *pgxpool.Pool) *MarketingRepository {
	return &MarketingRepository{pool: pool}
}

func (r *MarketingRepository) Add(ctx context.Context, username string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO marketing_team (username) VALUES ($1)
		ON CONFLICT DO NOTHING`,
		username)
	if err != nil {
		return fmt.Errorf("add marketing member: %w", err)
	}
	return nil
}

func (r *MarketingRepository) Remove(ctx context.Context, username string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM marketing_team WHERE username = $1`, username)
	if err != nil {
		return fmt.Errorf("remove marketing member: %w", err)
	}
	return nil
}

func (r *MarketingRepository) List(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT username FROM marketing_team`)
	if err != nil {
		return nil, fmt.Errorf("list marketing team: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			return nil, fmt.Errorf("list marketing team: %w", err)
		}
		out = append(out, username)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list marketing team: %w", err)
	}
	return out, nil
}

func (r *MarketingRepository) Exists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM marketing_team WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check marketing member: %w", err)
	}
	return exists, nil
}
