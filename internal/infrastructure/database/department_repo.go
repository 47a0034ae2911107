package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"cateringbot/internal/ports/output"
)

var _ output.DepartmentRepository = (*DepartmentRepository)(nil)

type DepartmentRepository struct {
	pool *pgxpool.Pool
}

func NewDepartmentRepository(pool *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{pool: pool}
}

func (r *DepartmentRepository) Add(ctx context.Context, chatID int64, department string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO departments (chat_id, department) VALUES ($1, $2)
		ON CONFLICT DO NOTHING`,
		chatID, department)
	if err != nil {
		return fmt.Errorf("add department assignment: %w", err)
	}
	return nil
}

func (r *DepartmentRepository) All(ctx context.Context) (map[string][]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT department, chat_id FROM departments`)
	if err != nil {
		return nil, fmt.Errorf("list department assignments: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]int64)
	for rows.Next() {
		var department string
		var chatID int64
		if err := rows.Scan(&department, &chatID); err != nil {
			return nil, fmt.Errorf("list department assignments: %w", err)
		}
		out[department] = append(out[department], chatID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list department assignments: %w", err)
	}
	return out, nil
}
