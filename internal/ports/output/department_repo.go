package output

import "context"

// DepartmentRepository persists (chat id, department) assignments.
type DepartmentRepository interface {
	// Add records a chat under a department. Adding an existing pair is a no-op.
	Add(ctx context.Context, chatID int64, department string) error
	// All aggregates every assignment into department -> chat ids.
	All(ctx context.Context) (map[string][]int64, error)
}
