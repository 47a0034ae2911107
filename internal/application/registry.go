package application

import (
	"context"
	"fmt"
	"sync"

	"cateringbot/internal/ports/output"
)

// DepartmentRegistry is the in-process view of department membership: the
// configured department names merged with the persisted chat assignments.
// It is append-only at runtime and safe for concurrent use; removal only
// happens out of band, directly in storage.
type DepartmentRegistry struct {
	mu      sync.RWMutex
	names   []string
	members map[string][]int64
}

// NewDepartmentRegistry builds an empty registry over the configured names,
// preserving their order.
func NewDepartmentRegistry(names []string) *DepartmentRegistry {
	members := make(map[string][]int64, len(names))
	for _, name := range names {
		members[name] = nil
	}
	return &DepartmentRegistry{
		names:   append([]string(nil), names...),
		members: members,
	}
}

// LoadDepartmentRegistry merges the configured names with the persisted
// assignments. Assignments for departments no longer configured are dropped.
func LoadDepartmentRegistry(ctx context.Context, names []string, repo output.DepartmentRepository) (*DepartmentRegistry, error) {
	stored, err := repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load departments: %w", err)
	}
	r := NewDepartmentRegistry(names)
	for _, name := range r.names {
		r.members[name] = append([]int64(nil), stored[name]...)
	}
	return r, nil
}

// Names returns the configured department names in configuration order.
func (r *DepartmentRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.names...)
}

// Valid reports whether name is a configured department.
func (r *DepartmentRegistry) Valid(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.members[name]
	return ok
}

// Register adds chatID to department and reports whether it was newly added.
// Registering under an unknown department is a no-op returning false.
func (r *DepartmentRegistry) Register(chatID int64, department string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	chats, ok := r.members[department]
	if !ok {
		return false
	}
	for _, id := range chats {
		if id == chatID {
			return false
		}
	}
	r.members[department] = append(chats, chatID)
	return true
}

// Members returns the chat ids registered under department.
func (r *DepartmentRegistry) Members(department string) []int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]int64(nil), r.members[department]...)
}

// DepartmentsOf returns every department chatID is registered in, in
// configuration order.
func (r *DepartmentRegistry) DepartmentsOf(chatID int64) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []string
	for _, name := range r.names {
		for _, id := range r.members[name] {
			if id == chatID {
				out = append(out, name)
				break
			}
		}
	}
	return out
}
