package output

import (
	"cateringbot/internal/domain/entities"
)

// DocumentRenderer turns a persisted event into a formatted document on disk
// and returns its path. Rendering is deterministic for identical inputs.
type DocumentRenderer interface {
	Render(event *entities.Event, departments []string) (string, error)
}
