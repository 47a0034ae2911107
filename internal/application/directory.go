package application

import (
	"context"
	"fmt"

	"cateringbot/internal/domain"
	"cateringbot/internal/ports/input"
	"cateringbot/internal/ports/output"
)

var _ input.DirectoryUseCase = (*DirectoryService)(nil)

// DirectoryService backs /capture_chat_id and the admin /register command.
type DirectoryService struct {
	directory   output.ChatDirectory
	departments output.DepartmentRepository
	registry    *DepartmentRegistry
}

func NewDirectoryService(
	directory output.ChatDirectory,
	departments output.DepartmentRepository,
	registry *DepartmentRegistry,
) *DirectoryService {
	return &DirectoryService{
		directory:   directory,
		departments: departments,
		registry:    registry,
	}
}

func (s *DirectoryService) Capture(ctx context.Context, username string, chatID int64) error {
	return s.directory.Store(ctx, username, chatID)
}

func (s *DirectoryService) Assign(ctx context.Context, department, username string) (bool, error) {
	if !s.registry.Valid(department) {
		return false, domain.ErrUnknownDepartment
	}
	chatID, err := s.directory.Lookup(ctx, username)
	if err != nil {
		return false, err
	}
	if !s.registry.Register(chatID, department) {
		return false, nil
	}
	if err := s.departments.Add(ctx, chatID, department); err != nil {
		return false, fmt.Errorf("persist registration: %w", err)
	}
	return true, nil
}
