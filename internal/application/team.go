package application

import (
	"context"

	"cateringbot/internal/ports/input"
	"cateringbot/internal/ports/output"
)

var _ input.TeamUseCase = (*TeamService)(nil)

// TeamService manages the marketing team, the users allowed to run /create.
type TeamService struct {
	repo output.MarketingRepository
}

func NewTeamService(repo output.MarketingRepository) *TeamService {
	return &TeamService{repo: repo}
}

func (s *TeamService) Add(ctx context.Context, username string) error {
	return s.repo.Add(ctx, username)
}

func (s *TeamService) Remove(ctx context.Context, username string) error {
	return s.repo.Remove(ctx, username)
}

func (s *TeamService) List(ctx context.Context) ([]string, error) {
	return s.repo.List(ctx)
}

func (s *TeamService) IsMember(ctx context.Context, username string) (bool, error) {
	return s.repo.Exists(ctx, username)
}
