package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/edukita/learning-api/internal/core/domain"
	"github.com/edukita/learning-api/internal/core/ports"
)

// UserService implements profile reads, profile updates and role listings.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

// UpdateProfile merges the set fields into the stored user. Applying the same
// patch twice leaves the record unchanged after the first application.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, patch domain.UserPatch) (*domain.User, error) {
	if patch.Empty() {
		return nil, domain.ErrInvalidInput
	}
	if patch.Email != nil {
		lowered := strings.ToLower(*patch.Email)
		patch.Email = &lowered
	}

	updated, err := s.repo.Update(ctx, userID, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Msg("profile updated")
	return updated, nil
}

func (s *UserService) ListStudents(ctx context.Context) ([]domain.User, error) {
	return s.repo.ListByRole(ctx, domain.RoleStudent)
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.ListAll(ctx)
}
