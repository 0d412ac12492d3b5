package ports

import (
	"context"

	"github.com/edukita/learning-api/internal/core/domain"
)

type UserService interface {
	Profile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, patch domain.UserPatch) (*domain.User, error)
	ListStudents(ctx context.Context) ([]domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}
