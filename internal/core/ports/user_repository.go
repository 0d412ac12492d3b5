package ports

import (
	"context"

	"github.com/edukita/learning-api/internal/core/domain"
)

// UserRepository defines the persistence interface for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error)
	UpdatePasswordHash(ctx context.Context, id, hash string) error
	ListByRole(ctx context.Context, role string) ([]domain.User, error)
	ListAll(ctx context.Context) ([]domain.User, error)
}
