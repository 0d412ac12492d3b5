package ports

import (
	"context"
	"time"

	"github.com/edukita/learning-api/internal/core/domain"
)

// Identity is the authenticated caller attached to a request context. It is
// produced only by token verification, never constructed by handlers.
type Identity struct {
	UserID string
	Email  string
	Role   string
}

// TokenIssuer creates and verifies signed bearer tokens.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
	Verify(token string) (*Identity, error)
	// TTL is the fixed lifetime applied to issued tokens.
	TTL() time.Duration
}

// RevocationLedger records tokens invalidated before their natural expiry.
type RevocationLedger interface {
	Revoke(ctx context.Context, token, userID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// RegisterInput carries the fields accepted at account creation.
type RegisterInput struct {
	Username string
	Email    string
	Name     string
	Phone    string
	Password string
	Role     string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, identifier, password string) (string, *domain.User, error)
	Logout(ctx context.Context, token, userID string) error
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}
