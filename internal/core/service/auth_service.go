package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/edukita/learning-api/internal/core/domain"
	"github.com/edukita/learning-api/internal/core/ports"
)

// AuthService implements registration, login, logout and password changes.
type AuthService struct {
	repo   ports.UserRepository
	issuer ports.TokenIssuer
	ledger ports.RevocationLedger
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, issuer ports.TokenIssuer, ledger ports.RevocationLedger, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, issuer: issuer, ledger: ledger, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Username == "" || input.Email == "" || input.Name == "" || input.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	role := input.Role
	if role == "" {
		role = domain.RoleStudent
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     input.Username,
		Email:        strings.ToLower(input.Email),
		Name:         input.Name,
		Phone:        input.Phone,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user registered")
	return created, nil
}

// Login accepts an email or a username as identifier. The email lookup is
// tried first; a username lookup follows only when no account uses the email.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (string, *domain.User, error) {
	if identifier == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, strings.ToLower(identifier))
	if err == domain.ErrUserNotFound {
		user, err = s.repo.FindByUsername(ctx, identifier)
	}
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user logged in")
	return token, user, nil
}

// Logout records the presented token in the revocation ledger so it cannot be
// replayed for the remainder of its lifetime.
func (s *AuthService) Logout(ctx context.Context, token, userID string) error {
	if err := s.ledger.Revoke(ctx, token, userID, s.issuer.TTL()); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("token revocation failed")
		return err
	}
	s.logger.Info().Str("user_id", userID).Msg("user logged out")
	return nil
}

func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if newPassword == "" {
		return domain.ErrInvalidInput
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePasswordHash(ctx, userID, string(hash)); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", userID).Msg("password changed")
	return nil
}
