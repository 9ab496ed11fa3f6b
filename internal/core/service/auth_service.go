package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/frontdesk/visitor-registry/internal/core/domain"
	"github.com/frontdesk/visitor-registry/internal/core/ports"
	"github.com/frontdesk/visitor-registry/internal/pkg/token"
)

// dummyHash is compared against for unknown usernames; every failed login
// costs one bcrypt comparison.
var dummyHash = sync.OnceValue(func() []byte {
	h, err := bcrypt.GenerateFromPassword([]byte("visitor-registry-dummy-password"), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("auth: dummy hash: %v", err))
	}
	return h
})

// AuthService implements login and access-token refresh.
type AuthService struct {
	repo    ports.UserRepository
	tokens  *token.Manager
	log     zerolog.Logger
	compare func(hash, password []byte) error
}

func NewAuthService(repo ports.UserRepository, tokens *token.Manager, log zerolog.Logger) *AuthService {
	return &AuthService{
		repo:    repo,
		tokens:  tokens,
		log:     log,
		compare: bcrypt.CompareHashAndPassword,
	}
}

// Login checks the credentials and mints a token pair. Unknown users, wrong
// passwords and inactive accounts all fail with domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.TokenPair, *domain.User, error) {
	if username == "" || password == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = s.compare(dummyHash(), []byte(password))
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("login: %w", err)
	}

	if s.compare([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		s.log.Info().Str("user_id", user.ID).Msg("login rejected for inactive account")
		return nil, nil, domain.ErrInvalidCredentials
	}

	pair, err := s.tokens.IssuePair(user)
	if err != nil {
		return nil, nil, fmt.Errorf("login: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("login succeeded")
	return pair, user, nil
}

// Refresh mints a new access token from a refresh token. Claims come from the
// stored user, not from the refresh token, so role and activity changes apply
// immediately.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.Parse(refreshToken, token.KindRefresh)
	if err != nil {
		return "", domain.ErrInvalidToken
	}

	user, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidToken
		}
		return "", fmt.Errorf("refresh: %w", err)
	}
	if !user.IsActive {
		return "", domain.ErrInvalidToken
	}

	access, err := s.tokens.IssueAccess(user)
	if err != nil {
		return "", fmt.Errorf("refresh: %w", err)
	}

	if user.Role != claims.Role {
		s.log.Debug().Str("user_id", user.ID).Str("old_role", claims.Role).Str("role", user.Role).Msg("role changed since login")
	}
	return access, nil
}
