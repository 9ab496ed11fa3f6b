package ports

import (
	"context"

	"github.com/frontdesk/visitor-registry/internal/core/domain"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (*domain.TokenPair, *domain.User, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
}
