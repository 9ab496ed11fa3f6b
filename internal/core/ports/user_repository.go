package ports

import (
	"context"

	"github.com/frontdesk/visitor-registry/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Implementations enforce username uniqueness and report it as domain.ErrUserExists.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByID returns domain.ErrUserNotFound for unknown or malformed IDs.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// Update replaces the stored record identified by user.ID in a single write.
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	// ListActiveByRole returns active users with the given role in storage order.
	ListActiveByRole(ctx context.Context, role string) ([]*domain.User, error)
}
