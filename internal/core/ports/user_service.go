package ports

import (
	"context"

	"github.com/frontdesk/visitor-registry/internal/core/domain"
)

// CreateUserInput is the DTO passed from the transport layer to UserService.Create.
type CreateUserInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Email     string
	Role      string
	IsActive  *bool // nil = active
}

// UpdateUserInput carries a partial update. Nil fields are left untouched.
type UpdateUserInput struct {
	Username  *string
	Password  *string
	FirstName *string
	LastName  *string
	Email     *string
	Role      *string
	IsActive  *bool
}

// UserService manages accounts and answers the active-visitor query.
type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	ListActiveVisitors(ctx context.Context) ([]*domain.User, error)
}
