package ports

import (
	"context"

	"github.com/frontdesk/visitor-registry/internal/core/domain"
)

// VisitorRepository defines persistence operations for visitor check-ins.
type VisitorRepository interface {
	// Create inserts v. The store assigns ID and CreatedAt; caller values are ignored.
	Create(ctx context.Context, v *domain.Visitor) (*domain.Visitor, error)
	// ListNewestFirst returns every visitor ordered by CreatedAt descending.
	ListNewestFirst(ctx context.Context) ([]*domain.Visitor, error)
}
