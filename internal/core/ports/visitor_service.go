package ports

import (
	"context"

	"github.com/frontdesk/visitor-registry/internal/core/domain"
)

// CreateVisitorInput is the DTO passed from the transport layer to VisitorService.Create.
type CreateVisitorInput struct {
	FirstName       string
	LastName        string
	MiddleInitial   string
	Purpose         string
	PurposeOther    string
	Department      string
	DepartmentOther string
	ContactNumber   string
	Email           string
	Date            string
	Time            string
}

type VisitorService interface {
	Create(ctx context.Context, in CreateVisitorInput) (*domain.Visitor, error)
	// List returns every visitor, newest first. There is no pagination.
	List(ctx context.Context) ([]*domain.Visitor, error)
}
